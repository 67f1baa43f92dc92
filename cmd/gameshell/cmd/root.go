package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Omen-of-Aecio/gameshell/config"
	"github.com/Omen-of-Aecio/gameshell/core/log"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "gameshell",
	Short: "gameshell - an embeddable lisp-like command shell",
	Long: `gameshell runs a small command language over byte streams.

Statements look like

  command argument (subcommand argument) argument

and every statement yields exactly one response. Use "repl" to try
the language locally, "serve" to expose a shell over TCP or
WebSocket, and "connect" to talk to a running server.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadSettings loads the config file (or defaults) and applies the
// --verbose override.
func loadSettings() (*config.Settings, *log.Logger, error) {
	settings, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		settings.Log.Level = "debug"
	}
	return settings, settings.Logger(), nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
