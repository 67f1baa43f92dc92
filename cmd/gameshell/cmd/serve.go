package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Omen-of-Aecio/gameshell/core/log"
	"github.com/Omen-of-Aecio/gameshell/evaluator"
	"github.com/Omen-of-Aecio/gameshell/mapping"
	"github.com/Omen-of-Aecio/gameshell/server"
)

var serveAddress string
var serveWebSocket string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the demo shell over TCP and optionally WebSocket",
	Long: `Serves shell sessions over TCP. Each connection gets its own
session state.

With --websocket, the same sessions are additionally reachable for
browsers at ws://<address>/.

Examples:
  gameshell serve
  gameshell serve --address 0.0.0.0:32124
  gameshell serve --websocket 127.0.0.1:32125`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddress, "address", "a", "", "TCP listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveWebSocket, "websocket", "", "WebSocket listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	settings, logger, err := loadSettings()
	if err != nil {
		printError("failed to load configuration", err)
		return err
	}
	if serveAddress != "" {
		settings.Server.Address = serveAddress
	}
	if serveWebSocket != "" {
		settings.Server.WebSocketAddress = serveWebSocket
	}

	factory := func(sessionID string) (*shellState, []mapping.Spec[evaluator.Value, *shellState]) {
		return newShellState(), demoCommands()
	}
	opts := server.Options{
		Address:           settings.Server.Address,
		BufferSize:        settings.Shell.BufferSize,
		MaxRecursionDepth: settings.Shell.MaxRecursionDepth,
		Logger:            logger,
	}

	srv, err := server.New(factory, opts)
	if err != nil {
		printError("failed to create server", err)
		return err
	}

	errCh := make(chan error, 2)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	fmt.Printf("Serving on tcp://%s\n", settings.Server.Address)

	var wsServer *http.Server
	if settings.Server.WebSocketAddress != "" {
		wsHandler, err := server.NewWebSocketHandler(factory, opts)
		if err != nil {
			printError("failed to create websocket handler", err)
			srv.Close()
			return err
		}
		wsServer = &http.Server{
			Addr:    settings.Server.WebSocketAddress,
			Handler: wsHandler,
		}
		go func() {
			if err := wsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()
		fmt.Printf("Serving on ws://%s/\n", settings.Server.WebSocketAddress)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutting down", log.Fields{"signal": sig.String()})
	case err := <-errCh:
		if err != nil {
			printError("server failed", err)
			if wsServer != nil {
				wsServer.Close()
			}
			srv.Close()
			return err
		}
	}

	if wsServer != nil {
		wsServer.Close()
	}
	return srv.Close()
}
