package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Omen-of-Aecio/gameshell/client"
)

var connectAddress string

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connects to a running shell server",
	Long: `Connects to a shell server and relays lines from stdin as
statements, printing each response.

Examples:
  gameshell connect
  gameshell connect --address 192.168.1.10:32124
  echo "add 1 2 3" | gameshell connect`,
	RunE: runConnect,
}

func init() {
	rootCmd.AddCommand(connectCmd)
	connectCmd.Flags().StringVarP(&connectAddress, "address", "a", "", "server address (overrides config)")
}

func runConnect(cmd *cobra.Command, args []string) error {
	settings, logger, err := loadSettings()
	if err != nil {
		printError("failed to load configuration", err)
		return err
	}
	address := settings.Server.Address
	if connectAddress != "" {
		address = connectAddress
	}

	c, err := client.New(client.Options{Address: address, Logger: logger})
	if err != nil {
		printError("failed to create client", err)
		return err
	}
	if err := c.Connect(); err != nil {
		printError("failed to connect", err)
		return err
	}
	defer c.Close()
	fmt.Printf("Connected to %s\n", address)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.TrimSpace(line) == "exit" {
			return nil
		}
		response, err := c.Run(line)
		if err != nil {
			printError("request failed", err)
			return err
		}
		fmt.Println(response)
	}
}
