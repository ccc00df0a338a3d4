// Package main is the entry point for the Theta Arc game server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/theta-arc/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "theta-arc",
	Short: "Theta Arc game server",
	Long:  `Theta Arc runs the TAC creature game for chat bridges, a local console and operators.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
