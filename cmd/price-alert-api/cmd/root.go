// Package cmd implements the CLI commands for price-alert-api.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "price-alert-api",
	Short: "Price alert API server",
	Long: "An API service that stores price alerts for products and runs " +
		"simulated price checks against them, notifying when a product " +
		"price meets or drops below its target.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
