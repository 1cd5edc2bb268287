// Package cmd holds the CLI commands.
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "ecoscheduler",
	Short: "Monthly service visit planner",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env file is fine; environment overrides stay optional.
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }
