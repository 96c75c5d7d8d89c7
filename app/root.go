// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "relibas-server",
	Short: "relibas-server is the backend for the Re-Libas donation platform",
	Long: `relibas-server is the backend for the Re-Libas clothing donation
platform. It serves the intake API for donation pickup requests, volunteer
registrations and contact messages, and the moderation API used by the
admin dashboard.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
