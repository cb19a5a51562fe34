package cmd

import (
	"github.com/cloudphoenix/phoenix-api/internal/api"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the Cloud Phoenix REST API",
	Run: func(cmd *cobra.Command, args []string) {
		s := api.New()
		s.Start()
	},
}

// Register the "server" command
func init() {
	rootCmd.AddCommand(serverCmd)
}
