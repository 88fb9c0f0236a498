package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/helpcenter/internal/cli"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the topic forest visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) of every topic, in menu order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		highlight, _ := cmd.Flags().GetString("highlight")
		return cli.Graph(cmd.Context(), cfg, highlight, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("highlight", "", "topic id whose breadcrumb is highlighted")
}
