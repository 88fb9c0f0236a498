package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/helpcenter/internal/cli"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Model Context Protocol server",
	Long:  `Exposes help_open, help_select and help_press tools and the corpus resource to MCP clients.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		transport, _ := cmd.Flags().GetString("transport")
		addr, _ := cmd.Flags().GetString("addr")
		baseURL, _ := cmd.Flags().GetString("base-url")

		ctx, cancel := signalContext(cmd.Context())
		defer cancel()
		return cli.ServeMCP(ctx, cfg, cli.MCPOptions{Transport: transport, Addr: addr, BaseURL: baseURL}, logger)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("transport", "stdio", "transport (stdio, sse)")
	mcpCmd.Flags().String("addr", ":8081", "listen address for the sse transport")
	mcpCmd.Flags().String("base-url", "http://localhost:8081", "public base URL for the sse transport")
}
