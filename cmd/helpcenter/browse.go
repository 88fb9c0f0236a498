package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/helpcenter/internal/cli"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the help center in the terminal",
	Long:  `Renders each payload as it would appear in chat and turns numbered choices into interactions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		perms, _ := cmd.Flags().GetString("permissions")
		plain, _ := cmd.Flags().GetBool("plain")

		opts := cli.BrowseOptions{Permissions: perms}
		fd := int(os.Stdout.Fd())
		if !plain && term.IsTerminal(fd) {
			opts.Pretty = true
			if width, _, err := term.GetSize(fd); err == nil {
				opts.Width = width
			}
		}

		ctx, cancel := signalContext(cmd.Context())
		defer cancel()
		return cli.Browse(ctx, cfg, opts, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().String("permissions", "0", "capability bitmask to browse with (8 = administrator)")
	browseCmd.Flags().Bool("plain", false, "disable colors and markdown rendering")
}
