package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/helpcenter/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check topic descriptors without writing anything",
	Long:  `Loads the topics directory and reports invalid descriptors, oversized menus and authoring mistakes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		if err := cli.Validate(cmd.Context(), cfg.Topics, cmd.OutOrStdout(), asJSON); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		if !asJSON {
			fmt.Fprintln(cmd.OutOrStdout(), "Corpus is valid!")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("json", false, "print the report as JSON")
}
