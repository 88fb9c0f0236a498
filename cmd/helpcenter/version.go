package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/helpcenter"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of helpcenter",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "helpcenter version %s\n", strings.TrimSpace(helpcenter.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
