package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/helpcenter/internal/cli"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile topic descriptors into a corpus artifact",
	Long: `Walks the topics directory, validates every descriptor and writes the
compiled corpus. Any invalid descriptor aborts the build and nothing is written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		if !cmd.Flags().Changed("out") {
			out = cfg.Corpus
		}
		publish, _ := cmd.Flags().GetString("publish")

		ctx, cancel := signalContext(cmd.Context())
		defer cancel()

		c, err := cli.Build(ctx, cli.BuildOptions{
			Topics:     cfg.Topics,
			Out:        out,
			PublishURL: publish,
			RedisKey:   cfg.RedisKey,
		}, logger)
		if err != nil {
			return fmt.Errorf("build failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Built %d topics into %s\n", c.Len(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("out", "o", "corpus.json", "artifact path")
	buildCmd.Flags().String("publish", "", "also publish the corpus to this redis URL")
}
