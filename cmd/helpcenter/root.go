package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/helpcenter/internal/config"
	"github.com/aretw0/helpcenter/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "helpcenter",
	Short: "helpcenter is an interactive FAQ engine for chat platforms",
	Long: `helpcenter compiles a directory of YAML topic descriptors into a help corpus
and serves it as stateless, button-driven chat navigation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfgFile, _ := cmd.Flags().GetString("config")
		return config.Init(viper.GetViper(), cfgFile)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default ./helpcenter.yaml)")
	flags.String("topics", "topics", "directory of topic descriptors")
	flags.String("corpus", "corpus.json", "compiled corpus artifact")
	flags.String("redis-url", "", "load the corpus from redis instead of disk")
	flags.String("redis-key", "helpcenter:corpus", "redis key holding the corpus")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")

	for key, flag := range map[string]string{
		"topics":     "topics",
		"corpus":     "corpus",
		"redis_url":  "redis-url",
		"redis_key":  "redis-key",
		"log_level":  "log-level",
		"log_format": "log-format",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
}

// loadConfig decodes the merged configuration and builds the logger.
func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return config.Config{}, nil, err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return config.Config{}, nil, err
	}
	format, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logging.New(level, format), nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
