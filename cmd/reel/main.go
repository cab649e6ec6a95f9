// Package main implements the reel portfolio server and its maintenance commands.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rpggio/reel/internal/config"
	"github.com/spf13/cobra"
)

var (
	// configPath overrides REEL_CONFIG_PATH
	configPath string
	// version is set at build time
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reel",
	Short: "Filmmaker portfolio catalog server",
	Long: `reel serves a filmmaker's project catalog, gallery and featured carousel
over a JSON HTTP API and MCP.

Configuration comes from an optional YAML file (--config or REEL_CONFIG_PATH)
and REEL_* environment variables.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(validateCmd)
}

func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("REEL_CONFIG_PATH")
	}
	cfg, err := config.LoadPath(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("config error: %w", err)
	}
	return cfg, nil
}

// newLogger writes to stdout, or stderr in stdio mode to keep stdout clean
// for JSON-RPC. A configured log path replaces either. The returned closer
// is never nil.
func newLogger(cfg config.Config) (*slog.Logger, io.Closer) {
	logWriter := io.Writer(os.Stdout)
	if cfg.Transport.Mode == "stdio" {
		logWriter = os.Stderr
	}

	var closer io.Closer = nopCloser{}
	if cfg.Log.Path != "" {
		fileWriter, file, err := newLogFileWriter(cfg.Log.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			logWriter = fileWriter
			closer = file
		}
	}

	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	return logger, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
