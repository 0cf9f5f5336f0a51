package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/colorcraft/colorcraft/internal/config"
	"github.com/colorcraft/colorcraft/internal/server"
)

var (
	// Serve command flags
	serveConfigPath string
	serveListenAddr string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the colour analysis HTTP API",
	Long: `Run the HTTP API exposing extraction, analysis and suggestion
endpoints.

Endpoints:
  GET  /                    health check
  POST /api/extract-colors  extract a palette from an uploaded image
  POST /api/analyze-colors  harmony and accessibility analysis
  POST /api/suggest-colors  harmony-based suggestions per colour
  POST /api/full-analysis   extract and analyse in one request

Configuration is read from a YAML file when --config is given,
otherwise from COLORCRAFT_* environment variables with built-in
defaults. The server shuts down gracefully on SIGINT or SIGTERM.

Examples:
  # Run with defaults on :8000
  colorcraft serve

  # Run with a config file
  colorcraft serve --config /etc/colorcraft/config.yaml

  # Override the listen address
  colorcraft serve --listen :9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "path to YAML config file")
	serveCmd.Flags().StringVar(&serveListenAddr, "listen", "", "listen address (overrides config)")
}

// runServe executes the serve command.
func runServe(cmd *cobra.Command, args []string) error {
	var (
		cfg *config.Config
		err error
	)
	if serveConfigPath != "" {
		cfg, err = config.Load(serveConfigPath)
	} else {
		cfg, err = config.LoadEnv()
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if serveListenAddr != "" {
		cfg.ListenAddr = serveListenAddr
	}

	level := hclog.LevelFromString(cfg.LogLevel)
	if level == hclog.NoLevel {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose && level > hclog.Debug {
		level = hclog.Debug
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet && level < hclog.Error {
		level = hclog.Error
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "colorcraft",
		Level: level,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, logger).Start(ctx)
}
