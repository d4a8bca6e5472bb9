package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	port     string
	seedFile string
	verbose  bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "charzdev",
	Short: "CharzDev EV storefront and admin panel",
	Long: `Serves the CharzDev public site, its admin panel and a JSON API.

All content lives in memory and is re-seeded on every start.
Run without arguments to start the server.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the HTTP server. Settings come from the environment (or .env);
flags override them.`,
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&port, "port", "", "Listen port (overrides PORT)")
	rootCmd.PersistentFlags().StringVar(&seedFile, "seed", "", "YAML seed file (overrides SEED_FILE)")

	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
