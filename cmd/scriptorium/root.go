// Root command for the scriptorium CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/scriptorium/internal/config"
	"github.com/mesh-intelligence/scriptorium/internal/paths"
	"github.com/mesh-intelligence/scriptorium/internal/sqlite"
	"github.com/mesh-intelligence/scriptorium/pkg/logger"
)

// Global flag values.
var (
	flagDataDir string
	flagNoSeed  bool
)

// cfg holds the loaded configuration, set by PersistentPreRunE so all
// subcommands can use it.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "scriptorium",
	Short: "Scriptorium is a document revision store served over HTTP",
	Long: `Scriptorium stores named documents as append-only, timestamped
revision histories and serves them over HTTP. Every write is kept as an
immutable revision; the current state of a document is always the revision
with the greatest timestamp.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		logger.Init(cfg.Log.Level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.scriptorium)")
	rootCmd.PersistentFlags().BoolVar(&flagNoSeed, "no-seed", false, "skip built-in seed data on first run")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(loadCmd)
}

// attachStore resolves the data directory and attaches a backend to it.
// The caller owns the returned backend and must Detach it.
func attachStore() (*sqlite.Backend, error) {
	dataDir, err := paths.ResolveDataDir(flagDataDir, cfg.Store.DataDir)
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	storeCfg := cfg.Store
	storeCfg.DataDir = dataDir
	if flagNoSeed {
		storeCfg.SeedOnInit = false
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(storeCfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}
	return backend, nil
}
