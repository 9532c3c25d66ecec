package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spektr-org/prototypes/config"
	"github.com/spektr-org/prototypes/datasets"
	"github.com/spektr-org/prototypes/helpers"
)

// ============================================================================
// PROTOTYPES CLI — run dataset queries from the shell
// ============================================================================

// app carries flag values and the state PersistentPreRunE builds.
type app struct {
	// Global flags
	configPath  string
	fixtures    string
	format      string
	parallelism int
	verbose     bool

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "prototypes",
		Short: "Query small in-memory datasets",
		Long: `prototypes runs named queries over embedded datasets (kitties, cakes,
classrooms, breweries, dinosaurs and more) and prints the results.

Queries are named "<dataset>.<query>", e.g. cakes.totalInventory.
Use "prototypes list" to see them all.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", config.DefaultPath, "config file (missing file = defaults)")
	flags.StringVar(&a.fixtures, "fixtures", "", "directory overriding the embedded fixture files")
	flags.StringVar(&a.format, "format", "", fmt.Sprintf("output format %v", helpers.Formats()))
	flags.IntVar(&a.parallelism, "parallelism", 0, "queries run at once by 'run'")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(a.listCmd(), a.describeCmd(), a.runCmd())
	return root
}

// setup loads config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fixtures") {
		cfg.Fixtures = a.fixtures
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("parallelism") {
		cfg.Parallelism = a.parallelism
	}
	if a.verbose {
		cfg.Logging.Level = zapcore.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, err := cfg.Logging.ZapLevel()
	if err != nil {
		return err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	a.logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// loadSet reads the embedded fixtures, or the configured override directory.
func (a *app) loadSet() (*datasets.Set, error) {
	if a.cfg.Fixtures == "" {
		return datasets.Load()
	}
	a.logger.Debug("loading fixtures", zap.String("dir", a.cfg.Fixtures))
	return datasets.LoadDir(a.cfg.Fixtures)
}
