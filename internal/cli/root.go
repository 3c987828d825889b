// Package cli implements the yardstick command-line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/yardstick/internal/paths"
	"github.com/mesh-intelligence/yardstick/pkg/catalog"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	catalogs  []string
	verbose   bool
}

var flags rootFlags

// registry is the unit catalog shared by all subcommands. Built by
// PersistentPreRunE from the SI defaults plus any catalog files named
// on the command line or in config.yaml.
var registry *catalog.Registry

// logger is the process logger, configured by PersistentPreRunE.
var logger *zap.Logger = zap.NewNop()

// NewRootCmd creates the top-level "yardstick" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "yardstick",
		Short:   "Unit-aware arithmetic and conversion",
		Long:    "Yardstick converts quantities between units and inspects the unit catalog.\nThe catalog starts from the SI definitions and can be extended with YAML files.",
		Version: version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringArrayVar(&flags.catalogs, "catalog", nil, "additional unit catalog file (repeatable)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newUnitsCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}

// setup resolves the configuration directory, reads config.yaml, configures
// logging, and builds the unit registry.
func setup(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	verbose := flags.verbose || cfg.GetBool(cfgKeyVerbose)
	if logger, err = newLogger(verbose); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	registry = catalog.SI()

	// Catalog files from config.yaml resolve relative to the config
	// directory; files from the --catalog flag resolve as given.
	for _, path := range cfg.GetStringSlice(cfgKeyCatalogs) {
		if !filepath.IsAbs(path) {
			path = filepath.Join(configDir, path)
		}
		if err := loadCatalog(path); err != nil {
			return err
		}
	}
	for _, path := range flags.catalogs {
		if err := loadCatalog(path); err != nil {
			return err
		}
	}

	return nil
}

func loadCatalog(path string) error {
	logger.Debug("loading catalog file", zap.String("path", path))
	if err := catalog.LoadFile(registry, path); err != nil {
		return fmt.Errorf("load catalog %s: %w", path, err)
	}
	return nil
}

// newLogger builds the process logger. Debug level when verbose, warnings
// and above otherwise so normal command output stays clean.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return cfg.Build()
}
