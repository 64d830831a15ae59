// Package cli exposes the matcher as a cobra command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/databunker/hierarchy-matcher/config"
	"github.com/databunker/hierarchy-matcher/internal/infrastructure/logging"
)

// Build-time variables injected via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// rootOptions holds global CLI flags
type rootOptions struct {
	configPath string
}

// flagKeys maps command-line flags to the config keys they override
var flagKeys = map[string]string{
	"log-level":      "log.level",
	"log-format":     "log.format",
	"client":         "client.name",
	"own-channel":    "client.own_channel",
	"catalog":        "input.catalog.path",
	"catalog-sheet":  "input.catalog.sheet",
	"stemming":       "matching.stemming",
	"products":       "input.products.path",
	"products-sheet": "input.products.sheet",
	"conditions":     "input.conditions.path",
	"date":           "delivery.date",
	"output-dir":     "output.dir",
	"format":         "output.format",
	"summary":        "output.summary",
}

// NewRootCommand creates the root command with all subcommands
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "matcher",
		Short:         "Propose client hierarchies for new competitor products",
		Long:          "matcher assigns each new competitor product the hierarchy of the most similar\nreference catalog entry, then applies keyword heuristics and curated conditions.",
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "config file path (default: ./config.yaml)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console, json)")
	pf.String("client", "", "client name used in output file names")
	pf.String("own-channel", "Nike Mx", "channel of the client's own catalog rows")
	pf.String("catalog", "", "reference catalog file (csv or xlsx)")
	pf.String("catalog-sheet", "", "catalog sheet name (default: first sheet)")
	pf.Bool("stemming", false, "stem words before matching")

	cmd.AddCommand(
		newRunCommand(opts),
		newResolveCommand(opts),
		newVersionCommand(),
	)
	return cmd
}

// loadConfig loads the configuration with every explicitly set flag applied on top
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, *zap.Logger, error) {
	overrides := make(map[string]any)
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && f.Changed {
			overrides[key] = f.Value.String()
		}
	})

	cfg, err := config.Load(opts.configPath, overrides)
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "matcher %s (commit: %s, built: %s)\n", Version, GitCommit, BuildDate)
		},
	}
}
