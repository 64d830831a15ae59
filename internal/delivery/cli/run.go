package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/databunker/hierarchy-matcher/config"
	"github.com/databunker/hierarchy-matcher/internal/domain"
	"github.com/databunker/hierarchy-matcher/internal/infrastructure/cache"
	"github.com/databunker/hierarchy-matcher/internal/infrastructure/files"
	"github.com/databunker/hierarchy-matcher/internal/infrastructure/report"
	"github.com/databunker/hierarchy-matcher/internal/usecase"
)

func newRunCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the matching pipeline for one delivery cycle",
		Long: `Match every competitor product not yet in the reference catalog, apply the
gender and sport heuristics and the conditions table, and write the proposal table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			return runPipeline(cmd, cfg, logger)
		},
	}

	f := cmd.Flags()
	f.String("products", "", "consolidated competitor products file (csv or xlsx)")
	f.String("products-sheet", "", "products sheet name (default: first sheet)")
	f.String("conditions", "", "conditions table (';'-separated csv)")
	f.String("date", "", "delivery date, YYYY-MM-DD (default: today)")
	f.String("output-dir", "output", "directory for the proposal table and run summary")
	f.String("format", "csv", "proposal table format (csv, xlsx)")
	f.Bool("summary", true, "write a yaml run summary next to the proposal table")

	return cmd
}

func runPipeline(cmd *cobra.Command, cfg *config.Config, logger *zap.Logger) error {
	if cfg.Input.Products.Path == "" {
		return errors.New("products path is required (use --products or set MATCHER_INPUT_PRODUCTS_PATH)")
	}

	outputPath := filepath.Join(cfg.Output.Dir, files.ProposalFileName(cfg.Client.Name, cfg.Delivery.Date, cfg.Output.Format))

	var conditions domain.ConditionSource
	if cfg.Input.Conditions.Path != "" {
		conditions = files.ConditionsFile{Path: cfg.Input.Conditions.Path, Comma: cfg.Input.Conditions.Comma()}
	} else {
		logger.Info("no conditions table configured")
	}

	stemCache := cache.NewMemoryCache()
	service := usecase.NewHierarchyService(
		files.CatalogFile{Path: cfg.Input.Catalog.Path, Sheet: cfg.Input.Catalog.Sheet},
		files.ProductsFile{Path: cfg.Input.Products.Path, Sheet: cfg.Input.Products.Sheet},
		conditions,
		files.ProposalFile{Path: outputPath},
		serviceConfig(cfg, stemCache),
		logger.Named("pipeline"),
	)

	summary, err := service.Run(cmd.Context())
	if err != nil {
		return err
	}

	if cfg.Matching.Stemming {
		hits, misses := stemCache.Stats()
		logger.Debug("stem cache", zap.Int("entries", stemCache.Size()), zap.Int("hits", hits), zap.Int("misses", misses))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "proposals: %s (%d rows, %d without match)\n", outputPath, summary.Proposals, summary.NoMatch)

	if cfg.Output.Summary {
		summaryPath := filepath.Join(cfg.Output.Dir, files.SummaryFileName(cfg.Client.Name, cfg.Delivery.Date))
		if err := report.WriteSummary(summaryPath, summary); err != nil {
			return err
		}
		fmt.Fprintf(out, "summary:   %s\n", summaryPath)
	}

	return nil
}

func serviceConfig(cfg *config.Config, stemCache domain.TokenCache) usecase.HierarchyServiceConfig {
	return usecase.HierarchyServiceConfig{
		Client:       cfg.Client.Name,
		DeliveryDate: cfg.Delivery.Date,
		OwnChannel:   cfg.Client.OwnChannel,
		Tokenizer: usecase.TokenizerConfig{
			EnableStemming: cfg.Matching.Stemming,
			StemLanguage:   cfg.Matching.StemLanguage,
			Cache:          stemCache,
		},
		ProgressEvery: cfg.Matching.ProgressEvery,
	}
}
