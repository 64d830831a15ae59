package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/databunker/hierarchy-matcher/internal/domain"
	"github.com/databunker/hierarchy-matcher/internal/infrastructure/cache"
	"github.com/databunker/hierarchy-matcher/internal/infrastructure/files"
	"github.com/databunker/hierarchy-matcher/internal/usecase"
)

func newResolveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <description>...",
		Short: "Resolve one product description against the catalog",
		Long: `Resolve a free-text description the same way run resolves a product's Item,
printing the matched catalog record and the hierarchy after heuristics.
Useful for reviewing rows that came out as "No Match Found".`,
		Example: `  matcher resolve --catalog catalogo.xlsx "Tenis para correr mujer"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			service := usecase.NewHierarchyService(
				files.CatalogFile{Path: cfg.Input.Catalog.Path, Sheet: cfg.Input.Catalog.Sheet},
				nil, nil, nil,
				serviceConfig(cfg, cache.NewMemoryCache()),
				logger.Named("resolve"),
			)
			matcher, _, _, err := service.BuildMatcher(cmd.Context())
			if err != nil {
				return err
			}

			product := domain.NewProduct{CategoryFields: domain.CategoryFields{Item: strings.Join(args, " ")}}
			proposal, match := matcher.Propose(product)
			usecase.ApplyHeuristicOverrides(&proposal)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "query:    %s\n", proposal.Query)
			fmt.Fprintf(out, "proposal: %s\n", proposal.Proposed)
			if !match.Found {
				return nil
			}
			record, _ := matcher.Record(match.RecordID)
			fmt.Fprintf(out, "record:   %s %q (score %d)\n", record.Key, record.Item, match.Score)
			fmt.Fprintf(out, "adjusted: %s\n", proposal.ConcatenatedAdjusted)
			return nil
		},
	}
}
