package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/libreshelf/libreshelf/pkg/catalog"
	"github.com/libreshelf/libreshelf/pkg/health"
	"github.com/libreshelf/libreshelf/pkg/version"
	"github.com/spf13/cobra"
)

func newListCommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every book as {title, author, price}",
		RunE: withRuntime(cfgPath, func(ctx context.Context, rt *runtime, cmd *cobra.Command) error {
			rows, err := rt.catalog.ListAll(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd, rows)
		}),
	}
}

func newFindCommand(cfgPath *string) *cobra.Command {
	var (
		genre        string
		author       string
		title        string
		afterYear    int
		inStockAfter int
	)
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find books by genre, author, title, or publication year",
		RunE: withRuntime(cfgPath, func(ctx context.Context, rt *runtime, cmd *cobra.Command) error {
			switch {
			case genre != "":
				rows, err := rt.catalog.FindByGenre(ctx, genre)
				if err != nil {
					return err
				}
				return printJSON(cmd, rows)
			case author != "":
				rows, err := rt.catalog.FindByAuthor(ctx, author)
				if err != nil {
					return err
				}
				return printJSON(cmd, rows)
			case title != "":
				book, err := rt.catalog.FindByTitle(ctx, title)
				if err != nil {
					return err
				}
				if book == nil {
					return printJSON(cmd, []catalog.Book{})
				}
				return printJSON(cmd, book)
			case cmd.Flags().Changed("in-stock-after"):
				rows, err := rt.catalog.FindInStockAfterYear(ctx, inStockAfter)
				if err != nil {
					return err
				}
				return printJSON(cmd, rows)
			case cmd.Flags().Changed("after-year"):
				rows, err := rt.catalog.FindPublishedAfter(ctx, afterYear)
				if err != nil {
					return err
				}
				return printJSON(cmd, rows)
			default:
				return fmt.Errorf("one of --genre, --author, --title, --after-year, --in-stock-after is required")
			}
		}),
	}
	cmd.Flags().StringVar(&genre, "genre", "", "exact genre match")
	cmd.Flags().StringVar(&author, "author", "", "exact author match")
	cmd.Flags().StringVar(&title, "title", "", "exact title lookup")
	cmd.Flags().IntVar(&afterYear, "after-year", 0, "books published strictly after this year")
	cmd.Flags().IntVar(&inStockAfter, "in-stock-after", 0, "in-stock books published strictly after this year")
	return cmd
}

func newPageCommand(cfgPath *string) *cobra.Command {
	var (
		page int
		size int
		sort string
	)
	cmd := &cobra.Command{
		Use:   "page",
		Short: "Page through the title-sorted catalog, or sort by price",
		RunE: withRuntime(cfgPath, func(ctx context.Context, rt *runtime, cmd *cobra.Command) error {
			if sort != "" {
				order := catalog.SortAsc
				if sort == "desc" {
					order = catalog.SortDesc
				}
				rows, err := rt.catalog.SortByPrice(ctx, order)
				if err != nil {
					return err
				}
				return printJSON(cmd, rows)
			}
			if size == 0 {
				size = rt.cfg.Catalog.DefaultPageSize
			}
			rows, err := rt.catalog.Page(ctx, page, size)
			if err != nil {
				return err
			}
			return printJSON(cmd, rows)
		}),
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&size, "size", 0, "page size (defaults to catalog.default_page_size)")
	cmd.Flags().StringVar(&sort, "sort-by-price", "", "instead of paging, sort all books by price: asc or desc")
	return cmd
}

func newUpdatePriceCommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "update-price <title> <price>",
		Short: "Set the price of the book with the given title",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", args[1], err)
			}
			return withRuntime(cfgPath, func(ctx context.Context, rt *runtime, cmd *cobra.Command) error {
				n, err := rt.catalog.UpdatePrice(ctx, args[0], price)
				if err != nil {
					return err
				}
				rt.log.Info("price updated", "title", args[0], "price", price, "modified", n)
				return printJSON(cmd, map[string]int64{"modified": n})
			})(cmd, args)
		},
	}
}

func newDeleteCommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <title>",
		Short: "Delete the book with the given title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cfgPath, func(ctx context.Context, rt *runtime, cmd *cobra.Command) error {
				n, err := rt.catalog.DeleteByTitle(ctx, args[0])
				if err != nil {
					return err
				}
				rt.log.Info("book deleted", "title", args[0], "removed", n)
				return printJSON(cmd, map[string]int64{"removed": n})
			})(cmd, args)
		},
	}
}

func newStatsCommand(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Aggregation reports over the catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "avg-price-by-genre",
		Short: "Average price and book count per genre, highest average first",
		RunE: withRuntime(cfgPath, func(ctx context.Context, rt *runtime, cmd *cobra.Command) error {
			rows, err := rt.catalog.AveragePriceByGenre(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd, rows)
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "top-author",
		Short: "The author with the most books in the catalog",
		RunE: withRuntime(cfgPath, func(ctx context.Context, rt *runtime, cmd *cobra.Command) error {
			top, err := rt.catalog.TopAuthorByBookCount(ctx)
			if err != nil {
				return err
			}
			if top == nil {
				return printJSON(cmd, map[string]string{"result": "catalog is empty"})
			}
			return printJSON(cmd, top)
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "by-decade",
		Short: "Book counts bucketed by publication decade",
		RunE: withRuntime(cfgPath, func(ctx context.Context, rt *runtime, cmd *cobra.Command) error {
			rows, err := rt.catalog.CountByDecade(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd, rows)
		}),
	})

	return cmd
}

func newIndexesCommand(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "indexes",
		Short: "Index management",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "ensure",
		Short: "Create the catalog's indexes if they do not already exist",
		RunE: withRuntime(cfgPath, func(ctx context.Context, rt *runtime, cmd *cobra.Command) error {
			return rt.catalog.EnsureIndexes(ctx)
		}),
	})
	return cmd
}

func newExplainCommand(cfgPath *string) *cobra.Command {
	var afterYear int
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Execution statistics for index-sensitive queries",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "title <title>",
		Short: "Explain a title equality lookup",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return withRuntime(cfgPath, func(ctx context.Context, rt *runtime, cmd *cobra.Command) error {
				stats, err := rt.catalog.ExplainTitleLookup(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd, stats)
			})(c, args)
		},
	})

	authorCmd := &cobra.Command{
		Use:   "author <author>",
		Short: "Explain an author plus publication-year range query",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return withRuntime(cfgPath, func(ctx context.Context, rt *runtime, cmd *cobra.Command) error {
				stats, err := rt.catalog.ExplainAuthorQuery(ctx, args[0], afterYear)
				if err != nil {
					return err
				}
				return printJSON(cmd, stats)
			})(c, args)
		},
	}
	authorCmd.Flags().IntVar(&afterYear, "after-year", 0, "lower bound on published_year")
	cmd.AddCommand(authorCmd)

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build version metadata",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd, version.Current("libreshelf"))
		},
	}
}

func newHealthcheckCommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "healthcheck",
		Short: "Verify the store connection is healthy",
		RunE: withRuntime(cfgPath, func(ctx context.Context, rt *runtime, cmd *cobra.Command) error {
			registry := health.NewRegistry()
			registry.Register(health.NewAdapterChecker("mongodb", rt.adapter, 5*time.Second))

			result := registry.Check(ctx)
			if err := printJSON(cmd, result); err != nil {
				return err
			}
			if !result.IsHealthy() {
				return fmt.Errorf("health check failed")
			}
			return nil
		}),
	}
}
