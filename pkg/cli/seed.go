package cli

import (
	"context"

	"github.com/libreshelf/libreshelf/pkg/catalog"
	"github.com/spf13/cobra"
)

// sampleBooks returns the demonstration dataset: multiple genres, shared
// authors, several decades, and a mix of stock states, so every query and
// aggregation has something to chew on.
func sampleBooks() []catalog.Book {
	return []catalog.Book{
		{Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: "Fantasy", PublishedYear: 1937, Price: 14.99, InStock: true},
		{Title: "The Fellowship of the Ring", Author: "J.R.R. Tolkien", Genre: "Fantasy", PublishedYear: 1954, Price: 19.99, InStock: true},
		{Title: "The Two Towers", Author: "J.R.R. Tolkien", Genre: "Fantasy", PublishedYear: 1954, Price: 19.99, InStock: false},
		{Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi", PublishedYear: 1965, Price: 12.5, InStock: true},
		{Title: "Dune Messiah", Author: "Frank Herbert", Genre: "Sci-Fi", PublishedYear: 1969, Price: 11.0, InStock: false},
		{Title: "Neuromancer", Author: "William Gibson", Genre: "Sci-Fi", PublishedYear: 1984, Price: 9.99, InStock: true},
		{Title: "Snow Crash", Author: "Neal Stephenson", Genre: "Sci-Fi", PublishedYear: 1992, Price: 13.25, InStock: true},
		{Title: "The Name of the Wind", Author: "Patrick Rothfuss", Genre: "Fantasy", PublishedYear: 2007, Price: 16.0, InStock: true},
		{Title: "The Martian", Author: "Andy Weir", Genre: "Sci-Fi", PublishedYear: 2011, Price: 15.0, InStock: true},
		{Title: "Project Hail Mary", Author: "Andy Weir", Genre: "Sci-Fi", PublishedYear: 2021, Price: 22.0, InStock: true},
		{Title: "Educated", Author: "Tara Westover", Genre: "Memoir", PublishedYear: 2018, Price: 17.5, InStock: false},
		{Title: "The Glass Castle", Author: "Jeannette Walls", Genre: "Memoir", PublishedYear: 2005, Price: 10.75, InStock: true},
	}
}

func newSeedCommand(cfgPath *string) *cobra.Command {
	var withIndexes bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample book dataset",
		RunE: withRuntime(cfgPath, func(ctx context.Context, rt *runtime, cmd *cobra.Command) error {
			n, err := rt.catalog.Insert(ctx, sampleBooks()...)
			if err != nil {
				return err
			}
			rt.log.Info("sample dataset inserted", "collection", rt.catalog.Collection(), "books", n)
			if withIndexes {
				if err := rt.catalog.EnsureIndexes(ctx); err != nil {
					return err
				}
			}
			return printJSON(cmd, map[string]int64{"inserted": n})
		}),
	}
	cmd.Flags().BoolVar(&withIndexes, "with-indexes", true, "ensure catalog indexes after seeding")
	return cmd
}
