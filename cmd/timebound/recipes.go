package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/timebound/metrics"
	"github.com/katalvlaran/timebound/recipe"
	"github.com/katalvlaran/timebound/search"
)

var (
	errConflictingModes = errors.New("--quality and --product are mutually exclusive")
	errNegativeProduct  = errors.New("--product must be positive")
)

func newRecipesCmd(a *app) *cobra.Command {
	var (
		minutes int
		quality bool
		product int
		workers int
	)

	cmd := &cobra.Command{
		Use:   "recipes FILE",
		Short: "Maximize the scored resource of every cookbook",
		Long: `Reads a batch of cookbooks and prints, per cookbook, the largest stock of the
target resource reachable within the minute budget. --quality prints the sum of
id × best instead; --product N prints the product of the first N results.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if product < 0 {
				return fmt.Errorf("%w: %d", errNegativeProduct, product)
			}
			if quality && product > 0 {
				return errConflictingModes
			}
			books, err := loadCookbooks(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("minutes") && product > 0 {
				minutes = recipe.ProductMinutes
			}

			opts := []recipe.Option{
				recipe.WithPruning(a.pruning),
				recipe.WithWorkers(workers),
				recipe.WithLogger(a.log),
			}
			started := time.Now()

			var (
				sum     recipe.Summary
				variant string
			)
			switch {
			case quality:
				variant = metrics.VariantRecipeSum
				sum, err = recipe.QualitySum(cmd.Context(), books, minutes, opts...)
			case product > 0:
				variant = metrics.VariantRecipeProd
				sum, err = recipe.TopProduct(cmd.Context(), books, product, minutes, opts...)
			default:
				var results []recipe.Result
				results, err = recipe.SolveAll(cmd.Context(), books, minutes, opts...)
				sum.Results = results
			}
			if err != nil {
				return err
			}

			for _, r := range sum.Results {
				a.observe(metrics.VariantRecipes, r.Best, r.Stats, r.Elapsed)
			}
			if variant == "" {
				for _, r := range sum.Results {
					fmt.Fprintf(a.out, "%d %d\n", r.CookbookID, r.Best)
				}

				return nil
			}
			a.rec.Observe(variant, sum.Value, total(sum.Results), time.Since(started))
			fmt.Fprintln(a.out, sum.Value)

			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", recipe.QualityMinutes, "Minute budget (defaults to 32 with --product)")
	cmd.Flags().BoolVar(&quality, "quality", false, "Print the sum of id × best")
	cmd.Flags().IntVar(&product, "product", 0, "Print the product of the first N results")
	cmd.Flags().IntVar(&workers, "workers", recipe.DefaultOptions().Workers, "Concurrent cookbook searches")

	return cmd
}

func total(results []recipe.Result) (st search.Stats) {
	for _, r := range results {
		st = st.Add(r.Stats)
	}

	return st
}
