package cmd

import (
	"context"
	"fmt"

	"github.com/corvind/mangasrc/internal/model"
	"github.com/corvind/mangasrc/internal/ui"
	"github.com/spf13/cobra"
)

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Show the site's filter and sort options",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}

		sess, _, err := newSession(cfg, ui.NewLogger(cfg.Debug))
		if err != nil {
			return err
		}

		ctx := context.Background()

		opts, err := sess.FilterOptions(ctx)
		if err != nil {
			return err
		}
		sorts, err := sess.SortOptions(ctx)
		if err != nil {
			return err
		}

		printOptions("Genres", opts.Genres)
		printOptions("Statuses", opts.Statuses)
		printOptions("Types", opts.Types)
		printOptions("Sort orders", sorts)

		return nil
	},
}

func printOptions(title string, opts []model.Option) {
	if len(opts) == 0 {
		return
	}

	fmt.Printf("%s:\n", title)
	for _, o := range opts {
		fmt.Printf("  %-20s %s\n", o.ID, o.Label)
	}
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(filtersCmd)
}
