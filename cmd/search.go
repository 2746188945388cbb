package cmd

import (
	"context"
	"fmt"

	"github.com/corvind/mangasrc/internal/ui"
	"github.com/spf13/cobra"
)

var flagSearchPage int

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search a site, or browse its catalog when no query is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}

		sess, _, err := newSession(cfg, ui.NewLogger(cfg.Debug))
		if err != nil {
			return err
		}

		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		page, err := sess.Search(context.Background(), query, flagSearchPage)
		if err != nil {
			return err
		}

		for i, it := range page.Items {
			fmt.Printf("%3d) %s  [%s]", i+1, it.Title, it.MangaID)
			if it.Subtitle != "" {
				fmt.Printf("  %s", it.Subtitle)
			}
			fmt.Println()
		}

		if page.HasNextPage {
			fmt.Printf("\nMore results on page %d.\n", flagSearchPage+1)
		}

		return nil
	},
}

func init() {
	searchCmd.Flags().IntVar(&flagSearchPage, "page", 1, "result page to fetch")
	rootCmd.AddCommand(searchCmd)
}
