package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/corvind/mangasrc/internal/ui"
	"github.com/spf13/cobra"
)

var detailsCmd = &cobra.Command{
	Use:   "details <manga-id>",
	Short: "Fetch and print manga details for a slug or URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}

		sess, _, err := newSession(cfg, ui.NewLogger(cfg.Debug))
		if err != nil {
			return err
		}

		id := sess.Adapter().CleanID(args[0])
		manga, err := sess.MangaDetails(context.Background(), id)
		if err != nil {
			return err
		}

		fmt.Printf("Title:    %s\n", manga.Title)
		fmt.Printf("URL:      %s\n", manga.ShareURL)
		if manga.Author != "" {
			fmt.Printf("Author:   %s\n", manga.Author)
		}
		if manga.Artist != "" {
			fmt.Printf("Artist:   %s\n", manga.Artist)
		}
		fmt.Printf("Status:   %s\n", manga.Status)
		fmt.Printf("Rating:   %s\n", formatRating(manga.Rating))
		fmt.Printf("Content:  %s\n", manga.ContentRating)
		for _, g := range manga.TagGroups {
			names := make([]string, len(g.Tags))
			for i, t := range g.Tags {
				names[i] = t.Title
			}
			fmt.Printf("%s:   %s\n", g.Title, strings.Join(names, ", "))
		}
		if manga.Synopsis != "" {
			fmt.Printf("\n%s\n", manga.Synopsis)
		}

		return nil
	},
}

func formatRating(r *float64) string {
	if r == nil {
		return "n/a"
	}

	return fmt.Sprintf("%.2f", *r)
}

func init() {
	rootCmd.AddCommand(detailsCmd)
}
