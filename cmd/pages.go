package cmd

import (
	"context"
	"fmt"

	"github.com/corvind/mangasrc/internal/model"
	"github.com/corvind/mangasrc/internal/ui"
	"github.com/spf13/cobra"
)

var pagesCmd = &cobra.Command{
	Use:   "pages <chapter-path>",
	Short: "Print the page image URLs of one chapter",
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

		urls, err := sess.ChapterPages(context.Background(), model.Chapter{ChapterID: args[0]})
		if err != nil {
			return err
		}
		if len(urls) == 0 {
			return fmt.Errorf("no pages found for %s", args[0])
		}

		for i, u := range urls {
			fmt.Printf("%3d  %s\n", i+1, u)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(pagesCmd)
}
