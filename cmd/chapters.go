package cmd

import (
	"context"
	"fmt"

	"github.com/corvind/mangasrc/internal/model"
	"github.com/corvind/mangasrc/internal/ui"
	"github.com/spf13/cobra"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters <manga-id>",
	Short: "List the chapters of a manga, newest first",
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

		ctx := context.Background()
		id := sess.Adapter().CleanID(args[0])

		list, err := sess.ChapterList(ctx, model.Manga{ID: id})
		if err != nil {
			return err
		}

		fmt.Printf("Found %d chapters.\n\n", len(list))
		for i, ch := range list {
			fmt.Printf("%3d) [%3d] Ch.%-7.7g %s  (%s)\n    %s\n",
				i+1, ch.SortingIndex, ch.Number, ch.Title,
				ch.PublishDate.Format("2006-01-02"), ch.ChapterID)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(chaptersCmd)
}
