package cmd

import (
	"context"
	"fmt"

	"github.com/corvind/mangasrc/internal/source"
	"github.com/corvind/mangasrc/internal/ui"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var discoverCmd = &cobra.Command{
	Use:   "discover [section-id]",
	Short: "Show one of the site's landing-page sections",
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

		section, err := pickSection(sess.Adapter(), args)
		if err != nil {
			return err
		}

		items, err := sess.Discover(context.Background(), section)
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\n\n", section.Title, section.Kind)
		for i, it := range items {
			fmt.Printf("%3d) %s  [%s]", i+1, it.Title, it.MangaID)
			if it.Subtitle != "" {
				fmt.Printf("  %s", it.Subtitle)
			}
			fmt.Println()
		}

		return nil
	},
}

func pickSection(adapter source.Adapter, args []string) (source.Section, error) {
	sections := adapter.Sections()

	if len(args) == 1 {
		for _, s := range sections {
			if s.ID == args[0] {
				return s, nil
			}
		}

		return source.Section{}, fmt.Errorf("unknown section %q for %s", args[0], adapter.Key())
	}

	items := make([]string, len(sections))
	for i, s := range sections {
		items[i] = s.Title
	}

	prompt := promptui.Select{
		Label: "Select section",
		Items: items,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return source.Section{}, fmt.Errorf("selection cancelled")
	}

	return sections[idx], nil
}

func init() {
	rootCmd.AddCommand(discoverCmd)
}
