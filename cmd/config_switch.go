package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/corvind/mangasrc/internal/config"
)

var configSwitchCmd = &cobra.Command{
	Use:   "switch [label]",
	Short: "Switch to a different configuration profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label, err := pickProfile(args)
		if err != nil {
			return err
		}

		if err := config.SwitchConfig(label); err != nil {
			return err
		}

		fmt.Println("Switched to:", label)
		return nil
	},
}

// pickProfile resolves the target label, prompting when none was given.
func pickProfile(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	list, err := config.ListConfigs()
	if err != nil {
		return "", err
	}
	if len(list) == 0 {
		return "", fmt.Errorf("no profiles found, run `mangasrc config init` first")
	}

	items := make([]string, 0, len(list))
	for _, c := range list {
		label := c.Label
		if c.Active {
			label += "  (active)"
		}
		items = append(items, label)
	}

	idx, _, err := (&promptui.Select{Label: "Select profile", Items: items}).Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled")
	}

	return list[idx].Label, nil
}

func init() {
	configCmd.AddCommand(configSwitchCmd)
}
