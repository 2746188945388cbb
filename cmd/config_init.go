package cmd

import (
	"fmt"
	"os"

	"github.com/corvind/mangasrc/internal/config"
	"github.com/spf13/cobra"
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the Default config and make it active",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.InitDefaultConfig()
		if err == os.ErrExist {
			fmt.Println("Configuration already exists at:")
			fmt.Println("  ", path)
			fmt.Println("It has been made the active config.")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Println("Created config at:")
		fmt.Println("  ", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
