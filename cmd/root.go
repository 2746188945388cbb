package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagIgnoreConfig bool
	flagDebug        bool
	flagSource       string
	flagDomain       string
	flagLanguage     string
)

var rootCmd = &cobra.Command{
	Use:   "mangasrc",
	Short: "Extract manga metadata from template-based reading sites",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagIgnoreConfig, "ignore-config", false, "ignore config and use only CLI flags")
	rootCmd.PersistentFlags().StringVar(&flagSource, "source", "", "site family adapter (themesia, likemanga)")
	rootCmd.PersistentFlags().StringVar(&flagDomain, "domain", "", "override the source's base domain")
	rootCmd.PersistentFlags().StringVar(&flagLanguage, "language", "", "chapter language code")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
