package cmd

import (
	"fmt"

	"github.com/corvind/mangasrc/internal/config"
	"github.com/corvind/mangasrc/internal/fetch"
	"github.com/spf13/cobra"
)

var (
	flagCookieDomain string
	flagCookieClear  bool
)

var cookieCmd = &cobra.Command{
	Use:   "cookie [value]",
	Short: "Store a clearance cookie in the active config",
	Long: `Stores a cf_clearance cookie value in the active config so every
request carries it. Grab the value from your browser after passing the
site's challenge page.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ActiveConfigPath()
		if err == config.ErrNoConfig {
			return fmt.Errorf("no active config; run `mangasrc config init` first")
		}
		if err != nil {
			return err
		}

		// Raw profile for writing back; merged view only to resolve the
		// probe domain, so CLI flags never leak into the file.
		cfg, err := config.LoadYAML(path)
		if err != nil {
			return err
		}
		merged, _, err := loadConfig()
		if err != nil {
			return err
		}

		if flagCookieClear {
			cfg.Cookie = ""
			cfg.CookieDomain = ""
			if err := config.SaveYAML(cfg, path); err != nil {
				return err
			}
			fmt.Println("Cookie cleared.")
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("cookie value required (or --clear)")
		}

		domain := flagCookieDomain
		if domain == "" {
			domain = merged.Domain(merged.Source)
		}

		// Same validation the fetch client applies at injection time.
		probe := fetch.NewClient(fetch.Options{})
		if err := probe.SetCookie(fetch.Cookie{Value: args[0], Domain: domain}); err != nil {
			return err
		}

		cfg.Cookie = args[0]
		cfg.CookieDomain = flagCookieDomain
		if err := config.SaveYAML(cfg, path); err != nil {
			return err
		}

		fmt.Printf("Cookie stored in %s\n", path)
		return nil
	},
}

func init() {
	cookieCmd.Flags().StringVar(&flagCookieDomain, "cookie-domain", "", "domain the cookie applies to (defaults to the source domain)")
	cookieCmd.Flags().BoolVar(&flagCookieClear, "clear", false, "remove the stored cookie")
	rootCmd.AddCommand(cookieCmd)
}
