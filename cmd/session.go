package cmd

import (
	"time"

	"github.com/corvind/mangasrc/internal/config"
	"github.com/corvind/mangasrc/internal/fetch"
	"github.com/corvind/mangasrc/internal/model"
	"github.com/corvind/mangasrc/internal/source"
	"github.com/corvind/mangasrc/internal/ui"

	// Site adapters register themselves at init.
	_ "github.com/corvind/mangasrc/internal/source/likemanga"
	_ "github.com/corvind/mangasrc/internal/source/themesia"
)

// loadConfig merges the active profile with the persistent flags shared
// by every command.
func loadConfig() (*config.Config, string, error) {
	return config.LoadMerged(config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
		Source:       flagSource,
		Domain:       flagDomain,
		Language:     flagLanguage,
	})
}

// newSession wires the configured adapter to a fetch client. The
// clearance cookie from the config is injected up front so the first
// request already carries it.
func newSession(cfg *config.Config, log *ui.Logger) (*source.Session, *fetch.Client, error) {
	adapter, err := source.Get(cfg.Source)
	if err != nil {
		return nil, nil, err
	}

	client := fetch.NewClient(fetch.Options{
		Timeout:           30 * time.Second,
		UserAgent:         fetch.PickUserAgent(cfg.UserAgent),
		RequestsPerMinute: cfg.RatePerMinute,
		Retries:           cfg.Retries,
		DebugLogger:       log,
	})

	if cfg.Cookie != "" {
		domain := cfg.CookieDomain
		if domain == "" {
			domain = cfg.Domain(cfg.Source)
		}
		if err := client.SetCookie(fetch.Cookie{Value: cfg.Cookie, Domain: domain}); err != nil {
			return nil, nil, err
		}
	}

	extract := source.Context{
		Domain:        cfg.Domain(cfg.Source),
		Language:      cfg.Language,
		DefaultRating: model.ContentRating(cfg.DefaultRating),
	}

	return source.NewSession(adapter, client, extract), client, nil
}
