package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Source   string            `yaml:"source"`
	Domains  map[string]string `yaml:"domains"`
	Language string            `yaml:"language"`

	// Applied when genre tags give no signal.
	DefaultRating string `yaml:"default_rating"`

	Output       string `yaml:"output"`
	ImageWorkers int    `yaml:"image_workers"`
	KeepFolders  bool   `yaml:"keep_folders"`
	Debug        bool   `yaml:"debug"`

	RatePerMinute int    `yaml:"rate_per_minute"`
	Retries       int    `yaml:"retries"`
	UserAgent     string `yaml:"user_agent"`

	Cookie       string `yaml:"cookie"`
	CookieDomain string `yaml:"cookie_domain"`
}

type Options struct {
	IgnoreConfig  bool
	Debug         bool
	Source        string
	Domain        string
	Language      string
	DefaultRating string
	Output        string
	ImageWorkers  int
	KeepFolders   bool
	RatePerMinute int
	UserAgent     string
	Cookie        string
	CookieDomain  string
}

func DefaultConfig() *Config {
	return &Config{
		Source: "themesia",
		Domains: map[string]string{
			"themesia":  "https://manhwaindo.net",
			"likemanga": "https://likemanga.io",
		},
		Language:      "en",
		DefaultRating: "EVERYONE",
		Output:        ".",
		ImageWorkers:  5,
		RatePerMinute: 20,
		Retries:       3,
	}
}

// Domain resolves the configured domain for a source key, trailing slash
// stripped so URL building can concatenate safely.
func (c *Config) Domain(source string) string {
	return strings.TrimRight(c.Domains[source], "/")
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// LoadYAML reads a profile as stored, without flag overlays. Commands
// that write the profile back use this so CLI flags never leak into the
// file.
func LoadYAML(path string) (*Config, error) {
	return loadYAML(path)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

// LoadMerged loads the active profile (or defaults) and overlays the CLI
// options on top.
func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := ActiveConfigPath()
	if err == ErrNoConfig || activePath == "" {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)\nRun `mangasrc config init` to create an actual config\n", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, activePath, nil
}

func mergeConfig(c *Config, o Options) {
	if o.Source != "" {
		c.Source = o.Source
	}
	if o.Domain != "" {
		if c.Domains == nil {
			c.Domains = map[string]string{}
		}
		c.Domains[c.Source] = o.Domain
	}
	if o.Language != "" {
		c.Language = o.Language
	}
	if o.DefaultRating != "" {
		c.DefaultRating = o.DefaultRating
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.ImageWorkers != 0 {
		c.ImageWorkers = o.ImageWorkers
	}
	if o.KeepFolders {
		c.KeepFolders = true
	}
	if o.Debug {
		c.Debug = true
	}
	if o.RatePerMinute != 0 {
		c.RatePerMinute = o.RatePerMinute
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.Cookie != "" {
		c.Cookie = o.Cookie
	}
	if o.CookieDomain != "" {
		c.CookieDomain = o.CookieDomain
	}
}

func normalizeDefaults(c *Config) {
	def := DefaultConfig()

	if c.Source == "" {
		c.Source = def.Source
	}
	if c.Domains == nil {
		c.Domains = def.Domains
	} else {
		for k, v := range def.Domains {
			if c.Domains[k] == "" {
				c.Domains[k] = v
			}
		}
	}
	if c.Language == "" {
		c.Language = def.Language
	}
	if c.DefaultRating == "" {
		c.DefaultRating = def.DefaultRating
	}
	if c.Output == "" {
		c.Output = def.Output
	}
	if c.ImageWorkers == 0 {
		c.ImageWorkers = def.ImageWorkers
	}
	if c.RatePerMinute == 0 {
		c.RatePerMinute = def.RatePerMinute
	}
	if c.Retries == 0 {
		c.Retries = def.Retries
	}
}

func (c *Config) Print() {
	fmt.Printf(" -source: %s\n", c.Source)
	fmt.Printf(" -domain: %s\n", c.Domain(c.Source))
	fmt.Printf(" -language: %s\n", c.Language)
	fmt.Printf(" -default_rating: %s\n", c.DefaultRating)
	fmt.Printf(" -output: %s\n", c.Output)
	fmt.Printf(" -image_workers: %d\n", c.ImageWorkers)
	fmt.Printf(" -rate_per_minute: %d\n", c.RatePerMinute)
	if c.KeepFolders {
		fmt.Printf(" -keep_folders: %t\n", c.KeepFolders)
	}
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
	if c.UserAgent != "" {
		fmt.Printf(" -user_agent: %s\n", c.UserAgent)
	}
	if c.Cookie != "" {
		fmt.Printf(" -cookie: (set)\n")
	}
}
