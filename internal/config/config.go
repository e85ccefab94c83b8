package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/balances/internal/model"
)

// FileName is the default config file name.
const FileName = "balances.yaml"

// FilesDir is the default directory for account exports, relative to the
// config file.
const FilesDir = "files"

// Config represents the top-level balances.yaml configuration.
type Config struct {
	Accounts []AccountConfig `yaml:"accounts"`
	Chart    ChartConfig     `yaml:"chart"`
}

// AccountConfig names one account export and how to read it.
type AccountConfig struct {
	Name   string `yaml:"name"`
	Format string `yaml:"format"` // "direct-balance" or "cumulative"
	File   string `yaml:"file"`   // relative to the config file
	Color  string `yaml:"color,omitempty"`
}

// ChartConfig controls the rendered chart and the Total series.
type ChartConfig struct {
	Title      string `yaml:"title,omitempty"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Output     string `yaml:"output"`
	TotalLabel string `yaml:"total_label"`
	TotalColor string `yaml:"total_color"`
}

// Load reads a balances.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config for the three stock exports.
func Default() *Config {
	return &Config{
		Accounts: []AccountConfig{
			{Name: "SDCCU Checking", Format: string(model.FormatDirectBalance), File: filepath.Join(FilesDir, "sdccu_checking.csv"), Color: "blue"},
			{Name: "SDCCU Savings", Format: string(model.FormatDirectBalance), File: filepath.Join(FilesDir, "sdccu_savings.csv"), Color: "green"},
			{Name: "Chase Credit", Format: string(model.FormatCumulative), File: filepath.Join(FilesDir, "chase_credit.csv"), Color: "red"},
		},
		Chart: ChartConfig{
			Title:      "Account Balances",
			Width:      1500,
			Height:     1000,
			Output:     "balances.png",
			TotalLabel: "Total",
			TotalColor: "purple",
		},
	}
}

// Validate checks that every account is usable and names are unique.
func (c *Config) Validate() error {
	if len(c.Accounts) == 0 {
		return errors.New("no accounts configured")
	}
	var errs []error
	seen := make(map[string]bool, len(c.Accounts))
	for i, a := range c.Accounts {
		name := strings.TrimSpace(a.Name)
		switch {
		case name == "":
			errs = append(errs, fmt.Errorf("account %d: name is required", i+1))
		case seen[name]:
			errs = append(errs, fmt.Errorf("account %q: duplicate name", name))
		}
		seen[name] = true
		if _, err := model.ParseFormat(a.Format); err != nil {
			errs = append(errs, fmt.Errorf("account %q: %w", name, err))
		}
		if strings.TrimSpace(a.File) == "" {
			errs = append(errs, fmt.Errorf("account %q: file is required", name))
		}
	}
	if c.Chart.Width < 0 || c.Chart.Height < 0 {
		errs = append(errs, fmt.Errorf("chart: negative size %dx%d", c.Chart.Width, c.Chart.Height))
	}
	if name := strings.TrimSpace(c.Chart.TotalLabel); name != "" && seen[name] {
		errs = append(errs, fmt.Errorf("chart: total label %q collides with an account name", name))
	}
	return errors.Join(errs...)
}

// ModelAccounts converts the configured accounts. File paths stay relative
// to the config file. Call Validate first.
func (c *Config) ModelAccounts() []model.Account {
	out := make([]model.Account, 0, len(c.Accounts))
	for _, a := range c.Accounts {
		f, _ := model.ParseFormat(a.Format)
		out = append(out, model.Account{
			Name:   strings.TrimSpace(a.Name),
			Format: f,
			File:   a.File,
			Color:  a.Color,
		})
	}
	return out
}
