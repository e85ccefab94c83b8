package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/balances/internal/model"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Accounts = append(cfg.Accounts, AccountConfig{
		Name: "Amex", Format: "cumulative", File: "files/amex.csv", Color: "#336699",
	})
	cfg.Chart.Title = "Household"

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	require.Len(t, cfg.Accounts, 3)
	assert.Equal(t, "SDCCU Checking", cfg.Accounts[0].Name)
	assert.Equal(t, "direct-balance", cfg.Accounts[0].Format)
	assert.Equal(t, "blue", cfg.Accounts[0].Color)
	assert.Equal(t, "SDCCU Savings", cfg.Accounts[1].Name)
	assert.Equal(t, "green", cfg.Accounts[1].Color)
	assert.Equal(t, "Chase Credit", cfg.Accounts[2].Name)
	assert.Equal(t, "cumulative", cfg.Accounts[2].Format)
	assert.Equal(t, filepath.Join("files", "chase_credit.csv"), cfg.Accounts[2].File)
	assert.Equal(t, 1500, cfg.Chart.Width)
	assert.Equal(t, 1000, cfg.Chart.Height)
	assert.Equal(t, "Total", cfg.Chart.TotalLabel)
	assert.Equal(t, "purple", cfg.Chart.TotalColor)
	assert.NoError(t, cfg.Validate())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("accounts: [\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: SDCCU Checking")
	assert.Contains(t, contents, "format: direct-balance")
	assert.Contains(t, contents, "format: cumulative")
	assert.Contains(t, contents, "total_label: Total")
	assert.Contains(t, contents, "width: 1500")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"no accounts", func(c *Config) { c.Accounts = nil }, "no accounts"},
		{"missing name", func(c *Config) { c.Accounts[0].Name = " " }, "name is required"},
		{"duplicate", func(c *Config) { c.Accounts[1].Name = c.Accounts[0].Name }, "duplicate name"},
		{"bad format", func(c *Config) { c.Accounts[2].Format = "ofx" }, `unknown account format "ofx"`},
		{"missing file", func(c *Config) { c.Accounts[0].File = "" }, "file is required"},
		{"negative size", func(c *Config) { c.Chart.Width = -1 }, "negative size"},
		{"total collides", func(c *Config) { c.Chart.TotalLabel = "Chase Credit" }, "collides"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestModelAccounts(t *testing.T) {
	cfg := Default()
	cfg.Accounts[2].Format = "Cumulative"

	accts := cfg.ModelAccounts()
	require.Len(t, accts, 3)
	assert.Equal(t, model.Account{
		Name:   "Chase Credit",
		Format: model.FormatCumulative,
		File:   filepath.Join("files", "chase_credit.csv"),
		Color:  "red",
	}, accts[2])
	assert.Equal(t, model.FormatDirectBalance, accts[0].Format)
}
