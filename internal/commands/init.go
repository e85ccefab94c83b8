package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/balances/internal/config"
	"github.com/cleared-dev/balances/internal/importer"
)

// palette colors accounts found by --scan, in order.
var palette = []string{"blue", "green", "red", "orange", "teal", "gray", "black"}

func newInitCommand() *cobra.Command {
	var force, scan bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a balances project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, force, scan)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")
	cmd.Flags().BoolVar(&scan, "scan", false, "configure accounts from CSV files already in files/")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, force, scan bool) error {
	filesDir := filepath.Join(dir, config.FilesDir)
	if err := os.MkdirAll(filesDir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", config.FilesDir, err)
	}

	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.Default()
	if scan {
		accts, err := scanAccounts(cmd, filesDir)
		if err != nil {
			return err
		}
		if len(accts) > 0 {
			cfg.Accounts = accts
		}
	}

	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized balances project at %s (%d accounts)\n", dir, len(cfg.Accounts))
	return nil
}

// scanAccounts builds an account entry for every CSV in dir whose header
// matches a known export format.
func scanAccounts(cmd *cobra.Command, dir string) ([]config.AccountConfig, error) {
	files, err := importer.Scan(dir)
	if err != nil {
		return nil, err
	}

	var accts []config.AccountConfig
	for _, f := range files {
		format, err := importer.SniffFile(f.Path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "skipping %s: %v\n", f.Name, err)
			continue
		}
		accts = append(accts, config.AccountConfig{
			Name:   accountName(f.Name),
			Format: string(format),
			File:   filepath.Join(config.FilesDir, f.Name),
			Color:  palette[len(accts)%len(palette)],
		})
	}
	return accts, nil
}

// accountName turns "chase_credit.csv" into "Chase Credit".
func accountName(file string) string {
	base := strings.TrimSuffix(file, filepath.Ext(file))
	words := strings.FieldsFunc(base, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
