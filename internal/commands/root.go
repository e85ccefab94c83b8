package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/balances/internal/buildinfo"
	"github.com/cleared-dev/balances/internal/config"
	"github.com/cleared-dev/balances/internal/model"
	"github.com/cleared-dev/balances/internal/pipeline"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:     "balances",
		Short:   "Chart account balances from bank CSV exports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.FileName, "config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newRenderCommand(opts))
	rootCmd.AddCommand(newExportCommand(opts))
	rootCmd.AddCommand(newServeCommand(opts))

	return rootCmd
}

func (o *rootOptions) logger(cmd *cobra.Command) *log.Logger {
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "balances",
	})
	if o.verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// project is a loaded config plus a runner rooted at its directory.
type project struct {
	dir      string
	cfg      *config.Config
	accounts []model.Account
	runner   *pipeline.Runner
}

func (o *rootOptions) loadProject(logger *log.Logger) (*project, error) {
	path, err := filepath.Abs(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w (run 'balances init' first)", err)
		}
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	runner := pipeline.NewRunner(pipeline.FileLoader{Root: dir}, logger)
	if cfg.Chart.TotalLabel != "" {
		runner.TotalLabel = cfg.Chart.TotalLabel
	}
	if cfg.Chart.TotalColor != "" {
		runner.TotalColor = cfg.Chart.TotalColor
	}
	return &project{
		dir:      dir,
		cfg:      cfg,
		accounts: cfg.ModelAccounts(),
		runner:   runner,
	}, nil
}

// resolve makes p relative to the project directory unless it is absolute.
func (p *project) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.dir, path)
}
