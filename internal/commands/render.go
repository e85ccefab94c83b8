package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/balances/internal/chart"
	"github.com/cleared-dev/balances/internal/pipeline"
)

func newRenderCommand(opts *rootOptions) *cobra.Command {
	var out, format string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the balance chart to a PNG or SVG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger(cmd)
			p, err := opts.loadProject(logger)
			if err != nil {
				return err
			}

			path := p.resolve(p.cfg.Chart.Output)
			if out != "" {
				path = out
			}
			f, err := outputFormat(path, format)
			if err != nil {
				return err
			}

			res, err := p.runner.Run(cmd.Context(), p.accounts, nil)
			if err != nil {
				printFailures(cmd, res)
				return err
			}

			c := chart.New(p.cfg.Chart.Title, p.cfg.Chart.Width, p.cfg.Chart.Height)
			for _, s := range res.Series() {
				c.Append(s)
			}
			var buf bytes.Buffer
			if err := c.Render(&buf, f); err != nil {
				return fmt.Errorf("rendering chart: %w", err)
			}
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("writing chart: %w", err)
			}

			printFailures(cmd, res)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d of %d accounts, %s to %s, %s %s)\n",
				path, len(res.Succeeded()), len(res.Accounts),
				res.Timeline.Min(), res.Timeline.Max(),
				res.Total.Label, res.Total.Last().StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default from config)")
	cmd.Flags().StringVar(&format, "format", "", "png or svg (default from the output extension)")

	return cmd
}

// outputFormat picks the explicit format, else the one named by the file
// extension, else PNG.
func outputFormat(path, explicit string) (chart.Format, error) {
	if explicit != "" {
		return chart.ParseFormat(explicit)
	}
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return chart.SVG, nil
	}
	return chart.PNG, nil
}

// printFailures writes one line per failed account to stderr.
func printFailures(cmd *cobra.Command, res *pipeline.Result) {
	if res == nil {
		return
	}
	for _, a := range res.Accounts {
		if a.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s: %v\n", a.Account.Name, a.Err)
		}
	}
}
