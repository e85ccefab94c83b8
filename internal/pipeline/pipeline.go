// Package pipeline runs every account export through read, parse and
// normalize concurrently, then aligns the results and builds the Total.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/sourcegraph/conc"

	"github.com/cleared-dev/balances/internal/balance"
	"github.com/cleared-dev/balances/internal/importer"
	"github.com/cleared-dev/balances/internal/model"
	"github.com/cleared-dev/balances/internal/timeline"
)

// ErrNoAccounts is returned by Run when there is nothing to process.
var ErrNoAccounts = errors.New("no accounts configured")

// Observer is notified as series become available. Calls are serialized.
// SeriesReady fires once per successful account, in completion order.
// TotalReady fires exactly once per Run, after every account has reported,
// and only if at least one account succeeded.
type Observer interface {
	SeriesReady(s model.Series)
	TotalReady(s model.Series)
}

// SeriesFunc adapts a function to an Observer receiving every series.
type SeriesFunc func(s model.Series)

func (f SeriesFunc) SeriesReady(s model.Series) { f(s) }
func (f SeriesFunc) TotalReady(s model.Series) { f(s) }

// AccountResult is the outcome of one account pipeline.
type AccountResult struct {
	Account model.Account
	Ledger  model.Ledger
	Series  model.Series
	Err     error
}

// Result is the outcome of a Run. Accounts keep the input order.
type Result struct {
	Accounts []AccountResult
	Timeline timeline.Timeline
	Total    model.Series
}

// Succeeded returns the accounts that normalized without error.
func (r *Result) Succeeded() []AccountResult {
	var out []AccountResult
	for _, a := range r.Accounts {
		if a.Err == nil {
			out = append(out, a)
		}
	}
	return out
}

// Err joins the failures of every account, or returns nil.
func (r *Result) Err() error {
	var errs []error
	for _, a := range r.Accounts {
		if a.Err != nil {
			errs = append(errs, a.Err)
		}
	}
	return errors.Join(errs...)
}

// Series returns each successful account's series in input order followed
// by the Total.
func (r *Result) Series() []model.Series {
	var out []model.Series
	for _, a := range r.Succeeded() {
		out = append(out, a.Series)
	}
	if r.Total.Label != "" {
		out = append(out, r.Total)
	}
	return out
}

// Daily returns one dense series per successful account, one point per
// timeline day, followed by the Total.
func (r *Result) Daily() []model.Series {
	var out []model.Series
	for _, a := range r.Succeeded() {
		out = append(out, balance.Dense(a.Account.Name, a.Account.Color, a.Ledger.Balances, r.Timeline))
	}
	if r.Total.Label != "" {
		out = append(out, r.Total)
	}
	return out
}

// Runner wires loading, parsing and normalizing for a set of accounts.
type Runner struct {
	Loader     Loader
	Registry   *importer.Registry
	Logger     *log.Logger
	TotalLabel string
	TotalColor string
}

// NewRunner returns a Runner with the default registry and Total styling.
func NewRunner(loader Loader, logger *log.Logger) *Runner {
	return &Runner{
		Loader:     loader,
		Registry:   importer.DefaultRegistry(),
		Logger:     logger,
		TotalLabel: balance.DefaultTotalLabel,
		TotalColor: balance.DefaultTotalColor,
	}
}

// Run processes every account concurrently. Failed accounts are logged and
// recorded in the Result; the Total covers the accounts that succeeded.
// Run returns an error only when no account succeeded.
func (r *Runner) Run(ctx context.Context, accounts []model.Account, obs Observer) (*Result, error) {
	if len(accounts) == 0 {
		return nil, ErrNoAccounts
	}
	logger := r.logger()

	res := &Result{Accounts: make([]AccountResult, len(accounts))}
	var mu sync.Mutex
	var wg conc.WaitGroup
	for i, acct := range accounts {
		wg.Go(func() {
			ar := r.runAccount(ctx, acct)

			mu.Lock()
			defer mu.Unlock()
			res.Accounts[i] = ar
			if ar.Err != nil {
				logger.Error("account failed", "account", acct.Name, "err", ar.Err)
				return
			}
			res.Timeline.Widen(ar.Ledger.Span)
			logger.Info("account ready", "account", acct.Name, "points", len(ar.Series.Points))
			if obs != nil {
				obs.SeriesReady(ar.Series)
			}
		})
	}
	wg.Wait()

	ok := res.Succeeded()
	if len(ok) == 0 {
		return res, fmt.Errorf("every account failed: %w", res.Err())
	}

	books := make([]model.Balances, len(ok))
	for i, a := range ok {
		books[i] = a.Ledger.Balances
	}
	res.Total = balance.Total(res.Timeline, r.totalLabel(), r.TotalColor, books...)
	logger.Info("total ready", "accounts", len(ok), "days", res.Timeline.Len(),
		"from", res.Timeline.Min(), "to", res.Timeline.Max())
	if obs != nil {
		obs.TotalReady(res.Total)
	}
	return res, nil
}

func (r *Runner) runAccount(ctx context.Context, acct model.Account) AccountResult {
	ar := AccountResult{Account: acct}
	ledger, err := r.normalize(ctx, acct)
	if err != nil {
		ar.Err = &AccountError{Account: acct.Name, Err: err}
		return ar
	}
	ar.Ledger = ledger
	ar.Series = model.Series{Label: acct.Name, Color: acct.Color, Points: ledger.Points}
	return ar
}

func (r *Runner) normalize(ctx context.Context, acct model.Account) (model.Ledger, error) {
	registry := r.Registry
	if registry == nil {
		registry = importer.DefaultRegistry()
	}
	n := registry.Get(acct.Format)
	if n == nil {
		return model.Ledger{}, fmt.Errorf("no normalizer for format %q", acct.Format)
	}

	rc, err := r.Loader.Open(ctx, acct)
	if err != nil {
		return model.Ledger{}, &FileReadError{Path: acct.File, Err: err}
	}
	defer rc.Close()

	rows, err := importer.ReadRows(rc)
	if err != nil {
		return model.Ledger{}, err
	}
	r.logger().Debug("parsed export", "account", acct.Name, "rows", len(rows))
	return n.Normalize(rows)
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.Default()
	}
	return r.Logger
}

func (r *Runner) totalLabel() string {
	if r.TotalLabel == "" {
		return balance.DefaultTotalLabel
	}
	return r.TotalLabel
}
