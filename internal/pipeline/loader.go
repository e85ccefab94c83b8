package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/cleared-dev/balances/internal/model"
)

// Loader opens the export for an account.
type Loader interface {
	Open(ctx context.Context, acct model.Account) (io.ReadCloser, error)
}

// FileLoader opens account files, resolving relative paths against Root.
type FileLoader struct {
	Root string
}

// Path returns the resolved file path for acct.
func (l FileLoader) Path(acct model.Account) string {
	if filepath.IsAbs(acct.File) || l.Root == "" {
		return acct.File
	}
	return filepath.Join(l.Root, acct.File)
}

// Open opens the account file for reading.
func (l FileLoader) Open(ctx context.Context, acct model.Account) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Open(l.Path(acct))
}
