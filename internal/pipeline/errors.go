package pipeline

import "fmt"

// FileReadError reports an account export that could not be opened or read.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// AccountError ties a pipeline failure to the account it aborted.
type AccountError struct {
	Account string
	Err     error
}

func (e *AccountError) Error() string {
	return fmt.Sprintf("account %q: %v", e.Account, e.Err)
}

func (e *AccountError) Unwrap() error { return e.Err }
