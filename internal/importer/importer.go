package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cleared-dev/balances/internal/model"
)

// Normalizer converts parsed export rows into an account Ledger.
type Normalizer interface {
	Normalize(rows []model.Row) (model.Ledger, error)
	Format() model.Format
}

// Registry holds normalizers by format.
type Registry struct {
	normalizers map[model.Format]Normalizer
}

// FileInfo describes a CSV file found by Scan.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty normalizer registry.
func NewRegistry() *Registry {
	return &Registry{normalizers: make(map[model.Format]Normalizer)}
}

// Register adds a normalizer. Panics on duplicate format.
func (r *Registry) Register(n Normalizer) {
	key := model.Format(strings.ToLower(string(n.Format())))
	if _, ok := r.normalizers[key]; ok {
		panic("duplicate normalizer format: " + string(key))
	}
	r.normalizers[key] = n
}

// Get returns the normalizer for format, or nil.
func (r *Registry) Get(format model.Format) Normalizer {
	return r.normalizers[model.Format(strings.ToLower(string(format)))]
}

// DefaultRegistry returns a registry with both built-in formats.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewDirectBalanceParser())
	r.Register(NewCumulativeParser())
	return r
}

// Scan returns the CSV files directly inside dir, sorted by name.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}
