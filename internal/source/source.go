// Package source loads input tables from files, SQLite journals and HTTP endpoints.
package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"backtest-pdf-report/internal/config"
	"backtest-pdf-report/internal/table"
)

var (
	// ErrUnsupportedSource is returned for locations no loader understands.
	ErrUnsupportedSource = errors.New("unsupported source")
	// ErrEmptyInput is returned when a source yields no columns at all.
	ErrEmptyInput = errors.New("input has no columns")
)

const sqliteScheme = "sqlite://"

// Loader resolves a source location to a table.
type Loader struct {
	logger  *zap.Logger
	cfg     config.Source
	client  *resty.Client
	backoff time.Duration
}

// NewLoader creates a new Loader.
func NewLoader(cfg config.Source, logger *zap.Logger) *Loader {
	timeout := time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Loader{
		logger:  logger.Named("source"),
		cfg:     cfg,
		client:  resty.New().SetTimeout(timeout),
		backoff: time.Second,
	}
}

// Load reads the table at src:
//   - "http://..." or "https://..."  CSV or JSON fetched over HTTP
//   - "sqlite://file.db[?table=t]"   rows of a SQLite table
//   - "*.csv" / "*.json"             local files
func (l *Loader) Load(ctx context.Context, src string) (table.Table, error) {
	var (
		t   table.Table
		err error
	)

	switch {
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		t, err = l.loadHTTP(ctx, src)
	case strings.HasPrefix(src, sqliteScheme):
		t, err = l.loadSQLite(ctx, strings.TrimPrefix(src, sqliteScheme))
	case strings.EqualFold(filepath.Ext(src), ".csv"):
		t, err = loadFile(src, parseCSV)
	case strings.EqualFold(filepath.Ext(src), ".json"):
		t, err = loadFile(src, parseJSON)
	default:
		return table.Table{}, fmt.Errorf("%w: %s", ErrUnsupportedSource, src)
	}
	if err != nil {
		return table.Table{}, err
	}
	if len(t.Columns) == 0 {
		return table.Table{}, fmt.Errorf("%w: %s", ErrEmptyInput, src)
	}

	l.logger.Info("Input loaded", zap.String("source", src), zap.Int("columns", len(t.Columns)), zap.Int("rows", t.Len()))
	return t, nil
}

func loadFile(path string, parse func([]byte) (table.Table, error)) (table.Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return table.Table{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	t, err := parse(raw)
	if err != nil {
		return table.Table{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return t, nil
}
