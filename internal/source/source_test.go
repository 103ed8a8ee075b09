package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"backtest-pdf-report/internal/config"
	"backtest-pdf-report/internal/table"
)

func newTestLoader() *Loader {
	l := NewLoader(config.Source{HTTPTimeoutSeconds: 5, HTTPRetries: 3, SQLiteTable: "trades"}, zap.NewNop())
	l.backoff = time.Millisecond
	return l
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseCSV(t *testing.T) {
	raw := "\ufeffDate,Overview,avg_trend\n2024-XX-01,Long 2,up\n2024-XX-02,\"Short, 3\",\n"

	tbl, err := parseCSV([]byte(raw))

	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Overview", "avg_trend"}, tbl.Columns)
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, "Short, 3", tbl.Get(1, "Overview"))
	assert.Equal(t, "", tbl.Get(1, "avg_trend"))
}

func TestParseCSV_Empty(t *testing.T) {
	tbl, err := parseCSV(nil)

	require.NoError(t, err)
	assert.Empty(t, tbl.Columns)
}

func TestParseJSON(t *testing.T) {
	raw := `[
		{"Date": "2024-XX-01", "Result": "Win", "Risk": 10, "Reward": 20.5},
		{"Date": "2024-XX-02", "Result": null, "Note": true}
	]`

	tbl, err := parseJSON([]byte(raw))

	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Result", "Reward", "Risk", "Note"}, tbl.Columns)
	assert.Equal(t, "10", tbl.Get(0, "Risk"))
	assert.Equal(t, "20.5", tbl.Get(0, "Reward"))
	assert.Equal(t, "", tbl.Get(1, "Result"))
	assert.Equal(t, "true", tbl.Get(1, "Note"))
	assert.Equal(t, "", tbl.Get(1, "Risk"))
}

func TestParseJSON_Invalid(t *testing.T) {
	_, err := parseJSON([]byte(`{"Date": "not an array"}`))
	assert.Error(t, err)
}

func TestLoader_Load_Files(t *testing.T) {
	l := newTestLoader()
	ctx := context.Background()

	t.Run("CSV", func(t *testing.T) {
		path := writeTemp(t, "manual.CSV", "Date,Overview\n2024-XX-01,Long 3\n")

		tbl, err := l.Load(ctx, path)

		require.NoError(t, err)
		assert.Equal(t, "Long 3", tbl.Get(0, "Overview"))
	})

	t.Run("JSON", func(t *testing.T) {
		path := writeTemp(t, "auto.json", `[{"Date":"2024-XX-01","Result":"Loss"}]`)

		tbl, err := l.Load(ctx, path)

		require.NoError(t, err)
		assert.Equal(t, "Loss", tbl.Get(0, "Result"))
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := l.Load(ctx, filepath.Join(t.TempDir(), "absent.csv"))
		assert.Error(t, err)
	})

	t.Run("Unsupported extension", func(t *testing.T) {
		_, err := l.Load(ctx, "journal.xlsx")
		assert.ErrorIs(t, err, ErrUnsupportedSource)
	})

	t.Run("Empty input", func(t *testing.T) {
		path := writeTemp(t, "empty.json", `[]`)

		_, err := l.Load(ctx, path)
		assert.ErrorIs(t, err, ErrEmptyInput)
	})
}

func TestLoader_Load_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	db, err := openSQLite(path)
	require.NoError(t, err)
	require.NoError(t, db.Exec(`CREATE TABLE trades (Date TEXT, Overview TEXT, avg_trend TEXT, Risk INTEGER)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO trades VALUES ('2024-XX-01', 'Long 2', 'up', 10), ('2024-XX-02', NULL, 'down', NULL)`).Error)
	require.NoError(t, db.Exec(`CREATE TABLE automated (Date TEXT, Result TEXT)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO automated VALUES ('2024-XX-03', 'Win')`).Error)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	l := newTestLoader()
	ctx := context.Background()

	t.Run("Configured table", func(t *testing.T) {
		tbl, err := l.Load(ctx, "sqlite://"+path)

		require.NoError(t, err)
		assert.Equal(t, []string{"Date", "Overview", "avg_trend", "Risk"}, tbl.Columns)
		assert.Equal(t, 2, tbl.Len())
		assert.Equal(t, "10", tbl.Get(0, "Risk"))
		assert.Equal(t, "", tbl.Get(1, "Overview"))
		assert.Equal(t, "", tbl.Get(1, "Risk"))

		records := table.ManualRecords(tbl)
		assert.Equal(t, "up", records[0].AvgTrend)
	})

	t.Run("Table from query", func(t *testing.T) {
		tbl, err := l.Load(ctx, "sqlite://"+path+"?table=automated")

		require.NoError(t, err)
		assert.Equal(t, "Win", tbl.Get(0, "Result"))
	})

	t.Run("Unknown table", func(t *testing.T) {
		_, err := l.Load(ctx, "sqlite://"+path+"?table=nope")
		assert.Error(t, err)
	})

	t.Run("Missing database is not created", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "absent.db")

		_, err := l.Load(ctx, "sqlite://"+missing)

		assert.Error(t, err)
		_, statErr := os.Stat(missing)
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestLoader_Load_HTTP(t *testing.T) {
	ctx := context.Background()

	t.Run("CSV body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/journal", r.URL.Path)
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write([]byte("Date,Result\n2024-XX-01,Win\n"))
		}))
		defer server.Close()

		tbl, err := newTestLoader().Load(ctx, server.URL+"/journal")

		require.NoError(t, err)
		assert.Equal(t, "Win", tbl.Get(0, "Result"))
	})

	t.Run("JSON by content type", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"Date":"2024-XX-01","Result":"Loss"}]`))
		}))
		defer server.Close()

		tbl, err := newTestLoader().Load(ctx, server.URL+"/export")

		require.NoError(t, err)
		assert.Equal(t, "Loss", tbl.Get(0, "Result"))
	})

	t.Run("Retries server errors", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte("Date\n2024-XX-01\n"))
		}))
		defer server.Close()

		tbl, err := newTestLoader().Load(ctx, server.URL+"/journal.csv")

		require.NoError(t, err)
		assert.Equal(t, 1, tbl.Len())
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("Gives up after configured attempts", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := newTestLoader().Load(ctx, server.URL)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "request failed after 3 attempts")
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("Client errors are not retried", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := newTestLoader().Load(ctx, server.URL)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})
}

func TestIsJSON(t *testing.T) {
	assert.True(t, isJSON("application/json; charset=utf-8", "http://x/data"))
	assert.True(t, isJSON("", "https://x/export/trades.JSON?token=1"))
	assert.False(t, isJSON("text/csv", "http://x/trades.csv"))
	assert.False(t, isJSON("", "http://x/trades"))
}

func TestDemoFixtures(t *testing.T) {
	manual := table.ManualRecords(DemoManual())
	require.Len(t, manual, 2)
	assert.Equal(t, "Long 2", manual[0].Overview)
	assert.Equal(t, "Short 2", manual[1].Overview)

	automated := table.AutomatedRecords(DemoAutomated())
	require.Len(t, automated, 2)
	assert.Equal(t, "09:35", automated[0].EntryTime)
	assert.Equal(t, "Win", automated[1].Result)
}
