package source

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"backtest-pdf-report/internal/table"
)

// loadSQLite reads every row of one table of a SQLite backtest journal. The location
// is "path/to.db" optionally followed by "?table=name"; the configured table is the
// default. The database is only read.
func (l *Loader) loadSQLite(ctx context.Context, location string) (table.Table, error) {
	path, rawQuery, _ := strings.Cut(location, "?")
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return table.Table{}, fmt.Errorf("invalid sqlite source %q: %w", location, err)
	}
	name := query.Get("table")
	if name == "" {
		name = l.cfg.SQLiteTable
	}

	// Opening a missing file would create an empty database.
	if _, err := os.Stat(path); err != nil {
		return table.Table{}, fmt.Errorf("failed to open sqlite source: %w", err)
	}

	db, err := openSQLite(path)
	if err != nil {
		return table.Table{}, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return table.Table{}, fmt.Errorf("failed to access sqlite handle: %w", err)
	}
	defer sqlDB.Close()

	return readTable(ctx, db, name)
}

func openSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// readTable loads all rows of name, columns in schema order.
func readTable(ctx context.Context, db *gorm.DB, name string) (table.Table, error) {
	db = db.WithContext(ctx)
	if !db.Migrator().HasTable(name) {
		return table.Table{}, fmt.Errorf("table %q not found", name)
	}

	columnTypes, err := db.Migrator().ColumnTypes(name)
	if err != nil {
		return table.Table{}, fmt.Errorf("failed to read columns of %q: %w", name, err)
	}
	columns := make([]string, len(columnTypes))
	for i, ct := range columnTypes {
		columns[i] = ct.Name()
	}

	var rows []map[string]interface{}
	if err := db.Table(name).Find(&rows).Error; err != nil {
		return table.Table{}, fmt.Errorf("failed to read rows of %q: %w", name, err)
	}

	t := table.Table{Columns: columns}
	for _, r := range rows {
		row := make(map[string]string, len(columns))
		for _, col := range columns {
			row[col] = sqlCellString(r[col])
		}
		t.AddRow(row, nil)
	}
	return t, nil
}

func sqlCellString(v interface{}) string {
	switch x := v.(type) {
	case time.Time:
		return x.Format("2006-01-02 15:04:05")
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	default:
		return cellString(x)
	}
}
