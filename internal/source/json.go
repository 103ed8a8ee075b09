package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"backtest-pdf-report/internal/table"
)

// parseJSON reads an array of flat objects. Columns appear in first-seen order, keys of
// one object sorted; numbers keep their literal text.
func parseJSON(raw []byte) (table.Table, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var objects []map[string]any
	if err := dec.Decode(&objects); err != nil {
		return table.Table{}, fmt.Errorf("invalid json: %w", err)
	}

	var t table.Table
	for _, obj := range objects {
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		row := make(map[string]string, len(obj))
		for _, k := range keys {
			row[k] = cellString(obj[k])
		}
		t.AddRow(row, keys)
	}
	return t, nil
}

// cellString renders a decoded value as table text; nil becomes "".
func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case []byte:
		return string(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	}
}
