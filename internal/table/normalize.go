package table

import "strings"

// Schema is the fixed column set a report requires.
type Schema struct {
	Name     string
	Required []string
}

var (
	// ManualSchema is the column set of the manual (interactive) report.
	ManualSchema = Schema{
		Name:     "manual",
		Required: []string{"Date", "Area", "Peak", "Trend", "AvgTrend", "Rally", "Overview", "Decision", "SL", "TG"},
	}

	// AutomatedSchema is the column set of the automated algo report.
	AutomatedSchema = Schema{
		Name:     "automated",
		Required: []string{"Date", "EntryTime", "ExitTime", "Direction", "EntryPrice", "SL", "Target", "RiskReward", "Result"},
	}
)

// aliases maps a canonical column to the lower-cased spellings that are renamed onto it,
// in priority order. The lower-cased canonical name itself is always tried first.
var aliases = map[string][]string{
	"AvgTrend":   {"avg_trend", "avgtrend", "avg_trand", "avg trend"},
	"EntryTime":  {"entry time", "entry_time", "entrytime"},
	"ExitTime":   {"exit time", "exit_time", "exittime"},
	"EntryPrice": {"entry price", "entry_price", "entryprice"},
	"RiskReward": {"risk, reward", "risk_reward", "riskreward", "risk/reward", "rr"},
}

// Normalize returns a copy of t that contains every column of s.
//
// Columns are matched case-insensitively and through the alias table; a matching
// column is renamed to its canonical name unless that name already exists. Required
// columns still absent afterwards are added with "" in every row. No column is dropped
// and untouched cells keep their exact values.
func Normalize(t Table, s Schema) Table {
	out := t.Clone()

	lookup := make(map[string]string, len(out.Columns))
	for _, col := range out.Columns {
		key := lookupKey(col)
		if _, seen := lookup[key]; !seen {
			lookup[key] = col
		}
	}

	for _, required := range s.Required {
		if out.Has(required) {
			continue
		}
		candidates := append([]string{strings.ToLower(required)}, aliases[required]...)
		for _, candidate := range candidates {
			existing, ok := lookup[candidate]
			if !ok || out.Has(required) {
				continue
			}
			out.rename(existing, required)
			delete(lookup, candidate)
		}
	}

	for _, required := range s.Required {
		if !out.Has(required) {
			out.addColumn(required, "")
		}
	}
	return out
}

func lookupKey(col string) string {
	return strings.ToLower(strings.TrimSpace(col))
}
