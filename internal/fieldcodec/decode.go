package fieldcodec

import (
	"github.com/shopspring/decimal"

	"backtest-pdf-report/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Tally classifies the scored fields of a filled manual report; option-type
// selections never count.
//
// Set1 counts the "action_" groups and Set2 the "action2_" groups; values that are not
// recognizably Target or SL (including unselected groups) are ignored. Combined sums
// both sets' counts and recomputes its accuracy from them.
func Tally(fields map[string]string) models.AccuracyResult {
	buckets := make(map[Group]*models.Bucket)
	for _, g := range Groups() {
		if g.Scored() {
			buckets[g] = &models.Bucket{}
		}
	}

	for name, value := range fields {
		g, ok := GroupOf(name)
		if !ok {
			continue
		}
		b, scored := buckets[g]
		if !scored {
			continue
		}
		switch o, _ := Classify(value); o {
		case OptionTarget:
			b.Target++
		case OptionSL:
			b.SL++
		default:
			continue
		}
		b.Total++
	}

	var combined models.Bucket
	for _, b := range buckets {
		b.Accuracy = Percentage(b.Target, b.Total)
		combined.Target += b.Target
		combined.SL += b.SL
		combined.Total += b.Total
	}
	combined.Accuracy = Percentage(combined.Target, combined.Total)

	return models.AccuracyResult{Set1: *buckets[GroupAction], Set2: *buckets[GroupAction2], Combined: combined}
}

// Percentage returns part/total*100 rounded to two decimals, or 0 when total is 0.
func Percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(part)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(total))).
		Round(2).
		InexactFloat64()
}
