package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"backtest-pdf-report/internal/models"
)

// Summary is the headline of the automated report.
type Summary struct {
	Trades   int
	Wins     int
	Losses   int
	Accuracy decimal.Decimal
}

// Summarize counts exact (case-insensitive) "win" and "loss" results. Accuracy is
// wins over all rows, so rows with any other result lower it.
func Summarize(records []models.AutomatedRecord) Summary {
	s := Summary{Trades: len(records), Accuracy: decimal.Zero}
	for _, r := range records {
		switch strings.ToLower(r.Result) {
		case "win":
			s.Wins++
		case "loss":
			s.Losses++
		}
	}
	if s.Trades > 0 {
		s.Accuracy = decimal.NewFromInt(int64(s.Wins)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(s.Trades)))
	}
	return s
}

// AccuracyText renders the accuracy with two decimals, e.g. "66.67".
func (s Summary) AccuracyText() string {
	return s.Accuracy.StringFixed(2)
}

func (s Summary) String() string {
	return fmt.Sprintf("Accuracy: %s%%   Wins: %d   Losses: %d", s.AccuracyText(), s.Wins, s.Losses)
}

type outcome int

const (
	outcomeNone outcome = iota
	outcomeWin
	outcomeLoss
)

// classifyResult decides the row colour of an automated trade. Unlike Summarize it
// matches substrings, so "Profit", "Win (partial)" and "Stop loss" are coloured too.
func classifyResult(result string) outcome {
	r := strings.ToLower(result)
	switch {
	case strings.Contains(r, "win"), strings.Contains(r, "profit"):
		return outcomeWin
	case strings.Contains(r, "loss"):
		return outcomeLoss
	default:
		return outcomeNone
	}
}

func automatedRowStyle(result string) cellStyle {
	switch classifyResult(result) {
	case outcomeWin:
		return cellStyle{fill: &winGreen, text: whitesmoke, bold: true}
	case outcomeLoss:
		return cellStyle{fill: &lossRed, text: whitesmoke, bold: true}
	default:
		return cellStyle{text: black, bold: true}
	}
}
