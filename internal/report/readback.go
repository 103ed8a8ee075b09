package report

import (
	"go.uber.org/zap"

	"backtest-pdf-report/internal/fieldcodec"
	"backtest-pdf-report/internal/models"
	"backtest-pdf-report/internal/pdfform"
)

// Readback computes accuracy statistics from a filled manual report.
type Readback struct {
	logger *zap.Logger
	fields pdfform.FieldReader
}

// NewReadback creates a new Readback.
func NewReadback(logger *zap.Logger, fields pdfform.FieldReader) *Readback {
	return &Readback{
		logger: logger.Named("readback"),
		fields: fields,
	}
}

// Accuracy reads the form fields of the document at path and tallies the Target/SL
// selections. It never fails: a document whose fields cannot be extracted yields an
// all-zero result.
func (r *Readback) Accuracy(path string) models.AccuracyResult {
	fields, err := r.fields.Fields(path)
	if err != nil {
		r.logger.Warn("Could not extract form fields, reporting no data", zap.String("file", path), zap.Error(err))
		fields = map[string]string{}
	}

	result := fieldcodec.Tally(fields)
	r.logger.Info("Accuracy computed",
		zap.String("file", path),
		zap.Float64("set1_accuracy", result.Set1.Accuracy),
		zap.Float64("set2_accuracy", result.Set2.Accuracy),
		zap.Float64("combined_accuracy", result.Combined.Accuracy),
		zap.Int("combined_total", result.Combined.Total),
	)
	return result
}
