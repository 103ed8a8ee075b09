package pdfform

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"
)

// FieldReader extracts the name->value mapping of a document's form fields.
type FieldReader interface {
	Fields(path string) (map[string]string, error)
}

// Reader is the pdfcpu-backed FieldReader.
type Reader struct {
	logger *zap.Logger
	conf   *model.Configuration
}

// ensure Reader implements the interface
var _ FieldReader = (*Reader)(nil)

// NewReader creates a new Reader.
func NewReader(logger *zap.Logger) *Reader {
	return &Reader{
		logger: logger.Named("pdfform-reader"),
		conf:   model.NewDefaultConfiguration(),
	}
}

// Fields returns every form field of the PDF at path keyed by field name.
// Values are returned as stored, which for radio groups may carry a leading '/'.
func (r *Reader) Fields(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	fields, err := api.FormFields(f, r.conf)
	if err != nil {
		return nil, fmt.Errorf("failed to extract form fields from %s: %w", path, err)
	}

	flat := make(map[string]string, len(fields))
	for _, field := range fields {
		name := field.Name
		if name == "" {
			name = field.ID
		}
		if name == "" {
			continue
		}
		flat[name] = field.V
	}

	r.logger.Debug("Form fields extracted", zap.String("file", path), zap.Int("fields", len(flat)))
	return flat, nil
}
