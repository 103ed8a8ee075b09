// Package pdfform attaches AcroForm radio groups to a rendered page and reads filled
// field values back, both through pdfcpu.
package pdfform

import "github.com/pdfcpu/pdfcpu/pkg/api"

func init() {
	// Use built-in defaults instead of creating a per-user pdfcpu config directory.
	api.DisableConfigDir()
}
