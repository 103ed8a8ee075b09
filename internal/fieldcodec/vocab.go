// Package fieldcodec owns the form-field convention shared by report rendering and
// readback: the per-row group names, the option vocabulary, the Overview-driven
// default selection and the Target/SL tally.
package fieldcodec

import "strings"

// Option is the export value of one radio option.
type Option string

const (
	OptionCE     Option = "CE"
	OptionPE     Option = "PE"
	OptionTarget Option = "Target"
	OptionSL     Option = "SL"

	// OptionNone marks a group with nothing selected.
	OptionNone Option = ""
)

// overviewDefaults maps an Overview signal to the option-type it pre-selects.
var overviewDefaults = map[string]Option{
	"Long 2":  OptionCE,
	"Long 3":  OptionCE,
	"Short 2": OptionPE,
	"Short 3": OptionPE,
}

// Preselect returns the option-type selected by default for a row's Overview value.
// Unknown signals select nothing.
func Preselect(overview string) Option {
	return overviewDefaults[overview]
}

// Classify normalizes a read-back field value and reports whether it is an action
// outcome. Leading/trailing whitespace and the name-object slash are ignored, as is case:
// "Target", "/target" and " /TARGET " all yield OptionTarget.
func Classify(value string) (Option, bool) {
	v := strings.Trim(strings.TrimSpace(value), "/")
	v = strings.TrimSpace(v)
	for _, o := range GroupAction.Options() {
		if strings.EqualFold(v, string(o)) {
			return o, true
		}
	}
	return OptionNone, false
}
