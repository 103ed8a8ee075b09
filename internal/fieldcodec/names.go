package fieldcodec

import (
	"strconv"
	"strings"
)

// Group identifies one decision axis of a row.
type Group int

const (
	GroupOptionType Group = iota
	GroupAction
	GroupAction2
)

var groupPrefixes = [...]string{
	GroupOptionType: "option_type_",
	GroupAction:     "action_",
	GroupAction2:    "action2_",
}

// Groups lists every group rendered per row, in column order.
func Groups() []Group {
	return []Group{GroupOptionType, GroupAction, GroupAction2}
}

// Prefix returns the field-name prefix of g.
func (g Group) Prefix() string {
	return groupPrefixes[g]
}

// Options returns the mutually exclusive values offered by g.
func (g Group) Options() []Option {
	if g == GroupOptionType {
		return []Option{OptionCE, OptionPE}
	}
	return []Option{OptionTarget, OptionSL}
}

// Scored reports whether g counts toward accuracy. The option-type choice is informational.
func (g Group) Scored() bool {
	return g == GroupAction || g == GroupAction2
}

func (g Group) String() string {
	return strings.TrimSuffix(g.Prefix(), "_")
}

// FieldName returns the name of group g on row i, e.g. "action2_4".
func FieldName(g Group, row int) string {
	return g.Prefix() + strconv.Itoa(row)
}

// GroupOf returns the group whose prefix name starts with.
// The prefixes are not prefixes of one another, so at most one group matches.
func GroupOf(name string) (Group, bool) {
	for _, g := range Groups() {
		if strings.HasPrefix(name, g.Prefix()) {
			return g, true
		}
	}
	return 0, false
}
