package domain

import "strings"

// ReferenceCellSet is the pair of logical cell identifiers affected by a record.
// AB and CD are each of the form "X/Y", "X" or "" when nothing was found.
type ReferenceCellSet struct {
	AB string `json:"ab,omitempty"`
	CD string `json:"cd,omitempty"`
}

// Empty reports whether neither side carries a cell
func (s ReferenceCellSet) Empty() bool {
	return s.AB == "" && s.CD == ""
}

// Cells returns the non-empty sides in order
func (s ReferenceCellSet) Cells() []string {
	out := make([]string, 0, 2)
	for _, side := range []string{s.AB, s.CD} {
		if side != "" {
			out = append(out, side)
		}
	}
	return out
}

// String renders "AB ; CD", dropping empty sides
func (s ReferenceCellSet) String() string {
	return strings.Join(s.Cells(), " ; ")
}
