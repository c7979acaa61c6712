package roster

import (
	"strings"

	"muster/internal/textutil"
)

// Student is one canonical roster identity. Students are plain values;
// two Student values refer to the same person exactly when their Keys are
// equal.
type Student struct {
	ID         string
	FirstName  string
	LastName   string
	GradeLevel int
	Homeroom   string
}

// Name returns the display name, "First Last".
func (s Student) Name() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// Key returns the canonical comparison key for this student. Identity
// equality everywhere in muster is equality of keys.
func (s Student) Key() string {
	return textutil.FoldName(s.Name())
}
