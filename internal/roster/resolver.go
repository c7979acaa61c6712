package roster

import "muster/internal/textutil"

// Resolver maps raw attendee display names to roster students. Matching is
// normalized-exact: the raw label (after any manual override) must fold to
// the same key as a roster entry. No similarity scoring happens here.
type Resolver struct {
	roster    *Roster
	overrides map[string]string
}

// NewResolver builds a resolver over the given roster. overrides maps raw
// export labels to canonical roster names and is consulted before lookup;
// its keys are compared in folded form.
func NewResolver(r *Roster, overrides map[string]string) *Resolver {
	folded := make(map[string]string, len(overrides))
	for raw, canonical := range overrides {
		key := textutil.FoldName(raw)
		if key == "" {
			continue
		}
		folded[key] = canonical
	}
	return &Resolver{roster: r, overrides: folded}
}

// Resolve returns the student a raw label refers to, or ok=false when the
// label matches nobody on the roster.
func (r *Resolver) Resolve(raw string) (Student, bool) {
	key := textutil.FoldName(raw)
	if key == "" {
		return Student{}, false
	}
	if canonical, ok := r.overrides[key]; ok {
		key = textutil.FoldName(canonical)
	}
	return r.roster.Lookup(key)
}
