package roster

// Roster is an immutable collection of students indexed by canonical key.
type Roster struct {
	students []Student
	byKey    map[string]Student
}

// New builds a roster from the given students. Duplicate keys keep the
// first occurrence.
func New(students []Student) *Roster {
	r := &Roster{
		students: make([]Student, 0, len(students)),
		byKey:    make(map[string]Student, len(students)),
	}
	for _, st := range students {
		key := st.Key()
		if key == "" {
			continue
		}
		if _, exists := r.byKey[key]; exists {
			continue
		}
		r.byKey[key] = st
		r.students = append(r.students, st)
	}
	return r
}

// Students returns the roster entries in load order.
func (r *Roster) Students() []Student {
	out := make([]Student, len(r.students))
	copy(out, r.students)
	return out
}

// Len reports how many distinct students the roster holds.
func (r *Roster) Len() int {
	return len(r.students)
}

// Lookup finds a student by canonical key.
func (r *Roster) Lookup(key string) (Student, bool) {
	st, ok := r.byKey[key]
	return st, ok
}
