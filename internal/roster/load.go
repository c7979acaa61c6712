package roster

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Load reads roster CSVs from path, which may be a single file or a
// directory of files. Directory entries are read in lexicographic name
// order so repeated loads produce the same roster.
func Load(path string) (*Roster, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat roster path: %w", err)
	}

	if !info.IsDir() {
		students, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		return New(students), nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read roster directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var students []Student
	for _, name := range names {
		batch, err := loadFile(filepath.Join(path, name))
		if err != nil {
			return nil, err
		}
		students = append(students, batch...)
	}
	return New(students), nil
}

// loadFile parses one roster CSV. The header row is scanned for id, name,
// grade, and homeroom columns; only name is required. Names written as
// "Last, First" are inverted on load.
func loadFile(path string) ([]Student, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse roster file %s: %w", filepath.Base(path), err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	columns := discoverColumns(rows[0])
	if columns.name < 0 {
		// No recognized header. Single-column files are plain group
		// lists, one name per row with no header at all.
		if isPlainNameList(rows) {
			return loadPlainList(rows), nil
		}
		return nil, fmt.Errorf("roster file %s: no name column in header", filepath.Base(path))
	}

	students := make([]Student, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if columns.name >= len(row) {
			continue
		}
		first, last := splitName(row[columns.name])
		if first == "" && last == "" {
			continue
		}
		st := Student{FirstName: first, LastName: last}
		if columns.id >= 0 && columns.id < len(row) {
			st.ID = strings.TrimSpace(row[columns.id])
		}
		if columns.grade >= 0 && columns.grade < len(row) {
			if grade, err := strconv.Atoi(strings.TrimSpace(row[columns.grade])); err == nil {
				st.GradeLevel = grade
			}
		}
		if columns.homeroom >= 0 && columns.homeroom < len(row) {
			st.Homeroom = strings.TrimSpace(row[columns.homeroom])
		}
		students = append(students, st)
	}
	return students, nil
}

func isPlainNameList(rows [][]string) bool {
	for _, row := range rows {
		if len(row) != 1 {
			return false
		}
	}
	return len(rows) > 0
}

func loadPlainList(rows [][]string) []Student {
	students := make([]Student, 0, len(rows))
	for _, row := range rows {
		first, last := splitName(row[0])
		if first == "" && last == "" {
			continue
		}
		students = append(students, Student{FirstName: first, LastName: last})
	}
	return students
}

type columnIndexes struct {
	id       int
	name     int
	grade    int
	homeroom int
}

func discoverColumns(header []string) columnIndexes {
	columns := columnIndexes{id: -1, name: -1, grade: -1, homeroom: -1}
	for index, cell := range header {
		switch strings.ToLower(strings.TrimSpace(cell)) {
		case "id", "student id", "student_id":
			columns.id = index
		case "name", "student name", "student_name":
			columns.name = index
		case "grade", "grade level", "grade_level":
			columns.grade = index
		case "homeroom":
			columns.homeroom = index
		}
	}
	return columns
}

// splitName handles both "Last, First" and "First Last" forms.
func splitName(raw string) (first, last string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ""
	}
	if comma := strings.Index(raw, ","); comma >= 0 {
		last = strings.TrimSpace(raw[:comma])
		first = strings.TrimSpace(raw[comma+1:])
		return first, last
	}
	parts := strings.Fields(raw)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
