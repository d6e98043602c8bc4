package storage

import (
	"strings"

	"cbrarecords/internal/apperr"
	"cbrarecords/internal/models"
	"cbrarecords/internal/records"
)

type Storage struct {
	files LineFile
}

// New creates a Storage. A nil LineFile uses Disk.
func New(files LineFile) *Storage {
	if files == nil {
		files = Disk{}
	}
	return &Storage{files: files}
}

// LineError describes one skipped line.
type LineError struct {
	Line int // 1-based
	Err  error
}

type LoadResult struct {
	Loaded     int
	Duplicates []string // roll numbers already in the store
	Corrupt    []LineError
}

// Save writes every record in store order.
func (s *Storage) Save(path string, store *records.Store) (int, error) {
	all := store.All()
	if len(all) == 0 {
		return 0, apperr.ErrEmptyStore
	}

	lines := Encode(all)
	if err := s.files.WriteAllLines(path, lines); err != nil {
		return 0, apperr.Wrap(apperr.KindUnknown, err, "write %s", path)
	}
	return len(lines), nil
}

// Load merges the file's records into store. Records whose roll number is
// already present are skipped, as are corrupt lines.
func (s *Storage) Load(path string, store *records.Store) (LoadResult, error) {
	lines, err := s.files.ReadAllLines(path)
	if err != nil {
		return LoadResult{}, apperr.Wrap(apperr.KindUnknown, err, "read %s", path)
	}

	var result LoadResult
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		st, err := DecodeLine(line)
		if err != nil {
			result.Corrupt = append(result.Corrupt, LineError{Line: i + 1, Err: err})
			continue
		}

		if store.Contains(st.RollNo) {
			result.Duplicates = append(result.Duplicates, st.RollNo)
			continue
		}
		if err := store.Add(st); err != nil {
			result.Corrupt = append(result.Corrupt, LineError{Line: i + 1, Err: err})
			continue
		}
		result.Loaded++
	}
	return result, nil
}

// Encode renders one line per student, in order.
func Encode(students []*models.Student) []string {
	lines := make([]string, len(students))
	for i, st := range students {
		lines[i] = EncodeLine(st)
	}
	return lines
}
