// Package records holds student records keyed by roll number in insertion
// order.
package records

import (
	"cbrarecords/internal/apperr"
	"cbrarecords/internal/models"
)

type Store struct {
	order []*models.Student
	index map[string]int // roll number -> position in order
}

func New() *Store {
	return &Store{index: make(map[string]int)}
}

func (s *Store) Len() int {
	return len(s.order)
}

func (s *Store) Contains(rollNo string) bool {
	_, ok := s.index[rollNo]
	return ok
}

// Add appends a record. The roll number must not already be present.
func (s *Store) Add(student *models.Student) error {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, ok := s.index[student.RollNo]; ok {
		return apperr.New(apperr.KindDuplicateKey, "roll number %s already exists", student.RollNo)
	}
	s.index[student.RollNo] = len(s.order)
	s.order = append(s.order, student)
	return nil
}

func (s *Store) Find(rollNo string) (*models.Student, error) {
	i, ok := s.index[rollNo]
	if !ok {
		return nil, apperr.New(apperr.KindNotFound, "no student with roll number %s", rollNo)
	}
	return s.order[i], nil
}

// Remove drops a record and keeps the order of the rest.
func (s *Store) Remove(rollNo string) error {
	i, ok := s.index[rollNo]
	if !ok {
		return apperr.New(apperr.KindNotFound, "no student with roll number %s", rollNo)
	}

	copy(s.order[i:], s.order[i+1:])
	s.order[len(s.order)-1] = nil
	s.order = s.order[:len(s.order)-1]
	delete(s.index, rollNo)

	for j := i; j < len(s.order); j++ {
		s.index[s.order[j].RollNo] = j
	}
	return nil
}

// All returns the records in insertion order. The slice is a copy; the
// records are shared.
func (s *Store) All() []*models.Student {
	out := make([]*models.Student, len(s.order))
	copy(out, s.order)
	return out
}
