package records

import (
	"testing"

	"cbrarecords/internal/apperr"
	"cbrarecords/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func student(roll string) *models.Student {
	return models.NewStudent(roll, "Student "+roll, "Father "+roll, 5, models.CategoryNone, 2025)
}

func rolls(s *Store) []string {
	var out []string
	for _, st := range s.All() {
		out = append(out, st.RollNo)
	}
	return out
}

func TestAddFind(t *testing.T) {
	s := New()
	want := student("101")

	require.NoError(t, s.Add(want))

	got, err := s.Find("101")
	require.NoError(t, err)
	assert.Same(t, want, got)
	assert.True(t, s.Contains("101"))
	assert.Equal(t, 1, s.Len())
}

func TestAddDuplicateLeavesStoreUnchanged(t *testing.T) {
	s := New()
	first := student("7")
	require.NoError(t, s.Add(first))
	require.NoError(t, s.Add(student("8")))

	dup := student("7")
	dup.Name = "Impostor"
	err := s.Add(dup)

	assert.ErrorIs(t, err, apperr.ErrDuplicateKey)
	assert.Equal(t, []string{"7", "8"}, rolls(s))
	got, _ := s.Find("7")
	assert.Same(t, first, got)
}

func TestFindMissing(t *testing.T) {
	s := New()
	_, err := s.Find("nope")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRemovePreservesOrder(t *testing.T) {
	s := New()
	for _, r := range []string{"c", "a", "d", "b"} {
		require.NoError(t, s.Add(student(r)))
	}

	require.NoError(t, s.Remove("a"))

	_, err := s.Find("a")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, []string{"c", "d", "b"}, rolls(s))

	// Index stays consistent after the shift.
	got, err := s.Find("b")
	require.NoError(t, err)
	assert.Equal(t, "b", got.RollNo)

	assert.ErrorIs(t, s.Remove("a"), apperr.ErrNotFound)
}

func TestRemoveLastAndReAdd(t *testing.T) {
	s := New()
	require.NoError(t, s.Add(student("1")))
	require.NoError(t, s.Add(student("2")))

	require.NoError(t, s.Remove("2"))
	require.NoError(t, s.Add(student("2")))
	require.NoError(t, s.Remove("1"))

	assert.Equal(t, []string{"2"}, rolls(s))
}

func TestAllIsInsertionOrderAndRestartable(t *testing.T) {
	s := New()
	for _, r := range []string{"30", "10", "20"} {
		require.NoError(t, s.Add(student(r)))
	}

	assert.Equal(t, []string{"30", "10", "20"}, rolls(s))
	assert.Equal(t, []string{"30", "10", "20"}, rolls(s))

	snapshot := s.All()
	snapshot[0] = nil
	assert.Equal(t, []string{"30", "10", "20"}, rolls(s), "callers cannot reorder the store")
}

func TestZeroValueStore(t *testing.T) {
	var s Store
	require.NoError(t, s.Add(student("1")))
	assert.Equal(t, 1, s.Len())
}
