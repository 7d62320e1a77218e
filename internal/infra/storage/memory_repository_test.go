package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school_register/internal/domain/record"
)

func namedRecord(role record.Role, id int, name string) *record.Record {
	r := record.New(role, id)
	r.SetName(name)
	return r
}

func TestResetSeedsNextID(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Reset([]*record.Record{
		namedRecord(record.Teacher, 3, "Alice"),
		namedRecord(record.Admin, 7, "Bob"),
		namedRecord(record.Student, 2, "Carol"),
	})

	assert.Equal(t, 8, repo.NextID())
	assert.Equal(t, 9, repo.NextID())
}

func TestNextIDEmptyRepository(t *testing.T) {
	repo := NewMemoryRepository()
	assert.Equal(t, 1, repo.NextID())

	repo.Reset(nil)
	assert.Equal(t, 1, repo.NextID())
}

func TestFindByID(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Insert(namedRecord(record.Teacher, 1, "Alice"))

	r, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", r.Name)

	_, err = repo.FindByID(42)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestFilterByRoleCaseInsensitive(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Insert(namedRecord(record.Teacher, 1, "Alice"))
	repo.Insert(namedRecord(record.Admin, 2, "Bob"))
	repo.Insert(namedRecord(record.Teacher, 3, "Carol"))

	lower := repo.FilterByRole("teacher")
	upper := repo.FilterByRole("Teacher")
	assert.Equal(t, lower, upper)
	require.Len(t, lower, 2)
	assert.Equal(t, "Alice", lower[0].Name)
	assert.Equal(t, "Carol", lower[1].Name)

	assert.Empty(t, repo.FilterByRole("student"))
}

func TestRemoveExactlyOne(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Insert(namedRecord(record.Teacher, 1, "Alice"))
	repo.Insert(namedRecord(record.Admin, 7, "Bob"))
	repo.Insert(namedRecord(record.Student, 9, "Carol"))

	require.NoError(t, repo.Remove(7))
	assert.Equal(t, 2, repo.Len())

	_, err := repo.FindByID(7)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	left, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", left.Name)
	right, err := repo.FindByID(9)
	require.NoError(t, err)
	assert.Equal(t, "Carol", right.Name)
}

func TestRemoveMissing(t *testing.T) {
	repo := NewMemoryRepository()
	assert.ErrorIs(t, repo.Remove(1), ErrRecordNotFound)
}
