package storage

import (
	"fmt"
	"strings"

	"school_register/internal/domain/record"
)

var ErrRecordNotFound = fmt.Errorf("record not found")

// MemoryRepository holds the register in insertion order and owns the id
// sequence. It implements record.Repository.
type MemoryRepository struct {
	records []*record.Record
	nextID  int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

// Reset installs a freshly loaded record set and re-seeds the id sequence
// at one past the highest id seen, or 1 for an empty set.
func (m *MemoryRepository) Reset(records []*record.Record) {
	m.records = records
	m.nextID = 1
	for _, r := range records {
		if r.ID >= m.nextID {
			m.nextID = r.ID + 1
		}
	}
}

// NextID hands out the next free id and advances the sequence. Ids stay
// monotonic even when the caller abandons the record.
func (m *MemoryRepository) NextID() int {
	id := m.nextID
	m.nextID++
	return id
}

func (m *MemoryRepository) Insert(r *record.Record) {
	m.records = append(m.records, r)
}

func (m *MemoryRepository) FindByID(id int) (*record.Record, error) {
	for _, r := range m.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, ErrRecordNotFound
}

func (m *MemoryRepository) ListAll() []*record.Record {
	return m.records
}

// FilterByRole matches the role name ignoring case and preserves insertion
// order. The result may be empty.
func (m *MemoryRepository) FilterByRole(role string) []*record.Record {
	out := make([]*record.Record, 0)
	for _, r := range m.records {
		if strings.EqualFold(string(r.Role), role) {
			out = append(out, r)
		}
	}
	return out
}

// Remove drops the record with the given id. Ids are unique, so at most one
// entry is affected.
func (m *MemoryRepository) Remove(id int) error {
	for i, r := range m.records {
		if r.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return ErrRecordNotFound
}

func (m *MemoryRepository) Len() int { return len(m.records) }
