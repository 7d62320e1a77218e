package record

// Repository defines the operations for holding and retrieving register
// records. The process owns exactly one implementation and all access is
// single-threaded.
type Repository interface {
	// Reset installs a freshly loaded record set and re-seeds the id
	// sequence at one past the highest id seen.
	Reset(records []*Record)
	// NextID hands out the next free id and advances the sequence.
	NextID() int
	Insert(r *Record)
	FindByID(id int) (*Record, error)
	ListAll() []*Record
	// FilterByRole matches the role name ignoring case, preserving
	// insertion order.
	FilterByRole(role string) []*Record
	Remove(id int) error
	Len() int
}
