// Package memory is a map-backed key/value store. It backs the `memory`
// storage backend and serves as the substitutable fake in tests; GetErr and
// SetErr let callers simulate unreadable or full storage.
package memory

// Store is not safe for concurrent use.
type Store struct {
	values map[string]string

	GetErr error
	SetErr error

	Writes int
}

func New() *Store {
	return &Store{values: map[string]string{}}
}

// Seeded returns a Store that already holds key=value.
func Seeded(key, value string) *Store {
	s := New()
	s.values[key] = value
	return s
}

func (s *Store) Get(key string) (string, bool, error) {
	if s.GetErr != nil {
		return "", false, s.GetErr
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *Store) Set(key, value string) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	s.values[key] = value
	s.Writes++
	return nil
}

func (s *Store) Close() error { return nil }
