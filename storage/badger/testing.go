package badger

// NewMemoryStore creates a store over an in-memory backend.
// Closing the store closes the backend.
func NewMemoryStore() (*Store, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}
	return &Store{backend: backend, owned: true}, nil
}
