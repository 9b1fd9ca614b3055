package scanf

import (
	"context"
	"sort"
	"sync"
	"time"
)

// StoredFormat is a named format persisted in a FormatStore.
type StoredFormat struct {
	// Name is the unique lookup key.
	Name string `json:"name"`

	// Format is the scanf format string.
	Format string `json:"format"`

	// Description is optional human-readable context.
	Description string `json:"description,omitempty"`

	// CreatedAt is when the format was first saved.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the format was last saved.
	UpdatedAt time.Time `json:"updated_at"`
}

// FormatStore persists named formats. Implementations must be safe
// for concurrent use.
type FormatStore interface {
	// Save inserts or replaces a format by name.
	Save(ctx context.Context, format *StoredFormat) error

	// Get retrieves a format by name.
	Get(ctx context.Context, name string) (*StoredFormat, error)

	// List returns all formats sorted by name.
	List(ctx context.Context) ([]*StoredFormat, error)

	// Delete removes a format by name.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close() error
}

// MemoryStore is an in-memory FormatStore, intended for testing and
// single-process use. All data is lost when the process terminates.
type MemoryStore struct {
	mu      sync.RWMutex
	formats map[string]*StoredFormat
	closed  bool
}

// NewMemoryStore creates a new in-memory format store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		formats: make(map[string]*StoredFormat),
	}
}

// Save inserts or replaces a format by name.
func (s *MemoryStore) Save(ctx context.Context, format *StoredFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if format == nil || format.Name == "" {
		return NewEmptyFormatNameError()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStoreClosedError()
	}

	now := time.Now().UTC()
	stored := *format
	stored.UpdatedAt = now
	if prev, ok := s.formats[format.Name]; ok {
		stored.CreatedAt = prev.CreatedAt
	} else {
		stored.CreatedAt = now
	}
	s.formats[format.Name] = &stored
	return nil
}

// Get retrieves a format by name.
func (s *MemoryStore) Get(ctx context.Context, name string) (*StoredFormat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStoreClosedError()
	}

	format, ok := s.formats[name]
	if !ok {
		return nil, NewStoreNotFoundError(name)
	}
	clone := *format
	return &clone, nil
}

// List returns all formats sorted by name.
func (s *MemoryStore) List(ctx context.Context) ([]*StoredFormat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStoreClosedError()
	}

	formats := make([]*StoredFormat, 0, len(s.formats))
	for _, f := range s.formats {
		clone := *f
		formats = append(formats, &clone)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i].Name < formats[j].Name })
	return formats, nil
}

// Delete removes a format by name.
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStoreClosedError()
	}

	if _, ok := s.formats[name]; !ok {
		return NewStoreNotFoundError(name)
	}
	delete(s.formats, name)
	return nil
}

// Close marks the store closed; subsequent operations fail.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
