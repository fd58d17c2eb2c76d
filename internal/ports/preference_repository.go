package ports

import "context"

// PreferenceReader reads persisted preferences
type PreferenceReader interface {
	// Get returns the stored value, or domain.ErrPreferenceNotFound
	Get(ctx context.Context, key string) (string, error)
}

// PreferenceWriter stores and removes preferences
type PreferenceWriter interface {
	// Set inserts or replaces the value of a key
	Set(ctx context.Context, key, value string) error

	// Delete removes a key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
}

// PreferenceRepository is the composite interface
type PreferenceRepository interface {
	PreferenceReader
	PreferenceWriter
	Close() error
}
