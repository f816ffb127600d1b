package ports

// CacheStore persists fetched inventory structures under flat keys and tracks
// a single global version marker.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type CacheStore interface {
	// Store serializes payload under key, overwriting any prior record.
	// The cache location is created if absent.
	Store(key, version string, payload any) error

	// Load decodes the record stored under key into dst.
	// It fails with domain.ErrCacheMiss if the record is absent or unreadable.
	Load(key string, dst any) error

	// ReadVersion returns the stored version marker.
	// It fails with domain.ErrCacheMiss if no marker is present.
	ReadVersion() (string, error)

	// WriteVersion replaces the version marker.
	WriteVersion(version string) error

	// Purge removes every record and the version marker.
	Purge() error
}
