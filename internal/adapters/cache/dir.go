package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.trai.ch/topo/internal/core/domain"
	"go.trai.ch/zerr"
)

// DirStore implements ports.CacheStore with one JSON file per key and a plain-text
// version marker, all in a single flat directory.
type DirStore struct {
	dir string
	mu  sync.RWMutex
	now func() time.Time
}

// NewDirStore creates a DirStore rooted at dir. The directory is created on first write.
func NewDirStore(dir string) *DirStore {
	return &DirStore{
		dir: filepath.Clean(dir),
		now: time.Now,
	}
}

// Dir returns the cache directory.
func (s *DirStore) Dir() string {
	return s.dir
}

func (s *DirStore) recordPath(key string) string {
	return filepath.Join(s.dir, key+domain.RecordExt)
}

// Store writes payload under key, replacing any prior record.
func (s *DirStore) Store(key, version string, payload any) error {
	if err := checkKey(key); err != nil {
		return err
	}

	rec, err := newRecord(key, version, payload, s.now())
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return zerr.With(errors.Join(domain.ErrCacheMarshalFailed, err), "key", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeAtomic(s.recordPath(key), data, key+"-*.tmp")
}

// Load decodes the record stored under key into dst.
func (s *DirStore) Load(key string, dst any) error {
	if err := checkKey(key); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	path := s.recordPath(key)
	data, err := os.ReadFile(path) //nolint:gosec // key is validated against a flat pattern
	if err != nil {
		return zerr.With(errors.Join(domain.ErrCacheMiss, err), "key", key)
	}

	var rec domain.CacheRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return zerr.With(zerr.With(errors.Join(domain.ErrCacheMiss, err), "key", key), "path", path)
	}
	if rec.Key != key {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrCacheMiss, "record key mismatch"), "key", key), "found", rec.Key)
	}
	return decodeRecord(rec, dst)
}

// ReadVersion returns the content of the version marker as stored.
func (s *DirStore) ReadVersion() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := filepath.Join(s.dir, domain.VersionFileName)
	data, err := os.ReadFile(path) //nolint:gosec // fixed file name inside the cache directory
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrCacheMiss, err), "path", path)
	}
	return string(data), nil
}

// WriteVersion replaces the version marker.
func (s *DirStore) WriteVersion(version string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeAtomic(filepath.Join(s.dir, domain.VersionFileName), []byte(version), "version-*.tmp")
}

// Purge removes every record and the version marker. Other files in the directory are kept.
func (s *DirStore) Purge() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(errors.Join(domain.ErrCachePurgeFailed, err), "dir", s.dir)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			continue
		}
		if name != domain.VersionFileName && !strings.HasSuffix(name, domain.RecordExt) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return zerr.With(errors.Join(domain.ErrCachePurgeFailed, err), "file", name)
		}
	}
	return nil
}

// Close is a no-op; DirStore holds no open handles.
func (s *DirStore) Close() error {
	return nil
}

// writeAtomic writes data to a temp file next to path and renames it into place.
func (s *DirStore) writeAtomic(path string, data []byte, pattern string) error {
	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.With(errors.Join(domain.ErrCacheCreateFailed, err), "dir", s.dir)
	}

	tmpFile, err := os.CreateTemp(s.dir, pattern)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrCacheWriteFailed, err), "path", path)
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, err := os.Stat(tmpName); err == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.With(errors.Join(domain.ErrCacheWriteFailed, err), "path", path)
	}
	if err := tmpFile.Close(); err != nil {
		return zerr.With(errors.Join(domain.ErrCacheWriteFailed, err), "path", path)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(errors.Join(domain.ErrCacheWriteFailed, err), "path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(errors.Join(domain.ErrCacheWriteFailed, err), "path", path)
	}
	return nil
}
