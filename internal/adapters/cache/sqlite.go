package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.trai.ch/topo/internal/core/domain"
	"go.trai.ch/zerr"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const (
	sqliteDriverName = "sqlite"
	versionMetaName  = "version"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS records (
  key       TEXT PRIMARY KEY,
  version   TEXT NOT NULL,
  checksum  TEXT NOT NULL,
  stored_at TEXT NOT NULL,
  payload   BLOB NOT NULL
);
CREATE TABLE IF NOT EXISTS meta (
  name  TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`

// SQLiteStore implements ports.CacheStore on a single sqlite database file.
type SQLiteStore struct {
	path string
	db   *sql.DB
	mu   sync.Mutex
	now  func() time.Time
}

// OpenSQLite opens or creates the database at path, creating its directory if absent.
func OpenSQLite(path string) (*SQLiteStore, error) {
	cleanPath := strings.TrimSpace(path)
	if cleanPath == "" {
		return nil, zerr.Wrap(domain.ErrCacheCreateFailed, "sqlite path must not be empty")
	}
	if info, err := os.Stat(cleanPath); err == nil && info.IsDir() {
		return nil, zerr.With(zerr.Wrap(domain.ErrCacheCreateFailed, "sqlite path is a directory"), "path", cleanPath)
	}

	dir := filepath.Dir(cleanPath)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrCacheCreateFailed, err), "dir", dir)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(2000)&_pragma=journal_mode(WAL)", cleanPath)
	db, err := sql.Open(sqliteDriverName, dsn)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrCacheCreateFailed, err), "path", cleanPath)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, zerr.With(errors.Join(domain.ErrCacheCreateFailed, err), "path", cleanPath)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, zerr.With(errors.Join(domain.ErrCacheCreateFailed, err), "path", cleanPath)
	}

	return &SQLiteStore{path: cleanPath, db: db, now: time.Now}, nil
}

// Path returns the database file.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Store upserts payload under key.
func (s *SQLiteStore) Store(key, version string, payload any) error {
	if err := checkKey(key); err != nil {
		return err
	}
	rec, err := newRecord(key, version, payload, s.now())
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(`
INSERT INTO records (key, version, checksum, stored_at, payload) VALUES (?, ?, ?, ?, ?)
ON CONFLICT(key) DO UPDATE SET
  version=excluded.version,
  checksum=excluded.checksum,
  stored_at=excluded.stored_at,
  payload=excluded.payload`,
		rec.Key, rec.Version, rec.Checksum, rec.StoredAt.Format(time.RFC3339Nano), []byte(rec.Payload),
	)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrCacheWriteFailed, err), "key", key)
	}
	return nil
}

// Load decodes the record stored under key into dst.
func (s *SQLiteStore) Load(key string, dst any) error {
	if err := checkKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		rec      domain.CacheRecord
		storedAt string
		payload  []byte
	)
	err := s.db.QueryRow(
		`SELECT key, version, checksum, stored_at, payload FROM records WHERE key = ?`, key,
	).Scan(&rec.Key, &rec.Version, &rec.Checksum, &storedAt, &payload)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrCacheMiss, err), "key", key)
	}
	rec.Payload = payload
	if ts, err := time.Parse(time.RFC3339Nano, storedAt); err == nil {
		rec.StoredAt = ts
	}
	return decodeRecord(rec, dst)
}

// ReadVersion returns the stored version marker.
func (s *SQLiteStore) ReadVersion() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var version string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE name = ?`, versionMetaName).Scan(&version)
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrCacheMiss, err), "path", s.path)
	}
	return version, nil
}

// WriteVersion replaces the version marker.
func (s *SQLiteStore) WriteVersion(version string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO meta (name, value) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET value=excluded.value`,
		versionMetaName, version,
	)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrCacheWriteFailed, err), "path", s.path)
	}
	return nil
}

// Purge deletes every record and the version marker in one transaction.
func (s *SQLiteStore) Purge() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return zerr.With(errors.Join(domain.ErrCachePurgeFailed, err), "path", s.path)
	}
	for _, stmt := range []string{`DELETE FROM records`, `DELETE FROM meta`} {
		if _, err := tx.Exec(stmt); err != nil {
			_ = tx.Rollback()
			return zerr.With(errors.Join(domain.ErrCachePurgeFailed, err), "path", s.path)
		}
	}
	if err := tx.Commit(); err != nil {
		return zerr.With(errors.Join(domain.ErrCachePurgeFailed, err), "path", s.path)
	}
	return nil
}
