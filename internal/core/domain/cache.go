package domain

import (
	"encoding/json"
	"time"
)

// CacheRecord is the envelope persisted for one fetched structure.
type CacheRecord struct {
	Key      string          `json:"key"`
	Version  string          `json:"version,omitempty"`
	Checksum string          `json:"checksum"`
	StoredAt time.Time       `json:"stored_at"`
	Payload  json.RawMessage `json:"payload"`
}
