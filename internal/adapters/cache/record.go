// Package cache implements the inventory cache on a flat directory or a sqlite file.
package cache

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/topo/internal/core/domain"
	"go.trai.ch/zerr"
)

// checksum returns the hex xxhash of data.
func checksum(data []byte) string {
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}

func checkKey(key string) error {
	if !domain.ValidCacheKey(key) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidCacheKey, "cannot address record"), "key", key)
	}
	return nil
}

// newRecord serializes payload into an envelope stamped with version.
func newRecord(key, version string, payload any, now time.Time) (domain.CacheRecord, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return domain.CacheRecord{}, zerr.With(errors.Join(domain.ErrCacheMarshalFailed, err), "key", key)
	}
	return domain.CacheRecord{
		Key:      key,
		Version:  version,
		Checksum: checksum(data),
		StoredAt: now.UTC(),
		Payload:  data,
	}, nil
}

// decodeRecord verifies rec and decodes its payload into dst.
// Every failure is a cache miss.
// The checksum covers the compact encoding so that indentation on disk does not matter.
func decodeRecord(rec domain.CacheRecord, dst any) error {
	var compact bytes.Buffer
	if err := json.Compact(&compact, rec.Payload); err != nil {
		return zerr.With(errors.Join(domain.ErrCacheMiss, err), "key", rec.Key)
	}
	if rec.Checksum != checksum(compact.Bytes()) {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrCacheMiss, "checksum mismatch"), "key", rec.Key), "checksum", rec.Checksum)
	}
	if err := json.Unmarshal(rec.Payload, dst); err != nil {
		return zerr.With(errors.Join(domain.ErrCacheMiss, err), "key", rec.Key)
	}
	return nil
}
