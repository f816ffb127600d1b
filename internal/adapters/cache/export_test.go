// export_test.go exports private fields and functions for white-box testing.
package cache

import "time"

// Checksum exposes the record checksum.
var Checksum = checksum

// SetNow replaces the clock used to stamp records.
func (s *DirStore) SetNow(now func() time.Time) {
	s.now = now
}

// SetNow replaces the clock used to stamp records.
func (s *SQLiteStore) SetNow(now func() time.Time) {
	s.now = now
}
