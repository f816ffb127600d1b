package domain

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const (
	// DefaultCacheDirName is the cache directory used when none is configured.
	DefaultCacheDirName = "cache"

	// DefaultLatency is the latency in seconds given to every edge when no measurement exists.
	DefaultLatency = 2.25e-3

	// DefaultInventoryURL is the reference API of the testbed.
	DefaultInventoryURL = "https://api.grid5000.fr/stable"

	// DefaultPasswordEnv is the environment variable holding the inventory password.
	DefaultPasswordEnv = "TOPO_API_PASSWORD"

	// DefaultRequestsPerSecond paces inventory requests.
	DefaultRequestsPerSecond = 5.0

	// DefaultRequestTimeout bounds a single inventory request.
	DefaultRequestTimeout = 30 * time.Second

	// ConfigFileName is the name of the configuration file looked up in the working directory.
	ConfigFileName = "topo.yaml"

	// VersionFileName is the plain-text version marker inside a directory cache.
	VersionFileName = "version"

	// RecordExt is appended to every record key in a directory cache.
	RecordExt = ".json"

	// SQLiteFileName is the database file used by the sqlite cache backend.
	SQLiteFileName = "topo.db"

	// WholeTestbed selects every site when passed as a resource.
	WholeTestbed = "grid5000"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Cache backends.
const (
	BackendDir    = "dir"
	BackendSQLite = "sqlite"
)

const (
	backboneKey = "backbone"
	manifestKey = "manifest"
)

var validCacheKey = regexp.MustCompile(`^[A-Za-z0-9%_-][A-Za-z0-9%._-]*$`)

// ValidCacheKey reports whether key can be stored without leaving the flat cache location.
func ValidCacheKey(key string) bool {
	return validCacheKey.MatchString(key) && key != VersionFileName
}

// BackboneKey is the cache key of the backbone equipment list.
func BackboneKey() string {
	return backboneKey
}

// ManifestKey is the cache key of the site and cluster listing.
func ManifestKey() string {
	return manifestKey
}

// SiteEquipmentKey is the cache key of one site's equipment list.
// The site uid is escaped with keySegment.
func SiteEquipmentKey(site string) string {
	return keySegment(site) + ".equipment"
}

// ClusterHostsKey is the cache key of one cluster's host list.
// Both uids are escaped with keySegment.
func ClusterHostsKey(site, cluster string) string {
	return keySegment(site) + "." + keySegment(cluster) + ".hosts"
}

// keySegment escapes every byte outside [A-Za-z0-9_-] as %XX. Escaped segments hold
// no dot or slash, so distinct uids map to distinct keys inside the cache location.
func keySegment(uid string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	for i := 0; i < len(uid); i++ {
		c := uid[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9', c == '_', c == '-':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0f])
		}
	}
	return b.String()
}

// QualifiedID scopes uid to site, producing a globally unique node id.
func QualifiedID(uid, site string) string {
	return uid + "." + site
}

// DefaultSQLitePath returns the sqlite database path inside dir.
func DefaultSQLitePath(dir string) string {
	return filepath.Join(dir, SQLiteFileName)
}
