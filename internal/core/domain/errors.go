package domain

import "go.trai.ch/zerr"

var (
	// ErrCacheMiss is returned when a cache record or the version marker is absent or unreadable.
	// Callers must treat it as "refetch", never as empty data.
	ErrCacheMiss = zerr.New("cache miss")

	// ErrInvalidCacheKey is returned when a cache key would escape the flat cache location.
	ErrInvalidCacheKey = zerr.New("invalid cache key")

	// ErrCacheCreateFailed is returned when the cache location cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create cache location")

	// ErrCacheWriteFailed is returned when a cache record or the version marker cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache record")

	// ErrCacheMarshalFailed is returned when a payload cannot be serialized for the cache.
	ErrCacheMarshalFailed = zerr.New("failed to marshal cache payload")

	// ErrCachePurgeFailed is returned when the cache cannot be emptied.
	ErrCachePurgeFailed = zerr.New("failed to purge cache")

	// ErrInconsistentCache is returned when the version marker is fresh but a record is missing.
	ErrInconsistentCache = zerr.New("cache marker is current but a record is missing")

	// ErrInventorySource is returned when talking to the inventory source fails.
	ErrInventorySource = zerr.New("inventory source request failed")

	// ErrInventoryDecode is returned when an inventory response cannot be decoded.
	ErrInventoryDecode = zerr.New("failed to decode inventory response")

	// ErrUnknownSite is returned when a requested site is not part of the inventory.
	ErrUnknownSite = zerr.New("unknown site")

	// ErrUnknownNode is returned when an edge references a node that was never added.
	ErrUnknownNode = zerr.New("edge endpoint is not a node of the graph")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrUnsupportedFormat is returned when a graph export format is not known.
	ErrUnsupportedFormat = zerr.New("unsupported output format")

	// ErrMetricsWriteFailed is returned when the metrics textfile cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write metrics textfile")
)
