package domain

// StalenessReason explains a staleness decision.
type StalenessReason int

const (
	// ReasonFresh means the cached marker equals the live inventory version.
	ReasonFresh StalenessReason = iota
	// ReasonVersionMismatch means the cached marker differs from the live version.
	ReasonVersionMismatch
	// ReasonNoMarker means no readable marker exists in the cache.
	ReasonNoMarker
	// ReasonSourceUnreachable means the live version could not be read.
	ReasonSourceUnreachable
)

// String returns the reason as used in logs and metric labels.
func (r StalenessReason) String() string {
	switch r {
	case ReasonFresh:
		return "fresh"
	case ReasonVersionMismatch:
		return "version_mismatch"
	case ReasonNoMarker:
		return "no_marker"
	case ReasonSourceUnreachable:
		return "source_unreachable"
	default:
		return "unknown"
	}
}

// Staleness is the outcome of comparing the cache marker with the inventory version.
// Every failure maps to Stale == true; Err keeps the cause for observability.
type Staleness struct {
	Stale  bool
	Reason StalenessReason
	Local  string
	Remote string
	Err    error
}
