package domain

// AnomalyKind classifies a structurally valid but incomplete inventory record.
type AnomalyKind string

const (
	// AnomalyMissingSwitch marks a data adapter without an assigned switch.
	AnomalyMissingSwitch AnomalyKind = "missing_switch"
	// AnomalyMissingRate marks a link whose port and linecard both lack a rate.
	AnomalyMissingRate AnomalyKind = "missing_rate"
)

// Anomaly is a non-fatal finding surfaced while building a graph.
type Anomaly struct {
	Kind    AnomalyKind
	Site    string
	Subject string // host or equipment uid
	Detail  string
}
