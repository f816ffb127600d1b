package ports

import (
	"io"

	"go.trai.ch/topo/internal/core/domain"
)

// GraphEncoder writes a graph in a serialization format.
//
//go:generate mockgen -source=encoder.go -destination=mocks/mock_encoder.go -package=mocks
type GraphEncoder interface {
	// Encode writes g to w in the given format.
	Encode(w io.Writer, g *domain.Graph, format string) error
}
