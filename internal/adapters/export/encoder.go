// Package export serializes topology graphs for the command line.
package export

import (
	"encoding/json"
	"io"
	"strings"

	"go.trai.ch/topo/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Document is the serialized form of a graph.
type Document struct {
	Nodes []domain.Node `json:"nodes" yaml:"nodes"`
	Edges []domain.Edge `json:"edges" yaml:"edges"`
}

// NewDocument lists the nodes and edges of g in insertion order.
func NewDocument(g *domain.Graph) Document {
	doc := Document{
		Nodes: make([]domain.Node, 0, g.NodeCount()),
		Edges: make([]domain.Edge, 0, g.EdgeCount()),
	}
	for n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, n)
	}
	for e := range g.Edges() {
		doc.Edges = append(doc.Edges, e)
	}
	return doc
}

// Encoder implements ports.GraphEncoder.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode writes g to w as JSON or YAML.
func (e *Encoder) Encode(w io.Writer, g *domain.Graph, format string) error {
	doc := NewDocument(g)

	switch strings.ToLower(format) {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return zerr.Wrap(err, "failed to encode graph as json")
		}
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return zerr.Wrap(err, "failed to encode graph as yaml")
		}
		if err := enc.Close(); err != nil {
			return zerr.Wrap(err, "failed to flush yaml output")
		}
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnsupportedFormat, "cannot encode graph"), "format", format)
	}
	return nil
}
