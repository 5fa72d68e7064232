// Package graph serializes turbine graphs to their JSON wire format.
//
// Two node shapes exist for compatibility with earlier versions of the
// converter: an id-keyed object ([ShapeMap]) and an ordered array
// ([ShapeList]). The parsing contract is identical for both; the shape is
// purely a serialization option.
//
//	g, _ := turbine.ParseFile("plant.xml")
//	graph.ExportJSON(g, "plant.json", graph.ShapeMap)
package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mvollmer/turbograph/pkg/errors"
	"github.com/mvollmer/turbograph/pkg/turbine"
)

// Shape selects how nodes are laid out in the JSON document.
type Shape int

const (
	// ShapeMap emits nodes as an id-keyed object. The id is dropped from
	// each value and duplicate ids collapse last-wins.
	ShapeMap Shape = iota

	// ShapeList emits nodes as an ordered array with the id kept in each
	// record. Document order and duplicates are preserved.
	ShapeList
)

// ParseShape maps the CLI spelling of a shape to its Shape value.
func ParseShape(s string) (Shape, error) {
	switch s {
	case "map":
		return ShapeMap, nil
	case "list":
		return ShapeList, nil
	default:
		return 0, errors.New(errors.ErrCodeUnsupported, "unknown shape: %s (available: map, list)", s)
	}
}

// Wire types. Data entries are int, float64, or string as produced by
// turbine.Coerce; encoding/json renders them without further conversion.

type mapDocument struct {
	Nodes map[string]mapNode `json:"nodes"`
	Edges []edge             `json:"edges"`
}

type listDocument struct {
	Nodes []listNode `json:"nodes"`
	Edges []edge     `json:"edges"`
}

type mapNode struct {
	Type int   `json:"type"`
	Data []any `json:"data"`
}

type listNode struct {
	ID   string `json:"id"`
	Type int    `json:"type"`
	Data []any  `json:"data"`
}

type endpoint struct {
	Node string `json:"node"`
	Port int    `json:"port"`
}

type edge struct {
	From        endpoint `json:"from"`
	To          endpoint `json:"to"`
	Pressure    float64  `json:"pressure"`
	Enthalpy    float64  `json:"enthalpy"`
	Flow        float64  `json:"flow"`
	Temperature float64  `json:"temperature"`
}

// Marshal converts a graph to indented JSON bytes.
func Marshal(g *turbine.Graph, shape Shape) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(g, &buf, shape); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON encodes g as two-space indented JSON on w.
// Output is deterministic: map-shaped nodes serialize with sorted keys,
// so the same graph always produces identical bytes.
func WriteJSON(g *turbine.Graph, w io.Writer, shape Shape) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document(g, shape)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g as a JSON file at path.
// The file is created with 0644 permissions.
func ExportJSON(g *turbine.Graph, path string, shape Shape) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f, shape)
}

func document(g *turbine.Graph, shape Shape) any {
	edges := make([]edge, len(g.Edges))
	for i, e := range g.Edges {
		edges[i] = edge{
			From:        endpoint(e.From),
			To:          endpoint(e.To),
			Pressure:    e.Pressure,
			Enthalpy:    e.Enthalpy,
			Flow:        e.Flow,
			Temperature: e.Temperature,
		}
	}

	if shape == ShapeList {
		nodes := make([]listNode, len(g.Nodes))
		for i, n := range g.Nodes {
			nodes[i] = listNode{ID: n.ID, Type: n.Type, Data: dataSlice(n.Data)}
		}
		return listDocument{Nodes: nodes, Edges: edges}
	}

	nodes := make(map[string]mapNode, len(g.Nodes))
	for _, n := range g.Nodes {
		// Later duplicates overwrite earlier ones.
		nodes[n.ID] = mapNode{Type: n.Type, Data: dataSlice(n.Data)}
	}
	return mapDocument{Nodes: nodes, Edges: edges}
}

// dataSlice keeps empty data sequences as [] rather than null.
func dataSlice(d []any) []any {
	if d == nil {
		return []any{}
	}
	return d
}
