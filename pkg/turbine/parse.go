// Package turbine parses turbine process descriptions from XML into an
// in-memory graph.
//
// The expected document has a root element with two required sections:
//
//	<graph>
//	  <nodes>
//	    <node ID="51" type="101">
//	      <nodedata>
//	        <data value="0.0" />
//	      </nodedata>
//	    </node>
//	  </nodes>
//	  <edges>
//	    <edge start="453,2" end="634,1"
//	          pressure="1.0" enthalpy="2.0" flow="3.0" temperature="4.0" />
//	  </edges>
//	</graph>
//
// Node data values are coerced leniently (see [Coerce]); edge attributes
// parse strictly. Any failure aborts the whole parse.
package turbine

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mvollmer/turbograph/pkg/errors"
)

// XML wire structs. Required attributes are pointers so that absence is
// distinguishable from an empty value.
type xmlDocument struct {
	Nodes *xmlNodeSection `xml:"nodes"`
	Edges *xmlEdgeSection `xml:"edges"`
}

type xmlNodeSection struct {
	Nodes []xmlNode `xml:"node"`
}

type xmlEdgeSection struct {
	Edges []xmlEdge `xml:"edge"`
}

type xmlNode struct {
	ID   *string      `xml:"ID,attr"`
	Type *string      `xml:"type,attr"`
	Data *xmlNodeData `xml:"nodedata"`
}

type xmlNodeData struct {
	Entries []xmlDataEntry `xml:"data"`
}

type xmlDataEntry struct {
	Value *string `xml:"value,attr"`
}

type xmlEdge struct {
	Start       *string `xml:"start,attr"`
	End         *string `xml:"end,attr"`
	Pressure    *string `xml:"pressure,attr"`
	Enthalpy    *string `xml:"enthalpy,attr"`
	Flow        *string `xml:"flow,attr"`
	Temperature *string `xml:"temperature,attr"`
}

// ParseFile reads the XML document at path and builds the graph.
func ParseFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a turbine XML document from r and builds the graph.
//
// Parsing is fail-fast: the first malformed node or edge aborts the whole
// conversion and no partial graph is returned. Missing <nodes> or <edges>
// sections are detected before any element is parsed.
func Parse(r io.Reader) (*Graph, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFormat, err, "decode XML")
	}

	if doc.Nodes == nil || doc.Edges == nil {
		return nil, errors.New(errors.ErrCodeStructure, "document missing required <nodes> and <edges> sections")
	}

	g := &Graph{
		Nodes: make([]Node, 0, len(doc.Nodes.Nodes)),
		Edges: make([]Edge, 0, len(doc.Edges.Edges)),
	}

	for i, el := range doc.Nodes.Nodes {
		n, err := parseNode(el)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		g.Nodes = append(g.Nodes, n)
	}
	for i, el := range doc.Edges.Edges {
		e, err := parseEdge(el)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		g.Edges = append(g.Edges, e)
	}

	return g, nil
}

func parseNode(el xmlNode) (Node, error) {
	if el.ID == nil {
		return Node{}, errors.New(errors.ErrCodeFormat, "missing required ID attribute")
	}
	if el.Type == nil {
		return Node{}, errors.New(errors.ErrCodeFormat, "node %s: missing required type attribute", *el.ID)
	}
	typ, err := strconv.Atoi(*el.Type)
	if err != nil {
		return Node{}, errors.New(errors.ErrCodeFormat, "node %s: type %q is not an integer", *el.ID, *el.Type)
	}

	n := Node{ID: *el.ID, Type: typ}
	if el.Data != nil {
		for _, d := range el.Data.Entries {
			// Entries without a value attribute are skipped, not errors.
			if d.Value == nil {
				continue
			}
			n.Data = append(n.Data, Coerce(*d.Value))
		}
	}
	return n, nil
}

func parseEdge(el xmlEdge) (Edge, error) {
	from, err := parseEndpoint("start", el.Start)
	if err != nil {
		return Edge{}, err
	}
	to, err := parseEndpoint("end", el.End)
	if err != nil {
		return Edge{}, err
	}

	e := Edge{From: from, To: to}
	fields := []struct {
		name string
		raw  *string
		dst  *float64
	}{
		{"pressure", el.Pressure, &e.Pressure},
		{"enthalpy", el.Enthalpy, &e.Enthalpy},
		{"flow", el.Flow, &e.Flow},
		{"temperature", el.Temperature, &e.Temperature},
	}
	for _, f := range fields {
		if f.raw == nil {
			return Edge{}, errors.New(errors.ErrCodeFormat, "missing required %s attribute", f.name)
		}
		// Physical measurements parse strictly. There is no string
		// fallback here, unlike node data values.
		v, err := strconv.ParseFloat(*f.raw, 64)
		if err != nil {
			return Edge{}, errors.New(errors.ErrCodeFormat, "%s %q is not a number", f.name, *f.raw)
		}
		*f.dst = v
	}
	return e, nil
}

// parseEndpoint splits "<nodeId>,<port>" on the first comma. The node id
// is not checked against the node set; dangling references are allowed.
func parseEndpoint(attr string, raw *string) (Endpoint, error) {
	if raw == nil {
		return Endpoint{}, errors.New(errors.ErrCodeFormat, "missing required %s attribute", attr)
	}
	id, portStr, ok := strings.Cut(*raw, ",")
	if !ok {
		return Endpoint{}, errors.New(errors.ErrCodeFormat, "%s %q: want \"<node>,<port>\"", attr, *raw)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return Endpoint{}, errors.New(errors.ErrCodeFormat, "%s %q: port %q is not an integer", attr, *raw, portStr)
	}
	return Endpoint{Node: id, Port: port}, nil
}
