// Package render draws turbine graphs as Graphviz node-link diagrams.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/mvollmer/turbograph/pkg/turbine"
)

// ToDOT converts a graph to Graphviz DOT format. Nodes are labeled with
// their id and type code; edges carry the flow value and attach through
// port labels. Endpoints referencing ids absent from the node set are
// drawn as dashed placeholders so the diagram still renders.
func ToDOT(g *turbine.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")

	known := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if known[n.ID] {
			continue // duplicate ids collapse to a single drawn node
		}
		known[n.ID] = true
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID, fmt.Sprintf("%s (type %d)", n.ID, n.Type))
	}

	for _, e := range g.Edges {
		for _, ep := range []turbine.Endpoint{e.From, e.To} {
			if !known[ep.Node] {
				known[ep.Node] = true
				fmt.Fprintf(&buf, "  %q [style=\"rounded,filled,dashed\", fillcolor=lightgrey];\n", ep.Node)
			}
		}
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q, taillabel=\"%d\", headlabel=\"%d\"];\n",
			e.From.Node, e.To.Node, fmt.Sprintf("flow %g", e.Flow), e.From.Port, e.To.Port)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
