// Package export flattens turbine graphs into tabular files.
//
// Both sinks project the graph into the same two tables: a node table
// (id, type, data_1..data_N) and an edge table (endpoints plus physical
// attributes). N is the longest data sequence in the whole graph, so
// shorter nodes get empty trailing cells.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mvollmer/turbograph/pkg/turbine"
)

// Sheet names in the exported workbook.
const (
	SheetNodes = "nodes"
	SheetEdges = "edges"
)

var edgeHeader = []string{
	"from_node", "from_port", "to_node", "to_port",
	"pressure", "enthalpy", "flow", "temperature",
}

// nodeHeader returns the node table header: id, type, then one data_N
// column per data slot up to the widest node in the graph.
func nodeHeader(width int) []string {
	h := []string{"id", "type"}
	for i := 1; i <= width; i++ {
		h = append(h, fmt.Sprintf("data_%d", i))
	}
	return h
}

// dataWidth returns the longest data sequence across all nodes. The node
// table is sized by this graph-global maximum, not per row.
func dataWidth(g *turbine.Graph) int {
	w := 0
	for _, n := range g.Nodes {
		if len(n.Data) > w {
			w = len(n.Data)
		}
	}
	return w
}

// WriteXLSX writes g as a two-sheet workbook at path. The workbook is
// assembled fully in memory and saved in one step, so a failed export
// leaves no partial file behind.
func WriteXLSX(g *turbine.Graph, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetNodes); err != nil {
		return fmt.Errorf("sheet %s: %w", SheetNodes, err)
	}
	if _, err := f.NewSheet(SheetEdges); err != nil {
		return fmt.Errorf("sheet %s: %w", SheetEdges, err)
	}

	width := dataWidth(g)
	if err := writeRow(f, SheetNodes, 1, toAny(nodeHeader(width))); err != nil {
		return err
	}
	for i, n := range g.Nodes {
		row := make([]any, 0, 2+width)
		row = append(row, n.ID, n.Type)
		for j := 0; j < width; j++ {
			if j < len(n.Data) {
				row = append(row, n.Data[j])
			} else {
				row = append(row, nil)
			}
		}
		if err := writeRow(f, SheetNodes, i+2, row); err != nil {
			return err
		}
	}

	if err := writeRow(f, SheetEdges, 1, toAny(edgeHeader)); err != nil {
		return err
	}
	for i, e := range g.Edges {
		row := []any{
			e.From.Node, e.From.Port, e.To.Node, e.To.Port,
			e.Pressure, e.Enthalpy, e.Flow, e.Temperature,
		}
		if err := writeRow(f, SheetEdges, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("%s row %d: %w", sheet, row, err)
	}
	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
