package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mvollmer/turbograph/pkg/turbine"
)

// WriteCSV writes the node and edge tables to two separate writers using
// the same columns as the xlsx sheets. Missing data slots become empty
// cells.
func WriteCSV(g *turbine.Graph, nodes, edges io.Writer) (retErr error) {
	nw := csv.NewWriter(nodes)
	ew := csv.NewWriter(edges)
	defer func() {
		nw.Flush()
		ew.Flush()
		if retErr == nil {
			if err := nw.Error(); err != nil {
				retErr = fmt.Errorf("flush nodes: %w", err)
			} else if err := ew.Error(); err != nil {
				retErr = fmt.Errorf("flush edges: %w", err)
			}
		}
	}()

	width := dataWidth(g)
	if err := nw.Write(nodeHeader(width)); err != nil {
		return fmt.Errorf("nodes header: %w", err)
	}
	for _, n := range g.Nodes {
		record := make([]string, 0, 2+width)
		record = append(record, n.ID, strconv.Itoa(n.Type))
		for j := 0; j < width; j++ {
			if j < len(n.Data) {
				record = append(record, formatValue(n.Data[j]))
			} else {
				record = append(record, "")
			}
		}
		if err := nw.Write(record); err != nil {
			return fmt.Errorf("node %s: %w", n.ID, err)
		}
	}

	if err := ew.Write(edgeHeader); err != nil {
		return fmt.Errorf("edges header: %w", err)
	}
	for i, e := range g.Edges {
		record := []string{
			e.From.Node, strconv.Itoa(e.From.Port),
			e.To.Node, strconv.Itoa(e.To.Port),
			formatFloat(e.Pressure), formatFloat(e.Enthalpy),
			formatFloat(e.Flow), formatFloat(e.Temperature),
		}
		if err := ew.Write(record); err != nil {
			return fmt.Errorf("edge %d: %w", i, err)
		}
	}
	return nil
}

// ExportCSV writes the two tables as <base>_nodes.csv and
// <base>_edges.csv. A .csv extension on base is stripped first, so
// "out.csv" produces out_nodes.csv and out_edges.csv.
func ExportCSV(g *turbine.Graph, base string) error {
	base = strings.TrimSuffix(base, ".csv")

	nf, err := os.Create(base + "_nodes.csv")
	if err != nil {
		return fmt.Errorf("create %s_nodes.csv: %w", base, err)
	}
	defer nf.Close()

	ef, err := os.Create(base + "_edges.csv")
	if err != nil {
		return fmt.Errorf("create %s_edges.csv: %w", base, err)
	}
	defer ef.Close()

	return WriteCSV(g, nf, ef)
}

func formatValue(v any) string {
	switch x := v.(type) {
	case int:
		return strconv.Itoa(x)
	case float64:
		return formatFloat(x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
