package turbine

// Node is a process component: a typed graph vertex carrying an ordered
// sequence of auxiliary values. Data entries are int, float64, or string,
// as produced by [Coerce].
type Node struct {
	ID   string
	Type int
	Data []any
}

// Endpoint is one side of an edge: a node identifier plus the port index
// the edge attaches to. The identifier is not required to match any node
// in the graph.
type Endpoint struct {
	Node string
	Port int
}

// Edge is a directed connection between two node ports carrying the
// physical flow measurements. The measurements stay float64 even when
// integral; only node data values collapse to int.
type Edge struct {
	From        Endpoint
	To          Endpoint
	Pressure    float64
	Enthalpy    float64
	Flow        float64
	Temperature float64
}

// Graph holds one parsed document. Nodes and Edges keep document order.
// Duplicate node IDs are preserved here; they collapse last-wins only in
// the map-shaped JSON serialization.
type Graph struct {
	Nodes []Node
	Edges []Edge
}
