package fetx

// graphNode is one node of the intermediate bidirectional graph: the set
// of transistors it gates, and the set it is attached to via a terminal
// (source or drain, interchangeably).
type graphNode struct {
	gate     []int
	terminal []int
}

// graphTransistor is one transistor wired into the graph: its type, its
// control node, and its two symmetric terminal nodes.
type graphTransistor struct {
	typ       Type
	gate      int
	terminals [2]int
}

// graph is a read-only scaffold consumed once by the runtime builder
// and the conduction-tree builder, then discarded.
type graph struct {
	nodes       []graphNode
	transistors []graphTransistor
}

// buildGraph builds the intermediate bidirectional graph: count
// per-node fan-in/out, allocate one back-reference arena sized
// 3*len(transistors) and partition it into per-node gate/terminal
// slices, then fill it in a single further pass. Each transistor
// contributes exactly three references (one gate, two terminals), so
// the arena is exact and the three-index slice expressions keep append
// from ever reallocating out of it.
func buildGraph(nl Netlist, nodeCount int) *graph {
	gateCount := make([]int, nodeCount)
	termCount := make([]int, nodeCount)
	for _, d := range nl.Transistors {
		gateCount[d.Gate]++
		termCount[d.Source]++
		termCount[d.Drain]++
	}

	arena := make([]int, 3*len(nl.Transistors))
	nodes := make([]graphNode, nodeCount)
	offset := 0
	for i := 0; i < nodeCount; i++ {
		tEnd := offset + termCount[i]
		nodes[i].terminal = arena[offset:offset:tEnd]
		offset = tEnd

		gEnd := offset + gateCount[i]
		nodes[i].gate = arena[offset:offset:gEnd]
		offset = gEnd
	}

	transistors := make([]graphTransistor, len(nl.Transistors))
	for i, d := range nl.Transistors {
		transistors[i] = graphTransistor{
			typ:       d.Type,
			gate:      d.Gate,
			terminals: [2]int{d.Source, d.Drain},
		}
		nodes[d.Gate].gate = append(nodes[d.Gate].gate, i)
		nodes[d.Source].terminal = append(nodes[d.Source].terminal, i)
		nodes[d.Drain].terminal = append(nodes[d.Drain].terminal, i)
	}

	return &graph{nodes: nodes, transistors: transistors}
}

// other returns the terminal node of t on the opposite side from self,
// per the Design Notes' symmetric-terminal lookup: source and drain are
// never distinguished beyond position.
func (t graphTransistor) other(self int) int {
	if self == t.terminals[0] {
		return t.terminals[1]
	}
	return t.terminals[0]
}
