package fetx

// node is one drivable point in the netlist. counts holds the four
// countable drive totals (Low, High, UnstableLow, UnstableHigh order, per
// driveIndex); state is the lattice value derived from counts by
// nodeState whenever counts changes. gateHead threads the intrusive list
// of transistors this node gates (built once, read-only after buildEngine).
type node struct {
	counts   [4]int
	state    State
	isInput  bool
	gateHead int
}

// transistor is one switching element. gate/terminals mirror the graph;
// conduction is recomputed by updateTransistor whenever the gate node's
// state changes. gateChainNext threads this transistor onto its gate
// node's list alongside any other transistor sharing that gate.
// linksHead threads the path links owned by this transistor, shared
// across every input's conduction tree: a conduction change must reach
// every tree position that crosses this transistor, whichever input
// grew it.
type transistor struct {
	typ        Type
	gate       int
	terminals  [2]int
	conduction Conduction

	gateChainNext int
	linksHead     int

	listed   bool
	nextWork int
}

// link is one edge of a conduction tree: the transistor it crosses, and
// the tree nodes immediately upstream and downstream of that crossing.
// nextOnTransistor threads every link belonging to the same transistor,
// across all input trees, onto that transistor's linksHead chain.
type link struct {
	transistor       int
	upTree           int
	downTree         int
	nextOnTransistor int
}

// treeNode is one node of a per-input conduction tree. underlying is the
// netlist node this tree node mirrors; upLink is the link connecting it
// to its parent in the tree (-1 at the root). downstream lists the links
// leading to its children. state is this tree node's locally-resolved
// drive state, separate from the underlying node's own aggregate state.
type treeNode struct {
	underlying int
	upLink     int
	downstream []int

	state State

	listed   bool
	nextWork int
}

// Engine holds every array the resolution algorithm operates on. All
// cross-references are array indices, never pointers, so each arena has
// a single owner and the dense node/transistor/link mesh stays free of
// reference cycles.
type Engine struct {
	nodes       []node
	transistors []transistor
	links       []link
	treeNodes   []treeNode

	rootTreeNodes []int

	transistorWorkHead int
	treeWorkHead       int

	stats Stats
}

const none = -1

// buildEngine allocates and wires the runtime arrays from the
// intermediate graph, then builds one conduction tree per input root.
// Every node starts Undriven, every transistor Unstable, both worklists
// empty.
func buildEngine(g *graph, nl Netlist) *Engine {
	e := &Engine{
		nodes:              make([]node, len(g.nodes)),
		transistors:        make([]transistor, len(g.transistors)),
		transistorWorkHead: none,
		treeWorkHead:       none,
	}

	for i := range e.nodes {
		e.nodes[i].state = Undriven
		e.nodes[i].gateHead = none
	}
	for i, gt := range g.transistors {
		e.transistors[i] = transistor{
			typ:           gt.typ,
			gate:          gt.gate,
			terminals:     gt.terminals,
			conduction:    Unstable,
			gateChainNext: none,
			linksHead:     none,
		}
		gn := &e.nodes[gt.gate]
		e.transistors[i].gateChainNext = gn.gateHead
		gn.gateHead = i
	}
	for _, n := range nl.Inputs {
		e.nodes[n].isInput = true
	}

	e.rootTreeNodes = make([]int, len(nl.Inputs))
	for i, root := range nl.Inputs {
		e.rootTreeNodes[i] = e.buildConductionTree(g, root)
	}

	return e
}
