package fetx

// treeFrame is one level of the explicit DFS stack (recursion here
// could go as deep as the transistor count on a pathological circuit).
// node is the graph node being expanded, treeIdx the tree node already
// created for it, and iter the next position to examine in that node's
// terminal-connection list.
type treeFrame struct {
	treeIdx int
	node    int
	iter    int
}

// buildConductionTree grows one per-input conduction tree from root,
// threading new links onto whichever transistor each edge crosses (a
// transistor's links accumulate across every tree built this way).
// onPath marks the underlying nodes of the current DFS descent, set on
// descent and cleared on backtrack, so no root-to-leaf path revisits a
// node.
func (e *Engine) buildConductionTree(g *graph, root int) int {
	onPath := make([]bool, len(e.nodes))

	rootIdx := len(e.treeNodes)
	e.treeNodes = append(e.treeNodes, treeNode{underlying: root, upLink: none, state: Undriven})
	onPath[root] = true

	stack := []treeFrame{{treeIdx: rootIdx, node: root, iter: 0}}

	for len(stack) > 0 {
		top := len(stack) - 1
		node := stack[top].node
		terms := g.nodes[node].terminal

		if stack[top].iter >= len(terms) {
			onPath[node] = false
			stack = stack[:top]
			continue
		}

		candidateIdx := terms[stack[top].iter]
		stack[top].iter++
		candidate := g.transistors[candidateIdx]
		connected := candidate.other(node)

		if e.pathAllows(g, stack[top].treeIdx, candidate) && !onPath[connected] {
			linkIdx := len(e.links)
			e.links = append(e.links, link{
				transistor:       candidateIdx,
				upTree:           stack[top].treeIdx,
				downTree:         none,
				nextOnTransistor: e.transistors[candidateIdx].linksHead,
			})
			e.transistors[candidateIdx].linksHead = linkIdx

			childIdx := len(e.treeNodes)
			e.treeNodes = append(e.treeNodes, treeNode{
				underlying: connected,
				upLink:     linkIdx,
				state:      Undriven,
			})
			e.links[linkIdx].downTree = childIdx
			e.treeNodes[stack[top].treeIdx].downstream = append(e.treeNodes[stack[top].treeIdx].downstream, linkIdx)

			onPath[connected] = true
			stack = append(stack, treeFrame{treeIdx: childIdx, node: connected, iter: 0})
		}
	}

	return rootIdx
}

// pathAllows walks from the tree node at treeIdx up to the root, one
// link at a time, and rejects candidate if it would form a permanent
// complementary pair with an ancestor sharing its gate (an N/P pair
// gated by the same node always conducts in exactly one of the two, so
// traversing both is redundant) or if candidate is gated by the node
// at treeIdx itself (a transistor gating the path it would extend).
// The walk's short-circuit order matters: reaching the root accepts the
// candidate, stopping early rejects it, so a candidate examined at the
// root itself is always accepted.
func (e *Engine) pathAllows(g *graph, treeIdx int, candidate graphTransistor) bool {
	standing := e.treeNodes[treeIdx].underlying
	el := treeIdx
	for e.treeNodes[el].upLink != none {
		upLink := e.treeNodes[el].upLink
		ancestor := g.transistors[e.links[upLink].transistor]

		if ancestor.gate == candidate.gate && ancestor.typ != candidate.typ {
			return false
		}
		if standing == candidate.gate {
			return false
		}
		el = e.links[upLink].upTree
	}
	return true
}
