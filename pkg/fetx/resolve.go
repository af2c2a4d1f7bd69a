package fetx

// enqueueTransistor lists a transistor for conduction recomputation,
// idempotently: a transistor already on the worklist is left alone.
func (e *Engine) enqueueTransistor(idx int) {
	t := &e.transistors[idx]
	if t.listed {
		return
	}
	t.listed = true
	t.nextWork = e.transistorWorkHead
	e.transistorWorkHead = idx
}

// enqueueTreeNode lists a tree node for state recomputation, idempotently.
func (e *Engine) enqueueTreeNode(idx int) {
	tn := &e.treeNodes[idx]
	if tn.listed {
		return
	}
	tn.listed = true
	tn.nextWork = e.treeWorkHead
	e.treeWorkHead = idx
}

// recomputeConduction derives a transistor's conduction state from its
// gate node's current lattice state. A change fans out to every tree
// node immediately downstream of this transistor, across every input
// tree it happens to sit in.
func (e *Engine) recomputeConduction(idx int) {
	t := &e.transistors[idx]
	newConduction := conductionFor(t.typ, e.nodes[t.gate].state)
	if newConduction == t.conduction {
		return
	}
	t.conduction = newConduction
	e.stats.ConductionChanges++
	for linkIdx := t.linksHead; linkIdx != none; linkIdx = e.links[linkIdx].nextOnTransistor {
		e.enqueueTreeNode(e.links[linkIdx].downTree)
	}
}

// updateTreeNode recomputes a non-root tree node's state from the state
// of its parent and the conduction of the transistor between them. Root
// tree nodes (upLink == none) are driven only by SetInput and are never
// enqueued for this.
func (e *Engine) updateTreeNode(idx int) {
	tn := e.treeNodes[idx]
	if tn.upLink == none {
		return
	}
	up := e.links[tn.upLink]
	t := e.transistors[up.transistor]
	upstream := e.treeNodes[up.upTree].state
	e.setTreeNodeState(idx, linkOutput(t.typ, t.conduction, upstream))
}

// setTreeNodeState applies a tree node's new state: it adjusts the
// underlying node's drive counts (and therefore its lattice state), then
// fans the change out to every tree node immediately downstream in this
// tree and to every transistor this underlying node gates.
func (e *Engine) setTreeNodeState(idx int, newState State) {
	tn := &e.treeNodes[idx]
	if newState == tn.state {
		return
	}

	nd := &e.nodes[tn.underlying]
	if i, ok := driveIndex(tn.state); ok {
		nd.counts[i]--
	}
	if i, ok := driveIndex(newState); ok {
		nd.counts[i]++
	}
	nd.state = nodeState(nd.counts)
	tn.state = newState
	e.stats.DriveChanges++

	for _, linkIdx := range tn.downstream {
		e.enqueueTreeNode(e.links[linkIdx].downTree)
	}
	for fetIdx := nd.gateHead; fetIdx != none; fetIdx = e.transistors[fetIdx].gateChainNext {
		e.enqueueTransistor(fetIdx)
	}
}

// Resolve drains the transistor worklist, then the tree-node worklist,
// to a fixed point. The transistor phase never lists another transistor
// mid-drain (a conduction change only ever lists tree nodes), so one pass
// over the chain captured at entry suffices; the tree-node phase can and
// does list further tree nodes as a state propagates downstream, so its
// loop re-reads the worklist head on every iteration rather than
// snapshotting the chain up front. Both loops stash the next index
// before clearing the listed flag, so an entry re-listing itself cannot
// corrupt the walk.
//
// Resolve reports whether the transistor worklist is empty once both
// phases have settled; a false return means the tree-node phase listed
// at least one transistor (via a gate it drives) for a subsequent call.
func (e *Engine) Resolve() bool {
	e.stats.ResolveCalls++
	for e.transistorWorkHead != none {
		idx := e.transistorWorkHead
		e.transistorWorkHead = e.transistors[idx].nextWork
		e.transistors[idx].listed = false
		e.recomputeConduction(idx)
	}

	for e.treeWorkHead != none {
		idx := e.treeWorkHead
		e.treeWorkHead = e.treeNodes[idx].nextWork
		e.treeNodes[idx].listed = false
		e.updateTreeNode(idx)
	}

	return e.transistorWorkHead == none
}

// countMultiDriven counts nodes currently in the UnstableMultiple state.
func (e *Engine) countMultiDriven() int {
	count := 0
	for i := range e.nodes {
		if e.nodes[i].state == UnstableMultiple {
			count++
		}
	}
	return count
}
