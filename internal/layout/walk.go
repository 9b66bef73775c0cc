package layout

// CallDownwards invokes visit on every node of the subtree rooted at n.
// It is the only recursive traversal primitive in the package.
//
// With bottomUp false the order is top-down: the receiver first (unless
// skipSelf), then each child subtree in children order. With bottomUp true
// every child subtree is visited before the node itself. skipSelf omits the
// receiver only; descendants are always visited.
//
// Resize propagation walks top-down including self; destruction walks
// bottom-up excluding self because the remover tears the receiver down
// directly.
func (n *Node) CallDownwards(visit func(*Node), bottomUp, skipSelf bool) {
	if !bottomUp && !skipSelf {
		visit(n)
	}
	for _, c := range n.children {
		c.CallDownwards(visit, bottomUp, false)
	}
	if bottomUp && !skipSelf {
		visit(n)
	}
}

// SetSize recomputes this node's geometry through the tree's sizer. The
// engine owns no layout arithmetic; the sizer translates size weights into
// host-surface geometry per kind.
func (n *Node) SetSize() {
	if n.tree.sizer != nil {
		n.tree.sizer.SetSize(n)
	}
}

// PropagateResize pushes a geometry recomputation top-down over the subtree,
// receiver included. Mutation operations call this after any structural
// change; hosts call it after the outer surface resizes.
func (n *Node) PropagateResize() {
	n.CallDownwards(func(c *Node) { c.SetSize() }, false, false)
}
