package layout

// ItemsByFilter collects every descendant for which pred holds, in
// pre-order: a child is tested and its subtree fully visited before the
// next sibling. The receiver itself is never tested. The walk holds live
// positions in children slices, so callers must not mutate the tree while
// it runs.
func (n *Node) ItemsByFilter(pred func(*Node) bool) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		for _, c := range cur.children {
			if pred(c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// ItemsByID returns every descendant carrying the given identifier.
func (n *Node) ItemsByID(id string) []*Node {
	return n.ItemsByFilter(func(c *Node) bool { return c.HasID(id) })
}

// ItemsByType returns every descendant of the given kind.
func (n *Node) ItemsByType(kind Kind) []*Node {
	return n.ItemsByFilter(func(c *Node) bool { return c.kind == kind })
}

// ComponentsByName returns the component instances attached to every
// descendant component leaf registered under name.
func (n *Node) ComponentsByName(name string) []any {
	items := n.ItemsByFilter(func(c *Node) bool {
		return c.kind == KindComponent && c.componentName == name
	})
	components := make([]any, len(items))
	for i, item := range items {
		components[i] = item.component
	}
	return components
}
