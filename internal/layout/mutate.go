package layout

import "slices"

// AddChild appends child to the node's children.
func (n *Node) AddChild(child *Node) {
	n.AddChildAt(child, len(n.children))
}

// AddChildAt inserts child at index, clamped to the children range. The
// child is reparented to n and, when n is already initialised, initialised
// immediately. Size propagation is deliberately not triggered here; callers
// that need it call PropagateResize once their batch of mutations is done.
func (n *Node) AddChildAt(child *Node, index int) {
	if index < 0 || index > len(n.children) {
		index = len(n.children)
	}
	n.children = slices.Insert(n.children, index, child)
	child.parent = n
	if n.initialised && !child.initialised {
		child.Init()
	}
	n.Publish(EventStateChanged, nil)
}

// RemoveChild detaches child from the node. Unless keepChild is set, the
// child's subtree is destroyed. When the removal leaves a closable non-root
// container empty, the container removes itself from its own parent; the
// collapse cascades upward until it reaches the root, a non-closable
// ancestor, or an ancestor that still has children.
//
// A child the node does not own is a StructuralError and leaves the tree
// unmodified.
func (n *Node) RemoveChild(child *Node, keepChild bool) error {
	index := slices.Index(n.children, child)
	if index == -1 {
		return &StructuralError{Op: "removeChild", Detail: "unknown child"}
	}
	if !keepChild {
		child.Destroy()
	}
	n.children = slices.Delete(n.children, index, index+1)
	child.parent = nil

	n.childRemoved(index)

	if len(n.children) > 0 {
		n.PropagateResize()
	} else if n.kind != KindRoot && n.isClosable && n.parent != nil {
		return n.parent.RemoveChild(n, false)
	}
	n.Publish(EventStateChanged, nil)
	return nil
}

// childRemoved applies kind-specific bookkeeping after a removal at index.
func (n *Node) childRemoved(index int) {
	switch n.kind {
	case KindStack:
		// Keep the active tab pointing at the same remaining child.
		if index < n.activeItemIndex {
			n.activeItemIndex--
		}
		if max := len(n.children) - 1; n.activeItemIndex > max && max >= 0 {
			n.activeItemIndex = max
		}
	case KindRoot, KindRow, KindColumn, KindComponent:
	}
}

// ReplaceChild swaps oldChild for a new item, which may be a constructed
// node or raw configuration to be built through the factory. The rendering
// handles are exchanged in place, kind-specific bookkeeping runs (a stack
// revalidates its tab strip), the new child is initialised if the node
// already is, and geometry is re-propagated over the subtree.
func (n *Node) ReplaceChild(oldChild *Node, with NodeOrConfig, destroyOld bool) error {
	child, err := n.tree.Normalize(with, n)
	if err != nil {
		return err
	}
	index := slices.Index(n.children, oldChild)
	if index == -1 {
		return &StructuralError{Op: "replaceChild", Detail: "unknown child"}
	}
	if oldChild.surface != nil && child.surface != nil {
		oldChild.surface.Swap(child.surface)
	}
	if destroyOld {
		oldChild.Destroy()
	}
	n.children[index] = child
	child.parent = n
	oldChild.parent = nil

	n.childReplaced(child, index)

	if n.initialised && !child.initialised {
		child.Init()
	}
	n.PropagateResize()
	n.Publish(EventStateChanged, nil)
	return nil
}

// childReplaced applies kind-specific bookkeeping after index was swapped.
func (n *Node) childReplaced(child *Node, index int) {
	switch n.kind {
	case KindStack:
		if n.activeItemIndex == index {
			n.Publish(EventActiveItemChanged, index)
			if child.surface != nil {
				child.surface.Show()
			}
		}
	case KindRoot, KindRow, KindColumn, KindComponent:
	}
}

// Remove detaches the node from its parent, destroying its subtree. The
// root has no parent and cannot be removed.
func (n *Node) Remove() error {
	if n.parent == nil {
		return &StructuralError{Op: "remove", Detail: "item has no parent"}
	}
	return n.parent.RemoveChild(n, false)
}
