package layout

// Rect is a rectangle in host-surface coordinates.
type Rect struct {
	X, Y, W, H int
}

// Surface is the opaque rendering handle a host attaches to a node. The
// engine never inspects geometry beyond Bounds; everything else is lifecycle
// plumbing it invokes on the host's behalf.
type Surface interface {
	// Bounds returns the surface's current bounding rectangle.
	Bounds() Rect
	// Swap exchanges this surface's place in the host output with another,
	// used when a child is replaced in situ.
	Swap(with Surface)
	// Detach removes the surface from the host output permanently.
	Detach()
	// Show makes the surface visible.
	Show()
	// Hide makes the surface invisible without detaching it.
	Hide()
}

// Coordinator is the external owner of the whole tree: the ultimate
// recipient of bubbled events and the delegate for operations that cut
// across the tree, like selection and window geometry.
type Coordinator interface {
	// Emit receives an event that bubbled past the root.
	Emit(name string, ev *Event)
	// SelectItem makes the given item the selected one.
	SelectItem(n *Node)
	// DeselectItem drops the given item from selection.
	DeselectItem(n *Node)
	// UpdateSize recomputes the whole surface geometry.
	UpdateSize()
	// MaximiseItem grows the item to cover the host surface.
	MaximiseItem(n *Node)
	// MinimiseItem restores a maximised item.
	MinimiseItem(n *Node)
	// PopOutItem floats an already-detached subtree as a separate window.
	PopOutItem(n *Node)
}

// Sizer translates a node's size weights into concrete geometry on its
// surface. Implementations switch over the node kind; the engine only
// decides when to call it and in which order.
type Sizer interface {
	SetSize(n *Node)
}

// Factory constructs concrete nodes from configuration. CreateNode must
// construct the node's declared children recursively (Tree.NewNode does
// this when delegated to) and may attach surfaces and component instances
// before returning.
type Factory interface {
	CreateNode(t *Tree, cfg ItemConfig, parent *Node) (*Node, error)
}
