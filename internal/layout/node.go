// Package layout implements the content-item tree behind the dockpane
// surface: nestable rows, columns, tabbed stacks and component leaves, the
// mutation operations that rearrange them at runtime, and the bubbling event
// protocol that lets any descendant notify the host coordinator.
//
// The package owns tree structure and lifecycle only. Geometry arithmetic,
// rendering, input and window creation live with the host: nodes carry an
// opaque Surface handle and delegate cross-cutting operations (selection,
// maximise, popout, resize) to the Coordinator.
package layout

// Node is a single item in the layout tree. Nodes are created by the tree's
// factory during a top-down construction pass, initialised top-down once
// attached, and destroyed bottom-up when removed. A destroyed node is
// terminal and must not be reattached.
//
// The children slice is the sole ownership record; parent is a navigation
// back-link kept consistent with exactly one entry in the owner's children.
type Node struct {
	tree   *Tree
	kind   Kind
	parent *Node

	children []*Node

	id             ID
	title          string
	componentName  string
	width          int
	height         int
	isClosable     bool
	reorderEnabled bool

	// activeItemIndex is only meaningful for KindStack.
	activeItemIndex int

	initialised bool
	maximised   bool
	destroyed   bool

	surface   Surface
	component any

	handlers map[string][]Handler
	pending  map[string]bool
}

// Kind returns the node's variant.
func (n *Node) Kind() Kind { return n.kind }

// Parent returns the owning node, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children in visual order. The slice is shared
// with the node; callers must not mutate it.
func (n *Node) Children() []*Node { return n.children }

// Tree returns the tree the node belongs to.
func (n *Node) Tree() *Tree { return n.tree }

// Title returns the display title.
func (n *Node) Title() string { return n.title }

// SetTitle updates the display title and announces the change.
func (n *Node) SetTitle(title string) {
	n.title = title
	n.Publish(EventTitleChanged, title)
}

// ComponentName returns the component selector of a KindComponent leaf.
func (n *Node) ComponentName() string { return n.componentName }

// Component returns the externally attached component instance, if any.
func (n *Node) Component() any { return n.component }

// SetComponent attaches the component instance a factory built for this
// leaf. ComponentsByName projects matches through this value.
func (n *Node) SetComponent(c any) { n.component = c }

// Surface returns the attached rendering handle, or nil.
func (n *Node) Surface() Surface { return n.surface }

// AttachSurface hands the node its rendering handle. Factories call this
// during construction; the engine only detaches it again on destroy.
func (n *Node) AttachSurface(s Surface) { n.surface = s }

// SizeWeights returns the proportional width and height weights.
func (n *Node) SizeWeights() (width, height int) { return n.width, n.height }

// SetSizeWeights updates the proportional size weights. Callers that need
// the change applied must re-propagate resize over the affected subtree.
func (n *Node) SetSizeWeights(width, height int) {
	n.width = width
	n.height = height
}

// IsClosable reports whether the node may be auto-collapsed once empty.
func (n *Node) IsClosable() bool { return n.isClosable }

// ReorderEnabled reports whether the host may drag-reorder this item.
func (n *Node) ReorderEnabled() bool { return n.reorderEnabled }

// ActiveItemIndex returns the selected child index of a stack.
func (n *Node) ActiveItemIndex() int { return n.activeItemIndex }

// SetActiveItemIndex selects the stack child at index, clamped to the
// current children range, and announces the change.
func (n *Node) SetActiveItemIndex(index int) {
	if index < 0 {
		index = 0
	}
	if max := len(n.children) - 1; index > max && max >= 0 {
		index = max
	}
	if index == n.activeItemIndex {
		return
	}
	n.activeItemIndex = index
	n.Publish(EventActiveItemChanged, index)
}

// Initialised reports whether the node has completed its init pass.
func (n *Node) Initialised() bool { return n.initialised }

// Destroyed reports whether the node has been torn down.
func (n *Node) Destroyed() bool { return n.destroyed }

// Maximised reports the orthogonal maximise toggle state.
func (n *Node) Maximised() bool { return n.maximised }

// Init runs the top-down initialisation pass: the node is marked
// initialised, every already-constructed child that has not been initialised
// is initialised in order, and creation is announced. Init runs either as
// part of the owning subtree's init pass or lazily when the node is attached
// to an already-initialised parent.
func (n *Node) Init() {
	if n.initialised || n.destroyed {
		return
	}
	n.initialised = true
	for _, c := range n.children {
		if !c.initialised {
			c.Init()
		}
	}
	n.Publish(EventItemCreated, n)
}

// Destroy tears the subtree down: descendants bottom-up first, then the
// node itself, with notifications around detaching the surface handle.
// Destruction is terminal.
func (n *Node) Destroy() {
	if n.destroyed {
		return
	}
	n.Publish(EventBeforeItemDestroyed, n)
	// The walk excludes the receiver; its own teardown is the direct call
	// below, after every descendant has been detached.
	n.CallDownwards(func(c *Node) { c.teardown() }, true, true)
	n.teardown()
	n.Publish(EventItemDestroyed, n)
}

func (n *Node) teardown() {
	if n.destroyed {
		return
	}
	if n.surface != nil {
		n.surface.Detach()
	}
	n.destroyed = true
}

// ToggleMaximise flips the maximise state and delegates the actual geometry
// change to the coordinator.
func (n *Node) ToggleMaximise() {
	if n.maximised {
		n.maximised = false
		n.tree.coordinator.MinimiseItem(n)
		n.Publish(EventMinimised, n)
	} else {
		n.maximised = true
		n.tree.coordinator.MaximiseItem(n)
		n.Publish(EventMaximised, n)
	}
	n.Publish(EventStateChanged, nil)
}

// Select asks the coordinator to make this item the selected one.
func (n *Node) Select() {
	n.tree.coordinator.SelectItem(n)
	n.Publish(EventSelectionChanged, n)
}

// Deselect asks the coordinator to drop this item from selection. The event
// payload is nil: nothing is selected from this item's point of view.
func (n *Node) Deselect() {
	n.tree.coordinator.DeselectItem(n)
	n.Publish(EventSelectionChanged, nil)
}

// PopOut detaches the subtree from the tree, keeping it alive, and hands it
// to the coordinator to float as a separate window. The root cannot pop out.
func (n *Node) PopOut() error {
	if n.parent == nil {
		return &StructuralError{Op: "popOut", Detail: "item has no parent"}
	}
	if err := n.parent.RemoveChild(n, true); err != nil {
		return err
	}
	n.tree.coordinator.PopOutItem(n)
	return nil
}
