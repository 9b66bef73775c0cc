package layout

// ItemConfig is the plain, persistable description of an item and its
// declared children. The runtime tree is the single source of truth; the
// config view of a live node is derived from it by projection (Node.Config)
// rather than maintained in parallel.
type ItemConfig struct {
	Kind    Kind
	Content []ItemConfig

	// Width and Height are proportional size weights interpreted by the
	// host's sizer, not pixel values. Zero means "use the default weight".
	Width  int
	Height int

	ID    ID
	Title string

	// ComponentName selects the component a KindComponent leaf hosts.
	ComponentName string

	// IsClosable and ReorderEnabled default to true when nil.
	IsClosable     *bool
	ReorderEnabled *bool

	// ActiveItemIndex is the selected tab of a stack.
	ActiveItemIndex int
}

// Defaults is the default-config table consulted once at node construction
// for every key the item config leaves unset.
type Defaults struct {
	IsClosable     bool
	ReorderEnabled bool
	Width          int
	Height         int
}

// NewDefaults returns the stock default table.
func NewDefaults() Defaults {
	return Defaults{
		IsClosable:     true,
		ReorderEnabled: true,
		Width:          50,
		Height:         50,
	}
}

// Closable returns an ItemConfig closability override.
func Closable(v bool) *bool { return &v }

// Config derives the serializable configuration of the subtree rooted at n.
// The result mirrors the current children order exactly, so the config
// content and the runtime children can never drift apart.
func (n *Node) Config() ItemConfig {
	cfg := ItemConfig{
		Kind:            n.kind,
		Width:           n.width,
		Height:          n.height,
		ID:              n.id,
		Title:           n.title,
		ComponentName:   n.componentName,
		IsClosable:      Closable(n.isClosable),
		ReorderEnabled:  Closable(n.reorderEnabled),
		ActiveItemIndex: n.activeItemIndex,
	}
	if len(n.children) > 0 {
		cfg.Content = make([]ItemConfig, len(n.children))
		for i, c := range n.children {
			cfg.Content[i] = c.Config()
		}
	}
	return cfg
}
