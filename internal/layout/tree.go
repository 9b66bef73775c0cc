package layout

// Tree owns a single-rooted layout hierarchy together with the collaborators
// every node needs: the coordinator, the node factory, the sizer, the
// default-config table and the frame queue for batched event delivery.
type Tree struct {
	root        *Node
	coordinator Coordinator
	factory     Factory
	sizer       Sizer
	defaults    Defaults
	queue       *FrameQueue
	batched     map[string]bool
}

// Option configures a Tree before its root is constructed.
type Option func(*Tree)

// WithFactory installs a custom node factory. The factory is consulted for
// every node, including the root and children constructed recursively.
func WithFactory(f Factory) Option {
	return func(t *Tree) { t.factory = f }
}

// WithSizer installs the host's geometry calculator.
func WithSizer(s Sizer) Option {
	return func(t *Tree) { t.sizer = s }
}

// WithDefaults replaces the default-config table.
func WithDefaults(d Defaults) Option {
	return func(t *Tree) { t.defaults = d }
}

// WithBatchedEvents replaces the set of event names subject to per-frame
// coalescing. The stock set contains only EventStateChanged.
func WithBatchedEvents(names ...string) Option {
	return func(t *Tree) {
		t.batched = make(map[string]bool, len(names))
		for _, name := range names {
			t.batched[name] = true
		}
	}
}

// baseFactory builds plain nodes with no surfaces or components attached.
type baseFactory struct{}

func (baseFactory) CreateNode(t *Tree, cfg ItemConfig, parent *Node) (*Node, error) {
	return t.NewNode(cfg, parent)
}

// New constructs a tree from a resolved root configuration. Construction is
// top-down: each node's declared children are built before it returns. The
// tree is not initialised yet; call Init once the host surface is ready.
func New(cfg ItemConfig, coordinator Coordinator, opts ...Option) (*Tree, error) {
	if cfg.Kind != KindRoot {
		return nil, &ConfigurationError{Detail: "top-level item must be of kind root, got " + cfg.Kind.String()}
	}
	t := &Tree{
		coordinator: coordinator,
		factory:     baseFactory{},
		defaults:    NewDefaults(),
		queue:       &FrameQueue{},
		batched:     map[string]bool{EventStateChanged: true},
	}
	for _, opt := range opts {
		opt(t)
	}
	root, err := t.factory.CreateNode(t, cfg, nil)
	if err != nil {
		return nil, err
	}
	t.root = root
	return t, nil
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node { return t.root }

// Coordinator returns the tree's owning coordinator.
func (t *Tree) Coordinator() Coordinator { return t.coordinator }

// Queue returns the frame queue batched events flush through. Hosts drain
// it once per animation tick.
func (t *Tree) Queue() *FrameQueue { return t.queue }

// Init runs the top-down initialisation pass over the whole tree.
func (t *Tree) Init() { t.root.Init() }

// Destroy tears the whole tree down, children first.
func (t *Tree) Destroy() { t.root.Destroy() }

// NewNode is the base node constructor factories delegate to. It validates
// the configuration, fills unset keys from the default table, and constructs
// the declared children recursively through the tree's factory so that
// subclass-like factories see every descendant.
func (t *Tree) NewNode(cfg ItemConfig, parent *Node) (*Node, error) {
	if !cfg.Kind.IsContainer() && len(cfg.Content) > 0 {
		return nil, &ConfigurationError{
			Detail: "component items cannot declare content",
		}
	}
	if cfg.Kind == KindRoot && parent != nil {
		return nil, &ConfigurationError{Detail: "root item cannot be nested"}
	}
	n := &Node{
		tree:            t,
		kind:            cfg.Kind,
		parent:          parent,
		id:              cfg.ID,
		title:           cfg.Title,
		componentName:   cfg.ComponentName,
		width:           cfg.Width,
		height:          cfg.Height,
		isClosable:      t.defaults.IsClosable,
		reorderEnabled:  t.defaults.ReorderEnabled,
		activeItemIndex: cfg.ActiveItemIndex,
	}
	if cfg.IsClosable != nil {
		n.isClosable = *cfg.IsClosable
	}
	if cfg.ReorderEnabled != nil {
		n.reorderEnabled = *cfg.ReorderEnabled
	}
	if n.width == 0 {
		n.width = t.defaults.Width
	}
	if n.height == 0 {
		n.height = t.defaults.Height
	}
	if n.title == "" {
		n.title = cfg.ComponentName
	}
	for _, childCfg := range cfg.Content {
		child, err := t.factory.CreateNode(t, childCfg, n)
		if err != nil {
			return nil, err
		}
		n.children = append(n.children, child)
	}
	return n, nil
}

// NodeOrConfig is either an already-constructed *Node or a raw ItemConfig,
// accepted wherever the engine can normalize the latter into the former.
type NodeOrConfig interface {
	isNodeOrConfig()
}

func (*Node) isNodeOrConfig()      {}
func (ItemConfig) isNodeOrConfig() {}

// Normalize turns a NodeOrConfig into a constructed node, building it
// through the factory when given raw configuration. Already-constructed
// nodes pass through untouched.
func (t *Tree) Normalize(v NodeOrConfig, parent *Node) (*Node, error) {
	switch item := v.(type) {
	case *Node:
		return item, nil
	case ItemConfig:
		return t.factory.CreateNode(t, item, parent)
	}
	// The interface is sealed; no third case can exist.
	return nil, &ConfigurationError{Detail: "unsupported item value"}
}
