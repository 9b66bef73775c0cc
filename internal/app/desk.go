// Package app hosts the dockpane terminal frontend: a bubbletea model that
// owns the layout tree, feeds it geometry, reacts to its events and renders
// it onto a lipgloss canvas.
package app

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/dockpane/dockpane/internal/config"
	"github.com/dockpane/dockpane/internal/layout"
)

// statusBarHeight is the row reserved at the bottom of the screen.
const statusBarHeight = 1

// FloatingPane is a popped-out subtree rendered above the docked layout.
type FloatingPane struct {
	Node *layout.Node
	Z    int
}

// Desk is the main application state: the docked tree, floating panes and
// the interaction bookkeeping around them. It is both the bubbletea model
// and the tree's coordinator.
type Desk struct {
	Tree     *layout.Tree
	Config   *config.Config
	Keybinds *config.KeybindRegistry
	Floating []*FloatingPane

	Width  int
	Height int

	ShowHelp     bool
	LeaderActive bool

	// LayoutChangeChan carries reloaded layouts from the file watcher into
	// the update loop.
	LayoutChangeChan chan layout.ItemConfig

	focused   *layout.Node
	maximised *layout.Node
	factory   *deskFactory
	logger    *log.Logger
	paneSeq   int
	nextZ     int
	status    string
}

// NewDesk builds the desk around an initial layout. The tree is constructed
// and initialised; geometry is applied on the first WindowSizeMsg.
func NewDesk(cfg *config.Config, rootCfg layout.ItemConfig, logger *log.Logger) (*Desk, error) {
	if logger == nil {
		logger = log.Default()
	}
	m := &Desk{
		Config:           cfg,
		Keybinds:         config.NewKeybindRegistry(cfg),
		LayoutChangeChan: make(chan layout.ItemConfig, 1),
		factory:          newDeskFactory(),
		logger:           logger,
		nextZ:            10,
	}
	tree, err := layout.New(rootCfg, m,
		layout.WithFactory(m.factory),
		layout.WithSizer(deskSizer{}))
	if err != nil {
		return nil, err
	}
	m.Tree = tree
	tree.Init()
	m.focusFirst()
	return m, nil
}

// RegisterComponent installs a component builder consulted for new leaves.
func (m *Desk) RegisterComponent(name string, builder ComponentBuilder) {
	m.factory.Register(name, builder)
}

// Focused returns the focused component leaf, or nil.
func (m *Desk) Focused() *layout.Node { return m.focused }

// Emit receives every event that bubbles past a tree root.
func (m *Desk) Emit(name string, ev *layout.Event) {
	origin := ""
	if ev.Origin != nil {
		origin = ev.Origin.Title()
	}
	m.logger.Debug("layout event", "name", name, "origin", origin)

	switch name {
	case layout.EventItemDestroyed:
		if m.focused != nil && m.focused.Destroyed() {
			m.focusFirst()
		}
		if m.maximised != nil && m.maximised.Destroyed() {
			m.maximised = nil
		}
	case layout.EventStateChanged:
		// Geometry may be stale after a structural change burst.
		m.UpdateSize()
	}
}

// SelectItem focuses a component and reveals it through any enclosing
// stacks.
func (m *Desk) SelectItem(n *layout.Node) {
	m.focused = n
	for cur := n; cur.Parent() != nil; cur = cur.Parent() {
		parent := cur.Parent()
		if parent.Kind() != layout.KindStack {
			continue
		}
		if idx := slices.Index(parent.Children(), cur); idx >= 0 {
			parent.SetActiveItemIndex(idx)
			parent.PropagateResize()
		}
	}
}

// DeselectItem drops the item from focus. When the focused component is
// deselected, focus advances to the next component instead of going dark.
func (m *Desk) DeselectItem(n *layout.Node) {
	if m.focused != n {
		return
	}
	m.focused = nil
	for _, item := range m.Components() {
		if item != n {
			item.Select()
			return
		}
	}
}

// UpdateSize reapplies geometry over the docked tree, floating panes and
// any maximised item.
func (m *Desk) UpdateSize() {
	if m.Width == 0 || m.Height == 0 {
		return
	}
	root := m.Tree.Root()
	if s := surfaceOf(root); s != nil {
		s.SetRect(layout.Rect{X: 0, Y: 0, W: m.Width, H: max(m.Height-statusBarHeight, 0)})
	}
	root.PropagateResize()

	for _, f := range m.Floating {
		f.Node.PropagateResize()
	}
	if m.maximised != nil {
		m.applyMaximise(m.maximised)
	}
}

// MaximiseItem grows the item over the whole working area.
func (m *Desk) MaximiseItem(n *layout.Node) {
	if m.maximised != nil && m.maximised != n {
		// Only one item can be maximised; restore the previous one first.
		prev := m.maximised
		m.maximised = nil
		if prev.Maximised() {
			prev.ToggleMaximise()
		}
	}
	m.maximised = n
	m.applyMaximise(n)
}

func (m *Desk) applyMaximise(n *layout.Node) {
	if s := surfaceOf(n); s != nil {
		s.SetRect(layout.Rect{X: 0, Y: 0, W: m.Width, H: max(m.Height-statusBarHeight, 0)})
		s.z = m.nextZ + 100
		s.Show()
	}
	n.PropagateResize()
}

// MinimiseItem restores the docked geometry after a maximise.
func (m *Desk) MinimiseItem(n *layout.Node) {
	if m.maximised == n {
		m.maximised = nil
	}
	if s := surfaceOf(n); s != nil {
		s.z = 0
	}
	m.UpdateSize()
}

// PopOutItem floats a detached subtree as a cascading window above the
// docked layout.
func (m *Desk) PopOutItem(n *layout.Node) {
	offset := len(m.Floating) + 1
	w := max(m.Width/2, 20)
	h := max((m.Height-statusBarHeight)/2, 6)
	rect := layout.Rect{X: 2 * offset, Y: offset, W: w, H: h}

	m.nextZ++
	if s := surfaceOf(n); s != nil {
		s.SetRect(rect)
		s.z = m.nextZ
		s.Show()
	}
	n.PropagateResize()
	m.Floating = append(m.Floating, &FloatingPane{Node: n, Z: m.nextZ})

	if leaf := firstComponent(n); leaf != nil {
		leaf.Select()
	}
	m.setStatus(fmt.Sprintf("popped out %s", n.Title()))
}

// Components returns every component leaf in focus order: docked tree
// first, then floating panes in stacking order.
func (m *Desk) Components() []*layout.Node {
	items := m.Tree.Root().ItemsByType(layout.KindComponent)
	for _, f := range m.Floating {
		if f.Node.Kind() == layout.KindComponent {
			items = append(items, f.Node)
		} else {
			items = append(items, f.Node.ItemsByType(layout.KindComponent)...)
		}
	}
	return items
}

// FocusNext moves focus by step through the component ring.
func (m *Desk) FocusNext(step int) {
	items := m.Components()
	if len(items) == 0 {
		m.focused = nil
		return
	}
	idx := slices.Index(items, m.focused)
	if idx < 0 {
		idx = 0
	} else {
		idx = ((idx+step)%len(items) + len(items)) % len(items)
	}
	items[idx].Select()
}

func (m *Desk) focusFirst() {
	items := m.Components()
	if len(items) == 0 {
		m.focused = nil
		return
	}
	items[0].Select()
}

// firstComponent returns the first component leaf of a subtree, or the node
// itself when it is one.
func firstComponent(n *layout.Node) *layout.Node {
	if n.Kind() == layout.KindComponent {
		return n
	}
	if items := n.ItemsByType(layout.KindComponent); len(items) > 0 {
		return items[0]
	}
	return nil
}

// newPaneConfig names a fresh component leaf.
func (m *Desk) newPaneConfig() layout.ItemConfig {
	m.paneSeq++
	return layout.ItemConfig{
		Kind:          layout.KindComponent,
		ComponentName: fmt.Sprintf("pane-%d", m.paneSeq),
	}
}

// SplitFocused splits the focused component along the given container kind:
// the new pane lands next to it inside a row or column.
func (m *Desk) SplitFocused(kind layout.Kind) error {
	focused := m.focused
	if focused == nil {
		return nil
	}
	parent := focused.Parent()

	// Same-orientation parents just take one more child.
	if parent != nil && parent.Kind() == kind {
		child, err := m.Tree.Normalize(m.newPaneConfig(), parent)
		if err != nil {
			return err
		}
		idx := slices.Index(parent.Children(), focused)
		parent.AddChildAt(child, idx+1)
		parent.PropagateResize()
		child.Select()
		return nil
	}

	wrapper, err := m.wrapFocused(kind)
	if err != nil {
		return err
	}
	child, err := m.Tree.Normalize(m.newPaneConfig(), wrapper)
	if err != nil {
		return err
	}
	wrapper.AddChild(child)
	wrapper.PropagateResize()
	child.Select()
	return nil
}

// NewTab adds a pane to the stack enclosing the focused component, wrapping
// the component in a fresh stack when it is not tabbed yet.
func (m *Desk) NewTab() error {
	focused := m.focused
	if focused == nil {
		return nil
	}
	stack := focused.Parent()
	if stack == nil || stack.Kind() != layout.KindStack {
		var err error
		stack, err = m.wrapFocused(layout.KindStack)
		if err != nil {
			return err
		}
	}
	child, err := m.Tree.Normalize(m.newPaneConfig(), stack)
	if err != nil {
		return err
	}
	stack.AddChild(child)
	stack.SetActiveItemIndex(len(stack.Children()) - 1)
	stack.PropagateResize()
	child.Select()
	return nil
}

// wrapFocused replaces the focused component in place with a new container
// of the given kind and reattaches the component as its first child. The
// surface swap inside ReplaceChild hands the container the component's
// geometry.
func (m *Desk) wrapFocused(kind layout.Kind) (*layout.Node, error) {
	focused := m.focused
	parent := focused.Parent()

	if parent == nil {
		// A floating pane's root has no parent; wrap it directly.
		wrapper, err := m.Tree.Normalize(layout.ItemConfig{Kind: kind}, nil)
		if err != nil {
			return nil, err
		}
		if ws, fs := surfaceOf(wrapper), surfaceOf(focused); ws != nil && fs != nil {
			ws.SetRect(fs.rect)
			ws.z = fs.z
		}
		wrapper.AddChild(focused)
		for _, f := range m.Floating {
			if f.Node == focused {
				f.Node = wrapper
			}
		}
		wrapper.Init()
		return wrapper, nil
	}

	idx := slices.Index(parent.Children(), focused)
	if err := parent.ReplaceChild(focused, layout.ItemConfig{Kind: kind}, false); err != nil {
		return nil, err
	}
	wrapper := parent.Children()[idx]
	wrapper.AddChild(focused)
	return wrapper, nil
}

// CloseFocused removes the focused component. Empty closable ancestors
// collapse with it; floating panes reduced to nothing disappear.
func (m *Desk) CloseFocused() error {
	focused := m.focused
	if focused == nil {
		return nil
	}
	if focused.Parent() == nil {
		m.removeFloating(focused)
		focused.Destroy()
		m.focusFirst()
		return nil
	}
	if err := focused.Remove(); err != nil {
		return err
	}
	m.pruneFloating()
	m.focusFirst()
	m.UpdateSize()
	return nil
}

// CycleTab activates the next or previous tab of the enclosing stack.
func (m *Desk) CycleTab(step int) {
	stack := enclosingStack(m.focused)
	if stack == nil {
		return
	}
	count := len(stack.Children())
	if count == 0 {
		return
	}
	next := ((stack.ActiveItemIndex()+step)%count + count) % count
	stack.SetActiveItemIndex(next)
	stack.PropagateResize()
	if leaf := firstComponent(stack.Children()[next]); leaf != nil {
		leaf.Select()
	}
}

// enclosingStack walks up to the nearest stack ancestor.
func enclosingStack(n *layout.Node) *layout.Node {
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur.Kind() == layout.KindStack {
			return cur
		}
	}
	return nil
}

// ToggleMaximiseFocused flips the maximise state of the focused component.
func (m *Desk) ToggleMaximiseFocused() {
	if m.focused == nil {
		return
	}
	m.focused.ToggleMaximise()
}

// PopOutFocused detaches the focused component into a floating pane.
func (m *Desk) PopOutFocused() error {
	if m.focused == nil {
		return nil
	}
	if m.focused.Parent() == nil {
		// Already floating.
		return nil
	}
	return m.focused.PopOut()
}

// SaveLayout persists the docked tree's projected configuration.
func (m *Desk) SaveLayout() error {
	path, err := config.LayoutPath()
	if err != nil {
		return err
	}
	if err := config.SaveLayout(path, m.Tree.Root().Config()); err != nil {
		return err
	}
	m.setStatus("layout saved")
	m.logger.Info("layout saved", "path", path)
	return nil
}

// ReloadLayout swaps the docked tree for a freshly loaded configuration.
// Floating panes survive the reload.
func (m *Desk) ReloadLayout(rootCfg layout.ItemConfig) error {
	tree, err := layout.New(rootCfg, m,
		layout.WithFactory(m.factory),
		layout.WithSizer(deskSizer{}))
	if err != nil {
		return err
	}
	old := m.Tree
	m.Tree = tree
	tree.Init()
	old.Destroy()
	m.maximised = nil
	m.focusFirst()
	m.UpdateSize()
	m.setStatus("layout reloaded")
	return nil
}

func (m *Desk) removeFloating(n *layout.Node) {
	m.Floating = slices.DeleteFunc(m.Floating, func(f *FloatingPane) bool {
		return f.Node == n
	})
}

// pruneFloating drops floating entries whose subtree has been destroyed.
func (m *Desk) pruneFloating() {
	m.Floating = slices.DeleteFunc(m.Floating, func(f *FloatingPane) bool {
		return f.Node.Destroyed()
	})
}

func (m *Desk) setStatus(s string) { m.status = s }
