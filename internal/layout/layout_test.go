package layout_test

import (
	"testing"

	"github.com/dockpane/dockpane/internal/layout"
)

// recordingCoordinator captures every call the tree delegates outward.
type recordingCoordinator struct {
	emitted    []recordedEvent
	selected   []*layout.Node
	deselected []*layout.Node
	maximised  []*layout.Node
	minimised  []*layout.Node
	popouts    []*layout.Node
	resizes    int
}

type recordedEvent struct {
	name string
	ev   *layout.Event
}

func (c *recordingCoordinator) Emit(name string, ev *layout.Event) {
	c.emitted = append(c.emitted, recordedEvent{name: name, ev: ev})
}

func (c *recordingCoordinator) SelectItem(n *layout.Node) { c.selected = append(c.selected, n) }

func (c *recordingCoordinator) DeselectItem(n *layout.Node) {
	c.deselected = append(c.deselected, n)
}

func (c *recordingCoordinator) UpdateSize()                 { c.resizes++ }
func (c *recordingCoordinator) MaximiseItem(n *layout.Node) { c.maximised = append(c.maximised, n) }
func (c *recordingCoordinator) MinimiseItem(n *layout.Node) { c.minimised = append(c.minimised, n) }
func (c *recordingCoordinator) PopOutItem(n *layout.Node)   { c.popouts = append(c.popouts, n) }

// count returns how many captured events carry the given name.
func (c *recordingCoordinator) count(name string) int {
	total := 0
	for _, e := range c.emitted {
		if e.name == name {
			total++
		}
	}
	return total
}

// fakeSurface is a minimal Surface for geometry and lifecycle assertions.
type fakeSurface struct {
	rect     layout.Rect
	detached bool
	hidden   bool
	shown    bool
	swaps    int
}

func (s *fakeSurface) Bounds() layout.Rect { return s.rect }
func (s *fakeSurface) Detach()             { s.detached = true }
func (s *fakeSurface) Hide()               { s.hidden = true }
func (s *fakeSurface) Show()               { s.shown = true; s.hidden = false }

func (s *fakeSurface) Swap(with layout.Surface) {
	s.swaps++
	if other, ok := with.(*fakeSurface); ok {
		s.rect, other.rect = other.rect, s.rect
	}
}

// component builds a component leaf config.
func component(name string, ids ...string) layout.ItemConfig {
	return layout.ItemConfig{
		Kind:          layout.KindComponent,
		ComponentName: name,
		ID:            layout.ListID(ids...),
	}
}

// container builds a container config around the given children.
func container(kind layout.Kind, content ...layout.ItemConfig) layout.ItemConfig {
	return layout.ItemConfig{Kind: kind, Content: content}
}

// newTestTree constructs and initialises a tree for the given root content.
func newTestTree(t *testing.T, coord *recordingCoordinator, content ...layout.ItemConfig) *layout.Tree {
	t.Helper()
	tree, err := layout.New(container(layout.KindRoot, content...), coord)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	tree.Init()
	return tree
}

// checkInvariants verifies that the subtree is acyclic, that every child's
// parent back-link agrees with its owner, and that the derived config view
// mirrors the children order at every level.
func checkInvariants(t *testing.T, n *layout.Node) {
	t.Helper()
	seen := map[*layout.Node]bool{}
	var walk func(*layout.Node)
	walk = func(cur *layout.Node) {
		if seen[cur] {
			t.Fatalf("node %s visited twice: tree contains a cycle or double parenting", cur.Kind())
		}
		seen[cur] = true
		cfg := cur.Config()
		if len(cfg.Content) != len(cur.Children()) {
			t.Fatalf("config content length %d does not match %d children", len(cfg.Content), len(cur.Children()))
		}
		for i, c := range cur.Children() {
			if c.Parent() != cur {
				t.Fatalf("child %d of %s has wrong parent", i, cur.Kind())
			}
			if cfg.Content[i].Kind != c.Kind() {
				t.Fatalf("config content %d kind %s does not match child kind %s", i, cfg.Content[i].Kind, c.Kind())
			}
			walk(c)
		}
	}
	walk(n)
}
