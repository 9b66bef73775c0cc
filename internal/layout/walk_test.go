package layout_test

import (
	"reflect"
	"testing"

	"github.com/dockpane/dockpane/internal/layout"
)

// label names a node for order assertions.
func label(n *layout.Node) string {
	if n.Kind() == layout.KindComponent {
		return n.ComponentName()
	}
	return n.Kind().String()
}

// walkFixture builds row(stack(a, b), c) and returns the row.
func walkFixture(t *testing.T) *layout.Node {
	t.Helper()
	coord := &recordingCoordinator{}
	tree := newTestTree(t, coord,
		container(layout.KindRow,
			container(layout.KindStack, component("a"), component("b")),
			component("c")))
	return tree.Root().Children()[0]
}

// TestCallDownwardsTopDown verifies the self-first, children-in-order walk.
func TestCallDownwardsTopDown(t *testing.T) {
	row := walkFixture(t)

	var order []string
	row.CallDownwards(func(n *layout.Node) { order = append(order, label(n)) }, false, false)

	want := []string{"row", "stack", "a", "b", "c"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("expected top-down order %v, got %v", want, order)
	}
}

// TestCallDownwardsBottomUp verifies children are visited before their
// parents, as destruction requires.
func TestCallDownwardsBottomUp(t *testing.T) {
	row := walkFixture(t)

	var order []string
	row.CallDownwards(func(n *layout.Node) { order = append(order, label(n)) }, true, false)

	want := []string{"a", "b", "stack", "c", "row"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("expected bottom-up order %v, got %v", want, order)
	}
}

// TestCallDownwardsSkipSelf verifies the receiver is omitted while every
// descendant is still visited, in both directions.
func TestCallDownwardsSkipSelf(t *testing.T) {
	row := walkFixture(t)

	var topDown []string
	row.CallDownwards(func(n *layout.Node) { topDown = append(topDown, label(n)) }, false, true)
	if want := []string{"stack", "a", "b", "c"}; !reflect.DeepEqual(topDown, want) {
		t.Errorf("expected %v, got %v", want, topDown)
	}

	var bottomUp []string
	row.CallDownwards(func(n *layout.Node) { bottomUp = append(bottomUp, label(n)) }, true, true)
	if want := []string{"a", "b", "stack", "c"}; !reflect.DeepEqual(bottomUp, want) {
		t.Errorf("expected %v, got %v", want, bottomUp)
	}
}

// recordingSizer captures SetSize invocations in order.
type recordingSizer struct {
	order []string
}

func (s *recordingSizer) SetSize(n *layout.Node) {
	s.order = append(s.order, label(n))
}

// TestPropagateResizeTopDownIncludingSelf checks resize propagation runs
// through the sizer over the whole subtree, receiver first.
func TestPropagateResizeTopDownIncludingSelf(t *testing.T) {
	coord := &recordingCoordinator{}
	sizer := &recordingSizer{}
	tree, err := layout.New(
		container(layout.KindRoot,
			container(layout.KindRow, component("a"), component("b"))),
		coord, layout.WithSizer(sizer))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	tree.Init()
	row := tree.Root().Children()[0]

	sizer.order = nil
	row.PropagateResize()

	want := []string{"row", "a", "b"}
	if !reflect.DeepEqual(sizer.order, want) {
		t.Errorf("expected resize order %v, got %v", want, sizer.order)
	}
}
