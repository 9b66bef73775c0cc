package layout_test

import (
	"testing"

	"github.com/dockpane/dockpane/internal/layout"
)

// TestImmediateEventsDeliverInOrder checks that non-batched names reach the
// coordinator once per occurrence, in call order.
func TestImmediateEventsDeliverInOrder(t *testing.T) {
	coord := &recordingCoordinator{}
	tree := newTestTree(t, coord, component("pane"))
	leaf := tree.Root().Children()[0]
	coord.emitted = nil

	for i := 0; i < 3; i++ {
		leaf.Publish("pane-scrolled", i)
	}

	if got := coord.count("pane-scrolled"); got != 3 {
		t.Fatalf("expected 3 deliveries, got %d", got)
	}
	for i, e := range coord.emitted {
		if e.ev.Payload != i {
			t.Errorf("delivery %d carried payload %v, want %d", i, e.ev.Payload, i)
		}
		if e.ev.Origin != leaf {
			t.Errorf("delivery %d lost its origin", i)
		}
	}
}

// TestBatchedEventCoalesces verifies that a burst of the batched name from
// one node within a frame yields exactly one delivery at the next drain.
func TestBatchedEventCoalesces(t *testing.T) {
	coord := &recordingCoordinator{}
	tree := newTestTree(t, coord, component("pane"))
	leaf := tree.Root().Children()[0]
	coord.emitted = nil

	for i := 0; i < 5; i++ {
		leaf.Publish(layout.EventStateChanged, nil)
	}
	if got := coord.count(layout.EventStateChanged); got != 0 {
		t.Fatalf("batched event delivered before drain: %d", got)
	}

	tree.Queue().Drain()
	if got := coord.count(layout.EventStateChanged); got != 1 {
		t.Errorf("expected exactly 1 coalesced delivery, got %d", got)
	}
}

// TestBatchedEventPerNode verifies coalescing is keyed by (node, name), not
// global: bursts from two nodes in the same frame produce two deliveries.
func TestBatchedEventPerNode(t *testing.T) {
	coord := &recordingCoordinator{}
	tree := newTestTree(t, coord, component("a"), component("b"))
	a := tree.Root().Children()[0]
	b := tree.Root().Children()[1]
	coord.emitted = nil

	a.Publish(layout.EventStateChanged, nil)
	a.Publish(layout.EventStateChanged, nil)
	b.Publish(layout.EventStateChanged, nil)

	tree.Queue().Drain()
	if got := coord.count(layout.EventStateChanged); got != 2 {
		t.Errorf("expected one delivery per originating node, got %d", got)
	}
}

// TestBatchedEventRearmsAfterDrain verifies the pending flag resets: a new
// burst after a drain produces a new delivery on the following drain.
func TestBatchedEventRearmsAfterDrain(t *testing.T) {
	coord := &recordingCoordinator{}
	tree := newTestTree(t, coord, component("pane"))
	leaf := tree.Root().Children()[0]
	coord.emitted = nil

	leaf.Publish(layout.EventStateChanged, nil)
	tree.Queue().Drain()
	leaf.Publish(layout.EventStateChanged, nil)
	leaf.Publish(layout.EventStateChanged, nil)
	tree.Queue().Drain()

	if got := coord.count(layout.EventStateChanged); got != 2 {
		t.Errorf("expected 2 deliveries across 2 drains, got %d", got)
	}
}

// TestStopPropagationHaltsBubbling checks that a handler on an ancestor can
// keep an event from the coordinator.
func TestStopPropagationHaltsBubbling(t *testing.T) {
	coord := &recordingCoordinator{}
	tree := newTestTree(t, coord, container(layout.KindRow, component("pane")))
	row := tree.Root().Children()[0]
	leaf := row.Children()[0]
	coord.emitted = nil

	sawAtRow := 0
	row.On("pane-scrolled", func(ev *layout.Event) {
		sawAtRow++
		ev.StopPropagation()
	})

	leaf.Publish("pane-scrolled", nil)

	if sawAtRow != 1 {
		t.Errorf("expected the row handler to run once, ran %d times", sawAtRow)
	}
	if got := coord.count("pane-scrolled"); got != 0 {
		t.Errorf("stopped event must not reach the coordinator, got %d deliveries", got)
	}
}

// TestUninitialisedNodeDoesNotBubble verifies that forwarding requires the
// node to have completed its init pass; local handlers still run.
func TestUninitialisedNodeDoesNotBubble(t *testing.T) {
	coord := &recordingCoordinator{}
	tree, err := layout.New(container(layout.KindRoot, component("pane")), coord)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	leaf := tree.Root().Children()[0]

	sawLocal := 0
	leaf.On("pane-scrolled", func(*layout.Event) { sawLocal++ })
	leaf.Publish("pane-scrolled", nil)

	if sawLocal != 1 {
		t.Errorf("expected local delivery on the uninitialised node, got %d", sawLocal)
	}
	if len(coord.emitted) != 0 {
		t.Errorf("uninitialised node must not forward, coordinator saw %d events", len(coord.emitted))
	}
}

// TestEmitLocalStaysLocal verifies the local-only emission path.
func TestEmitLocalStaysLocal(t *testing.T) {
	coord := &recordingCoordinator{}
	tree := newTestTree(t, coord, container(layout.KindRow, component("pane")))
	row := tree.Root().Children()[0]
	leaf := row.Children()[0]
	coord.emitted = nil

	sawAtRow := 0
	row.On("pane-scrolled", func(*layout.Event) { sawAtRow++ })
	leaf.EmitLocal("pane-scrolled", nil)

	if sawAtRow != 0 {
		t.Errorf("EmitLocal must not bubble, row handler ran %d times", sawAtRow)
	}
	if len(coord.emitted) != 0 {
		t.Errorf("EmitLocal must not reach the coordinator, saw %d events", len(coord.emitted))
	}
}

// TestBubblingHandlersSeeTransitEvents checks that handlers along the path
// observe events originating below them.
func TestBubblingHandlersSeeTransitEvents(t *testing.T) {
	coord := &recordingCoordinator{}
	tree := newTestTree(t, coord, container(layout.KindRow, component("pane")))
	row := tree.Root().Children()[0]
	leaf := row.Children()[0]

	var origins []*layout.Node
	tree.Root().On("pane-scrolled", func(ev *layout.Event) {
		origins = append(origins, ev.Origin)
	})

	leaf.Publish("pane-scrolled", nil)
	row.Publish("pane-scrolled", nil)

	if len(origins) != 2 || origins[0] != leaf || origins[1] != row {
		t.Errorf("root handler saw wrong origins: %v", origins)
	}
}

// TestSelectAndDeselectDelegate verifies both selection operations reach
// the coordinator and announce themselves.
func TestSelectAndDeselectDelegate(t *testing.T) {
	coord := &recordingCoordinator{}
	tree := newTestTree(t, coord, component("pane"))
	leaf := tree.Root().Children()[0]
	coord.emitted = nil

	leaf.Select()
	if len(coord.selected) != 1 || coord.selected[0] != leaf {
		t.Fatal("expected the coordinator to receive the selection")
	}

	leaf.Deselect()
	if len(coord.deselected) != 1 || coord.deselected[0] != leaf {
		t.Fatal("expected the coordinator to receive the deselection")
	}

	if got := coord.count(layout.EventSelectionChanged); got != 2 {
		t.Errorf("expected 2 selection-changed deliveries, got %d", got)
	}
	last := coord.emitted[len(coord.emitted)-1].ev
	if last.Payload != nil {
		t.Errorf("deselection must carry no payload, got %v", last.Payload)
	}
}

// TestMutationsAnnounceStateChange verifies structural changes feed the
// batched state notification.
func TestMutationsAnnounceStateChange(t *testing.T) {
	coord := &recordingCoordinator{}
	tree := newTestTree(t, coord, container(layout.KindRow, component("a"), component("b")))
	row := tree.Root().Children()[0]
	coord.emitted = nil

	if err := row.RemoveChild(row.Children()[0], false); err != nil {
		t.Fatalf("RemoveChild failed: %v", err)
	}
	child, err := tree.NewNode(component("c"), nil)
	if err != nil {
		t.Fatalf("NewNode failed: %v", err)
	}
	row.AddChild(child)

	tree.Queue().Drain()
	if got := coord.count(layout.EventStateChanged); got != 1 {
		t.Errorf("expected the burst of mutations to coalesce to 1 delivery, got %d", got)
	}
}
