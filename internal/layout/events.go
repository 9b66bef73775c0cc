package layout

// Event names published by the engine itself. Hosts and components may
// publish their own names through the same mechanism.
const (
	// EventStateChanged is the generic "something about the layout changed"
	// notification. It is high-frequency and therefore batched: any burst
	// from one node within a frame reaches the coordinator exactly once.
	EventStateChanged = "state-changed"
	// EventItemCreated fires when a node completes its init pass.
	EventItemCreated = "item-created"
	// EventBeforeItemDestroyed fires before a subtree is torn down.
	EventBeforeItemDestroyed = "before-item-destroyed"
	// EventItemDestroyed fires after a subtree has been torn down.
	EventItemDestroyed = "item-destroyed"
	// EventTitleChanged fires when an item's title changes.
	EventTitleChanged = "title-changed"
	// EventActiveItemChanged fires when a stack selects another tab.
	EventActiveItemChanged = "active-item-changed"
	// EventSelectionChanged fires when an item asks to be selected.
	EventSelectionChanged = "selection-changed"
	// EventMaximised and EventMinimised track the maximise toggle.
	EventMaximised = "maximised"
	EventMinimised = "minimised"
)

// Event is a notification travelling from its origin node towards the root
// coordinator. Handlers on any node along the path may stop it.
type Event struct {
	Name    string
	Payload any
	Origin  *Node

	stopped bool
}

// StopPropagation halts bubbling; handlers on the current node still run,
// ancestors and the coordinator never see the event.
func (e *Event) StopPropagation() { e.stopped = true }

// Handler observes events delivered at a node.
type Handler func(*Event)

// On subscribes a handler to a single event name on this node. Handlers run
// both for events the node emits itself and for events bubbling through it.
func (n *Node) On(name string, h Handler) {
	if n.handlers == nil {
		n.handlers = make(map[string][]Handler)
	}
	n.handlers[name] = append(n.handlers[name], h)
}

// EmitLocal delivers an event to this node's own handlers only. No bubble
// decision is made; use Publish for events that should reach the
// coordinator.
func (n *Node) EmitLocal(name string, payload any) {
	n.deliverLocal(&Event{Name: name, Payload: payload, Origin: n})
}

func (n *Node) deliverLocal(ev *Event) {
	for _, h := range n.handlers[ev.Name] {
		h(ev)
	}
}

// Publish emits an event with bubbling semantics. Delivery is immediate for
// most names and frame-coalesced for batched ones: the first batched
// occurrence enqueues one flush on the tree's frame queue and flips a
// per-node pending flag, further occurrences of the same name before the
// drain are dropped, and the drain forwards exactly one event. Coalescing is
// keyed by (node, name), not global.
func (n *Node) Publish(name string, payload any) {
	ev := &Event{Name: name, Payload: payload, Origin: n}
	if n.tree == nil || !n.tree.batched[name] {
		n.forward(ev)
		return
	}
	if n.pending[name] {
		return
	}
	if n.pending == nil {
		n.pending = make(map[string]bool)
	}
	n.pending[name] = true
	n.tree.queue.Enqueue(func() {
		n.pending[name] = false
		n.forward(ev)
	})
}

// forward walks the event up the tree. At each node the local handlers run;
// propagation continues only while no handler has stopped the event and the
// node is initialised. Past a parentless node the event is handed to the
// coordinator.
func (n *Node) forward(ev *Event) {
	for cur := n; cur != nil; cur = cur.parent {
		cur.deliverLocal(ev)
		if ev.stopped || !cur.initialised {
			return
		}
		if cur.parent == nil {
			cur.tree.coordinator.Emit(ev.Name, ev)
			return
		}
	}
}
