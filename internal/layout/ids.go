package layout

// ID returns the node's identifier value.
func (n *Node) ID() ID { return n.id }

// HasID reports whether the node carries the given identifier, either as
// its scalar id or as a member of its id list.
func (n *Node) HasID(id string) bool { return n.id.Has(id) }

// AddID attaches an identifier to the node. Adding an id the node already
// carries is a no-op; otherwise an absent id becomes scalar, a scalar id
// becomes a two-element list, and a list grows by one.
func (n *Node) AddID(id string) {
	n.id = n.id.add(id)
}

// RemoveID detaches an identifier from the node. Removing an id the node
// does not carry is an IdentifierError and leaves the node unmodified. A
// scalar id clears to absent; a list loses the matching element and is not
// collapsed back to scalar form when one element remains.
func (n *Node) RemoveID(id string) error {
	next, ok := n.id.remove(id)
	if !ok {
		return &IdentifierError{ID: id}
	}
	n.id = next
	return nil
}
