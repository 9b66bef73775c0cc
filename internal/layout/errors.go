package layout

import "fmt"

// StructuralError reports a mutation that referenced a node which is not
// where the caller claimed it was, e.g. removing a child from a node that
// does not own it. It signals programmer misuse, not transient state, and is
// always raised before the tree is modified.
type StructuralError struct {
	Op     string
	Detail string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("layout: %s: %s", e.Op, e.Detail)
}

// ConfigurationError reports malformed layout configuration, such as an
// unrecognized item kind or content declared on a leaf. It surfaces to
// whatever loaded the layout.
type ConfigurationError struct {
	Detail string
}

func (e *ConfigurationError) Error() string {
	return "layout: invalid configuration: " + e.Detail
}

// IdentifierError reports an id operation on an identifier the node does not
// carry.
type IdentifierError struct {
	ID string
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("layout: id %q not found", e.ID)
}
