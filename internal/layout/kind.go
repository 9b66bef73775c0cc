package layout

import "fmt"

// Kind identifies the variant of a tree item. The set is closed: behavior
// dispatch switches over every constant and new kinds require touching each
// switch, which the compiler surfaces as a missing-case vet finding rather
// than a runtime fallback.
type Kind uint8

const (
	// KindRoot is the single top-level container owned by the host surface.
	KindRoot Kind = iota
	// KindRow arranges its children left to right.
	KindRow
	// KindColumn arranges its children top to bottom.
	KindColumn
	// KindStack shows one child at a time behind a tab strip.
	KindStack
	// KindComponent is a leaf hosting an externally provided component.
	KindComponent
)

// String returns the configuration name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindRow:
		return "row"
	case KindColumn:
		return "column"
	case KindStack:
		return "stack"
	case KindComponent:
		return "component"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind maps a configuration string to its Kind. Unrecognized names are
// a configuration error: they can only come from user-supplied layout files.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "root":
		return KindRoot, nil
	case "row":
		return KindRow, nil
	case "column":
		return KindColumn, nil
	case "stack":
		return KindStack, nil
	case "component":
		return KindComponent, nil
	}
	return 0, &ConfigurationError{Detail: fmt.Sprintf("unrecognized item kind %q", s)}
}

// IsContainer reports whether items of this kind may hold children.
func (k Kind) IsContainer() bool {
	switch k {
	case KindRoot, KindRow, KindColumn, KindStack:
		return true
	case KindComponent:
		return false
	}
	return false
}
