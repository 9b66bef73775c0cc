package layout

import "slices"

type idState uint8

const (
	idNone idState = iota
	idScalar
	idList
)

// ID is an item identifier in one of exactly three forms: absent, a single
// string, or a list of strings. The list form is never empty; removing the
// last element collapses the value back to absent. A list that shrinks to
// one element stays a list rather than reverting to scalar form; callers
// observe the same shapes a persisted layout would round-trip through.
type ID struct {
	state  idState
	scalar string
	list   []string
}

// NoID returns the absent identifier. The zero value is equivalent.
func NoID() ID { return ID{} }

// ScalarID returns a single-string identifier.
func ScalarID(s string) ID { return ID{state: idScalar, scalar: s} }

// ListID returns a list identifier. An empty call yields the absent form.
func ListID(ids ...string) ID {
	if len(ids) == 0 {
		return ID{}
	}
	return ID{state: idList, list: slices.Clone(ids)}
}

// IsZero reports whether no identifier is set.
func (id ID) IsZero() bool { return id.state == idNone }

// IsScalar reports whether the identifier is in single-string form.
func (id ID) IsScalar() bool { return id.state == idScalar }

// IsList reports whether the identifier is in list form.
func (id ID) IsList() bool { return id.state == idList }

// Strings returns every identifier the value carries, in order.
func (id ID) Strings() []string {
	switch id.state {
	case idNone:
		return nil
	case idScalar:
		return []string{id.scalar}
	case idList:
		return slices.Clone(id.list)
	}
	return nil
}

// Has reports whether s is one of the carried identifiers.
func (id ID) Has(s string) bool {
	switch id.state {
	case idNone:
		return false
	case idScalar:
		return id.scalar == s
	case idList:
		return slices.Contains(id.list, s)
	}
	return false
}

// add returns the identifier with s included. Adding an already present id
// is a no-op. Absent promotes to scalar, scalar to a two-element list.
func (id ID) add(s string) ID {
	if id.Has(s) {
		return id
	}
	switch id.state {
	case idNone:
		return ScalarID(s)
	case idScalar:
		return ID{state: idList, list: []string{id.scalar, s}}
	case idList:
		return ID{state: idList, list: append(slices.Clone(id.list), s)}
	}
	return id
}

// remove returns the identifier without s. The second result is false when s
// was not present. A scalar clears to absent; a list loses the matching
// element, collapsing to absent only when it would become empty.
func (id ID) remove(s string) (ID, bool) {
	switch id.state {
	case idNone:
		return id, false
	case idScalar:
		if id.scalar != s {
			return id, false
		}
		return ID{}, true
	case idList:
		i := slices.Index(id.list, s)
		if i == -1 {
			return id, false
		}
		rest := slices.Delete(slices.Clone(id.list), i, i+1)
		if len(rest) == 0 {
			return ID{}, true
		}
		return ID{state: idList, list: rest}, true
	}
	return id, false
}
