package layout

// Area is the bounding box of a node's surface together with its derived
// surface area and a back-reference to the node. The host's drag/drop logic
// consumes areas to pick drop targets; the engine computes geometry only.
type Area struct {
	X1, Y1  int // top-left corner
	X2, Y2  int // bottom-right corner, exclusive
	Surface int
	Item    *Node
}

// Area returns the node's current area, or nil when no surface is attached.
func (n *Node) Area() *Area {
	return n.AreaOf(n.surface)
}

// AreaOf computes the area of an arbitrary surface handle, attributed to
// this node. A nil surface yields nil.
func (n *Node) AreaOf(s Surface) *Area {
	if s == nil {
		return nil
	}
	b := s.Bounds()
	return &Area{
		X1:      b.X,
		Y1:      b.Y,
		X2:      b.X + b.W,
		Y2:      b.Y + b.H,
		Surface: b.W * b.H,
		Item:    n,
	}
}
