package app

import (
	"github.com/google/uuid"

	"github.com/dockpane/dockpane/internal/layout"
)

// paneSurface is the rendering handle the factory attaches to every node.
// It only carries geometry and visibility; drawing happens in the view pass,
// which walks the tree and reads surfaces back.
type paneSurface struct {
	id       string
	rect     layout.Rect
	z        int
	hidden   bool
	detached bool
}

func newPaneSurface() *paneSurface {
	return &paneSurface{id: uuid.NewString()}
}

func (s *paneSurface) Bounds() layout.Rect { return s.rect }

func (s *paneSurface) SetRect(r layout.Rect) { s.rect = r }

// Swap exchanges geometry and stacking with another surface so an in-place
// child replacement lands exactly where the old child was.
func (s *paneSurface) Swap(with layout.Surface) {
	other, ok := with.(*paneSurface)
	if !ok {
		return
	}
	s.rect, other.rect = other.rect, s.rect
	s.z, other.z = other.z, s.z
	s.hidden, other.hidden = other.hidden, s.hidden
}

func (s *paneSurface) Detach() { s.detached = true }

func (s *paneSurface) Show() { s.hidden = false }

func (s *paneSurface) Hide() { s.hidden = true }

func (s *paneSurface) visible() bool { return !s.hidden && !s.detached }

// surfaceOf returns the node's handle in concrete form, or nil.
func surfaceOf(n *layout.Node) *paneSurface {
	s, _ := n.Surface().(*paneSurface)
	return s
}
