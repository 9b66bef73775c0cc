package app

import (
	"github.com/dockpane/dockpane/internal/layout"
)

// tabStripHeight is the single row a stack reserves for its tab strip.
const tabStripHeight = 1

// deskSizer lays a node's children out inside the node's own surface
// bounds. It runs top-down via PropagateResize, so a node's rect is already
// final by the time its children are positioned.
type deskSizer struct{}

func (deskSizer) SetSize(n *layout.Node) {
	s := surfaceOf(n)
	if s == nil {
		return
	}
	bounds := s.rect
	children := n.Children()

	switch n.Kind() {
	case layout.KindRoot:
		// The root's children share its full bounds.
		for _, c := range children {
			if cs := surfaceOf(c); cs != nil {
				cs.SetRect(bounds)
				cs.Show()
			}
		}
	case layout.KindRow:
		widths := splitByWeights(bounds.W, weightsOf(children, true))
		x := bounds.X
		for i, c := range children {
			if cs := surfaceOf(c); cs != nil {
				cs.SetRect(layout.Rect{X: x, Y: bounds.Y, W: widths[i], H: bounds.H})
				cs.Show()
			}
			x += widths[i]
		}
	case layout.KindColumn:
		heights := splitByWeights(bounds.H, weightsOf(children, false))
		y := bounds.Y
		for i, c := range children {
			if cs := surfaceOf(c); cs != nil {
				cs.SetRect(layout.Rect{X: bounds.X, Y: y, W: bounds.W, H: heights[i]})
				cs.Show()
			}
			y += heights[i]
		}
	case layout.KindStack:
		body := layout.Rect{
			X: bounds.X,
			Y: bounds.Y + tabStripHeight,
			W: bounds.W,
			H: max(bounds.H-tabStripHeight, 0),
		}
		active := n.ActiveItemIndex()
		for i, c := range children {
			cs := surfaceOf(c)
			if cs == nil {
				continue
			}
			cs.SetRect(body)
			if i == active {
				cs.Show()
			} else {
				cs.Hide()
			}
		}
	case layout.KindComponent:
		// Leaves have no children to place.
	}
}

// weightsOf collects the relevant proportional weight per child. A zero sum
// is normalized to equal shares.
func weightsOf(children []*layout.Node, horizontal bool) []int {
	weights := make([]int, len(children))
	for i, c := range children {
		w, h := c.SizeWeights()
		if horizontal {
			weights[i] = w
		} else {
			weights[i] = h
		}
	}
	return weights
}

// splitByWeights divides total into proportional integer spans that sum to
// exactly total; the last span absorbs the rounding remainder.
func splitByWeights(total int, weights []int) []int {
	spans := make([]int, len(weights))
	if len(weights) == 0 || total <= 0 {
		return spans
	}
	sum := 0
	for _, w := range weights {
		sum += w
	}
	if sum == 0 {
		for i := range weights {
			weights[i] = 1
		}
		sum = len(weights)
	}
	used := 0
	for i, w := range weights {
		spans[i] = total * w / sum
		used += spans[i]
	}
	spans[len(spans)-1] += total - used
	return spans
}
