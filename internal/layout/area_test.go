package layout_test

import (
	"testing"

	"github.com/dockpane/dockpane/internal/layout"
)

// TestAreaWithoutSurface verifies a surfaceless node reports no area.
func TestAreaWithoutSurface(t *testing.T) {
	coord := &recordingCoordinator{}
	tree := newTestTree(t, coord, component("pane"))
	leaf := tree.Root().Children()[0]

	if got := leaf.Area(); got != nil {
		t.Errorf("expected nil area without a surface, got %+v", got)
	}
	if got := leaf.AreaOf(nil); got != nil {
		t.Errorf("expected nil area for a nil handle, got %+v", got)
	}
}

// TestAreaGeometry checks corner and derived-area arithmetic.
func TestAreaGeometry(t *testing.T) {
	coord := &recordingCoordinator{}
	tree := newTestTree(t, coord, component("pane"))
	leaf := tree.Root().Children()[0]
	leaf.AttachSurface(&fakeSurface{rect: layout.Rect{X: 3, Y: 4, W: 10, H: 5}})

	area := leaf.Area()
	if area == nil {
		t.Fatal("expected an area for a node with a surface")
	}
	if area.X1 != 3 || area.Y1 != 4 || area.X2 != 13 || area.Y2 != 9 {
		t.Errorf("unexpected corners: (%d,%d)-(%d,%d)", area.X1, area.Y1, area.X2, area.Y2)
	}
	if area.Surface != 50 {
		t.Errorf("expected surface 50, got %d", area.Surface)
	}
	if area.Item != leaf {
		t.Error("expected the area to reference its node")
	}
}
