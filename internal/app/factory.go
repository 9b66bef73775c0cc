package app

import (
	"github.com/dockpane/dockpane/internal/layout"
)

// deskFactory builds nodes with a surface attached and, for component
// leaves, a component instance resolved through the builder registry.
type deskFactory struct {
	builders map[string]ComponentBuilder
}

func newDeskFactory() *deskFactory {
	return &deskFactory{builders: map[string]ComponentBuilder{}}
}

// Register installs a builder for a component name. Unregistered names fall
// back to the stock pane.
func (f *deskFactory) Register(name string, builder ComponentBuilder) {
	f.builders[name] = builder
}

func (f *deskFactory) CreateNode(t *layout.Tree, cfg layout.ItemConfig, parent *layout.Node) (*layout.Node, error) {
	n, err := t.NewNode(cfg, parent)
	if err != nil {
		return nil, err
	}
	n.AttachSurface(newPaneSurface())
	if n.Kind() == layout.KindComponent {
		builder := f.builders[n.ComponentName()]
		if builder == nil {
			builder = defaultComponentBuilder
		}
		n.SetComponent(builder(n.ComponentName()))
	}
	return n, nil
}
