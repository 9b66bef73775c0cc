package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/dockpane/dockpane/internal/layout"
)

// LayoutItem is the on-disk form of a layout node. The id key accepts
// either a single string or a list of strings, matching what Decode
// produces for nodes carrying one or several identifiers.
type LayoutItem struct {
	Type            string       `toml:"type"`
	Content         []LayoutItem `toml:"content,omitempty"`
	Width           int          `toml:"width,omitempty"`
	Height          int          `toml:"height,omitempty"`
	ID              any          `toml:"id,omitempty"`
	Title           string       `toml:"title,omitempty"`
	ComponentName   string       `toml:"component_name,omitempty"`
	IsClosable      *bool        `toml:"is_closable,omitempty"`
	ReorderEnabled  *bool        `toml:"reorder_enabled,omitempty"`
	ActiveItemIndex int          `toml:"active_item_index,omitempty"`
}

// LayoutFile is the root document of a persisted layout.
type LayoutFile struct {
	Root LayoutItem `toml:"root"`
}

// Decode resolves a raw item into engine configuration.
func (li LayoutItem) Decode() (layout.ItemConfig, error) {
	kind, err := layout.ParseKind(li.Type)
	if err != nil {
		return layout.ItemConfig{}, err
	}
	id, err := decodeID(li.ID)
	if err != nil {
		return layout.ItemConfig{}, err
	}
	cfg := layout.ItemConfig{
		Kind:            kind,
		Width:           li.Width,
		Height:          li.Height,
		ID:              id,
		Title:           li.Title,
		ComponentName:   li.ComponentName,
		IsClosable:      li.IsClosable,
		ReorderEnabled:  li.ReorderEnabled,
		ActiveItemIndex: li.ActiveItemIndex,
	}
	for _, child := range li.Content {
		decoded, err := child.Decode()
		if err != nil {
			return layout.ItemConfig{}, err
		}
		cfg.Content = append(cfg.Content, decoded)
	}
	return cfg, nil
}

// decodeID accepts the scalar-or-list id forms TOML can carry.
func decodeID(v any) (layout.ID, error) {
	switch id := v.(type) {
	case nil:
		return layout.NoID(), nil
	case string:
		if id == "" {
			return layout.NoID(), nil
		}
		return layout.ScalarID(id), nil
	case []any:
		strs := make([]string, 0, len(id))
		for _, elem := range id {
			s, ok := elem.(string)
			if !ok {
				return layout.NoID(), fmt.Errorf("layout id list holds non-string %T", elem)
			}
			strs = append(strs, s)
		}
		return layout.ListID(strs...), nil
	case []string:
		return layout.ListID(id...), nil
	default:
		return layout.NoID(), fmt.Errorf("layout id must be a string or string list, got %T", v)
	}
}

// EncodeItem projects engine configuration back into the on-disk form.
func EncodeItem(cfg layout.ItemConfig) LayoutItem {
	li := LayoutItem{
		Type:            cfg.Kind.String(),
		Width:           cfg.Width,
		Height:          cfg.Height,
		Title:           cfg.Title,
		ComponentName:   cfg.ComponentName,
		IsClosable:      cfg.IsClosable,
		ReorderEnabled:  cfg.ReorderEnabled,
		ActiveItemIndex: cfg.ActiveItemIndex,
	}
	switch {
	case cfg.ID.IsScalar():
		li.ID = cfg.ID.Strings()[0]
	case cfg.ID.IsList():
		li.ID = cfg.ID.Strings()
	}
	for _, child := range cfg.Content {
		li.Content = append(li.Content, EncodeItem(child))
	}
	return li
}

// LoadLayout reads and decodes a layout file.
func LoadLayout(path string) (layout.ItemConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return layout.ItemConfig{}, fmt.Errorf("read layout: %w", err)
	}
	var file LayoutFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return layout.ItemConfig{}, fmt.Errorf("parse layout %s: %w", path, err)
	}
	return file.Root.Decode()
}

// SaveLayout writes a layout document to path, creating directories as
// needed.
func SaveLayout(path string, cfg layout.ItemConfig) error {
	data, err := toml.Marshal(LayoutFile{Root: EncodeItem(cfg)})
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create layout dir: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// WatchLayout watches the layout file and invokes onChange when it is
// written or replaced. Editors often swap files atomically, so Create
// events on the same path count as changes. Close the returned watcher to
// stop.
func WatchLayout(path string, onChange func()) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch layout dir: %w", err)
	}

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Name != path {
					continue
				}
				if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
					onChange()
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return watcher, nil
}
