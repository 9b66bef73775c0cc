package config

import "strings"

// ActionDescriptions maps every bindable action to its help-menu text.
var ActionDescriptions = map[string]string{
	"split_right":     "Split the focused item into a row",
	"split_down":      "Split the focused item into a column",
	"new_tab":         "Add a tab to the enclosing stack",
	"close_item":      "Close the focused item",
	"next_tab":        "Activate the next tab",
	"prev_tab":        "Activate the previous tab",
	"focus_next":      "Focus the next component",
	"focus_prev":      "Focus the previous component",
	"toggle_maximise": "Maximise or restore the focused item",
	"popout":          "Pop the focused item out into a floating window",
	"save_layout":     "Persist the current layout",
	"toggle_help":     "Toggle the help overlay",
	"quit":            "Quit",
}

// KeybindRegistry resolves keys to actions and back. It is built once from
// the loaded config; lookups are plain map reads.
type KeybindRegistry struct {
	keysByAction map[string][]string
	actionByKey  map[string]string
	normalizer   *KeyNormalizer
}

// NewKeybindRegistry indexes the config's keybindings both ways. Keys are
// normalized so "Ctrl+X" in the file matches the "ctrl+x" the terminal
// reports.
func NewKeybindRegistry(cfg *Config) *KeybindRegistry {
	r := &KeybindRegistry{
		keysByAction: make(map[string][]string),
		actionByKey:  make(map[string]string),
		normalizer:   NewKeyNormalizer(),
	}
	for action, keys := range cfg.Keybindings.Panes {
		for _, key := range keys {
			for _, norm := range r.normalizer.NormalizeKey(key) {
				r.keysByAction[action] = append(r.keysByAction[action], norm)
				r.actionByKey[norm] = action
			}
		}
	}
	return r
}

// GetKeys returns the normalized keys bound to an action, or nil.
func (r *KeybindRegistry) GetKeys(action string) []string {
	return r.keysByAction[action]
}

// GetAction returns the action a key is bound to, or "".
func (r *KeybindRegistry) GetAction(key string) string {
	for _, norm := range r.normalizer.NormalizeKey(key) {
		if action, ok := r.actionByKey[norm]; ok {
			return action
		}
	}
	return ""
}

// GetKeysForDisplay renders an action's keys as a single help-menu string.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	return strings.Join(r.keysByAction[action], ", ")
}

// KeyNormalizer canonicalizes key names so config files can spell keys
// loosely.
type KeyNormalizer struct {
	aliases map[string][]string
}

// NewKeyNormalizer returns a normalizer carrying the common aliases.
func NewKeyNormalizer() *KeyNormalizer {
	return &KeyNormalizer{
		aliases: map[string][]string{
			"return": {"return", "enter"},
			"enter":  {"enter", "return"},
			"esc":    {"esc", "escape"},
			"escape": {"escape", "esc"},
			"space":  {"space", " "},
		},
	}
}

// NormalizeKey lowercases the key and expands aliases, returning every
// spelling the terminal might report for it.
func (n *KeyNormalizer) NormalizeKey(key string) []string {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return nil
	}
	if alts, ok := n.aliases[key]; ok {
		return alts
	}
	return []string{key}
}

// ValidateKey reports whether a key spelling is usable, with a reason when
// it is not.
func (n *KeyNormalizer) ValidateKey(key string) (bool, string) {
	if strings.TrimSpace(key) == "" {
		return false, "key must not be empty"
	}
	return true, ""
}

// Keybinding is a single help-menu entry.
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection groups related entries in the help overlay.
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// GetKeybindings builds the help-menu sections from the registry. A nil
// registry yields the hard-coded defaults.
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	if registry == nil {
		registry = NewKeybindRegistry(DefaultConfig())
	}

	layoutSection := KeybindingSection{Title: "LAYOUT"}
	for _, action := range []string{"split_right", "split_down", "new_tab", "close_item", "toggle_maximise", "popout"} {
		addBinding(&layoutSection, registry, action)
	}

	navSection := KeybindingSection{Title: "NAVIGATION"}
	for _, action := range []string{"next_tab", "prev_tab", "focus_next", "focus_prev"} {
		addBinding(&navSection, registry, action)
	}

	sysSection := KeybindingSection{Title: "SYSTEM"}
	for _, action := range []string{"save_layout", "toggle_help", "quit"} {
		addBinding(&sysSection, registry, action)
	}

	return []KeybindingSection{layoutSection, navSection, sysSection}
}

func addBinding(section *KeybindingSection, registry *KeybindRegistry, action string) {
	keys := registry.GetKeysForDisplay(action)
	if keys == "" {
		return
	}
	section.Bindings = append(section.Bindings, Keybinding{
		Key:         keys,
		Description: ActionDescriptions[action],
	})
}
