package menu

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ItemDef is one entry in a menu definition file. An item either names a
// submenu (nested items) or is a leaf.
type ItemDef struct {
	ID    string    `yaml:"id"`
	Label string    `yaml:"label"`
	Items []ItemDef `yaml:"items,omitempty"`
}

// Definition is the declarative description of the whole menu surface: the
// toggles on the menu bar and the nested submenus under each.
type Definition struct {
	Title string    `yaml:"title,omitempty"`
	Menus []ItemDef `yaml:"menus"`
}

// LoadDefinition reads a menu definition from a YAML file.
func LoadDefinition(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("read menu file: %w", err)
	}
	return ParseDefinition(data)
}

// ParseDefinition decodes a YAML menu definition and validates IDs.
func ParseDefinition(data []byte) (Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("parse menu file: %w", err)
	}
	seen := make(map[string]struct{})
	var check func(items []ItemDef) error
	check = func(items []ItemDef) error {
		for _, it := range items {
			if it.ID == "" {
				return fmt.Errorf("menu item %q has no id", it.Label)
			}
			if _, dup := seen[it.ID]; dup {
				return fmt.Errorf("duplicate menu id %q", it.ID)
			}
			seen[it.ID] = struct{}{}
			if err := check(it.Items); err != nil {
				return err
			}
		}
		return nil
	}
	if err := check(def.Menus); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// DefaultDefinition returns the built-in demo menu used when no menu file is
// supplied.
func DefaultDefinition() Definition {
	return Definition{
		Title: "cascade",
		Menus: []ItemDef{
			{ID: "file", Label: "File", Items: []ItemDef{
				{ID: "file:new", Label: "New"},
				{ID: "file:open", Label: "Open", Items: []ItemDef{
					{ID: "file:open:recent", Label: "Recent", Items: []ItemDef{
						{ID: "file:open:recent:1", Label: "notes.txt"},
						{ID: "file:open:recent:2", Label: "journal.md"},
					}},
					{ID: "file:open:browse", Label: "Browse…"},
				}},
				{ID: "file:quit", Label: "Quit"},
			}},
			{ID: "edit", Label: "Edit", Items: []ItemDef{
				{ID: "edit:undo", Label: "Undo"},
				{ID: "edit:redo", Label: "Redo"},
				{ID: "edit:transform", Label: "Transform", Items: []ItemDef{
					{ID: "edit:transform:upper", Label: "Uppercase"},
					{ID: "edit:transform:lower", Label: "Lowercase"},
				}},
			}},
			{ID: "view", Label: "View", Items: []ItemDef{
				{ID: "view:zoom-in", Label: "Zoom In"},
				{ID: "view:zoom-out", Label: "Zoom Out"},
			}},
		},
	}
}

// Submenu resolves the item list of the menu with the given ID, or the top
// level toggles when id matches the root. The second return is false when the
// ID names no submenu in the definition.
func (d Definition) Submenu(rootID, id string) ([]Item, bool) {
	if id == rootID {
		items := make([]Item, 0, len(d.Menus))
		for _, m := range d.Menus {
			items = append(items, defToItem(m))
		}
		return items, true
	}
	var found []Item
	ok := false
	var walk func(items []ItemDef)
	walk = func(items []ItemDef) {
		for _, it := range items {
			if it.ID == id && len(it.Items) > 0 {
				found = make([]Item, 0, len(it.Items))
				for _, child := range it.Items {
					found = append(found, defToItem(child))
				}
				ok = true
				return
			}
			walk(it.Items)
			if ok {
				return
			}
		}
	}
	walk(d.Menus)
	return found, ok
}

func defToItem(def ItemDef) Item {
	item := Item{ID: def.ID, Label: def.Label}
	if len(def.Items) > 0 {
		item.Submenu = def.ID
	}
	return item
}
