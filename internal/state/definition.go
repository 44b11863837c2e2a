package state

import "github.com/cascadeui/cascade/internal/menu"

// DefinitionStore holds the last successfully loaded menu definition and the
// most recent load error, if any.
type DefinitionStore interface {
	Definition() menu.Definition
	SetDefinition(menu.Definition)
	Loaded() bool
	Err() error
	SetErr(error)
}

type definitionStore struct {
	def    menu.Definition
	loaded bool
	err    error
}

func NewDefinitionStore() DefinitionStore {
	return &definitionStore{}
}

func (s *definitionStore) Definition() menu.Definition {
	return cloneDefinition(s.def)
}

func (s *definitionStore) SetDefinition(def menu.Definition) {
	s.def = cloneDefinition(def)
	s.loaded = true
	s.err = nil
}

func (s *definitionStore) Loaded() bool {
	return s.loaded
}

func (s *definitionStore) Err() error {
	return s.err
}

func (s *definitionStore) SetErr(err error) {
	s.err = err
}

func cloneDefinition(def menu.Definition) menu.Definition {
	dup := def
	dup.Menus = cloneItemDefs(def.Menus)
	return dup
}

func cloneItemDefs(items []menu.ItemDef) []menu.ItemDef {
	if len(items) == 0 {
		return nil
	}
	dup := make([]menu.ItemDef, len(items))
	copy(dup, items)
	for i := range dup {
		dup[i].Items = cloneItemDefs(dup[i].Items)
	}
	return dup
}
