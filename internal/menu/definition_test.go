package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefinition(t *testing.T) {
	def, err := ParseDefinition([]byte(`
title: demo
menus:
  - id: file
    label: File
    items:
      - id: file:new
        label: New
      - id: file:open
        label: Open
        items:
          - id: file:open:recent
            label: Recent
`))
	require.NoError(t, err)
	assert.Equal(t, "demo", def.Title)
	require.Len(t, def.Menus, 1)
	assert.Equal(t, "file", def.Menus[0].ID)
	assert.Len(t, def.Menus[0].Items, 2)
}

func TestParseDefinitionRejectsDuplicateIDs(t *testing.T) {
	_, err := ParseDefinition([]byte(`
menus:
  - id: file
    label: File
  - id: file
    label: File again
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestParseDefinitionRejectsMissingID(t *testing.T) {
	_, err := ParseDefinition([]byte(`
menus:
  - label: File
`))
	require.Error(t, err)
}

func TestSubmenuLookup(t *testing.T) {
	def := DefaultDefinition()

	top, ok := def.Submenu("root", "root")
	require.True(t, ok)
	require.NotEmpty(t, top)
	assert.True(t, top[0].HasSubmenu())

	open, ok := def.Submenu("root", "file:open")
	require.True(t, ok)
	require.Len(t, open, 2)
	assert.Equal(t, "file:open:recent", open[0].ID)
	assert.True(t, open[0].HasSubmenu())
	assert.False(t, open[1].HasSubmenu())

	_, ok = def.Submenu("root", "file:quit")
	assert.False(t, ok, "leaves host no submenu")

	_, ok = def.Submenu("root", "missing")
	assert.False(t, ok)
}
