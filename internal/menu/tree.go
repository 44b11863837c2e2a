package menu

import "fmt"

// Node is one submenu in the ownership tree. Children are owned; the parent
// pointer is a lookup-only back-reference and never manages lifetime.
type Node struct {
	ID       string
	Children map[string]*Node
	parent   *Node
}

// Parent returns the node's parent, or nil for the root.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Tree mirrors the nested-submenu structure of the current menu definition.
// It is rebuilt wholesale on structural change, never patched in place.
type Tree struct {
	root  *Node
	nodes map[string]*Node
}

// Marker records one rendered item→submenu association: the submenu with ID
// Sub is rendered under the menu with ID Parent.
type Marker struct {
	Sub    string
	Parent string
}

// Build constructs a fresh tree from the given markers. The tree is rooted at
// rootID; markers referencing unknown parents or duplicating IDs make the
// build fail so callers can keep the previous tree.
func Build(rootID string, markers []Marker) (*Tree, error) {
	if rootID == "" {
		return nil, fmt.Errorf("build tree: empty root id")
	}
	nodes := map[string]*Node{
		rootID: {ID: rootID, Children: make(map[string]*Node)},
	}
	// Markers arrive in render order, parents before children.
	for _, m := range markers {
		if m.Sub == "" || m.Parent == "" {
			return nil, fmt.Errorf("build tree: marker with empty id (%q under %q)", m.Sub, m.Parent)
		}
		if _, dup := nodes[m.Sub]; dup {
			return nil, fmt.Errorf("build tree: duplicate id %q", m.Sub)
		}
		parent, ok := nodes[m.Parent]
		if !ok {
			return nil, fmt.Errorf("build tree: unknown parent %q for %q", m.Parent, m.Sub)
		}
		node := &Node{ID: m.Sub, Children: make(map[string]*Node), parent: parent}
		parent.Children[m.Sub] = node
		nodes[m.Sub] = node
	}
	return &Tree{root: nodes[rootID], nodes: nodes}, nil
}

// BuildFromDefinition scans a menu definition and reconstructs the tree of
// submenus under rootID. Every item that hosts nested items contributes a
// marker.
func BuildFromDefinition(rootID string, def Definition) (*Tree, error) {
	var markers []Marker
	var walk func(parentID string, items []ItemDef)
	walk = func(parentID string, items []ItemDef) {
		for _, it := range items {
			if len(it.Items) == 0 {
				continue
			}
			markers = append(markers, Marker{Sub: it.ID, Parent: parentID})
			walk(it.ID, it.Items)
		}
	}
	walk(rootID, def.Menus)
	return Build(rootID, markers)
}

// NewTree returns an empty tree holding only the root node.
func NewTree(rootID string) *Tree {
	root := &Node{ID: rootID, Children: make(map[string]*Node)}
	return &Tree{root: root, nodes: map[string]*Node{rootID: root}}
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// RootID returns the root node's ID, or "" for a nil tree.
func (t *Tree) RootID() string {
	if t == nil || t.root == nil {
		return ""
	}
	return t.root.ID
}

// Len reports the number of nodes in the tree, root included.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Node looks up a node by ID.
func (t *Tree) Node(id string) (*Node, bool) {
	if t == nil {
		return nil, false
	}
	n, ok := t.nodes[id]
	return n, ok
}

// Parent returns the parent node of id. The root has no parent.
func (t *Tree) Parent(id string) (*Node, bool) {
	n, ok := t.Node(id)
	if !ok || n.parent == nil {
		return nil, false
	}
	return n.parent, true
}

// PathFromRoot returns the ID sequence from the root down to id, inclusive.
// Returns nil when id is absent; callers treat that as a recoverable lookup
// failure, never a crash.
func (t *Tree) PathFromRoot(id string) []string {
	n, ok := t.Node(id)
	if !ok {
		return nil
	}
	var rev []string
	for cur := n; cur != nil; cur = cur.parent {
		rev = append(rev, cur.ID)
	}
	path := make([]string, len(rev))
	for i, nodeID := range rev {
		path[len(rev)-1-i] = nodeID
	}
	return path
}

// Depth returns the depth of id below the root (root is 0), or -1 when id is
// absent.
func (t *Tree) Depth(id string) int {
	n, ok := t.Node(id)
	if !ok {
		return -1
	}
	depth := 0
	for cur := n; cur.parent != nil; cur = cur.parent {
		depth++
	}
	return depth
}

// IsDescendant reports whether id sits strictly below ancestorID.
func (t *Tree) IsDescendant(ancestorID, id string) bool {
	n, ok := t.Node(id)
	if !ok {
		return false
	}
	for cur := n.parent; cur != nil; cur = cur.parent {
		if cur.ID == ancestorID {
			return true
		}
	}
	return false
}

// IsEdge reports whether parentID→childID is a parent→child edge.
func (t *Tree) IsEdge(parentID, childID string) bool {
	parent, ok := t.Node(parentID)
	if !ok {
		return false
	}
	_, ok = parent.Children[childID]
	return ok
}
