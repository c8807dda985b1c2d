// Package vfs models the virtual file-system tree the admin terminal
// operates on. Trees are built once (from the seeded default or a YAML
// fixture) and treated as read-only by the shell; the simulated mutating
// commands never write back.
package vfs

import "time"

// Kind distinguishes file and directory nodes.
type Kind int

const (
	KindFile Kind = iota
	KindDir
)

// Node is a single entry in the virtual tree. Content is only meaningful
// for files, Children only for directories. Size is informational and not
// derived from Content; Permissions and Owner are display-only.
type Node struct {
	Name        string
	Kind        Kind
	Content     string
	Children    []*Node
	Permissions string
	Owner       string
	Size        int64
	Modified    time.Time
}

// NewDir creates a directory node with sensible display defaults.
func NewDir(name string, children ...*Node) *Node {
	return &Node{
		Name:        name,
		Kind:        KindDir,
		Children:    children,
		Permissions: "rwxr-xr-x",
		Owner:       "rustpress",
		Size:        4096,
	}
}

// NewFile creates a file node with sensible display defaults.
func NewFile(name, content string, size int64) *Node {
	return &Node{
		Name:        name,
		Kind:        KindFile,
		Content:     content,
		Permissions: "rw-r--r--",
		Owner:       "rustpress",
		Size:        size,
	}
}

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool {
	return n.Kind == KindDir
}

// Child returns the direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Validate checks the structural invariants of the subtree rooted at n:
// non-empty separator-free names, pairwise-distinct sibling names, and no
// children under file nodes. The root node is conventionally named "/" and
// is exempt from the separator check.
func (n *Node) Validate() error {
	if n.Name == "" {
		return ErrEmptyNodeName
	}
	if n.Name != "/" && containsSlash(n.Name) {
		return ErrNameHasSlash
	}
	if n.Kind == KindFile {
		if len(n.Children) > 0 {
			return ErrFileHasChild
		}
		return nil
	}
	seen := make(map[string]bool, len(n.Children))
	for _, c := range n.Children {
		if seen[c.Name] {
			return ErrDuplicateName
		}
		seen[c.Name] = true
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func containsSlash(name string) bool {
	for i := 0; i < len(name); i++ {
		if name[i] == '/' {
			return true
		}
	}
	return false
}
