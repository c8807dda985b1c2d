package vfs

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// nodeSpec is the YAML wire format for a single tree node.
type nodeSpec struct {
	Name        string     `yaml:"name"`
	Kind        string     `yaml:"kind"` // "file" or "dir"
	Content     string     `yaml:"content,omitempty"`
	Children    []nodeSpec `yaml:"children,omitempty"`
	Permissions string     `yaml:"permissions,omitempty"`
	Owner       string     `yaml:"owner,omitempty"`
	Size        int64      `yaml:"size,omitempty"`
	Modified    time.Time  `yaml:"modified,omitempty"`
}

// LoadFixture parses a YAML tree fixture into a validated node tree.
// The document must hold a single root mapping; the root is renamed to "/"
// regardless of the name the fixture declares.
func LoadFixture(data []byte) (*Node, error) {
	var spec nodeSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	if spec.Name == "" && spec.Kind == "" && len(spec.Children) == 0 {
		return nil, ErrNoRootProvided
	}

	root, err := buildNode(spec)
	if err != nil {
		return nil, err
	}
	root.Name = "/"
	if !root.IsDir() {
		return nil, ErrNotADirectory
	}
	if err := root.Validate(); err != nil {
		return nil, err
	}
	return root, nil
}

// LoadFixtureFile reads and parses a YAML tree fixture from disk.
func LoadFixtureFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}
	return LoadFixture(data)
}

func buildNode(spec nodeSpec) (*Node, error) {
	var node *Node
	switch spec.Kind {
	case "dir", "directory":
		node = NewDir(spec.Name)
		for _, childSpec := range spec.Children {
			child, err := buildNode(childSpec)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
		}
	case "file", "":
		if len(spec.Children) > 0 {
			return nil, ErrFileHasChild
		}
		node = NewFile(spec.Name, spec.Content, spec.Size)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, spec.Kind)
	}

	if spec.Permissions != "" {
		node.Permissions = spec.Permissions
	}
	if spec.Owner != "" {
		node.Owner = spec.Owner
	}
	if spec.Size != 0 {
		node.Size = spec.Size
	}
	node.Modified = spec.Modified
	return node, nil
}
