package vfs

import "strings"

// ResolvePath lexically resolves path against cwd and returns a clean
// absolute slash-separated path. Absolute inputs ignore cwd. Empty and "."
// segments are dropped; ".." pops the last resolved segment and clamps at
// root rather than underflowing. The tree is not consulted.
func ResolvePath(path, cwd string) string {
	var joined string
	if strings.HasPrefix(path, "/") {
		joined = path
	} else {
		joined = cwd + "/" + path
	}

	var stack []string
	for _, seg := range strings.Split(joined, "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, seg)
		}
	}
	return "/" + strings.Join(stack, "/")
}

// Lookup walks the tree from root following the segments of an absolute
// path. It returns ErrNotFound for a missing segment and ErrNotADirectory
// when asked to descend into a file.
func Lookup(root *Node, abs string) (*Node, error) {
	node := root
	for _, seg := range strings.Split(abs, "/") {
		if seg == "" {
			continue
		}
		if !node.IsDir() {
			return nil, ErrNotADirectory
		}
		child := node.Child(seg)
		if child == nil {
			return nil, ErrNotFound
		}
		node = child
	}
	return node, nil
}

// Within reports whether the absolute path target equals base or is nested
// under it. Both inputs are expected to be clean absolute paths.
func Within(target, base string) bool {
	if base == "/" {
		return true
	}
	return target == base || strings.HasPrefix(target, base+"/")
}
