package shell

import (
	"fmt"

	"github.com/rustpress/adminterm/internal/vfs"
)

const (
	kib = 1024
	mib = 1024 * kib
	gib = 1024 * mib

	// Display size assumed for nodes without one (directories, mostly).
	defaultNodeSize = 4096
)

// humanSize renders a byte count the way ls -h does: plain bytes below
// 1K, then one decimal place with a K/M/G suffix.
func humanSize(size int64) string {
	switch {
	case size < kib:
		return fmt.Sprintf("%d", size)
	case size < mib:
		return fmt.Sprintf("%.1fK", float64(size)/kib)
	case size < gib:
		return fmt.Sprintf("%.1fM", float64(size)/mib)
	default:
		return fmt.Sprintf("%.1fG", float64(size)/gib)
	}
}

// displaySize substitutes the default for nodes missing a size.
func displaySize(n *vfs.Node) int64 {
	if n.Size <= 0 {
		return defaultNodeSize
	}
	return n.Size
}

// totalKiB sums entry sizes in 1K blocks, rounded up, for the ls -l
// header line.
func totalKiB(entries []*vfs.Node) int64 {
	var sum int64
	for _, e := range entries {
		sum += displaySize(e)
	}
	return (sum + kib - 1) / kib
}

// formatLong renders one ls -l row: type char, permissions, link count,
// owner, group, size, "Mon DD HH:MM" date, then the name with a trailing
// slash for directories.
func formatLong(n *vfs.Node, group string, human bool) string {
	typeChar := "-"
	links := 1
	suffix := ""
	if n.IsDir() {
		typeChar = "d"
		links = 2
		suffix = "/"
	}

	size := displaySize(n)
	sizeStr := fmt.Sprintf("%d", size)
	if human {
		sizeStr = humanSize(size)
	}

	return fmt.Sprintf("%s%s %2d %-8s %-8s %8s %s %s%s",
		typeChar, n.Permissions, links, n.Owner, group, sizeStr,
		n.Modified.Format("Jan 02 15:04"), n.Name, suffix)
}
