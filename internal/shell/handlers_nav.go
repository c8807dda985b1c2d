package shell

import (
	"sort"
	"strings"

	"github.com/rustpress/adminterm/internal/vfs"
)

func cmdPwd(_ *Interpreter, s *Session, _ []string, res *Result) {
	res.output(s.Cwd)
}

// cmdCd changes the working directory. For a locked session the
// allow-list check runs before the tree is consulted, so a forbidden
// target reports permission denied even if it does not exist.
func cmdCd(_ *Interpreter, s *Session, args []string, res *Result) {
	target := s.Env["HOME"]
	if len(args) > 0 {
		target = args[0]
	}

	abs := vfs.ResolvePath(target, s.Cwd)
	if !s.MayNavigate(abs) {
		res.errorf("bash: cd: %s: Permission denied (run 'rustpress auth login' to unlock the session)", target)
		return
	}

	node, err := vfs.Lookup(s.Root, abs)
	if err != nil {
		res.errorf("bash: cd: %s: No such file or directory", target)
		return
	}
	if !node.IsDir() {
		res.errorf("bash: cd: %s: Not a directory", target)
		return
	}
	s.Cwd = abs
}

// cmdLs lists a directory. Recognized flags: a l t r S h R 1; anything
// else in a cluster is silently ignored. Size sort wins over time sort,
// and -r reverses whichever order was chosen, last.
func cmdLs(i *Interpreter, s *Session, args []string, res *Result) {
	flags, operands := splitArgs(args)

	target := s.Cwd
	if len(operands) > 0 {
		target = operands[0]
	}
	abs := vfs.ResolvePath(target, s.Cwd)

	node, err := vfs.Lookup(s.Root, abs)
	if err != nil {
		res.errorf("ls: cannot access '%s': No such file or directory", target)
		return
	}

	if !node.IsDir() {
		if flags['l'] {
			res.output(formatLong(node, i.group, flags['h']))
		} else {
			res.output(node.Name)
		}
		return
	}

	entries := make([]*vfs.Node, 0, len(node.Children))
	for _, c := range node.Children {
		if !flags['a'] && strings.HasPrefix(c.Name, ".") {
			continue
		}
		entries = append(entries, c)
	}

	switch {
	case flags['S']:
		sort.SliceStable(entries, func(a, b int) bool {
			return displaySize(entries[a]) > displaySize(entries[b])
		})
	case flags['t']:
		sort.SliceStable(entries, func(a, b int) bool {
			return entries[a].Modified.After(entries[b].Modified)
		})
	default:
		sort.SliceStable(entries, func(a, b int) bool {
			return entries[a].Name < entries[b].Name
		})
	}
	if flags['r'] {
		for a, b := 0, len(entries)-1; a < b; a, b = a+1, b-1 {
			entries[a], entries[b] = entries[b], entries[a]
		}
	}

	switch {
	case flags['l']:
		res.outputf("total %d", totalKiB(entries))
		for _, e := range entries {
			res.output(formatLong(e, i.group, flags['h']))
		}
	case flags['1']:
		for _, e := range entries {
			res.output(e.Name)
		}
	default:
		if len(entries) == 0 {
			return
		}
		names := make([]string, len(entries))
		for idx, e := range entries {
			names[idx] = e.Name
		}
		res.output(strings.Join(names, "  "))
	}
}
