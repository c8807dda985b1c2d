// Package shell implements the virtual file-system shell behind the admin
// terminal: a command interpreter evaluating single command lines against
// an immutable tree and explicit session state. Commands never raise
// errors to the caller; failures become Error-typed output lines.
package shell

import (
	"github.com/rustpress/adminterm/internal/config"
	"github.com/rustpress/adminterm/internal/vfs"
)

// Session is the mutable state of one open terminal: working directory,
// environment variables, command history and the lock flag. The tree it
// points at is owned by the session and never mutated.
type Session struct {
	Root    *vfs.Node
	Cwd     string
	Env     map[string]string
	History []string

	// Locked marks an unauthenticated session: cd is then restricted to
	// the allow-list (project root plus its immediate subdirectories).
	Locked    bool
	AllowList []string

	historyLimit int
	browseIdx    int // 0 = not browsing, n = n steps back from the end
}

// NewSession creates a session over the given tree, positioned at the
// project root (falling back to "/" if the fixture lacks it).
func NewSession(cfg *config.Config, root *vfs.Node) *Session {
	cwd := cfg.Terminal.ProjectRoot
	if _, err := vfs.Lookup(root, cwd); err != nil {
		cwd = "/"
	}

	return &Session{
		Root:         root,
		Cwd:          cwd,
		Env:          defaultEnv(cfg),
		Locked:       cfg.Terminal.Locked,
		AllowList:    buildAllowList(root, cfg.Terminal.ProjectRoot),
		historyLimit: cfg.Terminal.HistoryLimit,
	}
}

func defaultEnv(cfg *config.Config) map[string]string {
	return map[string]string{
		"HOME":          cfg.Terminal.ProjectRoot,
		"USER":          cfg.Terminal.User,
		"SHELL":         "/bin/bash",
		"PATH":          "/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin",
		"RUSTPRESS_ENV": "production",
	}
}

// buildAllowList returns the project root and its immediate subdirectories.
// When the project root is missing from the tree the list is just the root
// path, which keeps a locked session navigable.
func buildAllowList(root *vfs.Node, projectRoot string) []string {
	allowed := []string{projectRoot}
	node, err := vfs.Lookup(root, projectRoot)
	if err != nil || !node.IsDir() {
		return allowed
	}
	for _, c := range node.Children {
		if c.IsDir() {
			allowed = append(allowed, projectRoot+"/"+c.Name)
		}
	}
	return allowed
}

// MayNavigate reports whether a locked session is allowed to cd into the
// absolute target path. Unlocked sessions may go anywhere.
func (s *Session) MayNavigate(target string) bool {
	if !s.Locked {
		return true
	}
	for _, base := range s.AllowList {
		if vfs.Within(target, base) {
			return true
		}
	}
	return false
}

// remember appends a command line to the history, trimming the oldest
// entries past the configured limit, and leaves browse mode.
func (s *Session) remember(line string) {
	s.History = append(s.History, line)
	if len(s.History) > s.historyLimit {
		s.History = s.History[len(s.History)-s.historyLimit:]
	}
	s.browseIdx = 0
}

// HistoryPrev steps backward (most recent first) through the history.
// The second return is false when the history is exhausted.
func (s *Session) HistoryPrev() (string, bool) {
	if s.browseIdx >= len(s.History) {
		return "", false
	}
	s.browseIdx++
	return s.History[len(s.History)-s.browseIdx], true
}

// HistoryNext steps forward again after HistoryPrev. Returning false with
// an empty string means the caller is back at a blank input line.
func (s *Session) HistoryNext() (string, bool) {
	if s.browseIdx <= 1 {
		s.browseIdx = 0
		return "", false
	}
	s.browseIdx--
	return s.History[len(s.History)-s.browseIdx], true
}
