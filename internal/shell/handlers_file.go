package shell

import (
	"strings"

	"github.com/rustpress/adminterm/internal/vfs"
)

func cmdCat(_ *Interpreter, s *Session, args []string, res *Result) {
	_, operands := splitArgs(args)
	if len(operands) == 0 {
		res.errorf("cat: missing operand")
		return
	}

	for _, operand := range operands {
		abs := vfs.ResolvePath(operand, s.Cwd)
		node, err := vfs.Lookup(s.Root, abs)
		if err != nil {
			res.errorf("cat: %s: No such file or directory", operand)
			continue
		}
		if node.IsDir() {
			res.errorf("cat: %s: Is a directory", operand)
			continue
		}
		for _, line := range splitContent(node.Content) {
			res.output(line)
		}
	}
}

// cmdEcho prints its arguments, substituting a single leading $VAR token
// from the session environment. Undefined variables expand to nothing.
func cmdEcho(_ *Interpreter, s *Session, args []string, res *Result) {
	if len(args) > 0 && strings.HasPrefix(args[0], "$") {
		args = append([]string{s.Env[args[0][1:]]}, args[1:]...)
	}
	res.output(strings.Join(args, " "))
}

// The remaining text utilities return fixed illustrative output. The
// admin terminal ships them as demo commands; they are deliberately not
// computed from the tree.

func cmdGrep(_ *Interpreter, _ *Session, args []string, res *Result) {
	_, operands := splitArgs(args)
	if len(operands) < 1 {
		res.errorf("usage: grep <pattern> [file...]")
		return
	}
	res.output("config/rustpress.toml:2:name = \"RustPress\"")
	res.output("crates/rustpress-core/lib.rs:1://! RustPress core runtime.")
	res.output("README.md:1:# RustPress")
}

func cmdFind(_ *Interpreter, _ *Session, _ []string, res *Result) {
	res.output("./Cargo.toml")
	res.output("./crates/rustpress-core/Cargo.toml")
	res.output("./crates/rustpress-admin/Cargo.toml")
	res.output("./crates/rustpress-cli/Cargo.toml")
}

func cmdTree(_ *Interpreter, _ *Session, _ []string, res *Result) {
	for _, line := range []string{
		".",
		"├── Cargo.toml",
		"├── README.md",
		"├── config",
		"│   ├── cdn.toml",
		"│   └── rustpress.toml",
		"├── crates",
		"│   ├── rustpress-admin",
		"│   ├── rustpress-cli",
		"│   └── rustpress-core",
		"├── plugins",
		"│   ├── rustbuilder",
		"│   └── visual-queue-manager",
		"├── public",
		"│   └── uploads",
		"└── themes",
		"    ├── default",
		"    └── midnight",
		"",
		"11 directories, 4 files",
	} {
		res.output(line)
	}
}

func cmdHead(_ *Interpreter, _ *Session, _ []string, res *Result) {
	res.output("2026-03-14T09:21:04Z INFO server listening on 0.0.0.0:8080")
	res.output("2026-03-14T09:21:05Z INFO 2 plugins loaded")
}

func cmdTail(_ *Interpreter, _ *Session, _ []string, res *Result) {
	res.output("2026-03-14T09:25:41Z INFO cache warmed: 212 entries")
	res.output("2026-03-14T09:26:02Z INFO scheduled jobs: 3 pending")
}

func cmdWc(_ *Interpreter, _ *Session, _ []string, res *Result) {
	res.output("  42  311 10486 rustpress.log")
}

// splitContent turns file content into output lines, dropping a single
// trailing newline so files do not render a spurious blank row.
func splitContent(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}
