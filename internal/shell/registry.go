package shell

import (
	"fmt"
	"strings"
	"time"

	"github.com/rustpress/adminterm/internal/config"
)

// handlerFunc evaluates one command. args holds everything after the
// command name; failures are appended to res as Error lines.
type handlerFunc func(i *Interpreter, s *Session, args []string, res *Result)

// command pairs a handler with its registry metadata. noEcho suppresses
// the input echo line (clear and exit).
type command struct {
	run    handlerFunc
	help   string
	noEcho bool
}

// Interpreter dispatches command lines against a registry of handlers.
// It carries only immutable configuration; all per-terminal state lives
// in the Session, so one Interpreter serves any number of sessions.
type Interpreter struct {
	user     string
	host     string
	group    string
	now      func() time.Time
	started  time.Time
	commands map[string]command
	names    []string // registration order, drives help and completion
}

// New creates an Interpreter for the given configuration using the real
// clock.
func New(cfg *config.Config) *Interpreter {
	return NewWithClock(cfg, time.Now)
}

// NewWithClock creates an Interpreter with an injected clock, which keeps
// date/uptime/ls output deterministic in tests.
func NewWithClock(cfg *config.Config, now func() time.Time) *Interpreter {
	i := &Interpreter{
		user:     cfg.Terminal.User,
		host:     cfg.Terminal.Hostname,
		group:    cfg.Terminal.Group,
		now:      now,
		started:  now(),
		commands: make(map[string]command),
	}
	i.registerAll()
	return i
}

// register adds a command to the registry, keeping registration order for
// help and completion.
func (i *Interpreter) register(name string, c command) {
	i.commands[name] = c
	i.names = append(i.names, name)
}

// Prompt renders the input prompt for the session's current directory.
func (i *Interpreter) Prompt(s *Session) string {
	return fmt.Sprintf("%s@%s:%s$", i.user, i.host, s.Cwd)
}

// Run evaluates a single command line against the session. Every
// execution appends exactly one input echo line except clear and exit;
// unknown commands yield the bash-style "command not found" error line.
// Blank input is a no-op and is not recorded in the history.
func (i *Interpreter) Run(s *Session, line string) Result {
	var res Result

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return res
	}
	s.remember(trimmed)

	fields := strings.Fields(trimmed)
	name, args := fields[0], fields[1:]

	cmd, known := i.commands[name]
	if !known {
		res.Lines = append(res.Lines, Line{Kind: LineInput, Text: i.Prompt(s) + " " + trimmed})
		res.errorf("bash: %s: command not found", name)
		return res
	}

	if !cmd.noEcho {
		res.Lines = append(res.Lines, Line{Kind: LineInput, Text: i.Prompt(s) + " " + trimmed})
	}
	cmd.run(i, s, args, &res)
	return res
}

// registerAll wires the full command surface. Dispatch is case-sensitive
// on the first token only; the rest of the line keeps its case.
func (i *Interpreter) registerAll() {
	i.register("help", command{run: cmdHelp, help: "list available commands"})
	i.register("rustpress-cli", command{run: cmdRustpress, help: "RustPress management CLI"})
	i.register("rustpress", command{run: cmdRustpress, help: "alias for rustpress-cli"})
	i.register("clear", command{run: cmdClear, help: "clear the terminal", noEcho: true})
	i.register("ls", command{run: cmdLs, help: "list directory contents"})
	i.register("cd", command{run: cmdCd, help: "change directory"})
	i.register("pwd", command{run: cmdPwd, help: "print working directory"})
	i.register("cat", command{run: cmdCat, help: "print file contents"})
	i.register("mkdir", command{run: cmdMkdir, help: "create a directory"})
	i.register("touch", command{run: cmdTouch, help: "create an empty file"})
	i.register("rm", command{run: cmdRm, help: "remove a file or directory"})
	i.register("cp", command{run: cmdCp, help: "copy a file"})
	i.register("mv", command{run: cmdMv, help: "move or rename a file"})
	i.register("find", command{run: cmdFind, help: "find files by name"})
	i.register("tree", command{run: cmdTree, help: "show directory tree"})
	i.register("echo", command{run: cmdEcho, help: "print text"})
	i.register("grep", command{run: cmdGrep, help: "search file contents"})
	i.register("head", command{run: cmdHead, help: "show the first lines of a file"})
	i.register("tail", command{run: cmdTail, help: "show the last lines of a file"})
	i.register("wc", command{run: cmdWc, help: "count lines, words and bytes"})
	i.register("whoami", command{run: cmdWhoami, help: "print the current user"})
	i.register("date", command{run: cmdDate, help: "print the current date"})
	i.register("uptime", command{run: cmdUptime, help: "show system uptime"})
	i.register("uname", command{run: cmdUname, help: "print system information"})
	i.register("env", command{run: cmdEnv, help: "print environment variables"})
	i.register("export", command{run: cmdExport, help: "set an environment variable"})
	i.register("hostname", command{run: cmdHostname, help: "print the host name"})
	i.register("df", command{run: cmdDf, help: "report disk usage"})
	i.register("free", command{run: cmdFree, help: "report memory usage"})
	i.register("ps", command{run: cmdPs, help: "list processes"})
	i.register("history", command{run: cmdHistory, help: "show command history"})
	i.register("exit", command{run: cmdExit, help: "close the terminal", noEcho: true})
}

// Complete returns the first registered command whose name starts with the
// given partial input, or "" when nothing matches. Matching a full name
// completes to itself.
func (i *Interpreter) Complete(partial string) string {
	if partial == "" {
		return ""
	}
	for _, name := range i.names {
		if strings.HasPrefix(name, partial) {
			return name
		}
	}
	return ""
}
