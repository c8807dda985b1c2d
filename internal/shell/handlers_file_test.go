package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustpress/adminterm/internal/vfs"
)

func TestCat(t *testing.T) {
	cfg := testConfig()
	cfg.Terminal.ProjectRoot = "/a"
	i := testInterp(cfg)

	root := vfs.NewDir("/",
		vfs.NewDir("a",
			vfs.NewFile("f.txt", "hi", 2),
		),
	)
	require.NoError(t, root.Validate())
	s := NewSession(cfg, root)
	require.Equal(t, "/a", s.Cwd)

	res := i.Run(s, "cat f.txt")
	lines := outputLines(res)
	require.Len(t, lines, 1)
	assert.Equal(t, LineOutput, lines[0].Kind)
	assert.Equal(t, "hi", lines[0].Text)

	res = i.Run(s, "cat missing.txt")
	lines = outputLines(res)
	require.Len(t, lines, 1)
	assert.Equal(t, LineError, lines[0].Kind)
	assert.Contains(t, lines[0].Text, "No such file")

	res = i.Run(s, "cat /a")
	lines = outputLines(res)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0].Text, "Is a directory")

	res = i.Run(s, "cat")
	lines = outputLines(res)
	require.Len(t, lines, 1)
	assert.Equal(t, LineError, lines[0].Kind)
}

func TestCatMultilineDropsTrailingNewline(t *testing.T) {
	i, s := newTestShell()
	res := i.Run(s, "cat Cargo.toml")
	lines := texts(outputLines(res))
	require.NotEmpty(t, lines)
	assert.Equal(t, "[workspace]", lines[0])
	assert.NotEqual(t, "", lines[len(lines)-1], "no trailing blank row")
}

func TestEcho(t *testing.T) {
	i, s := newTestShell()

	res := i.Run(s, "echo hello world")
	assert.Equal(t, []string{"hello world"}, texts(outputLines(res)))

	// A single leading $VAR is substituted from the environment.
	res = i.Run(s, "echo $USER")
	assert.Equal(t, []string{"admin"}, texts(outputLines(res)))

	res = i.Run(s, "echo $USER is here")
	assert.Equal(t, []string{"admin is here"}, texts(outputLines(res)))

	// Undefined variables expand to nothing.
	res = i.Run(s, "echo $NOPE")
	assert.Equal(t, []string{""}, texts(outputLines(res)))

	// Only the leading token is substituted.
	res = i.Run(s, "echo hi $USER")
	assert.Equal(t, []string{"hi $USER"}, texts(outputLines(res)))
}

func TestExportAndEnv(t *testing.T) {
	i, s := newTestShell()

	res := i.Run(s, "export DEPLOY_TARGET=staging")
	assert.Empty(t, outputLines(res))

	res = i.Run(s, "echo $DEPLOY_TARGET")
	assert.Equal(t, []string{"staging"}, texts(outputLines(res)))

	res = i.Run(s, "env")
	joined := texts(outputLines(res))
	assert.Contains(t, joined, "DEPLOY_TARGET=staging")
	assert.Contains(t, joined, "USER=admin")

	res = i.Run(s, "export BROKEN")
	lines := outputLines(res)
	require.Len(t, lines, 1)
	assert.Equal(t, LineError, lines[0].Kind)

	res = i.Run(s, "export")
	lines = outputLines(res)
	require.Len(t, lines, 1)
	assert.Equal(t, LineError, lines[0].Kind)
}

func TestStubbedTextUtilities(t *testing.T) {
	i, s := newTestShell()

	// These return fixed illustrative output regardless of arguments.
	res := i.Run(s, "tree")
	assert.NotEmpty(t, outputLines(res))

	res = i.Run(s, "find . -name *.toml")
	assert.NotEmpty(t, outputLines(res))

	res = i.Run(s, "grep RustPress README.md")
	assert.NotEmpty(t, outputLines(res))

	res = i.Run(s, "grep")
	lines := outputLines(res)
	require.Len(t, lines, 1)
	assert.Equal(t, LineError, lines[0].Kind)

	res = i.Run(s, "wc rustpress.log")
	assert.Len(t, outputLines(res), 1)

	res = i.Run(s, "head rustpress.log")
	assert.NotEmpty(t, outputLines(res))

	res = i.Run(s, "tail rustpress.log")
	assert.NotEmpty(t, outputLines(res))
}

func TestSimulatedMutatingCommands(t *testing.T) {
	i, s := newTestShell()

	project, err := vfs.Lookup(s.Root, s.Cwd)
	require.NoError(t, err)
	childrenBefore := len(project.Children)

	res := i.Run(s, "mkdir newdir")
	lines := outputLines(res)
	require.Len(t, lines, 1)
	assert.Equal(t, LineOutput, lines[0].Kind)
	assert.Contains(t, lines[0].Text, "newdir")

	i.Run(s, "touch new.txt")
	i.Run(s, "rm README.md")
	i.Run(s, "cp a b")
	i.Run(s, "mv a b")

	// The tree is never modified.
	assert.Len(t, project.Children, childrenBefore)
	_, err = vfs.Lookup(s.Root, s.Cwd+"/README.md")
	assert.NoError(t, err, "rm must not remove anything")

	// Missing operands are reported as errors.
	for _, cmdline := range []string{"mkdir", "touch", "rm", "cp one", "mv one"} {
		res := i.Run(s, cmdline)
		lines := outputLines(res)
		require.Len(t, lines, 1, cmdline)
		assert.Equal(t, LineError, lines[0].Kind, cmdline)
		assert.Contains(t, lines[0].Text, "missing", cmdline)
	}
}
