package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemCommands(t *testing.T) {
	i, s := newTestShell()

	res := i.Run(s, "whoami")
	assert.Equal(t, []string{"admin"}, texts(outputLines(res)))

	res = i.Run(s, "hostname")
	assert.Equal(t, []string{"rustpress-prod"}, texts(outputLines(res)))

	res = i.Run(s, "date")
	assert.Equal(t, []string{"Sat Mar 14 10:00:00 UTC 2026"}, texts(outputLines(res)))

	res = i.Run(s, "uname")
	assert.Equal(t, []string{"Linux"}, texts(outputLines(res)))

	res = i.Run(s, "uname -a")
	lines := texts(outputLines(res))
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "rustpress-prod")
	assert.Contains(t, lines[0], "x86_64")

	res = i.Run(s, "uptime")
	lines = texts(outputLines(res))
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "up 0 days")
	assert.Contains(t, lines[0], "load average")

	for _, cmdline := range []string{"df", "df -h", "free", "ps"} {
		res := i.Run(s, cmdline)
		assert.NotEmpty(t, outputLines(res), cmdline)
	}
}

func TestHistoryCommand(t *testing.T) {
	i, s := newTestShell()

	i.Run(s, "pwd")
	i.Run(s, "whoami")
	res := i.Run(s, "history")

	lines := texts(outputLines(res))
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], "pwd"))
	assert.True(t, strings.HasSuffix(lines[1], "whoami"))
	assert.True(t, strings.HasSuffix(lines[2], "history"))
}
