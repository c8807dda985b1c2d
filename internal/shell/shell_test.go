package shell

import (
	"time"

	"github.com/rustpress/adminterm/internal/config"
	"github.com/rustpress/adminterm/internal/vfs"
)

// Shared test fixtures. The clock is pinned so date/uptime/ls output is
// deterministic.

var testNow = time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Terminal.Locked = false
	return cfg
}

func testInterp(cfg *config.Config) *Interpreter {
	return NewWithClock(cfg, func() time.Time { return testNow })
}

// newTestShell builds an unlocked interpreter/session pair over the
// seeded tree.
func newTestShell() (*Interpreter, *Session) {
	cfg := testConfig()
	i := testInterp(cfg)
	s := NewSession(cfg, vfs.DefaultTree())
	return i, s
}

// outputLines filters out the input echo, returning only output and
// error rows.
func outputLines(res Result) []Line {
	var out []Line
	for _, l := range res.Lines {
		if l.Kind != LineInput {
			out = append(out, l)
		}
	}
	return out
}

func texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}
