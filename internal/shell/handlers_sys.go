package shell

import (
	"fmt"
	"sort"
	"strings"
)

func cmdHelp(i *Interpreter, _ *Session, _ []string, res *Result) {
	res.output("RustPress admin terminal. Available commands:")
	res.output("")
	for _, name := range i.names {
		if name == "rustpress" {
			continue // alias, keep the listing short
		}
		res.outputf("  %-14s %s", name, i.commands[name].help)
	}
	res.output("")
	res.output("Use Tab to complete commands and Up/Down to browse history.")
}

func cmdClear(_ *Interpreter, _ *Session, _ []string, res *Result) {
	res.ClearScreen = true
}

func cmdExit(_ *Interpreter, _ *Session, _ []string, res *Result) {
	res.Exited = true
}

func cmdWhoami(i *Interpreter, _ *Session, _ []string, res *Result) {
	res.output(i.user)
}

func cmdHostname(i *Interpreter, _ *Session, _ []string, res *Result) {
	res.output(i.host)
}

func cmdDate(i *Interpreter, _ *Session, _ []string, res *Result) {
	res.output(i.now().Format("Mon Jan  2 15:04:05 MST 2006"))
}

func cmdUptime(i *Interpreter, _ *Session, _ []string, res *Result) {
	now := i.now()
	up := now.Sub(i.started)
	days := int(up.Hours()) / 24
	hours := int(up.Hours()) % 24
	minutes := int(up.Minutes()) % 60
	res.outputf(" %s up %d days, %2d:%02d,  1 user,  load average: 0.08, 0.12, 0.09",
		now.Format("15:04:05"), days, hours, minutes)
}

func cmdUname(i *Interpreter, _ *Session, args []string, res *Result) {
	flags, _ := splitArgs(args)
	if flags['a'] {
		res.outputf("Linux %s 6.1.0-18-amd64 #1 SMP PREEMPT_DYNAMIC x86_64 GNU/Linux", i.host)
		return
	}
	res.output("Linux")
}

func cmdEnv(_ *Interpreter, s *Session, _ []string, res *Result) {
	keys := make([]string, 0, len(s.Env))
	for k := range s.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		res.outputf("%s=%s", k, s.Env[k])
	}
}

// cmdExport sets variables from KEY=VALUE operands. Malformed operands
// report an error but do not stop the rest of the line.
func cmdExport(_ *Interpreter, s *Session, args []string, res *Result) {
	if len(args) == 0 {
		res.errorf("export: missing operand")
		return
	}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			res.errorf("export: '%s': not a valid identifier", arg)
			continue
		}
		s.Env[key] = value
	}
}

func cmdDf(_ *Interpreter, _ *Session, args []string, res *Result) {
	flags, _ := splitArgs(args)
	res.output("Filesystem      Size  Used Avail Use% Mounted on")
	if flags['h'] {
		res.output("/dev/vda1        80G   23G   54G  30% /")
		res.output("tmpfs           3.9G     0  3.9G   0% /dev/shm")
		return
	}
	res.output("/dev/vda1      83886080 24117248 56623104  30% /")
	res.output("tmpfs           4096000        0  4096000   0% /dev/shm")
}

func cmdFree(_ *Interpreter, _ *Session, _ []string, res *Result) {
	res.output("               total        used        free      shared  buff/cache   available")
	res.output("Mem:         8053248     2411724     3276800      114688     2364724     5308416")
	res.output("Swap:        2097152           0     2097152")
}

func cmdPs(_ *Interpreter, _ *Session, _ []string, res *Result) {
	res.output("  PID TTY          TIME CMD")
	res.output("    1 ?        00:00:04 rustpress-server")
	res.output("   27 ?        00:01:12 rustpress-jobs")
	res.output("   31 ?        00:00:00 rustpress-cdn")
	res.output("  214 pts/0    00:00:00 bash")
	res.output("  215 pts/0    00:00:00 ps")
}

func cmdHistory(_ *Interpreter, s *Session, _ []string, res *Result) {
	for idx, entry := range s.History {
		res.output(fmt.Sprintf("%5d  %s", idx+1, entry))
	}
}
