package shell

// cmdRustpress is the embedded RustPress management CLI: a multi-level
// subcommand surface mirroring the real rustpress-cli binary. Output is
// representative status data; `auth login` additionally unlocks a locked
// session so cd works outside the allow-list.
func cmdRustpress(i *Interpreter, s *Session, args []string, res *Result) {
	if len(args) == 0 || args[0] == "help" || args[0] == "--help" {
		rustpressHelp(res)
		return
	}

	switch args[0] {
	case "version", "--version":
		res.output("rustpress-cli 0.9.2")
	case "status":
		rustpressStatus(s, res)
	case "auth":
		rustpressAuth(i, s, args[1:], res)
	case "db":
		rustpressDb(args[1:], res)
	case "plugins":
		rustpressSub(args[1:], "list", res, func() {
			res.output("NAME                   VERSION  STATUS")
			res.output("visual-queue-manager   1.4.0    active")
			res.output("rustbuilder            0.3.1    inactive")
		})
	case "themes":
		rustpressSub(args[1:], "list", res, func() {
			res.output("NAME      VERSION  STATUS")
			res.output("default   2.0.0    active")
			res.output("midnight  1.2.3    installed")
		})
	case "posts":
		rustpressSub(args[1:], "list", res, func() {
			res.output("ID  TITLE                      STATUS     UPDATED")
			res.output("14  Scaling RustPress on k8s   published  2026-03-12")
			res.output("13  Plugin API deep dive       published  2026-03-08")
			res.output("12  Theme hooks, explained     draft      2026-03-02")
		})
	case "cache":
		rustpressSub(args[1:], "stats", res, func() {
			res.output("entries: 212")
			res.output("hit rate: 94.2%")
			res.output("memory: 18.4M / 128M")
		})
	case "server":
		rustpressSub(args[1:], "status", res, func() {
			res.output("rustpress-server: running (pid 1)")
			res.output("listening on 0.0.0.0:8080")
			res.output("workers: 4, queue depth: 0")
		})
	default:
		res.errorf("rustpress-cli: unknown command '%s' (try 'rustpress-cli help')", args[0])
	}
}

// rustpressSub dispatches a single expected subcommand, reporting anything
// else as unknown.
func rustpressSub(args []string, want string, res *Result, run func()) {
	if len(args) == 0 || args[0] == want {
		run()
		return
	}
	res.errorf("rustpress-cli: unknown subcommand '%s' (try 'rustpress-cli help')", args[0])
}

func rustpressAuth(i *Interpreter, s *Session, args []string, res *Result) {
	if len(args) == 0 {
		res.errorf("rustpress-cli: auth requires a subcommand: login, logout, whoami")
		return
	}
	switch args[0] {
	case "login":
		s.Locked = false
		res.outputf("Logged in as %s@rustpress.local", i.user)
		res.output("Session unlocked.")
	case "logout":
		s.Locked = true
		res.output("Logged out. Session locked.")
	case "whoami":
		if s.Locked {
			res.output("Not logged in. Use 'rustpress auth login' to authenticate.")
			return
		}
		res.outputf("%s@rustpress.local", i.user)
	default:
		res.errorf("rustpress-cli: unknown auth subcommand '%s'", args[0])
	}
}

func rustpressDb(args []string, res *Result) {
	if len(args) > 0 && args[0] != "status" {
		res.errorf("rustpress-cli: unknown subcommand '%s' (try 'rustpress-cli help')", args[0])
		return
	}
	res.output("database: postgres 16.3 (localhost:5432)")
	res.output("migrations: 42 applied, 0 pending")
	res.output("pool: 3/20 connections in use")
}

func rustpressStatus(s *Session, res *Result) {
	res.output("RustPress 0.9.2")
	res.output("server:  online")
	res.output("database: connected")
	res.output("cache:   warm (212 entries)")
	if s.Locked {
		res.output("session: locked (not authenticated)")
	} else {
		res.output("session: authenticated")
	}
}

func rustpressHelp(res *Result) {
	for _, line := range []string{
		"RustPress management CLI",
		"",
		"Usage: rustpress-cli <command> [subcommand]",
		"",
		"Commands:",
		"  status          overall system status",
		"  version         print the CLI version",
		"  auth            login, logout, whoami",
		"  db              db status",
		"  plugins         plugins list",
		"  themes          themes list",
		"  posts           posts list",
		"  cache           cache stats",
		"  server          server status",
	} {
		res.output(line)
	}
}
