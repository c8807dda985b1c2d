package vfs

import "time"

// DefaultProjectRoot is where the seeded RustPress deployment lives.
const DefaultProjectRoot = "/var/www/rustpress"

// DefaultTree builds the seeded virtual tree: a RustPress deployment under
// /var/www/rustpress with its five top-level directories. Timestamps are
// fixed so listings are stable across sessions.
func DefaultTree() *Node {
	base := time.Date(2026, time.March, 14, 9, 26, 0, 0, time.UTC)

	crates := NewDir("crates",
		NewDir("rustpress-core",
			NewFile("lib.rs", "//! RustPress core runtime.\n\npub mod content;\npub mod hooks;\npub mod themes;\n", 2840),
			NewFile("Cargo.toml", "[package]\nname = \"rustpress-core\"\nversion = \"0.9.2\"\nedition = \"2021\"\n", 412),
		),
		NewDir("rustpress-admin",
			NewFile("lib.rs", "//! Admin panel routes and handlers.\n\npub mod routes;\npub mod widgets;\n", 1975),
			NewFile("Cargo.toml", "[package]\nname = \"rustpress-admin\"\nversion = \"0.9.2\"\nedition = \"2021\"\n", 398),
		),
		NewDir("rustpress-cli",
			NewFile("main.rs", "fn main() {\n    rustpress_cli::run();\n}\n", 186),
			NewFile("Cargo.toml", "[package]\nname = \"rustpress-cli\"\nversion = \"0.9.2\"\nedition = \"2021\"\n", 401),
		),
	)

	plugins := NewDir("plugins",
		NewDir("visual-queue-manager",
			NewFile("plugin.toml", "[plugin]\nname = \"visual-queue-manager\"\nversion = \"1.4.0\"\nenabled = true\n", 288),
		),
		NewDir("rustbuilder",
			NewFile("plugin.toml", "[plugin]\nname = \"rustbuilder\"\nversion = \"0.3.1\"\nenabled = false\n", 252),
		),
	)

	themes := NewDir("themes",
		NewDir("default",
			NewFile("theme.toml", "[theme]\nname = \"default\"\nversion = \"2.0.0\"\n", 164),
			NewFile("index.html", "<!DOCTYPE html>\n<html>\n<head><title>RustPress</title></head>\n<body>{{ content }}</body>\n</html>\n", 1204),
		),
		NewDir("midnight",
			NewFile("theme.toml", "[theme]\nname = \"midnight\"\nversion = \"1.2.3\"\n", 166),
		),
	)

	config := NewDir("config",
		NewFile("rustpress.toml", "[site]\nname = \"RustPress\"\nurl = \"https://demo.rustpress.io\"\n\n[database]\nhost = \"localhost\"\nport = 5432\n", 940),
		NewFile("cdn.toml", "[cdn]\nprovider = \"bunnycdn\"\npull_zone = \"rustpress-demo\"\n", 310),
		NewFile(".env", "DATABASE_URL=postgres://rustpress@localhost/rustpress\nRUSTPRESS_ENV=production\n", 142),
	)

	public := NewDir("public",
		NewDir("uploads",
			NewFile("hero.jpg", "", 482113),
			NewFile("logo.svg", "<svg xmlns=\"http://www.w3.org/2000/svg\"></svg>\n", 2391),
		),
		NewFile("robots.txt", "User-agent: *\nAllow: /\nSitemap: /sitemap.xml\n", 88),
	)

	project := NewDir("rustpress",
		crates,
		plugins,
		themes,
		config,
		public,
		NewFile("Cargo.toml", "[workspace]\nmembers = [\"crates/*\"]\nresolver = \"2\"\n", 214),
		NewFile("README.md", "# RustPress\n\nA content management system written in Rust.\n", 1680),
		NewFile("rustpress.log", "2026-03-14T09:21:04Z INFO server listening on 0.0.0.0:8080\n2026-03-14T09:21:05Z INFO 2 plugins loaded\n", 10486),
	)

	root := NewDir("/", NewDir("var", NewDir("www", project)))
	stampTree(root, base)
	return root
}

// stampTree assigns deterministic, slightly staggered modification times so
// time-based sorts have a defined order.
func stampTree(n *Node, t time.Time) time.Time {
	n.Modified = t
	next := t.Add(7 * time.Minute)
	for _, c := range n.Children {
		next = stampTree(c, next)
	}
	return next
}
