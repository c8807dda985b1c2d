package ui

import "github.com/charmbracelet/glamour"

// MarkdownRenderer renders markdown to styled terminal output. The
// interface keeps the glamour dependency out of tests.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}

// GlamourRenderer is the production MarkdownRenderer.
type GlamourRenderer struct {
	renderer *glamour.TermRenderer
}

// NewGlamourRenderer creates a renderer with automatic light/dark styling.
func NewGlamourRenderer() (*GlamourRenderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)
	if err != nil {
		return nil, err
	}
	return &GlamourRenderer{renderer: r}, nil
}

// Render renders markdown to ANSI-styled text.
func (g *GlamourRenderer) Render(markdown string) (string, error) {
	return g.renderer.Render(markdown)
}

// helpMarkdown is the F1 overlay content.
const helpMarkdown = `# RustPress Admin Terminal

A virtual shell over the RustPress deployment tree. Nothing here touches
the real filesystem; mutating commands are simulated.

## Keys

| Key | Action |
|-----|--------|
| Enter | run the command |
| Tab | complete the command name |
| Up / Down | browse history |
| Ctrl+L | clear the screen |
| F1 | toggle this help |
| Ctrl+D | close the terminal |

## Getting started

Run ` + "`help`" + ` for the command list, or ` + "`rustpress-cli status`" + `
for a system overview. Locked sessions can only ` + "`cd`" + ` within the
project tree until ` + "`rustpress auth login`" + `.
`
