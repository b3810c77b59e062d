package app

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	xansi "github.com/charmbracelet/x/ansi"
)

var (
	markdownMu        sync.Mutex
	markdownRenderers = map[int]*glamour.TermRenderer{}
)

// renderMarkdown renders note content for the preview pane. Renderers are
// cached per width because building one is expensive relative to a redraw.
func renderMarkdown(input string, width int) string {
	input = strings.TrimRight(input, "\n")
	if strings.TrimSpace(input) == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	renderer := markdownRenderer(width)
	if renderer == nil {
		return xansi.Hardwrap(input, width, true)
	}
	out, err := renderer.Render(input)
	if err != nil {
		return xansi.Hardwrap(input, width, true)
	}
	out = strings.TrimRight(out, "\n")
	return xansi.Hardwrap(out, width, true)
}

func markdownRenderer(width int) *glamour.TermRenderer {
	markdownMu.Lock()
	defer markdownMu.Unlock()
	if renderer, ok := markdownRenderers[width]; ok {
		return renderer
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	markdownRenderers[width] = renderer
	return renderer
}
