package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	minListWidth = 24
	maxListWidth = 44
)

func (m *Model) listWidth() int {
	width := m.width / 3
	if width < minListWidth {
		width = minListWidth
	}
	if width > maxListWidth {
		width = maxListWidth
	}
	if width > m.width-2 {
		width = m.width - 2
	}
	return width
}

func (m *Model) bodyHeight() int {
	// Header, search line, divider, status line.
	height := m.height - 4
	if height < 1 {
		height = 1
	}
	return height
}

func (m *Model) syncPreview() {
	note := m.selectedNote()
	if note == nil {
		m.preview.SetContent("")
		return
	}
	m.preview.SetContent(renderMarkdown(note.Content, m.preview.Width))
	m.preview.GotoTop()
}

func (m *Model) View() string {
	switch m.mode {
	case uiModeEditor:
		return m.viewEditor()
	case uiModeConfirmDelete:
		return m.viewConfirmDelete()
	}
	return m.viewList()
}

func (m *Model) viewList() string {
	var b strings.Builder
	b.WriteString(m.headerLine())
	b.WriteString("\n")
	b.WriteString(m.searchLine())
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", m.width)))
	b.WriteString("\n")

	listWidth := m.listWidth()
	list := m.renderNoteList(listWidth, m.bodyHeight())
	body := list
	if m.preview.Width > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			list,
			dividerStyle.Render(" │ "),
			m.preview.View(),
		)
	}
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	if toast := m.toastLine(m.width); toast != "" {
		b.WriteString("\n")
		b.WriteString(toast)
	}
	return b.String()
}

func (m *Model) headerLine() string {
	title := headerStyle.Render("noted")
	if m.loading || m.busy || m.searching {
		title += " " + m.loader.View()
	}
	return title
}

func (m *Model) searchLine() string {
	label := searchLabelStyle.Render("search:")
	line := label + " " + m.searchInput.View()
	if m.serverSearch {
		line += " " + searchServerStyle.Render(fmt.Sprintf("(%d server results)", len(m.searchResults)))
	}
	return line
}

func (m *Model) renderNoteList(width, height int) string {
	notes := m.visibleNotes()
	if len(notes) == 0 {
		empty := "no notes"
		if m.loading {
			empty = "loading..."
		} else if m.searchQuery != "" {
			empty = "no matches"
		}
		return padToSize(noteMetaStyle.Render(empty), width, height)
	}

	top := 0
	if m.cursor >= height {
		top = m.cursor - height + 1
	}
	var rows []string
	for i := top; i < len(notes) && i-top < height; i++ {
		title := notes[i].Title
		if title == "" {
			title = "(untitled)"
		}
		row := truncateLine(title, width-2)
		if i == m.cursor {
			row = selectedStyle.Render("▸ " + row)
		} else {
			row = noteTitleStyle.Render("  " + row)
		}
		rows = append(rows, row)
	}
	return padToSize(strings.Join(rows, "\n"), width, height)
}

func (m *Model) statusLine() string {
	if m.errMsg != "" {
		return errorStyle.Render(truncateLine(m.errMsg, m.width))
	}
	if m.status != "" {
		return statusStyle.Render(truncateLine(m.status, m.width))
	}
	help := "↑/↓ move · / search · a add · e edit · d delete · y copy · r reload · q quit"
	return helpStyle.Render(truncateLine(help, m.width))
}

func (m *Model) viewEditor() string {
	heading := "new note"
	if m.editID != "" {
		heading = "edit note"
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(heading))
	if m.busy {
		b.WriteString(" " + m.loader.View())
	}
	b.WriteString("\n\n")
	b.WriteString(fieldLabelStyle.Render("title"))
	b.WriteString("\n")
	b.WriteString(m.titleInput.View())
	b.WriteString("\n\n")
	b.WriteString(fieldLabelStyle.Render("content"))
	b.WriteString("\n")
	b.WriteString(m.contentInput.View())
	b.WriteString("\n\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(truncateLine(m.errMsg, m.width)))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(truncateLine(m.status, m.width)))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("tab switch field · ctrl+s save · esc cancel"))
	return b.String()
}

func (m *Model) viewConfirmDelete() string {
	title := m.deleteTitle
	if title == "" {
		title = "(untitled)"
	}
	question := fmt.Sprintf("Delete %q?", truncateLine(title, m.width-20))
	body := question + "\n\n" + helpStyle.Render("y delete · n cancel")
	if m.busy {
		body = question + "\n\n" + statusStyle.Render("deleting... "+m.loader.View())
	}
	dialog := dialogBorderStyle.Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

func padToSize(content string, width, height int) string {
	lines := strings.Split(content, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		if pad := width - lipgloss.Width(line); pad > 0 {
			lines[i] = line + strings.Repeat(" ", pad)
		}
	}
	return strings.Join(lines, "\n")
}
