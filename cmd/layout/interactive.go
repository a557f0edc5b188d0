package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/smallbox"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	inlineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	heapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB86C"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func headerLine(w int) string {
	return headerStyle.Render(fmt.Sprintf("%s  %6s  %5s  %8s  %s",
		pad("type", w), "size", "align", "pointers", "mode"))
}

func entryLine(e typeEntry, w int) string {
	mode := inlineStyle.Render("inline")
	if !e.inline {
		mode = heapStyle.Render("heap")
	}
	ptr := "no"
	if e.pointers {
		ptr = "yes"
		if e.inline {
			ptr = warnStyle.Render("yes!")
		}
	}
	return fmt.Sprintf("%s  %6d  %5d  %8s  %s", pad(e.name, w), e.size, e.align, ptr, mode)
}

type layoutModel struct {
	entries  []typeEntry
	filtered []typeEntry
	filter   textinput.Model
	selected int
	width    int
}

func runInteractive(entries []typeEntry) error {
	ti := textinput.New()
	ti.Placeholder = "filter types"
	ti.Focus()

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width = 80
	}

	m := &layoutModel{
		entries:  entries,
		filtered: entries,
		filter:   ti,
		width:    width,
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *layoutModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *layoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "up":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down":
			if m.selected < len(m.filtered)-1 {
				m.selected++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refilter()
	return m, cmd
}

func (m *layoutModel) refilter() {
	needle := strings.ToLower(m.filter.Value())
	m.filtered = nil
	for _, e := range m.entries {
		if needle == "" || strings.Contains(strings.ToLower(e.name), needle) {
			m.filtered = append(m.filtered, e)
		}
	}
	if m.selected >= len(m.filtered) {
		m.selected = len(m.filtered) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *layoutModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("smallbox layout - %d-byte words, %d-byte inline limit",
		smallbox.WordSize, smallbox.SizeLimit)
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(helpStyle.Render("no types match"))
		b.WriteString("\n")
	} else {
		w := nameColumnWidth(m.filtered)
		b.WriteString("  ")
		b.WriteString(headerLine(w))
		b.WriteString("\n")
		for i, e := range m.filtered {
			cursor := "  "
			if i == m.selected {
				cursor = selectedStyle.Render("> ")
			}
			b.WriteString(cursor)
			b.WriteString(entryLine(e, w))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.detailView())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("type to filter - up/down to select - esc to quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *layoutModel) detailView() string {
	e := m.filtered[m.selected]

	var lines []string
	if e.inline {
		free := smallbox.SizeLimit - e.size
		lines = append(lines, fmt.Sprintf("%s fits the word buffer with %d byte(s) to spare; no allocation.",
			e.name, free))
	} else {
		over := e.size - smallbox.SizeLimit
		lines = append(lines, fmt.Sprintf("%s exceeds the word buffer by %d byte(s); one heap block per value.",
			e.name, over))
	}
	if e.pointers && e.inline {
		lines = append(lines, warnStyle.Render(
			"holds Go pointers: inline bytes are invisible to the collector, keep pointees reachable or use package checked"))
	}
	if !e.wordAligned {
		lines = append(lines, warnStyle.Render(
			"requires stricter alignment than the word buffer provides on this platform"))
	}

	detail := strings.Join(lines, "\n")
	if m.width > 0 {
		detail = lipgloss.NewStyle().Width(m.width).Render(detail)
	}
	return detail
}
