// Package editor provides the interactive editing session with live inline
// highlighting of style issues.
//
// The session is a single bubbletea event loop: a textarea holds the
// document, every edit is mirrored into the annotation buffer, and the
// preview pane re-renders the buffer's annotations. Do not access the model
// from outside the event loop.
package editor

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/prosecheck/prosecheck/internal/buffer"
	"github.com/prosecheck/prosecheck/internal/highlight"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	paneStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Model is the bubbletea model for an editing session over one file.
type Model struct {
	path  string
	buf   *buffer.Buffer
	coord *highlight.Coordinator

	ta      textarea.Model
	preview viewport.Model

	width  int
	height int
	status string
	err    error
}

// New opens an editing session for path with content. The buffer is attached
// to coord, so global live-highlight mode applies to it immediately.
func New(path, content string, coord *highlight.Coordinator) Model {
	ta := textarea.New()
	ta.CharLimit = 0
	ta.ShowLineNumbers = true
	ta.SetValue(content)
	ta.Focus()

	buf := buffer.New(path, content)
	coord.Attach(buf)

	return Model{
		path:    path,
		buf:     buf,
		coord:   coord,
		ta:      ta,
		preview: viewport.New(0, 0),
	}
}

// Buffer returns the annotation buffer backing the session.
func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ta.SetWidth(msg.Width - 4)
		m.ta.SetHeight((msg.Height - 6) / 2)
		m.preview.Width = msg.Width - 4
		m.preview.Height = (msg.Height - 6) / 2

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+s":
			if err := os.WriteFile(m.path, []byte(m.ta.Value()), 0o644); err != nil {
				m.err = err
				m.status = fmt.Sprintf("save failed: %v", err)
			} else {
				m.status = "saved " + m.path
			}
			return m, nil
		case "ctrl+h":
			if m.coord.Toggle(m.buf) {
				m.status = "live highlight on"
			} else {
				m.status = "live highlight off"
			}
			return m, nil
		case "ctrl+g":
			m.coord.SetGlobal(!m.coord.Global())
			if m.coord.Global() {
				m.status = "global live highlight on"
			} else {
				m.status = "global live highlight off"
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)

	// the user's edit is the only thing that mutates the buffer
	if m.ta.Value() != m.buf.Text() {
		m.buf.SetText(m.ta.Value())
	}
	return m, cmd
}

func (m Model) View() string {
	anns := m.buf.AnnotationsIn(0, m.buf.Len())
	m.preview.SetContent(Render(m.buf.Text(), anns))

	title := titleStyle.Render(fmt.Sprintf("prosecheck: %s", m.path))
	bar := statusStyle.Render(m.statusLine(anns))

	return strings.Join([]string{
		title,
		paneStyle.Render(m.ta.View()),
		paneStyle.Render(m.preview.View()),
		bar,
	}, "\n")
}

func (m Model) statusLine(anns []buffer.Annotation) string {
	mode := "off"
	if m.coord.Enabled(m.buf) {
		mode = "on"
	}
	line := fmt.Sprintf("highlight %s · %d issues · ^H toggle · ^G global · ^S save · esc quit",
		mode, len(anns))
	if tip, ok := m.buf.AnnotationAt(m.cursorOffset()); ok {
		line = tip.Tooltip + " · " + line
	}
	if m.status != "" {
		line = m.status + " · " + line
	}
	return line
}

// cursorOffset converts the textarea cursor position to a byte offset.
func (m Model) cursorOffset() int {
	row := m.ta.Line()
	col := m.ta.LineInfo().ColumnOffset
	lines := strings.Split(m.ta.Value(), "\n")
	off := 0
	for i := 0; i < row && i < len(lines); i++ {
		off += len(lines[i]) + 1
	}
	return off + col
}

// Run starts the editing session and blocks until the user quits.
func Run(path, content string, coord *highlight.Coordinator) error {
	p := tea.NewProgram(New(path, content, coord), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
