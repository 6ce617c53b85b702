package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/prosecheck/prosecheck/internal/buffer"
)

// Render returns text with every annotation span styled inline. anns must be
// sorted and non-overlapping, as produced by Buffer.AnnotationsIn.
func Render(text string, anns []buffer.Annotation) string {
	var b strings.Builder
	last := 0
	for _, ann := range anns {
		if ann.Start < last || ann.End > len(text) {
			continue
		}
		b.WriteString(text[last:ann.Start])
		b.WriteString(styleFor(ann.Style).Render(text[ann.Start:ann.End]))
		last = ann.End
	}
	b.WriteString(text[last:])
	return b.String()
}

func styleFor(s buffer.Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Foreground != "" {
		st = st.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		st = st.Background(lipgloss.Color(s.Background))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	return st
}
