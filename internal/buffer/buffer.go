/*
 Copyright 2024 Qiniu Cloud (qiniu.com).

 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package buffer

import (
	"strings"
)

// Buffer is an editable, linearly-addressable text buffer. It stands in for
// the host editor's buffer: checkers scan it read-only, the highlight
// coordinator attaches annotation rules to it, and only user-driven edits
// mutate its content.
//
// Offsets are byte offsets into the text. Line and column numbers are 1-based.
type Buffer struct {
	name string
	text string

	// selection range; selStart == -1 means no active selection.
	selStart, selEnd int

	rules  map[RuleID]AnnotationRule
	order  []RuleID
	nextID RuleID
}

// Span is a half-open [Start, End) byte range within a buffer.
type Span struct {
	Start int
	End   int
}

// New returns a buffer holding text.
func New(name, text string) *Buffer {
	return &Buffer{
		name:     name,
		text:     text,
		selStart: -1,
		selEnd:   -1,
		rules:    make(map[RuleID]AnnotationRule),
	}
}

func (b *Buffer) Name() string { return b.name }

func (b *Buffer) Text() string { return b.text }

func (b *Buffer) Len() int { return len(b.text) }

// SetText replaces the entire buffer content and drops any selection.
// Annotation rules survive content changes; they are re-evaluated on demand.
func (b *Buffer) SetText(text string) {
	b.text = text
	b.selStart, b.selEnd = -1, -1
}

// Insert inserts s at offset off, clamped to the buffer bounds.
func (b *Buffer) Insert(off int, s string) {
	if off < 0 {
		off = 0
	}
	if off > len(b.text) {
		off = len(b.text)
	}
	b.text = b.text[:off] + s + b.text[off:]
	b.selStart, b.selEnd = -1, -1
}

// Select marks [start, end) as the active selection.
func (b *Buffer) Select(start, end int) {
	start, end = b.clamp(start, end)
	b.selStart, b.selEnd = start, end
}

// ClearSelection removes the active selection.
func (b *Buffer) ClearSelection() {
	b.selStart, b.selEnd = -1, -1
}

// Selection returns the active selection and whether one exists.
func (b *Buffer) Selection() (start, end int, ok bool) {
	if b.selStart < 0 {
		return 0, 0, false
	}
	return b.selStart, b.selEnd, true
}

// Range resolves a caller-supplied range against the buffer. Negative
// offsets mean "unspecified": an unspecified range falls back to the active
// selection, or to the whole document when there is no selection.
func (b *Buffer) Range(start, end int) (int, int) {
	if start < 0 || end < 0 {
		if s, e, ok := b.Selection(); ok {
			return s, e
		}
		return 0, len(b.text)
	}
	return b.clamp(start, end)
}

func (b *Buffer) clamp(start, end int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > len(b.text) {
		end = len(b.text)
	}
	if start > end {
		start = end
	}
	return start, end
}

// LineCol converts a byte offset to a 1-based line and column.
func (b *Buffer) LineCol(off int) (line, col int) {
	if off < 0 {
		off = 0
	}
	if off > len(b.text) {
		off = len(b.text)
	}
	prefix := b.text[:off]
	line = strings.Count(prefix, "\n") + 1
	if i := strings.LastIndexByte(prefix, '\n'); i >= 0 {
		col = off - i
	} else {
		col = off + 1
	}
	return line, col
}

// Line returns the 1-based line n without its trailing newline.
func (b *Buffer) Line(n int) string {
	lines := strings.Split(b.text, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}

// FindAll scans [start, end) with p and returns every non-overlapping match
// span, addressed in whole-buffer offsets.
func (b *Buffer) FindAll(p Pattern, start, end int) []Span {
	start, end = b.Range(start, end)
	spans := p.FindAll(b.text[start:end])
	for i := range spans {
		spans[i].Start += start
		spans[i].End += start
	}
	return spans
}
