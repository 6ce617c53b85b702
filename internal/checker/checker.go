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

package checker

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prosecheck/prosecheck/config"
	"github.com/prosecheck/prosecheck/internal/buffer"
	"github.com/qiniu/x/xlog"
)

var factories = map[string]FactoryFunc{}

// FactoryFunc builds a checker from its configuration. List entries are regex
// fragments; a malformed entry fails here, at configuration time, with the
// regex engine's error.
type FactoryFunc func(cfg config.Checker) (Checker, error)

// Checker scans a buffer range for one category of style issue.
type Checker interface {
	// Name returns the checker name, e.g. "weasel".
	Name() string
	// Check scans the agent's buffer range and returns every issue found.
	Check(a Agent) ([]Issue, error)
	// Rule returns the annotation rule used for live inline highlighting.
	Rule() buffer.AnnotationRule
}

// Register registers a checker factory for the given name.
func Register(name string, f FactoryFunc) {
	factories[name] = f
}

// Factory returns the factory registered for name, or nil.
func Factory(name string) FactoryFunc {
	return factories[name]
}

// TotalCheckers returns all registered checker factories.
func TotalCheckers() map[string]FactoryFunc {
	out := make(map[string]FactoryFunc, len(factories))
	for name, f := range factories {
		out[name] = f
	}
	return out
}

// Names returns the registered checker names, sorted.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Issue is one located style problem.
type Issue struct {
	// File is the buffer or file name the issue was found in.
	File string
	// Line is the 1-based line number.
	Line int
	// Column is the 1-based column number.
	Column int
	// Start and End delimit the matched text as byte offsets.
	Start int
	End   int
	// Text is the matched text.
	Text string
	// Message describes the issue.
	Message string
	// Checker is the name of the checker that produced the issue.
	Checker string
}

// Agent knows necessary information in order to run checkers.
type Agent struct {
	// ID each check execution has a unique id.
	ID string
	// Buffer is the text buffer under scan. Checkers must not mutate it.
	Buffer *buffer.Buffer
	// Start and End delimit the scan range. Negative values mean
	// "unspecified" and resolve to the buffer selection or whole document.
	Start int
	End   int
	// CheckerConfig is the checker configuration.
	CheckerConfig config.Checker
}

// Report writes one report line per issue to w, in file:line:col form.
func Report(log *xlog.Logger, w io.Writer, issues []Issue) {
	for _, issue := range issues {
		fmt.Fprintf(w, "%s:%d:%d: %s\n", issue.File, issue.Line, issue.Column, issue.Message)
	}
	if log != nil && len(issues) > 0 {
		log.Infof("[%s] found %d issues", issues[0].Checker, len(issues))
	}
}

// Alternation joins word-list entries into a single boundary-anchored
// alternation pattern. Entries may themselves be multi-word phrases or
// contain alternations; the whole list is anchored as one group.
func Alternation(entries []string, caseSensitive bool) string {
	pattern := `\b(?:` + strings.Join(entries, "|") + `)\b`
	if !caseSensitive {
		pattern = `(?i)` + pattern
	}
	return pattern
}

// IssuesFromSpans converts match spans into issues addressed against buf.
func IssuesFromSpans(buf *buffer.Buffer, spans []buffer.Span, checkerName, msgFormat string) []Issue {
	var issues []Issue
	for _, span := range spans {
		text := buf.Text()[span.Start:span.End]
		line, col := buf.LineCol(span.Start)
		issues = append(issues, Issue{
			File:    buf.Name(),
			Line:    line,
			Column:  col,
			Start:   span.Start,
			End:     span.End,
			Text:    text,
			Message: fmt.Sprintf(msgFormat, text),
			Checker: checkerName,
		})
	}
	return issues
}
