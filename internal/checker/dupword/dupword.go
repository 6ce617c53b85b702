package dupword

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/prosecheck/prosecheck/config"
	"github.com/prosecheck/prosecheck/internal/buffer"
	"github.com/prosecheck/prosecheck/internal/checker"
)

const checkerName = "dupword"

func init() {
	checker.Register(checkerName, New)
}

// ScanCompleteNotice terminates every duplicate-word report, even an empty one.
const ScanCompleteNotice = "duplicate word scan complete"

const defaultTooltip = "Duplicate word."

var defaultStyle = buffer.Style{Foreground: "9", Bold: true}

// wordPattern tokenizes the buffer for the streaming scan. It mirrors the
// \w+ capture of the backreference pattern so both strategies agree on what
// a word is.
var wordPattern = regexp.MustCompile(`\w+`)

// backrefExpr is the single-pattern form of the same check: a word, one or
// more separator characters, then the identical word again. Go's regexp
// package cannot express the \1, so it compiles under the backtracking
// engine instead.
const backrefExpr = `\b(\w+)[\s"']+\1\b`

// isSeparator reports whether every rune of gap is whitespace or a quote
// character. Any other character between two equal words resets adjacency,
// so "the. the" is not a duplicate.
func isSeparator(gap string) bool {
	if gap == "" {
		return false
	}
	for _, r := range gap {
		if !unicode.IsSpace(r) && r != '"' && r != '\'' {
			return false
		}
	}
	return true
}

// Checker reports adjacent duplicate words, case-insensitively.
type Checker struct {
	cfg     config.Checker
	pattern buffer.Pattern
}

func New(cfg config.Checker) (checker.Checker, error) {
	pattern, err := buffer.CompileBackref(backrefExpr, true)
	if err != nil {
		return nil, err
	}
	return &Checker{cfg: cfg, pattern: pattern}, nil
}

func (c *Checker) Name() string { return checkerName }

// Check runs the streaming scan: each word is compared with the word before
// it, and the previous-word pointer always advances, so a run of three equal
// words yields two issues. The issue is located at the second occurrence.
func (c *Checker) Check(a checker.Agent) ([]checker.Issue, error) {
	start, end := a.Buffer.Range(a.Start, a.End)
	text := a.Buffer.Text()[start:end]

	var issues []checker.Issue
	var prev []int // previous word index pair, nil before the first word
	for _, m := range wordPattern.FindAllStringIndex(text, -1) {
		if prev != nil && isSeparator(text[prev[1]:m[0]]) {
			prevWord := text[prev[0]:prev[1]]
			word := text[m[0]:m[1]]
			if strings.EqualFold(prevWord, word) {
				line, col := a.Buffer.LineCol(start + m[0])
				issues = append(issues, checker.Issue{
					File:    a.Buffer.Name(),
					Line:    line,
					Column:  col,
					Start:   start + m[0],
					End:     start + m[1],
					Text:    word,
					Message: fmt.Sprintf("duplicate word %q", word),
					Checker: checkerName,
				})
			}
		}
		prev = m
	}
	return issues, nil
}

// Rule returns the live-highlight rule. Unlike Check, it uses the single
// backreference pattern, and its spans cover the whole "word word" pair.
func (c *Checker) Rule() buffer.AnnotationRule {
	style := c.cfg.Style
	if style == (buffer.Style{}) {
		style = defaultStyle
	}
	tooltip := c.cfg.Tooltip
	if tooltip == "" {
		tooltip = defaultTooltip
	}
	return buffer.AnnotationRule{Pattern: c.pattern, Style: style, Tooltip: tooltip}
}
