package weasel

import (
	"github.com/prosecheck/prosecheck/config"
	"github.com/prosecheck/prosecheck/internal/buffer"
	"github.com/prosecheck/prosecheck/internal/checker"
)

const checkerName = "weasel"

func init() {
	checker.Register(checkerName, New)
}

// DefaultWords is the default weasel-word list. Entries are regex fragments;
// multi-word entries are boundary-anchored as whole phrases by the combined
// pattern, not per word.
var DefaultWords = []string{
	"many", "various", "very", "fairly", "several", "extremely",
	"exceedingly", "quite", "remarkably", "few", "surprisingly",
	"mostly", "largely", "huge", "tiny", "(?:are|is) a number",
	"excellent", "interestingly", "significantly", "substantially",
	"clearly", "vast", "relatively", "completely",
}

const defaultTooltip = "Weasel word: vague or hedging, consider being specific."

var defaultStyle = buffer.Style{Foreground: "11", Underline: true}

// Checker reports occurrences of weasel words at word boundaries.
type Checker struct {
	cfg     config.Checker
	pattern buffer.Pattern
}

// New builds the checker from cfg, falling back to DefaultWords when no
// list is configured.
func New(cfg config.Checker) (checker.Checker, error) {
	words := cfg.Words
	if len(words) == 0 {
		words = DefaultWords
	}
	caseSensitive := cfg.CaseSensitive != nil && *cfg.CaseSensitive
	pattern, err := buffer.Compile(checker.Alternation(words, caseSensitive))
	if err != nil {
		return nil, err
	}
	return &Checker{cfg: cfg, pattern: pattern}, nil
}

func (c *Checker) Name() string { return checkerName }

// Check reports every non-overlapping weasel-word occurrence in the agent's
// range, leftmost-first. Occurrences inside larger words do not match.
func (c *Checker) Check(a checker.Agent) ([]checker.Issue, error) {
	spans := a.Buffer.FindAll(c.pattern, a.Start, a.End)
	return checker.IssuesFromSpans(a.Buffer, spans, checkerName, "weasel word %q"), nil
}

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
