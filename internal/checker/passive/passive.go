package passive

import (
	"strings"

	"github.com/prosecheck/prosecheck/config"
	"github.com/prosecheck/prosecheck/internal/buffer"
	"github.com/prosecheck/prosecheck/internal/checker"
)

const checkerName = "passive"

func init() {
	checker.Register(checkerName, New)
}

// DefaultVerbs is the finite set of "to be" conjugations.
var DefaultVerbs = []string{"am", "are", "is", "was", "were", "be", "been", "being"}

// separatorClass is what may stand between the verb and the participle:
// whitespace and both quote classes, so quoted speech like `was "broken"`
// still matches. Intervening words (adverbs included) break the match.
const separatorClass = `[\s"']`

const defaultTooltip = "Passive voice: consider naming the agent."

var defaultStyle = buffer.Style{Foreground: "13", Underline: true}

// Checker reports to-be verbs immediately followed by a listed past
// participle. Participles used adjectivally still match; that false-positive
// rate is the accepted cost of matching without part-of-speech tagging.
type Checker struct {
	cfg     config.Checker
	pattern buffer.Pattern
}

func New(cfg config.Checker) (checker.Checker, error) {
	verbs := cfg.Verbs
	if len(verbs) == 0 {
		verbs = DefaultVerbs
	}
	participles := cfg.Participles
	if len(participles) == 0 {
		participles = DefaultParticiples
	}

	expr := `\b(?:` + strings.Join(verbs, "|") + `)(?:` + separatorClass + `)+(?:` +
		strings.Join(participles, "|") + `)\b`
	if cfg.CaseSensitive == nil || !*cfg.CaseSensitive {
		expr = `(?i)` + expr
	}

	pattern, err := buffer.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &Checker{cfg: cfg, pattern: pattern}, nil
}

func (c *Checker) Name() string { return checkerName }

func (c *Checker) Check(a checker.Agent) ([]checker.Issue, error) {
	spans := a.Buffer.FindAll(c.pattern, a.Start, a.End)
	return checker.IssuesFromSpans(a.Buffer, spans, checkerName, "passive voice %q"), nil
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
