package buffer

import (
	"regexp"

	"github.com/dlclark/regexp2"
)

// Pattern finds non-overlapping match spans in text, leftmost-first.
//
// Two implementations exist: Regexp for everything RE2 can express, and
// Backref for patterns with backreferences, which RE2 rejects.
type Pattern interface {
	FindAll(text string) []Span
	String() string
}

type regexpPattern struct {
	re *regexp.Regexp
}

// Compile compiles an RE2 pattern.
func Compile(expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &regexpPattern{re: re}, nil
}

func (p *regexpPattern) FindAll(text string) []Span {
	var spans []Span
	for _, m := range p.re.FindAllStringIndex(text, -1) {
		spans = append(spans, Span{Start: m[0], End: m[1]})
	}
	return spans
}

func (p *regexpPattern) String() string { return p.re.String() }

type backrefPattern struct {
	re *regexp2.Regexp
}

// CompileBackref compiles a backtracking pattern, which may contain
// backreferences like `\1`. ignoreCase folds case for the whole pattern,
// backreferences included.
func CompileBackref(expr string, ignoreCase bool) (Pattern, error) {
	var opts regexp2.RegexOptions
	if ignoreCase {
		opts |= regexp2.IgnoreCase
	}
	re, err := regexp2.Compile(expr, opts)
	if err != nil {
		return nil, err
	}
	return &backrefPattern{re: re}, nil
}

func (p *backrefPattern) FindAll(text string) []Span {
	// regexp2 addresses matches in runes; translate back to byte offsets.
	runes := []rune(text)
	byteAt := make([]int, len(runes)+1)
	off := 0
	for i, r := range runes {
		byteAt[i] = off
		off += len(string(r))
	}
	byteAt[len(runes)] = off

	var spans []Span
	m, err := p.re.FindRunesMatch(runes)
	for err == nil && m != nil {
		spans = append(spans, Span{Start: byteAt[m.Index], End: byteAt[m.Index+m.Length]})
		m, err = p.re.FindNextMatch(m)
	}
	return spans
}

func (p *backrefPattern) String() string { return p.re.String() }
