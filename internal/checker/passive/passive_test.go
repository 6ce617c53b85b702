package passive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prosecheck/prosecheck/config"
	"github.com/prosecheck/prosecheck/internal/buffer"
	"github.com/prosecheck/prosecheck/internal/checker"
)

func check(t *testing.T, cfg config.Checker, text string) []checker.Issue {
	t.Helper()
	c, err := New(cfg)
	require.NoError(t, err)
	issues, err := c.Check(checker.Agent{
		Buffer: buffer.New("test.md", text),
		Start:  -1,
		End:    -1,
	})
	require.NoError(t, err)
	return issues
}

func TestCheck(t *testing.T) {
	tcs := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "was_written",
			text:     "The report was written yesterday.",
			expected: []string{"was written"},
		},
		{
			name:     "is_broken",
			text:     "The build is broken.",
			expected: []string{"is broken"},
		},
		{
			name:     "been_forgotten",
			text:     "It had been forgotten entirely.",
			expected: []string{"been forgotten"},
		},
		{
			name:     "quoted_separator",
			text:     `The window was "broken" overnight.`,
			expected: []string{`was "broken`},
		},
		{
			name:     "verb_without_participle",
			text:     "The cake was delicious.",
			expected: nil,
		},
		{
			name:     "participle_without_verb",
			text:     "A written agreement.",
			expected: nil,
		},
		{
			// intervening words break the match; only whitespace and
			// quote characters may separate verb and participle
			name:     "adverbs_disallowed",
			text:     "This was very clearly written.",
			expected: nil,
		},
		{
			name:     "case_folds_by_default",
			text:     "Mistakes Were Made, twice.",
			expected: []string{"Were Made"},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			issues := check(t, config.Checker{}, tc.text)
			require.Len(t, issues, len(tc.expected))
			for i, issue := range issues {
				assert.Equal(t, tc.expected[i], issue.Text)
				assert.Equal(t, "passive", issue.Checker)
			}
		})
	}
}

func TestEveryVerbForm(t *testing.T) {
	for _, verb := range DefaultVerbs {
		issues := check(t, config.Checker{}, "it "+verb+" taken away")
		require.Len(t, issues, 1, "verb %q", verb)
		assert.Equal(t, verb+" taken", issues[0].Text)
	}
}

func TestCustomLists(t *testing.T) {
	cfg := config.Checker{Verbs: []string{"got"}, Participles: []string{"yeeted"}}
	issues := check(t, cfg, "The ball got yeeted. The vase was broken.")
	require.Len(t, issues, 1)
	assert.Equal(t, "got yeeted", issues[0].Text)
}

func TestBadPatternFailsAtConstruction(t *testing.T) {
	_, err := New(config.Checker{Participles: []string{"["}})
	assert.Error(t, err)
}

func TestDefaultParticipleInventory(t *testing.T) {
	assert.GreaterOrEqual(t, len(DefaultParticiples), 190)
	seen := make(map[string]bool, len(DefaultParticiples))
	for _, p := range DefaultParticiples {
		assert.False(t, seen[p], "duplicate participle %q", p)
		seen[p] = true
	}
}
