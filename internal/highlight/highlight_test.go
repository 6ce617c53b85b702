package highlight

import (
	"reflect"
	"testing"

	"github.com/prosecheck/prosecheck/config"
	"github.com/prosecheck/prosecheck/internal/buffer"
	"github.com/prosecheck/prosecheck/internal/checker"
	"github.com/prosecheck/prosecheck/internal/checker/dupword"
	"github.com/prosecheck/prosecheck/internal/checker/passive"
	"github.com/prosecheck/prosecheck/internal/checker/weasel"
)

func newCheckers(t *testing.T) []checker.Checker {
	t.Helper()
	var out []checker.Checker
	for _, f := range []checker.FactoryFunc{weasel.New, passive.New, dupword.New} {
		c, err := f(config.Checker{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out = append(out, c)
	}
	return out
}

func TestEnableIsIdempotent(t *testing.T) {
	coord := New(newCheckers(t))
	buf := buffer.New("test.md", "very very bad")

	coord.Enable(buf)
	coord.Enable(buf)

	// exactly one registered rule per category
	if got := len(buf.RuleIDs()); got != 3 {
		t.Errorf("expected 3 rules after double enable, got %d", got)
	}
	if !coord.Enabled(buf) {
		t.Error("expected buffer to be enabled")
	}
}

func TestDisableRemovesExactlyOwnRules(t *testing.T) {
	coord := New(newCheckers(t))
	buf := buffer.New("test.md", "text")

	// an unrelated annotation rule must survive the toggle
	p, err := buffer.Compile(`unrelated`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	unrelated := buf.AddRule(buffer.AnnotationRule{Pattern: p, Tooltip: "keep me"})

	before := buf.RuleIDs()
	coord.Enable(buf)
	coord.Disable(buf)

	if !reflect.DeepEqual(buf.RuleIDs(), before) {
		t.Errorf("rule set not restored: before %v, after %v", before, buf.RuleIDs())
	}
	if !buf.RemoveRule(unrelated) {
		t.Error("unrelated rule was removed by Disable")
	}
	if coord.Enabled(buf) {
		t.Error("expected buffer to be disabled")
	}
}

func TestDisableWithoutEnableIsNoop(t *testing.T) {
	coord := New(newCheckers(t))
	buf := buffer.New("test.md", "text")

	coord.Disable(buf)
	if len(buf.RuleIDs()) != 0 || coord.Enabled(buf) {
		t.Error("disable on a never-enabled buffer must be a no-op")
	}
}

func TestToggle(t *testing.T) {
	coord := New(newCheckers(t))
	buf := buffer.New("test.md", "text")

	if !coord.Toggle(buf) {
		t.Error("first toggle should enable")
	}
	if coord.Toggle(buf) {
		t.Error("second toggle should disable")
	}
	if len(buf.RuleIDs()) != 0 {
		t.Errorf("expected no rules after toggle off, got %d", len(buf.RuleIDs()))
	}
}

func TestGlobalMode(t *testing.T) {
	coord := New(newCheckers(t))

	before := buffer.New("a.md", "text")
	coord.Attach(before)
	if coord.Enabled(before) {
		t.Error("attach without global mode must not enable")
	}

	coord.SetGlobal(true)
	after := buffer.New("b.md", "text")
	coord.Attach(after)
	if !coord.Enabled(after) {
		t.Error("attach with global mode must enable")
	}

	// buffers toggle independently
	if coord.Enabled(before) {
		t.Error("global mode must not retroactively touch other buffers")
	}
}

func TestEnabledBuffersHighlightMatches(t *testing.T) {
	coord := New(newCheckers(t))
	buf := buffer.New("test.md", "This was very clearly written.")
	coord.Enable(buf)

	anns := buf.AnnotationsIn(-1, -1)
	if len(anns) != 2 {
		t.Fatalf("expected 2 annotations (very, clearly), got %d: %+v", len(anns), anns)
	}
}
