package numbering

import (
	"testing"

	"github.com/goliatone/go-notes/internal/markup"
)

func TestHeadingNumbererNumeric(t *testing.T) {
	n := NewHeadingNumberer(markup.StyleNumeric)

	levels := []int{1, 1, 1, 2, 1, 2, 3, 3, 2, 3}
	want := []string{"1", "2", "3", "3.1", "4", "4.1", "4.1.1", "4.1.2", "4.2", "4.2.1"}

	for i, level := range levels {
		got, ok := n.Number(level)
		if !ok {
			t.Fatalf("step %d: expected a label", i)
		}
		if got != want[i] {
			t.Fatalf("step %d: expected %q, got %q", i, want[i], got)
		}
	}
}

func TestHeadingNumbererSkippedParentLevel(t *testing.T) {
	n := NewHeadingNumberer(markup.StyleNumeric)

	got, _ := n.Number(2)
	if got != "1" {
		t.Fatalf("expected zero parent counters to be omitted, got %q", got)
	}
	got, _ = n.Number(3)
	if got != "1.1" {
		t.Fatalf("expected 1.1, got %q", got)
	}
}

func TestHeadingNumbererAlphabetic(t *testing.T) {
	n := NewHeadingNumberer(markup.StyleAlphabetic)

	steps := []struct {
		level int
		want  string
	}{
		{1, "A"},
		{2, "A.a"},
		{2, "A.b"},
		{3, "A.b.a"},
		{1, "B"},
		{2, "B.a"},
	}
	for i, step := range steps {
		got, ok := n.Number(step.level)
		if !ok || got != step.want {
			t.Fatalf("step %d: expected %q, got %q (%v)", i, step.want, got, ok)
		}
	}
}

func TestHeadingNumbererAlphabeticWraps(t *testing.T) {
	n := NewHeadingNumberer(markup.StyleAlphabetic)

	var last string
	for i := 0; i < 27; i++ {
		last, _ = n.Number(1)
		if i == 25 && last != "Z" {
			t.Fatalf("expected 26th label Z, got %q", last)
		}
	}
	if last != "A" {
		t.Fatalf("expected 27th label to wrap to A, got %q", last)
	}
}

func TestHeadingNumbererNoneSuppresses(t *testing.T) {
	n := NewHeadingNumberer(markup.StyleNone)

	if label, ok := n.Number(1); ok || label != "" {
		t.Fatalf("expected no label, got %q", label)
	}

	n.SetStyle(markup.StyleNumeric)
	if label, _ := n.Number(1); label != "1" {
		t.Fatalf("expected counters untouched while suppressed, got %q", label)
	}
}

func TestHeadingNumbererStyleSwitchKeepsCounters(t *testing.T) {
	n := NewHeadingNumberer(markup.StyleNumeric)
	n.Number(1)
	n.Number(1)

	n.SetStyle(markup.StyleAlphabetic)
	if label, _ := n.Number(1); label != "C" {
		t.Fatalf("expected C after two numeric headings, got %q", label)
	}
	if n.Style() != markup.StyleAlphabetic {
		t.Fatalf("unexpected style %s", n.Style())
	}
}

func TestHeadingNumbererReset(t *testing.T) {
	n := NewHeadingNumberer("")
	if n.Style() != markup.StyleNumeric {
		t.Fatalf("expected numeric fallback, got %s", n.Style())
	}
	n.Number(1)
	n.Number(2)
	n.Reset()
	if label, _ := n.Number(1); label != "1" {
		t.Fatalf("expected restart at 1, got %q", label)
	}
}
