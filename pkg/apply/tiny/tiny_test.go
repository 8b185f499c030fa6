package tiny

import (
	"strconv"
	"strings"
	"testing"
)

func TestFromAndValue(t *testing.T) {
	t.Parallel()
	if From(7).Value() != 7 {
		t.Fatalf("expected 7, got %v", From(7).Value())
	}
}

func TestApply_ChainsInOrder(t *testing.T) {
	t.Parallel()
	got := From(3).
		Apply(func(n int) int { return n * 2 }).
		Apply(func(n int) int { return n + 1 }).
		Value()

	if got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}

func TestTap_KeepsValue(t *testing.T) {
	t.Parallel()
	seen := ""
	got := From("a").
		Tap(func(s string) { seen = s }).
		Value()

	if got != "a" || seen != "a" {
		t.Fatalf("expected value and effect 'a', got %q, %q", got, seen)
	}
}

func TestRepeatUntil_RunsAtLeastOnce(t *testing.T) {
	t.Parallel()
	calls := 0
	got := From(100).
		RepeatUntil(func(n int) int {
			calls++
			return n + 1
		}, func(n int) bool { return n > 0 }).
		Value()

	if got != 101 || calls != 1 {
		t.Fatalf("expected 101 after one call, got %d after %d calls", got, calls)
	}
}

func TestRepeatUntil_LoopsToPredicate(t *testing.T) {
	t.Parallel()
	got := From(1).
		RepeatUntil(func(n int) int { return n * 2 }, func(n int) bool { return n >= 16 }).
		Value()

	if got != 16 {
		t.Fatalf("expected 16, got %d", got)
	}
}

func TestWhile_MayNotRun(t *testing.T) {
	t.Parallel()
	got := From(10).
		While(func(n int) int { return n + 1 }, func(n int) bool { return n < 5 }).
		Value()

	if got != 10 {
		t.Fatalf("expected unchanged 10, got %d", got)
	}
}

func TestWhile_Loops(t *testing.T) {
	t.Parallel()
	got := From(0).
		While(func(n int) int { return n + 3 }, func(n int) bool { return n < 10 }).
		Value()

	if got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
}

func TestTo_ChangesType(t *testing.T) {
	t.Parallel()
	got := To(From(5), strconv.Itoa).
		Apply(func(s string) string { return strings.Repeat(s, 2) }).
		Value()

	if got != "55" {
		t.Fatalf("expected '55', got %q", got)
	}
}

func TestFinally_Collapses(t *testing.T) {
	t.Parallel()
	got := Finally(From("chain"), func(s string) int { return len(s) })
	if got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}
