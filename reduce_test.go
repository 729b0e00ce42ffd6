// reduce_test.go — the consuming conversion and its sink collaboration.
package xgxinternal

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

// captureSink records every emission for assertions.
type captureSink struct {
	msgs []string
}

func (c *captureSink) Debug(msg string) { c.msgs = append(c.msgs, msg) }

// install swaps the process sink for the test's lifetime.
func install(t *testing.T) *captureSink {
	t.Helper()
	c := &captureSink{}
	SetSink(c)
	t.Cleanup(func() { SetSink(nil) })
	return c
}

func TestReduce_NoCause_NoEmission(t *testing.T) {
	c := install(t)

	got := WithMessage("oops").ReduceToString()
	if got != "oops" {
		t.Fatalf("reduce: want=%q got=%q", "oops", got)
	}
	if len(c.msgs) != 0 {
		t.Fatalf("reduce without cause must not emit; got %d emissions", len(c.msgs))
	}
}

func TestReduce_WithCause_EmitsDebugThenReturnsDisplay(t *testing.T) {
	c := install(t)

	err := FromSourceWithPrefix(WithMessage("test message"), "Could not open file")

	got := err.ReduceToString()
	if want := "Could not open file: test message"; got != want {
		t.Fatalf("reduce: want=%q got=%q", want, got)
	}

	if len(c.msgs) != 1 {
		t.Fatalf("reduce with cause must emit exactly once; got %d", len(c.msgs))
	}
	wantDebug := `InternalError { prefix: "Could not open file", source: InternalError { message: "test message" } }`
	if c.msgs[0] != wantDebug {
		t.Fatalf("emission content:\nwant %s\ngot  %s", wantDebug, c.msgs[0])
	}
}

// The conversion is single-use. Go cannot enforce the move, so the one-shot
// guard keeps a misbehaving caller from double-emitting.
func TestReduce_SecondCallDoesNotReemit(t *testing.T) {
	c := install(t)

	err := FromSource(errors.New("boom"))
	first := err.ReduceToString()
	second := err.ReduceToString()

	if first != "boom" || second != "boom" {
		t.Fatalf("reduce results: got %q then %q", first, second)
	}
	if len(c.msgs) != 1 {
		t.Fatalf("guard failed: want 1 emission, got %d", len(c.msgs))
	}
}

func TestSetSink_NilRestoresSlogDefault(t *testing.T) {
	SetSink(&captureSink{})
	SetSink(nil)
	if _, ok := activeSink().(SlogSink); !ok {
		t.Fatalf("nil SetSink should restore the slog default, got %T", activeSink())
	}
}

func TestSlogSink_EmitsAtDebugSeverity(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	NewSlogSink(l).Debug(`InternalError { message: "oops" }`)

	out := buf.String()
	if !strings.Contains(out, "level=DEBUG") {
		t.Fatalf("expected debug severity, got: %s", out)
	}
	if !strings.Contains(out, `InternalError { message: \"oops\" }`) &&
		!strings.Contains(out, `InternalError { message: "oops" }`) {
		t.Fatalf("expected debug rendering in output, got: %s", out)
	}
}

// The zero SlogSink resolves slog.Default at call time, so reconfiguring
// slog after package init is honored.
func TestSlogSink_ZeroValueFollowsSlogDefault(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(prev)

	SlogSink{}.Debug("captured")
	if !strings.Contains(buf.String(), "captured") {
		t.Fatalf("zero SlogSink should log through slog.Default; got: %s", buf.String())
	}
}
