package rtfmt_test

import (
	"bytes"
	"strings"
	"testing"

	"myst/internal/rterr"
	"myst/internal/rtfmt"
	"myst/internal/value"
)

func TestPrint_NoColorShowsTypeNameAndInspect(t *testing.T) {
	var buf bytes.Buffer
	rtfmt.Print(&buf, value.Integer(42), rtfmt.Options{Color: false})
	got := buf.String()
	if !strings.Contains(got, "Integer") || !strings.Contains(got, "42") {
		t.Fatalf("expected type name and value in output, got %q", got)
	}
}

func TestPrintError_RterrShowsKindAndMessage(t *testing.T) {
	var buf bytes.Buffer
	err := rterr.New(rterr.KindNoSuchMethod, "no method %q on a %s", "frob", "Integer")
	rtfmt.PrintError(&buf, err, rtfmt.Options{Color: false})
	got := buf.String()
	if !strings.Contains(got, "no such method") || !strings.Contains(got, "frob") {
		t.Fatalf("expected kind and message in output, got %q", got)
	}
}

func TestPrintError_PlainErrorFallsBack(t *testing.T) {
	var buf bytes.Buffer
	rtfmt.PrintError(&buf, errBoom{}, rtfmt.Options{Color: false})
	if !strings.Contains(buf.String(), "boom") {
		t.Fatalf("expected fallback rendering of a non-rterr error, got %q", buf.String())
	}
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func TestDisplayWidth_CountsWideRunesAsTwoColumns(t *testing.T) {
	if got := rtfmt.DisplayWidth("ab"); got != 2 {
		t.Fatalf("expected ascii width 2, got %d", got)
	}
	if got := rtfmt.DisplayWidth("あ"); got != 2 {
		t.Fatalf("expected wide rune width 2, got %d", got)
	}
}

func TestTruncate_ShortensAndAddsEllipsis(t *testing.T) {
	got := rtfmt.Truncate("hello world", 6)
	if rtfmt.DisplayWidth(got) > 6 {
		t.Fatalf("expected truncated width <= 6, got %q (%d)", got, rtfmt.DisplayWidth(got))
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
}

func TestTruncate_LeavesShortStringsAlone(t *testing.T) {
	if got := rtfmt.Truncate("hi", 10); got != "hi" {
		t.Fatalf("expected untouched short string, got %q", got)
	}
}
