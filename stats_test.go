package compressor

import (
	"strings"
	"testing"
)

func mustStats(t *testing.T, text string, opts ...Option) *Result {
	t.Helper()
	res, err := CompressWithStats(text, opts...)
	if err != nil {
		t.Fatalf("CompressWithStats(%q) failed: %v", text, err)
	}
	return res
}

func spansOfKind(res *Result, kind SpanKind) []PreservedSpan {
	var out []PreservedSpan
	for _, s := range res.PreservedSpans {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

func TestCompressWithStats_MatchesCompress(t *testing.T) {
	text := "understanding the compression of ordinary text"
	for level := 1; level <= 4; level++ {
		want := mustCompress(t, text, WithLevel(level))
		res := mustStats(t, text, WithLevel(level))
		if res.Text != want {
			t.Errorf("level %d: stats text %q != compress %q", level, res.Text, want)
		}
		if res.Level != level {
			t.Errorf("level %d: reported level %d", level, res.Level)
		}
	}
}

func TestCompressWithStats_Lengths(t *testing.T) {
	text := "understanding the implications of compression"
	res := mustStats(t, text)

	if res.OriginalLength != len(text) {
		t.Errorf("OriginalLength = %d, want %d", res.OriginalLength, len(text))
	}
	if res.CompressedLength != len(res.Text) {
		t.Errorf("CompressedLength = %d, want %d", res.CompressedLength, len(res.Text))
	}
	if res.CompressedLength >= res.OriginalLength {
		t.Errorf("no reduction: %d >= %d", res.CompressedLength, res.OriginalLength)
	}

	wantRatio := float64(res.CompressedLength) / float64(res.OriginalLength)
	if res.Ratio != wantRatio {
		t.Errorf("Ratio = %f, want %f", res.Ratio, wantRatio)
	}
	wantSavings := (1 - wantRatio) * 100
	if res.SavingsPct != wantSavings {
		t.Errorf("SavingsPct = %f, want %f", res.SavingsPct, wantSavings)
	}
}

func TestCompressWithStats_Empty(t *testing.T) {
	res := mustStats(t, "")
	if res.Text != "" {
		t.Errorf("Text = %q", res.Text)
	}
	if res.OriginalLength != 0 || res.CompressedLength != 0 {
		t.Errorf("lengths = %d/%d, want 0/0", res.OriginalLength, res.CompressedLength)
	}
	if res.Ratio != 1.0 {
		t.Errorf("Ratio = %f, want 1.0", res.Ratio)
	}
	if res.SavingsPct != 0 {
		t.Errorf("SavingsPct = %f, want 0", res.SavingsPct)
	}
}

func TestCompressWithStats_SpanCoordinates(t *testing.T) {
	text := "email alice@example.com and visit https://example.com/docs today"
	res := mustStats(t, text)

	if len(res.PreservedSpans) < 2 {
		t.Fatalf("expected at least 2 spans, got %d: %+v", len(res.PreservedSpans), res.PreservedSpans)
	}

	for i, s := range res.PreservedSpans {
		if s.Start < 0 || s.End > len(res.Text) || s.Start >= s.End {
			t.Fatalf("span %d out of range: %+v", i, s)
		}
		if res.Text[s.Start:s.End] != s.Text {
			t.Errorf("span %d text mismatch: %q != %q", i, res.Text[s.Start:s.End], s.Text)
		}
	}

	if !strings.Contains(res.Text, "alice@example.com") {
		t.Errorf("email mangled: %q", res.Text)
	}
}

func TestCompressWithStats_SpansSortedAndDisjoint(t *testing.T) {
	text := "id ABC123 email bob@host.io url https://x.io/a json {\"k\": 1} done"
	res := mustStats(t, text)

	for i := 1; i < len(res.PreservedSpans); i++ {
		prev, cur := res.PreservedSpans[i-1], res.PreservedSpans[i]
		if cur.Start < prev.End {
			t.Errorf("spans overlap or unsorted: %+v then %+v", prev, cur)
		}
	}
}

func TestCompressWithStats_InlineCodeSpan(t *testing.T) {
	res := mustStats(t, "use the `compress()` function")
	code := spansOfKind(res, SpanInlineCode)
	if len(code) == 0 {
		t.Fatalf("no inline code span: %+v", res.PreservedSpans)
	}
	if code[0].Text != "`compress()`" {
		t.Errorf("span text = %q", code[0].Text)
	}
}

func TestCompressWithStats_OffRegionSpan(t *testing.T) {
	res := mustStats(t, "hello [COMPRESSOR_OFF]keep this[/COMPRESSOR_OFF] world")
	off := spansOfKind(res, SpanCompressorOff)
	if len(off) != 1 {
		t.Fatalf("expected 1 compressor_off span, got %d", len(off))
	}
	if off[0].Text != "keep this" {
		t.Errorf("span text = %q", off[0].Text)
	}
	if res.Text[off[0].Start:off[0].End] != "keep this" {
		t.Errorf("span coordinates wrong: %q", res.Text[off[0].Start:off[0].End])
	}
}

func TestCompressWithStats_CustomPatternSpan(t *testing.T) {
	res := mustStats(t, "ticket JIRA-123 closed", WithPreservePattern(`JIRA-\d+`))
	custom := spansOfKind(res, SpanCustomPattern)
	if len(custom) != 1 {
		t.Fatalf("expected 1 custom span, got %+v", res.PreservedSpans)
	}
	if custom[0].Text != "JIRA-123" {
		t.Errorf("span text = %q", custom[0].Text)
	}
}

func TestCompressWithStats_Level4MeasuresPrunedText(t *testing.T) {
	text := "I think this is just really important content."
	res := mustStats(t, text, WithLevel(4))

	// Pruning removes filler before lengths are measured, so the original
	// length is smaller than the raw input.
	if res.OriginalLength >= len(text) {
		t.Errorf("OriginalLength = %d, want < %d", res.OriginalLength, len(text))
	}
	if res.Level != 4 {
		t.Errorf("Level = %d, want 4", res.Level)
	}
}

func TestResult_String(t *testing.T) {
	res := mustStats(t, "understanding compression")
	if res.String() != res.Text {
		t.Errorf("String() = %q, want %q", res.String(), res.Text)
	}
}
