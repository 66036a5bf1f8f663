package compressor

import (
	"strings"
	"testing"
)

func TestCompressMarkdown_Heading(t *testing.T) {
	got := mustCompress(t, "## understanding headings\nplain paragraph", WithMarkdown())
	lines := strings.Split(got, "\n")
	if !strings.HasPrefix(lines[0], "## ") {
		t.Errorf("heading marker lost: %q", lines[0])
	}
	if strings.Contains(lines[0], "understanding") {
		t.Errorf("heading text not compressed: %q", lines[0])
	}
}

func TestCompressMarkdown_List(t *testing.T) {
	got := mustCompress(t, "- understanding the point\n* another entry\n1. numbered entry", WithMarkdown())
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "- ") {
		t.Errorf("dash marker lost: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "* ") {
		t.Errorf("star marker lost: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "1. ") {
		t.Errorf("number marker lost: %q", lines[2])
	}
	if strings.Contains(got, "understanding") {
		t.Errorf("list text not compressed: %q", got)
	}
}

func TestCompressMarkdown_Blockquote(t *testing.T) {
	got := mustCompress(t, "> understanding quotes", WithMarkdown())
	if !strings.HasPrefix(got, "> ") {
		t.Errorf("blockquote marker lost: %q", got)
	}
	if strings.Contains(got, "understanding") {
		t.Errorf("quote text not compressed: %q", got)
	}
}

func TestCompressMarkdown_HorizontalRule(t *testing.T) {
	got := mustCompress(t, "above\n---\nbelow", WithMarkdown())
	if got != "abve\n---\nblw" {
		t.Errorf("got %q", got)
	}
}

func TestCompressMarkdown_HorizontalRuleSpan(t *testing.T) {
	res := mustStats(t, "above\n---\nbelow", WithMarkdown())
	hr := spansOfKind(res, SpanMarkdownHR)
	if len(hr) != 1 {
		t.Fatalf("expected 1 markdown_hr span: %+v", res.PreservedSpans)
	}
	if res.Text[hr[0].Start:hr[0].End] != "---" {
		t.Errorf("span coordinates wrong: %q", res.Text[hr[0].Start:hr[0].End])
	}
}

func TestCompressMarkdown_Link(t *testing.T) {
	got := mustCompress(t, "read [the full guide](https://docs.example.com/guide) now", WithMarkdown())
	if got != "rd [the ful gde](https://docs.example.com/guide) now" {
		t.Errorf("got %q", got)
	}
}

func TestCompressMarkdown_Image(t *testing.T) {
	got := mustCompress(t, "![alternative text](diagram.png)", WithMarkdown())
	if !strings.HasPrefix(got, "![") {
		t.Errorf("image prefix lost: %q", got)
	}
	if !strings.Contains(got, "](diagram.png)") {
		t.Errorf("image target altered: %q", got)
	}
}

func TestCompressMarkdown_OffRegion(t *testing.T) {
	got := mustCompress(t, "## Heading\n[COMPRESSOR_OFF]Keep this verbatim[/COMPRESSOR_OFF]\nMore text", WithMarkdown())
	if !strings.Contains(got, "##") {
		t.Errorf("heading lost: %q", got)
	}
	if !strings.Contains(got, "Keep this verbatim") {
		t.Errorf("off-region content altered: %q", got)
	}
}

func TestCompressMarkdown_Disabled(t *testing.T) {
	// Without the option heading markers are plain text and the content is
	// compressed like any other line.
	text := "## heading words here"
	standard := mustCompress(t, text)
	if standard != mustCompress(t, text) {
		t.Fatal("not deterministic")
	}
	if !strings.HasPrefix(standard, "## ") {
		t.Errorf("marker characters altered: %q", standard)
	}
}
