package markdown

import (
	"strings"
	"testing"
)

func TestConvertHeading(t *testing.T) {
	conv := NewConverter("")
	out, err := conv.Convert("# Hello")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !strings.Contains(out, "<h1>Hello</h1>") {
		t.Fatalf("expected h1 in output, got %q", out)
	}
}

func TestConvertTable(t *testing.T) {
	conv := NewConverter("")
	out, err := conv.Convert("| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !strings.Contains(out, "<table>") {
		t.Fatalf("expected table in output, got %q", out)
	}
}

func TestConvertFencedCodeHighlighted(t *testing.T) {
	conv := NewConverter("")
	out, err := conv.Convert("```go\npackage main\n```")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !strings.Contains(out, "<pre") {
		t.Fatalf("expected pre block in output, got %q", out)
	}
}

func TestConvertHardLineBreaks(t *testing.T) {
	conv := NewConverter("")
	out, err := conv.Convert("line one\nline two")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !strings.Contains(out, "<br") {
		t.Fatalf("expected hard break in output, got %q", out)
	}
}
