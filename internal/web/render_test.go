package web

import (
	"strings"
	"testing"

	"github.com/driangle/viewmd/internal/markdown"
)

func TestRenderMarkdownPageFrontmatterTable(t *testing.T) {
	fields := markdown.NewFields()
	fields.Set("title", "Hello")
	fields.Set("date", "2024-01-01")

	page, err := RenderMarkdownPage("basic.md", fields, "<h1>Heading</h1>", "/")
	if err != nil {
		t.Fatalf("RenderMarkdownPage: %v", err)
	}
	for _, want := range []string{
		`<div class="frontmatter">`,
		`<td class="fm-key">title</td>`,
		"Hello",
		"2024-01-01",
		"<h1>Heading</h1>",
		`<base href="/">`,
		"<title>basic.md</title>",
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("expected page to contain %q", want)
		}
	}
}

func TestRenderMarkdownPageNoFrontmatter(t *testing.T) {
	page, err := RenderMarkdownPage("plain.md", nil, "<h1>Just a heading</h1>", "/")
	if err != nil {
		t.Fatalf("RenderMarkdownPage: %v", err)
	}
	if strings.Contains(page, `class="frontmatter"`) {
		t.Fatalf("expected no frontmatter block for nil fields")
	}
}

func TestRenderMarkdownPageEmptyFrontmatter(t *testing.T) {
	page, err := RenderMarkdownPage("empty.md", markdown.NewFields(), "<p>Body</p>", "/")
	if err != nil {
		t.Fatalf("RenderMarkdownPage: %v", err)
	}
	if !strings.Contains(page, `class="frontmatter"`) {
		t.Fatalf("expected frontmatter block for present-but-empty fields")
	}
}

func TestRenderMarkdownPageEscapesFieldValues(t *testing.T) {
	fields := markdown.NewFields()
	fields.Set("title", `<script>alert("xss")</script>`)

	page, err := RenderMarkdownPage("escaping.md", fields, "<p>Body</p>", "/")
	if err != nil {
		t.Fatalf("RenderMarkdownPage: %v", err)
	}
	if strings.Contains(page, `<script>alert`) {
		t.Fatalf("unescaped script tag leaked into page")
	}
	if !strings.Contains(page, "&lt;script&gt;") {
		t.Fatalf("expected escaped script tag in page")
	}
}

func TestRenderMarkdownPageBaseURL(t *testing.T) {
	page, err := RenderMarkdownPage("guide.md", nil, "<p>Body</p>", "/docs/")
	if err != nil {
		t.Fatalf("RenderMarkdownPage: %v", err)
	}
	if !strings.Contains(page, `<base href="/docs/">`) {
		t.Fatalf("expected base element with directory URL")
	}
}

func TestRenderTextPageContentVerbatim(t *testing.T) {
	escaped := "print(&#39;hello&#39;)"
	page, err := RenderTextPage("hello.py", escaped)
	if err != nil {
		t.Fatalf("RenderTextPage: %v", err)
	}
	if !strings.Contains(page, "<pre>"+escaped+"</pre>") {
		t.Fatalf("expected pre-escaped content embedded verbatim, got %q", page)
	}
	if !strings.Contains(page, "hello.py") {
		t.Fatalf("expected file name in page")
	}
}

func TestRenderTextPageEscapesFileName(t *testing.T) {
	page, err := RenderTextPage(`<img src=x>.txt`, "content")
	if err != nil {
		t.Fatalf("RenderTextPage: %v", err)
	}
	if strings.Contains(page, "<img src=x>") {
		t.Fatalf("unescaped file name leaked into page")
	}
}

func TestRenderDirectoryPage(t *testing.T) {
	entries := []DirEntry{
		{Name: "docs", Href: "/docs", IsDir: true},
		{Name: "readme.md", Href: "/readme.md", IsDir: false},
	}
	page, err := RenderDirectoryPage("", "", entries)
	if err != nil {
		t.Fatalf("RenderDirectoryPage: %v", err)
	}
	if !strings.Contains(page, "Directory: /") {
		t.Fatalf("expected directory heading")
	}
	if !strings.Contains(page, `class="dir">docs/</a>`) {
		t.Fatalf("expected directory entry with trailing slash, got %q", page)
	}
	if !strings.Contains(page, `class="file">readme.md</a>`) {
		t.Fatalf("expected file entry")
	}
	if strings.Contains(page, ">..</a>") {
		t.Fatalf("root listing must not have a parent link")
	}
}

func TestRenderDirectoryPageParentFirst(t *testing.T) {
	entries := []DirEntry{{Name: "a", Href: "/sub/a", IsDir: true}}
	page, err := RenderDirectoryPage("sub", "/", entries)
	if err != nil {
		t.Fatalf("RenderDirectoryPage: %v", err)
	}
	parent := strings.Index(page, ">..</a>")
	entry := strings.Index(page, ">a/</a>")
	if parent == -1 || entry == -1 {
		t.Fatalf("expected parent link and entry, got %q", page)
	}
	if parent > entry {
		t.Fatalf("parent link must come before entries")
	}
}
