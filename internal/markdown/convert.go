package markdown

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

const defaultCodeStyle = "github"

// Converter turns markdown text into an HTML fragment. Tables, fenced code
// blocks with syntax highlighting, and hard line breaks (single newlines
// inside a paragraph become <br>) are enabled. Raw HTML in the source
// passes through unchanged.
type Converter struct {
	md goldmark.Markdown
}

func NewConverter(codeStyle string) *Converter {
	if codeStyle == "" {
		codeStyle = defaultCodeStyle
	}
	return &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				highlighting.NewHighlighting(
					highlighting.WithStyle(codeStyle),
					highlighting.WithFormatOptions(chromahtml.TabWidth(4)),
				),
			),
			goldmark.WithRendererOptions(
				html.WithHardWraps(),
				html.WithUnsafe(),
			),
		),
	}
}

func (c *Converter) Convert(body string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
