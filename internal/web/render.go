package web

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/driangle/viewmd/internal/markdown"
)

// DirEntry is one row of a directory listing. Href is the absolute URL
// path for the entry; Name is the raw entry name before escaping.
type DirEntry struct {
	Name  string
	Href  string
	IsDir bool
}

type fieldPair struct {
	Key   string
	Value string
}

type markdownPageData struct {
	FileName  string
	BaseURL   string
	HasFields bool
	Fields    []fieldPair
	Body      template.HTML
}

type textPageData struct {
	FileName string
	Content  template.HTML
}

type directoryPageData struct {
	DisplayPath string
	ParentHref  string
	Entries     []DirEntry
}

var pages = template.Must(template.New("").Parse(pagesHTML))

// RenderMarkdownPage returns a complete HTML document for rendered
// markdown. bodyHTML must already be safe HTML (the converter's output);
// file name and front-matter keys/values are escaped here. A non-nil but
// empty field set still emits the frontmatter block.
func RenderMarkdownPage(fileName string, fields *markdown.Fields, bodyHTML, baseURL string) (string, error) {
	data := markdownPageData{
		FileName: fileName,
		BaseURL:  baseURL,
		Body:     template.HTML(bodyHTML),
	}
	if fields != nil {
		data.HasFields = true
		for _, key := range fields.Keys() {
			value, _ := fields.Get(key)
			data.Fields = append(data.Fields, fieldPair{Key: key, Value: value})
		}
	}
	return renderPage("markdown_page", data)
}

// RenderTextPage returns a complete HTML document for a text file. The
// content must already be HTML-escaped by the caller; it is embedded
// verbatim to avoid double escaping.
func RenderTextPage(fileName, escapedContent string) (string, error) {
	return renderPage("text_page", textPageData{
		FileName: fileName,
		Content:  template.HTML(escapedContent),
	})
}

// RenderDirectoryPage returns a complete HTML document listing the given
// entries in the order provided. An empty parentHref omits the parent
// link; otherwise it is rendered first, before the entries.
func RenderDirectoryPage(displayPath, parentHref string, entries []DirEntry) (string, error) {
	return renderPage("directory_page", directoryPageData{
		DisplayPath: displayPath,
		ParentHref:  parentHref,
		Entries:     entries,
	})
}

func renderPage(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

const pagesHTML = `
{{define "markdown_page"}}<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <base href="{{.BaseURL}}">
    <title>{{.FileName}}</title>
    <style>
        body {
            max-width: 800px; margin: 40px auto; padding: 0 20px;
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI',
                         Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6; color: #333;
        }
        pre {
            background: #f4f4f4; border: 1px solid #ddd;
            border-radius: 4px; padding: 12px; overflow-x: auto;
        }
        code {
            background: #f4f4f4; padding: 2px 6px;
            border-radius: 3px; font-family: 'Courier New', monospace;
        }
        pre code { background: none; padding: 0; }
        table { border-collapse: collapse; width: 100%; margin: 20px 0; }
        th, td { border: 1px solid #ddd; padding: 8px 12px; text-align: left; }
        th { background: #f4f4f4; }
        a { color: #0066cc; text-decoration: none; }
        a:hover { text-decoration: underline; }
        blockquote {
            border-left: 4px solid #ddd; margin: 0;
            padding-left: 20px; color: #666;
        }
        img { max-width: 100%; height: auto; }
        .frontmatter {
            background: #f8f9fa; border: 1px solid #e1e4e8;
            border-radius: 6px; padding: 4px 12px;
            margin-bottom: 24px; font-size: 0.85em; color: #586069;
        }
        .frontmatter table { width: auto; margin: 8px 0; border: none; }
        .frontmatter td { border: none; padding: 2px 12px 2px 0; }
        .frontmatter .fm-key { font-weight: 600; color: #444; }
    </style>
</head>
<body>
    {{if .HasFields}}<div class="frontmatter"><table>{{range .Fields}}<tr><td class="fm-key">{{.Key}}</td><td>{{.Value}}</td></tr>{{end}}</table></div>
    {{end}}{{.Body}}
</body>
</html>{{end}}

{{define "text_page"}}<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{.FileName}}</title>
    <style>
        body {
            max-width: 1000px; margin: 20px auto; padding: 0 20px;
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI',
                         Roboto, sans-serif;
            background: #f6f8fa;
        }
        .header {
            background: white; border: 1px solid #d0d7de;
            border-radius: 6px 6px 0 0; padding: 12px 16px;
            font-weight: 600; border-bottom: 1px solid #d0d7de;
        }
        .content {
            background: white; border: 1px solid #d0d7de;
            border-top: none; border-radius: 0 0 6px 6px;
            padding: 16px; overflow-x: auto;
        }
        pre {
            margin: 0;
            font-family: 'SF Mono', 'Monaco', 'Inconsolata',
                         'Fira Mono', 'Courier New', monospace;
            font-size: 12px; line-height: 1.5;
            white-space: pre; word-wrap: normal;
        }
    </style>
</head>
<body>
    <div class="header">{{.FileName}}</div>
    <div class="content"><pre>{{.Content}}</pre></div>
</body>
</html>{{end}}

{{define "directory_page"}}<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Directory listing</title>
    <style>
        body {
            max-width: 800px; margin: 40px auto; padding: 0 20px;
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI',
                         Roboto, sans-serif;
        }
        ul { list-style: none; padding: 0; }
        li { margin: 8px 0; }
        a { text-decoration: none; color: #0066cc; }
        a:hover { text-decoration: underline; }
        .dir::before { content: '\1F4C1  '; }
        .file::before { content: '\1F4C4  '; }
    </style>
</head>
<body>
    <h1>Directory: /{{.DisplayPath}}</h1>
    <ul>
{{if .ParentHref}}        <li><a href="{{.ParentHref}}" class="dir">..</a></li>
{{end}}{{range .Entries}}        <li><a href="{{.Href}}" class="{{if .IsDir}}dir{{else}}file{{end}}">{{.Name}}{{if .IsDir}}/{{end}}</a></li>
{{end}}    </ul>
</body>
</html>{{end}}
`
