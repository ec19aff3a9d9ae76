// Package classify decides, from a file name alone, whether a file's
// content should be displayed as escaped plain text. It never inspects
// content or touches the filesystem; binary files carrying a recognized
// extension are caught downstream by the router's decode fallback.
package classify

import (
	"path"
	"strings"
)

// textExtensions lists extensions served as escaped text, compared lowercase.
// Markdown extensions are deliberately absent: .md and .markdown take the
// rendering path upstream and must never classify as plain text.
var textExtensions = map[string]struct{}{
	".txt": {}, ".log": {}, ".json": {}, ".xml": {}, ".yaml": {}, ".yml": {},
	".toml": {}, ".ini": {}, ".cfg": {}, ".conf": {}, ".sh": {}, ".bash": {},
	".zsh": {}, ".fish": {}, ".py": {}, ".js": {}, ".ts": {}, ".jsx": {},
	".tsx": {}, ".java": {}, ".c": {}, ".cpp": {}, ".h": {}, ".hpp": {},
	".cs": {}, ".go": {}, ".rs": {}, ".rb": {}, ".php": {}, ".swift": {},
	".kt": {}, ".sql": {}, ".html": {}, ".css": {}, ".scss": {}, ".sass": {},
	".less": {}, ".vue": {}, ".svelte": {}, ".r": {}, ".m": {}, ".scala": {},
	".pl": {}, ".lua": {}, ".vim": {}, ".el": {}, ".clj": {}, ".ex": {},
	".exs": {}, ".dockerfile": {}, ".env": {}, ".gitignore": {},
	".gitattributes": {}, ".editorconfig": {}, ".eslintrc": {},
	".prettierrc": {}, ".babelrc": {},
}

// textFilenames lists extensionless names served as escaped text.
var textFilenames = map[string]struct{}{
	"makefile": {}, "dockerfile": {}, "gemfile": {}, "rakefile": {},
	"procfile": {}, "jenkinsfile": {}, "license": {}, "readme": {},
	"changelog": {}, "authors": {}, "contributors": {}, "codeowners": {},
}

// IsTextFile reports whether a file with the given name (final path
// segment) should be displayed as plain text. Checks, in order: recognized
// extension, recognized extensionless filename, dotfile.
func IsTextFile(name string) bool {
	if _, ok := textExtensions[strings.ToLower(path.Ext(name))]; ok {
		return true
	}
	if _, ok := textFilenames[strings.ToLower(name)]; ok {
		return true
	}
	return strings.HasPrefix(name, ".")
}
