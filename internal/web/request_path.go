package web

import (
	"path"
	"strings"
)

// cleanRequestPath turns an already percent-decoded URL path into the
// slash-relative form the router works with. Leading and trailing slashes
// are stripped so "/docs" and "/docs/" address the same directory; the
// empty string addresses the serving root.
func cleanRequestPath(urlPath string) string {
	return strings.Trim(urlPath, "/")
}

// baseHrefFor returns the base URL for relative links inside a rendered
// markdown file, i.e. the URL of the file's directory with a trailing
// slash.
func baseHrefFor(reqPath string) string {
	dir := path.Dir(reqPath)
	if dir == "." || dir == "/" {
		return "/"
	}
	return "/" + dir + "/"
}

// parentHrefFor returns the listing URL of reqPath's parent directory, or
// "" when reqPath is the root (the root listing has no parent link).
func parentHrefFor(reqPath string) string {
	if reqPath == "" {
		return ""
	}
	parent := path.Dir(reqPath)
	if parent == "." || parent == "/" {
		return "/"
	}
	return "/" + parent
}

// entryHref returns the URL path for a directory entry name under reqPath.
func entryHref(reqPath, name string) string {
	if reqPath == "" {
		return "/" + name
	}
	return "/" + path.Join(reqPath, name)
}
