package web

import (
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/driangle/viewmd/internal/classify"
	"github.com/driangle/viewmd/internal/journal"
	"github.com/driangle/viewmd/internal/markdown"
)

// decision is how the router classifies a request. It is re-derived from
// the filesystem on every request; nothing is cached.
type decision int

const (
	decisionMarkdown decision = iota
	decisionText
	decisionDirectory
	decisionRaw
)

func (d decision) String() string {
	switch d {
	case decisionMarkdown:
		return "markdown"
	case decisionText:
		return "text"
	case decisionDirectory:
		return "directory"
	default:
		return "raw"
	}
}

func (s *Server) handleRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	start := time.Now()
	requestID := uuid.NewString()
	reqPath := cleanRequestPath(r.URL.Path)

	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	dec, target := s.route(reqPath)
	switch dec {
	case decisionMarkdown:
		s.serveMarkdown(rec, target)
	case decisionText:
		s.serveText(rec, r, target)
	case decisionDirectory:
		s.serveDirectory(rec, target)
	default:
		s.raw.ServeHTTP(rec, r)
	}

	duration := time.Since(start)
	slog.Info("request",
		"request_id", requestID,
		"path", "/"+reqPath,
		"decision", dec.String(),
		"status", rec.status,
		"duration_ms", duration.Milliseconds())
	if s.jour != nil {
		err := s.jour.Record(r.Context(), journal.Entry{
			RequestID: requestID,
			Path:      "/" + reqPath,
			Decision:  dec.String(),
			Status:    rec.status,
			Duration:  duration,
		})
		if err != nil {
			slog.Warn("journal record failed", "err", err)
		}
	}
}

// route decides which rendering path applies to the cleaned request path
// and returns the path to act on (for markdown promotion this is the
// README.md inside the requested directory).
func (s *Server) route(reqPath string) (decision, string) {
	if reqPath == "" {
		return decisionDirectory, ""
	}
	full := filepath.Join(s.cfg.Root, filepath.FromSlash(reqPath))
	info, err := os.Stat(full)
	if err == nil && info.IsDir() {
		if hasExactEntry(full, "README.md") {
			return decisionMarkdown, path.Join(reqPath, "README.md")
		}
		return decisionDirectory, reqPath
	}
	if err != nil || !info.Mode().IsRegular() {
		return decisionRaw, reqPath
	}
	switch strings.ToLower(path.Ext(reqPath)) {
	case ".md", ".markdown":
		return decisionMarkdown, reqPath
	}
	if classify.IsTextFile(path.Base(reqPath)) {
		return decisionText, reqPath
	}
	return decisionRaw, reqPath
}

// hasExactEntry reports whether dir directly contains a regular file with
// exactly the given name. Comparing directory-entry names keeps the check
// case-sensitive even on case-insensitive filesystems.
func hasExactEntry(dir, name string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.Name() == name && !entry.IsDir() {
			return true
		}
	}
	return false
}

func (s *Server) serveMarkdown(w http.ResponseWriter, reqPath string) {
	full := filepath.Join(s.cfg.Root, filepath.FromSlash(reqPath))
	data, err := os.ReadFile(full)
	if err != nil {
		renderError(w, "Error rendering markdown", err)
		return
	}
	fields, body := markdown.ParseFrontmatter(string(data))
	bodyHTML, err := s.conv.Convert(body)
	if err != nil {
		renderError(w, "Error rendering markdown", err)
		return
	}
	page, err := RenderMarkdownPage(path.Base(reqPath), fields, bodyHTML, baseHrefFor(reqPath))
	if err != nil {
		renderError(w, "Error rendering markdown", err)
		return
	}
	writeHTML(w, page)
}

func (s *Server) serveText(w http.ResponseWriter, r *http.Request, reqPath string) {
	full := filepath.Join(s.cfg.Root, filepath.FromSlash(reqPath))
	data, err := os.ReadFile(full)
	if err != nil {
		renderError(w, "Error displaying file", err)
		return
	}
	if !utf8.Valid(data) {
		// The name-based classifier misfired on binary content; hand the
		// file to the raw delegate instead of erroring.
		s.raw.ServeHTTP(w, r)
		return
	}
	page, err := RenderTextPage(path.Base(reqPath), html.EscapeString(string(data)))
	if err != nil {
		renderError(w, "Error displaying file", err)
		return
	}
	writeHTML(w, page)
}

func (s *Server) serveDirectory(w http.ResponseWriter, reqPath string) {
	full := filepath.Join(s.cfg.Root, filepath.FromSlash(reqPath))
	info, err := os.Stat(full)
	if err != nil || !info.IsDir() {
		http.Error(w, "Directory not found", http.StatusNotFound)
		return
	}
	dirEntries, err := os.ReadDir(full)
	if err != nil {
		renderError(w, "Error listing directory", err)
		return
	}

	sort.SliceStable(dirEntries, func(i, j int) bool {
		di, dj := dirEntries[i].IsDir(), dirEntries[j].IsDir()
		if di != dj {
			return di
		}
		return strings.ToLower(dirEntries[i].Name()) < strings.ToLower(dirEntries[j].Name())
	})

	entries := make([]DirEntry, 0, len(dirEntries))
	for _, entry := range dirEntries {
		entries = append(entries, DirEntry{
			Name:  entry.Name(),
			Href:  entryHref(reqPath, entry.Name()),
			IsDir: entry.IsDir(),
		})
	}

	page, err := RenderDirectoryPage(reqPath, parentHrefFor(reqPath), entries)
	if err != nil {
		renderError(w, "Error listing directory", err)
		return
	}
	writeHTML(w, page)
}

func writeHTML(w http.ResponseWriter, page string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

func renderError(w http.ResponseWriter, op string, err error) {
	http.Error(w, fmt.Sprintf("%s: %v", op, err), http.StatusInternalServerError)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
