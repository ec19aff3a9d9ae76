package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/driangle/viewmd/internal/config"
	"github.com/driangle/viewmd/internal/journal"
	"github.com/driangle/viewmd/internal/web"
)

func main() {
	level := parseLogLevel(os.Getenv("VIEWMD_DEBUG_LEVEL"))
	pretty := strings.EqualFold(os.Getenv("VIEWMD_LOG_PRETTY"), "1") || strings.EqualFold(os.Getenv("VIEWMD_LOG_PRETTY"), "true")
	var handler slog.Handler
	if pretty {
		handler = newPrettyHandler(os.Stdout, level)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))

	cfg := config.Load()
	if len(os.Args) > 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [port]\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}
	if len(os.Args) == 2 {
		port, err := strconv.Atoi(os.Args[1])
		if err != nil || port < 1 || port > 65535 {
			fmt.Fprintf(os.Stderr, "invalid port %q\n", os.Args[1])
			os.Exit(2)
		}
		cfg.ListenAddr = ":" + strconv.Itoa(port)
	}

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		slog.Error("resolve root", "err", err)
		os.Exit(1)
	}
	cfg.Root = root
	if info, err := os.Stat(cfg.Root); err != nil || !info.IsDir() {
		slog.Error("root is not a directory", "path", cfg.Root)
		os.Exit(1)
	}

	var jour *journal.Journal
	if cfg.DataPath != "" {
		if err := os.MkdirAll(cfg.DataPath, 0o755); err != nil {
			slog.Error("create data dir", "err", err)
			os.Exit(1)
		}
		jour, err = journal.Open(filepath.Join(cfg.DataPath, "journal.sqlite"))
		if err != nil {
			slog.Error("open journal", "err", err)
			os.Exit(1)
		}
		defer jour.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := jour.Init(ctx); err != nil {
			cancel()
			slog.Error("init journal", "err", err)
			os.Exit(1)
		}
		cancel()
	}

	srv, err := web.NewServer(cfg, jour)
	if err != nil {
		slog.Error("auth init", "err", err)
		os.Exit(1)
	}
	slog.Info("listening", "addr", cfg.ListenAddr, "root", cfg.Root)
	if err := http.ListenAndServe(cfg.ListenAddr, srv.Handler()); err != nil {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}

func parseLogLevel(raw string) slog.Leveler {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		level.Set(slog.LevelDebug)
	case "info":
		level.Set(slog.LevelInfo)
	case "warn", "warning":
		level.Set(slog.LevelWarn)
	case "error":
		level.Set(slog.LevelError)
	}
	return level
}

type prettyHandler struct {
	w            io.Writer
	level        slog.Leveler
	colorEnabled bool
	attrs        []slog.Attr
	groups       []string
}

func newPrettyHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return &prettyHandler{
		w:            w,
		level:        level,
		colorEnabled: isTerminalWriter(w),
	}
}

func (h *prettyHandler) Enabled(_ context.Context, lvl slog.Level) bool {
	return lvl >= h.level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Time.Format("2006-01-02 15:04:05"))
	b.WriteString(" ")
	b.WriteString(colorizeLevel(r.Level, h.colorEnabled))
	b.WriteString(" ")
	b.WriteString(r.Message)
	b.WriteString("\n")
	for _, attr := range h.attrs {
		h.writeAttr(&b, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		h.writeAttr(&b, attr)
		return true
	})
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyHandler{
		w:            h.w,
		level:        h.level,
		colorEnabled: h.colorEnabled,
		attrs:        append(append([]slog.Attr{}, h.attrs...), attrs...),
		groups:       append([]string{}, h.groups...),
	}
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &prettyHandler{
		w:            h.w,
		level:        h.level,
		colorEnabled: h.colorEnabled,
		attrs:        append([]slog.Attr{}, h.attrs...),
		groups:       append(append([]string{}, h.groups...), name),
	}
}

func (h *prettyHandler) writeAttr(b *strings.Builder, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	key := attr.Key
	if len(h.groups) > 0 {
		key = strings.Join(h.groups, ".") + "." + key
	}
	value := attr.Value
	if value.Kind() == slog.KindGroup {
		group := value.Group()
		children := make([]slog.Attr, 0, len(group))
		children = append(children, group...)
		sort.SliceStable(children, func(i, j int) bool { return children[i].Key < children[j].Key })
		nested := &prettyHandler{
			w:      h.w,
			level:  h.level,
			groups: append(append([]string{}, h.groups...), attr.Key),
		}
		for _, child := range children {
			nested.writeAttr(b, child)
		}
		return
	}
	b.WriteString("  ")
	b.WriteString(key)
	b.WriteString(": ")
	b.WriteString(value.String())
	b.WriteString("\n")
}

const (
	colorReset = "\x1b[0m"
	colorDebug = "\x1b[36m"
	colorInfo  = "\x1b[32m"
	colorWarn  = "\x1b[33m"
	colorError = "\x1b[31m"
)

func colorizeLevel(level slog.Level, enabled bool) string {
	label := level.String()
	if !enabled {
		return label
	}
	switch {
	case level <= slog.LevelDebug:
		return colorDebug + label + colorReset
	case level < slog.LevelWarn:
		return colorInfo + label + colorReset
	case level < slog.LevelError:
		return colorWarn + label + colorReset
	default:
		return colorError + label + colorReset
	}
}

func isTerminalWriter(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
