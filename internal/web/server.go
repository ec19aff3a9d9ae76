package web

import (
	"net/http"

	"github.com/driangle/viewmd/internal/config"
	"github.com/driangle/viewmd/internal/journal"
	"github.com/driangle/viewmd/internal/markdown"
)

type Server struct {
	cfg  config.Config
	mux  *http.ServeMux
	conv *markdown.Converter
	jour *journal.Journal
	auth *Auth
	raw  http.Handler
}

// NewServer builds the daemon's HTTP surface over cfg.Root. jour may be
// nil to disable request journaling.
func NewServer(cfg config.Config, jour *journal.Journal) (*Server, error) {
	auth, err := newAuth(cfg)
	if err != nil {
		return nil, err
	}
	s := &Server{
		cfg:  cfg,
		mux:  http.NewServeMux(),
		conv: markdown.NewConverter(cfg.CodeStyle),
		jour: jour,
		auth: auth,
		raw:  http.FileServer(http.Dir(cfg.Root)),
	}
	s.routes()
	return s, nil
}

func (s *Server) Handler() http.Handler {
	if s.auth != nil {
		return s.auth.Middleware(s.mux)
	}
	return s.mux
}

func (s *Server) routes() {
	s.mux.HandleFunc("/", s.handleRequest)
}
