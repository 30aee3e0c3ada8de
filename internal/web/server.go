package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"qtsetup/internal/model"
	"qtsetup/internal/quantower"
)

//go:embed static/*
var staticFS embed.FS

//go:embed help.md
var helpMD string

// Server exposes the bridge over a local HTTP API.
type Server struct {
	bridge *quantower.Bridge
	log    zerolog.Logger
}

func NewServer(b *quantower.Bridge, logger zerolog.Logger) *Server {
	return &Server{bridge: b, log: logger}
}

// Handler returns the routed mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	subFS, _ := fs.Sub(staticFS, "static")
	mux.Handle("GET /", http.FileServer(http.FS(subFS)))

	// API Endpoints
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("POST /api/setup", s.sameOrigin(s.handleSetup))
	mux.HandleFunc("POST /api/explore", s.sameOrigin(s.handleExplore))
	mux.HandleFunc("GET /api/help", s.handleHelp)
	return mux
}

// StartServer listens on localhost:port until the listener fails.
func (s *Server) StartServer(port string) error {
	addr := "localhost:" + port
	fmt.Printf("Starting qtsetup web server at http://%s\n", addr)
	fmt.Printf("Go to http://%s in your browser.\n", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// sameOrigin guards the mutating endpoints. A JSON body forces browsers to
// preflight, which this server never answers, and a foreign Origin is
// refused outright.
func (s *Server) sameOrigin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" {
			u, err := url.Parse(origin)
			if err != nil || u.Host != r.Host {
				s.log.Warn().Str("origin", origin).Str("path", r.URL.Path).Msg("cross-origin request refused")
				http.Error(w, "cross-origin request refused", http.StatusForbidden)
				return
			}
		}
		mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mt != "application/json" {
			http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
			return
		}
		next(w, r)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.bridge.Status())
}

// ActionResponse is returned by the POST endpoints.
type ActionResponse struct {
	OK     bool         `json:"ok"`
	Error  string       `json:"error,omitempty"`
	Status model.Status `json:"status"`
}

func (s *Server) handleSetup(w http.ResponseWriter, r *http.Request) {
	ok, err := s.bridge.SetupRootEnvironmentVariable()
	s.respond(w, ok, err)
}

func (s *Server) handleExplore(w http.ResponseWriter, r *http.Request) {
	var explore func() (bool, error)
	switch strings.ToLower(r.URL.Query().Get("target")) {
	case "", "root":
		explore = s.bridge.ExploreRoot
	case "indicators":
		explore = s.bridge.ExploreCustomIndicators
	default:
		http.Error(w, "target must be root or indicators", http.StatusBadRequest)
		return
	}
	ok, err := explore()
	s.respond(w, ok, err)
}

func (s *Server) respond(w http.ResponseWriter, ok bool, err error) {
	resp := ActionResponse{OK: ok, Status: s.bridge.Status()}
	code := http.StatusOK
	if err != nil {
		s.log.Error().Err(err).Msg("web action failed")
		resp.Error = err.Error()
		code = http.StatusInternalServerError
	}
	writeJSON(w, code, resp)
}

func (s *Server) handleHelp(w http.ResponseWriter, r *http.Request) {
	// Use the embedded help content
	text := strings.ReplaceAll(helpMD, "{{VERSION}}", model.Version)

	w.Header().Set("Content-Type", "text/markdown")
	w.Write([]byte(text))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
