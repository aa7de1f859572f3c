package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/panyam/cdecl/parser"
)

// Server exposes the declaration parser as a small JSON API.
type Server struct {
	Address string
	mux     *http.ServeMux
}

func NewServer(addr string) *Server {
	s := &Server{Address: addr, mux: http.NewServeMux()}
	s.mux.HandleFunc("POST /api/v1/explain", s.handleExplain)
	return s
}

// Handler returns the full handler chain, for Start and for tests.
func (s *Server) Handler() http.Handler {
	return withAccessLog(s.mux)
}

func (s *Server) Start() error {
	return http.ListenAndServe(s.Address, s.Handler())
}

type ExplainRequest struct {
	Declaration string `json:"declaration"`
}

type ExplainResponse struct {
	Declaration string `json:"declaration"`
	Description string `json:"description,omitempty"`
	Error       string `json:"error,omitempty"`
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	var req ExplainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp := ExplainResponse{Declaration: req.Declaration}
	status := http.StatusOK
	if desc, err := parser.ParseDeclaration(req.Declaration); err != nil {
		resp.Error = err.Error()
		status = http.StatusBadRequest
	} else {
		resp.Description = desc
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// withAccessLog logs one line per request with status, size and timing.
func withAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		slog.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", m.Code,
			"bytes", m.Written,
			"duration", m.Duration.Round(time.Microsecond),
		)
	})
}
