// Package webui serves the interactive cleaning form: a local two-pane
// page (source and result) over the escape reversal engine. The server
// owns the HTTP plumbing and holds no cleaning state; every request
// calls the engine fresh.
package webui

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/descape/descape/internal/logger"
	"github.com/descape/descape/internal/version"
	"github.com/descape/descape/pkg/cleaner/escape"
)

//go:embed form.html
var formFS embed.FS

// maxUploadBytes bounds uploaded files; exported markdown documents are
// small, human-authored files.
const maxUploadBytes = 10 << 20

// Config configures the form server.
type Config struct {
	// Addr is the listen address, host:port.
	Addr string `validate:"required,hostname_port"`
}

// DefaultConfig returns the default, loopback-only configuration.
func DefaultConfig() Config {
	return Config{Addr: "127.0.0.1:8632"}
}

// Server is the interactive form server.
type Server struct {
	cfg      Config
	engine   *escape.Cleaner
	validate *validator.Validate
	tmpl     *template.Template
}

// New creates a form server. The configuration is validated up front.
func New(cfg Config) (*Server, error) {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid webui config: %w", err)
	}

	tmpl, err := template.ParseFS(formFS, "form.html")
	if err != nil {
		return nil, fmt.Errorf("parsing form template: %w", err)
	}

	return &Server{
		cfg:      cfg,
		engine:   escape.New(),
		validate: v,
		tmpl:     tmpl,
	}, nil
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /api/clean", s.handleClean)
	mux.HandleFunc("POST /api/open", s.handleOpen)
	mux.HandleFunc("POST /api/save", s.handleSave)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	return mux
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("form server listening", "addr", s.cfg.Addr, "url", "http://"+s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

type cleanRequest struct {
	Text string `json:"text"`
}

type cleanResponse struct {
	Text     string   `json:"text"`
	Changed  int      `json:"changed"`
	Signals  []string `json:"signals,omitempty"`
	Filename string   `json:"filename,omitempty"`
}

type saveRequest struct {
	Filename string `json:"filename" validate:"required,excludesall=/\\"`
	Text     string `json:"text"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, map[string]string{"Version": version.String()}); err != nil {
		logger.Error("failed to render form", "error", err)
	}
}

func (s *Server) handleClean(w http.ResponseWriter, r *http.Request) {
	var req cleanRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxUploadBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	result := s.engine.CleanWithStats(req.Text)
	logger.Debug("cleaned text", "changed", result.Changed, "signals", result.Stats.Signals)

	writeJSON(w, http.StatusOK, cleanResponse{
		Text:    result.Content,
		Changed: result.Changed,
		Signals: result.Stats.Signals,
	})
}

// handleOpen loads an uploaded file and cleans it in one step, matching
// the form's open action.
func (s *Server) handleOpen(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid upload: %v", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("reading upload: %v", err))
		return
	}

	result := s.engine.CleanWithStats(string(data))
	logger.Debug("cleaned upload", "filename", header.Filename,
		"changed", result.Changed, "signals", result.Stats.Signals)

	writeJSON(w, http.StatusOK, cleanResponse{
		Text:     result.Content,
		Changed:  result.Changed,
		Signals:  result.Stats.Signals,
		Filename: header.Filename,
	})
}

// handleSave returns the result pane's content as a download attachment.
func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxUploadBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid filename: %v", err))
		return
	}
	if strings.Contains(req.Filename, "..") {
		writeError(w, http.StatusBadRequest, "invalid filename")
		return
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": req.Filename})
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", disposition)
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, req.Text)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, version.Get())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
