package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/fale"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ShutdownTimeout is the time given for outstanding requests to finish before shutdown.
const ShutdownTimeout = 5 * time.Second

// MaxRequestBodySize caps the size of a /fetch request body.
const MaxRequestBodySize = 1 << 20

//go:embed assets/index.html
var indexHTML []byte

// FetchRequest is the JSON body of POST /fetch.
type FetchRequest struct {
	URL string `json:"url" validate:"required,http_url"`
}

// FetchResponse is the JSON body of a successful POST /fetch.
type FetchResponse struct {
	Success bool `json:"success"`
	*fale.Result
}

// Server exposes a fale.Service over HTTP.
type Server struct {
	ln       net.Listener
	server   *http.Server
	router   *http.ServeMux
	validate *validator.Validate

	// Bind address for the server's listener.
	Addr string

	// Services used by the HTTP routes.
	Service fale.Service

	// Logger receives one line per request. Defaults to discarding output.
	Logger *slog.Logger

	// Limiter, when set, throttles /fetch per client address.
	Limiter *ClientLimiter
}

// NewServer returns a new instance of Server.
func NewServer() *Server {
	s := &Server{
		server:   &http.Server{ReadHeaderTimeout: 10 * time.Second},
		router:   http.NewServeMux(),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		Logger:   slog.New(slog.DiscardHandler),
	}
	s.server.Handler = s

	s.router.HandleFunc("GET /{$}", s.handleIndex)
	s.router.HandleFunc("POST /fetch", s.handleFetch)

	return s
}

// Open validates the server options and begins listening on the bind address.
func (s *Server) Open() (err error) {
	if s.Service == nil {
		return fmt.Errorf("service required")
	}
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}

	go func() { _ = s.server.Serve(s.ln) }()

	return nil
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// ServeHTTP tags the request with an ID, routes it and logs the outcome.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set("X-Request-ID", id)

	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	begin := time.Now()
	s.router.ServeHTTP(rec, r)

	s.Logger.Info("http request",
		"id", id,
		"method", r.Method,
		"path", r.URL.Path,
		"status", rec.status,
		"duration", time.Since(begin),
	)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	if s.Limiter != nil && !s.Limiter.Allow(clientKey(r)) {
		writeJSON(w, http.StatusTooManyRequests, &ErrorResponse{Error: "Too many requests"})
		return
	}

	var req FetchRequest
	body := http.MaxBytesReader(w, r.Body, MaxRequestBodySize)
	if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.Error(w, r, fale.Errorf(fale.EINVALID, "Invalid JSON body"))
		return
	}
	req.URL = strings.TrimSpace(req.URL)
	if err := s.validateRequest(&req); err != nil {
		s.Error(w, r, err)
		return
	}

	result, err := s.Service.Fetch(r.Context(), req.URL)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	w.Header().Set("ETag", fmt.Sprintf(`"%016x"`, xxhash.Sum64String(result.Content)))
	writeJSON(w, http.StatusOK, &FetchResponse{Success: true, Result: result})
}

// validateRequest checks req and maps the first failing rule to EINVALID.
func (s *Server) validateRequest(req *FetchRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	if verrs[0].Tag() == "required" {
		return fale.Errorf(fale.EINVALID, "URL is required")
	}
	return fale.Errorf(fale.EINVALID, "invalid URL %q: must be an absolute http or https URL", req.URL)
}

// clientKey identifies the caller for rate limiting.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
