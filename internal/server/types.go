package server

import (
	"net/http"

	"github.com/MeKo-Tech/qrstyle/internal/config"
	"github.com/MeKo-Tech/qrstyle/internal/encode"
	"github.com/MeKo-Tech/qrstyle/internal/render"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	generator  encode.Generator
	registry   *render.Registry
	corsOrigin string
	maxBodyMB  int64
	defaults   config.Config
}

// Config holds server configuration. Listener address and timeouts
// belong to the http.Server the caller mounts the handlers on.
type Config struct {
	CORSOrigin string
	MaxBodyMB  int64
	// Defaults is the base configuration requests are merged onto;
	// fields a request omits keep these values.
	Defaults config.Config
}

// Response types for API endpoints.
type HealthResponse struct {
	Status  string   `json:"status"`
	Version string   `json:"version,omitempty"`
	Time    string   `json:"time"`
	Formats []string `json:"formats"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// GenerateRequest is the JSON body of POST /generate. Style and Border
// use the same schema as the configuration file; omitted fields keep
// the server's configured defaults.
type GenerateRequest struct {
	Data   string               `json:"data"`
	Format string               `json:"format,omitempty"`
	Style  *config.StyleConfig  `json:"style,omitempty"`
	Border *config.BorderConfig `json:"border,omitempty"`
	// Image is the base64-encoded logo; it overrides style.image.path.
	Image string `json:"image,omitempty"`
}

// NewServer creates a new rendering server instance.
func NewServer(cfg Config) *Server {
	return &Server{
		generator:  encode.Default,
		registry:   render.Default,
		corsOrigin: cfg.CORSOrigin,
		maxBodyMB:  cfg.MaxBodyMB,
		defaults:   cfg.Defaults,
	}
}

// SetupRoutes configures the HTTP routes.
func (s *Server) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", s.corsMiddleware(s.healthHandler))
	mux.HandleFunc("/generate", s.corsMiddleware(s.generateHandler))
	mux.HandleFunc("/qr", s.corsMiddleware(s.qrHandler))
	mux.HandleFunc("/ws", s.previewWebSocketHandler)
}
