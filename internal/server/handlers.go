package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/MeKo-Tech/qrstyle/internal/matrix"
	"github.com/MeKo-Tech/qrstyle/internal/render"
	"github.com/MeKo-Tech/qrstyle/internal/scene"
	"github.com/MeKo-Tech/qrstyle/internal/style"
	"github.com/MeKo-Tech/qrstyle/internal/version"
)

// healthHandler returns server health status and the registered output
// formats.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	formats := s.registry.Supported()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	response := HealthResponse{
		Status:  "healthy",
		Version: version.Version,
		Time:    time.Now().UTC().Format(time.RFC3339),
		Formats: names,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("Failed to encode health response", "error", err)
	}
}

// generateHandler renders a styled code from a JSON request body and
// responds with the encoded artifact. Omitted style fields keep the
// server's configured defaults.
func (s *Server) generateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyMB*1024*1024)

	// Pre-filling the request with the defaults makes partial JSON
	// bodies merge instead of zeroing the missing fields.
	defStyle := s.defaults.Style
	defBorder := s.defaults.Border
	req := GenerateRequest{
		Format: s.defaults.Output.Format,
		Style:  &defStyle,
		Border: &defBorder,
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorResponse(w, "Invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return
	}
	s.respondWithArtifact(w, &req)
}

// qrHandler is the quick query-parameter variant of /generate for
// direct use in image tags.
func (s *Server) qrHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()

	styleCfg := s.defaults.Style
	if v := q.Get("width"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.writeErrorResponse(w, "Invalid width", http.StatusBadRequest)
			return
		}
		styleCfg.Width = n
	}
	if v := q.Get("height"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.writeErrorResponse(w, "Invalid height", http.StatusBadRequest)
			return
		}
		styleCfg.Height = n
	}
	if v := q.Get("margin"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.writeErrorResponse(w, "Invalid margin", http.StatusBadRequest)
			return
		}
		styleCfg.Margin = n
	}
	if v := q.Get("shape"); v != "" {
		styleCfg.Shape = v
	}
	if v := q.Get("dots"); v != "" {
		styleCfg.Dots.Type = v
	}
	if v := q.Get("color"); v != "" {
		styleCfg.Dots.Color = v
	}
	if v := q.Get("bg"); v != "" {
		styleCfg.Background.Color = v
	}
	if v := q.Get("level"); v != "" {
		styleCfg.QR.Level = v
	}

	format := s.defaults.Output.Format
	if v := q.Get("format"); v != "" {
		format = v
	}
	defBorder := s.defaults.Border
	req := GenerateRequest{
		Data:   q.Get("data"),
		Format: format,
		Style:  &styleCfg,
		Border: &defBorder,
	}
	s.respondWithArtifact(w, &req)
}

// respondWithArtifact runs the render pipeline for req and writes the
// artifact bytes or a JSON error.
func (s *Server) respondWithArtifact(w http.ResponseWriter, req *GenerateRequest) {
	format := render.ParseFormat(req.Format)

	start := time.Now()
	artifact, err := s.renderArtifact(req)
	if err != nil {
		renderRequestsTotal.WithLabelValues(string(format), errorStatus(err)).Inc()
		s.writeRenderError(w, err)
		return
	}
	renderDuration.WithLabelValues(string(format)).Observe(time.Since(start).Seconds())
	renderRequestsTotal.WithLabelValues(string(format), "ok").Inc()
	artifactSizeBytes.WithLabelValues(string(format)).Observe(float64(len(artifact.Data)))

	w.Header().Set("Content-Type", artifact.Format.MIME())
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Data)))
	if _, err := w.Write(artifact.Data); err != nil {
		slog.Error("Failed to write artifact response", "error", err)
	}
}

// renderArtifact runs encode, assembly, and encoding for one request.
func (s *Server) renderArtifact(req *GenerateRequest) (*render.Artifact, error) {
	cfg := s.defaults
	if req.Style != nil {
		cfg.Style = *req.Style
	}
	if req.Border != nil {
		cfg.Border = *req.Border
	}

	var logo []byte
	if req.Image != "" {
		var err error
		logo, err = base64.StdEncoding.DecodeString(req.Image)
		if err != nil {
			return nil, &style.ConfigError{Field: "image", Reason: "invalid base64 payload"}
		}
	}

	opts, err := cfg.ToStyleOptions(req.Data, logo)
	if err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	m, err := s.generator.Generate(req.Data, opts.QR)
	if err != nil {
		return nil, err
	}
	sc, err := scene.Assemble(m, opts)
	if err != nil {
		return nil, err
	}
	sceneGroupCount.Observe(float64(len(sc.Groups)))

	bopts, err := cfg.ToBorderOptions()
	if err != nil {
		return nil, err
	}

	format := render.ParseFormat(req.Format)
	return s.registry.Encode(format, sc, bopts)
}

// writeRenderError maps pipeline errors onto HTTP statuses.
func (s *Server) writeRenderError(w http.ResponseWriter, err error) {
	var cfgErr *style.ConfigError
	if errors.As(err, &cfgErr) {
		s.writeFieldError(w, cfgErr.Error(), cfgErr.Field, http.StatusBadRequest)
		return
	}
	var matErr *matrix.InvalidMatrixError
	if errors.As(err, &matErr) {
		s.writeErrorResponse(w, matErr.Error(), http.StatusUnprocessableEntity)
		return
	}
	var fmtErr *render.UnsupportedFormatError
	if errors.As(err, &fmtErr) {
		s.writeErrorResponse(w, fmtErr.Error(), http.StatusBadRequest)
		return
	}
	slog.Error("Render failed", "error", err)
	s.writeErrorResponse(w, "Internal rendering error", http.StatusInternalServerError)
}

func errorStatus(err error) string {
	var cfgErr *style.ConfigError
	var fmtErr *render.UnsupportedFormatError
	if errors.As(err, &cfgErr) || errors.As(err, &fmtErr) {
		return "invalid"
	}
	return "error"
}

func (s *Server) writeErrorResponse(w http.ResponseWriter, message string, status int) {
	s.writeFieldError(w, message, "", status)
}

func (s *Server) writeFieldError(w http.ResponseWriter, message, field string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: message, Field: field}); err != nil {
		fmt.Fprintf(w, `{"error":"encoding failure"}`)
	}
}
