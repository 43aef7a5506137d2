package server

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocket upgrader with reasonable defaults.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow connections from any origin in development
		// In production, you should check against allowed origins
		return true
	},
}

// PreviewResponse is sent back for every styling message; the artifact
// is base64 so SVG and binary formats travel the same way.
type PreviewResponse struct {
	Type     string `json:"type"`
	Format   string `json:"format,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Artifact string `json:"artifact,omitempty"`
	Error    string `json:"error,omitempty"`
}

// previewWebSocketHandler streams live previews: every received styling
// message is rendered and answered with the fresh artifact, so editors
// can re-style without polling.
func (s *Server) previewWebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade connection to WebSocket", "error", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	websocketConnections.Inc()
	defer websocketConnections.Dec()

	slog.Info("Preview connection established", "remote_addr", r.RemoteAddr)
	s.handlePreviewConnection(conn)
}

func (s *Server) handlePreviewConnection(conn *websocket.Conn) {
	_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	// Send ping messages to keep connection alive
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(10*time.Second)); err != nil {
					return
				}
			}
		}
	}()

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("WebSocket error", "error", err)
			}
			break
		}
		websocketMessagesTotal.WithLabelValues("received").Inc()

		if messageType == websocket.TextMessage {
			s.handlePreviewMessage(conn, data)
		}
	}
}

func (s *Server) handlePreviewMessage(conn *websocket.Conn, data []byte) {
	defStyle := s.defaults.Style
	defBorder := s.defaults.Border
	req := GenerateRequest{
		Format: s.defaults.Output.Format,
		Style:  &defStyle,
		Border: &defBorder,
	}
	if err := json.Unmarshal(data, &req); err != nil {
		s.sendPreview(conn, PreviewResponse{Type: "error", Error: "invalid styling message: " + err.Error()})
		return
	}

	artifact, err := s.renderArtifact(&req)
	if err != nil {
		s.sendPreview(conn, PreviewResponse{Type: "error", Error: err.Error()})
		return
	}
	s.sendPreview(conn, PreviewResponse{
		Type:     "preview",
		Format:   string(artifact.Format),
		Width:    artifact.Width,
		Height:   artifact.Height,
		Artifact: base64.StdEncoding.EncodeToString(artifact.Data),
	})
}

func (s *Server) sendPreview(conn *websocket.Conn, resp PreviewResponse) {
	payload, err := json.Marshal(resp)
	if err != nil {
		slog.Error("Failed to encode preview response", "error", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		slog.Error("Failed to send preview response", "error", err)
		return
	}
	websocketMessagesTotal.WithLabelValues("sent").Inc()
}
