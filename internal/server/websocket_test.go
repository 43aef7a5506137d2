package server

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialPreview connects a websocket client to a test server running the
// preview handler.
func dialPreview(t *testing.T) *websocket.Conn {
	t.Helper()
	server := newTestServer()
	mux := http.NewServeMux()
	server.SetupRoutes(mux)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestPreviewWebSocket_RoundTrip(t *testing.T) {
	conn := dialPreview(t)

	require.NoError(t, conn.WriteJSON(map[string]any{"data": "https://example.com"}))

	var resp PreviewResponse
	require.NoError(t, conn.ReadJSON(&resp))

	assert.Equal(t, "preview", resp.Type)
	assert.Equal(t, "svg", resp.Format)
	assert.Equal(t, 300, resp.Width)
	assert.Equal(t, 300, resp.Height)

	data, err := base64.StdEncoding.DecodeString(resp.Artifact)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestPreviewWebSocket_RestyleWithoutReconnect(t *testing.T) {
	conn := dialPreview(t)

	require.NoError(t, conn.WriteJSON(map[string]any{"data": "hello"}))
	var first PreviewResponse
	require.NoError(t, conn.ReadJSON(&first))
	require.Equal(t, "preview", first.Type)

	require.NoError(t, conn.WriteJSON(map[string]any{
		"data":   "hello",
		"format": "png",
		"style":  map[string]any{"width": 128, "height": 128},
	}))
	var second PreviewResponse
	require.NoError(t, conn.ReadJSON(&second))

	assert.Equal(t, "preview", second.Type)
	assert.Equal(t, "png", second.Format)
	assert.Equal(t, 128, second.Width)
}

func TestPreviewWebSocket_Errors(t *testing.T) {
	conn := dialPreview(t)

	// Malformed JSON is answered, not dropped.
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{oops")))
	var resp PreviewResponse
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, "error", resp.Type)
	assert.NotEmpty(t, resp.Error)

	// A bad request keeps the connection usable.
	require.NoError(t, conn.WriteJSON(map[string]any{"data": ""}))
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, "error", resp.Type)

	require.NoError(t, conn.WriteJSON(map[string]any{"data": "ok"}))
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, "preview", resp.Type)
}
