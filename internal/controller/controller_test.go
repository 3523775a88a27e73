package controller

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentstudio/server/internal/repository/session/inmemory"
	"github.com/contentstudio/server/internal/service/studio"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	studioService := studio.NewService(inmemory.NewRepo[*studio.Session](), nil, nil, logger, &studio.Config{
		Secret:     "test-secret",
		SessionTTL: time.Minute,
	})

	srv := httptest.NewServer(NewController(studioService, logger, nil).GetMux())
	t.Cleanup(srv.Close)

	return srv
}

func postJSON(t *testing.T, url, body string) (*http.Response, map[string]json.RawMessage) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var env map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))

	return resp, env
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetCatalog(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/catalog")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env struct {
		Data studio.Catalog `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Len(t, env.Data.Fonts, 4)
	assert.Len(t, env.Data.Speeds, 5)
	assert.Equal(t, "4:5", string(env.Data.DefaultStyle.AspectRatio))
}

func TestResolve(t *testing.T) {
	srv := newTestServer(t)

	resp, env := postJSON(t, srv.URL+"/api/v1/resolve", `{"url":"https://youtube.com/shorts/dQw4w9WgXcQ"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"video_id":"dQw4w9WgXcQ"}`, string(env["data"]))

	resp, env = postJSON(t, srv.URL+"/api/v1/resolve", `{"url":"https://example.com"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"video_id":null}`, string(env["data"]))

	resp, _ = postJSON(t, srv.URL+"/api/v1/resolve", `{"link":"x"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestRender(t *testing.T) {
	srv := newTestServer(t)

	resp, env := postJSON(t, srv.URL+"/api/v1/render", `{"style":{"background_enabled":true,"blur_amount":5},"has_video":true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tree struct {
		Video *struct {
			Blur *struct {
				Amount int `json:"amount"`
			} `json:"blur"`
		} `json:"video"`
		Placeholder json.RawMessage `json:"placeholder"`
		Card        struct {
			Background string `json:"background"`
		} `json:"card"`
	}
	require.NoError(t, json.Unmarshal(env["data"], &tree))
	require.NotNil(t, tree.Video)
	require.NotNil(t, tree.Video.Blur)
	assert.Equal(t, 5, tree.Video.Blur.Amount)
	assert.Equal(t, "rgba(180, 130, 193, 0.5)", tree.Card.Background)
}

func TestRenderValidation(t *testing.T) {
	srv := newTestServer(t)

	resp, env := postJSON(t, srv.URL+"/api/v1/render", `{"style":{"font_size":100,"font":"comic","position":"left"}}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errs []struct {
		Field string `json:"field"`
		Code  string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(env["errors"], &errs))
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"font_size", "font", "position"}, fields)
}

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func createSession(t *testing.T, srv *httptest.Server) studio.CreateSessionResponse {
	t.Helper()
	resp, env := postJSON(t, srv.URL+"/api/v1/sessions", `{}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created studio.CreateSessionResponse
	require.NoError(t, json.Unmarshal(env["data"], &created))
	require.NotEmpty(t, created.SessionID)
	require.NotEmpty(t, created.ConnectToken)

	return created
}

func dial(t *testing.T, srv *httptest.Server, sessionId, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws/sessions/" + sessionId + "?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func send(t *testing.T, conn *websocket.Conn, msgType string, payload any) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(map[string]any{"type": msgType, "payload": payload}))
}

func read(t *testing.T, conn *websocket.Conn) wsMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg wsMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func readTypes(t *testing.T, conn *websocket.Conn, n int) []wsMessage {
	t.Helper()
	msgs := make([]wsMessage, 0, n)
	for i := 0; i < n; i++ {
		msgs = append(msgs, read(t, conn))
	}
	return msgs
}

func types(msgs []wsMessage) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Type)
	}
	return out
}

func TestSessionOverWebsocket(t *testing.T) {
	srv := newTestServer(t)
	created := createSession(t, srv)
	conn := dial(t, srv, created.SessionID, created.ConnectToken)

	initial := read(t, conn)
	require.Equal(t, "SESSION_STATE", initial.Type)

	send(t, conn, "SDK_READY", nil)
	assert.Equal(t, "SESSION_STATE", read(t, conn).Type)

	send(t, conn, "SET_VIDEO_URL", map[string]any{"video_url": "https://youtu.be/dQw4w9WgXcQ"})
	msgs := readTypes(t, conn, 2)
	require.Equal(t, []string{"CREATE_PLAYER", "SESSION_STATE"}, types(msgs))

	var createPayload struct {
		InstanceID string `json:"instance_id"`
		VideoID    string `json:"video_id"`
	}
	require.NoError(t, json.Unmarshal(msgs[0].Payload, &createPayload))
	assert.Equal(t, "dQw4w9WgXcQ", createPayload.VideoID)

	send(t, conn, "PLAYER_READY", map[string]any{"instance_id": createPayload.InstanceID})
	msgs = readTypes(t, conn, 3)
	assert.Equal(t, []string{"SET_PLAYBACK_RATE", "PLAY_VIDEO", "SESSION_STATE"}, types(msgs))

	var state struct {
		Player struct {
			State string `json:"state"`
			Ready bool   `json:"ready"`
		} `json:"player"`
	}
	require.NoError(t, json.Unmarshal(msgs[2].Payload, &state))
	assert.Equal(t, "active_ready", state.Player.State)
	assert.True(t, state.Player.Ready)

	send(t, conn, "PLAYER_STATE_CHANGED", map[string]any{"instance_id": createPayload.InstanceID, "state": 0})
	msgs = readTypes(t, conn, 2)
	assert.Equal(t, []string{"PLAY_VIDEO", "SESSION_STATE"}, types(msgs))

	send(t, conn, "TOGGLE_MUTE", nil)
	msgs = readTypes(t, conn, 2)
	assert.Equal(t, []string{"UNMUTE", "SESSION_STATE"}, types(msgs))

	send(t, conn, "ALIVE", nil)
	send(t, conn, "UPDATE_STYLE", map[string]any{"text": "PB!"})
	assert.Equal(t, "SESSION_STATE", read(t, conn).Type)
}

func TestSessionErrorsOverWebsocket(t *testing.T) {
	srv := newTestServer(t)
	created := createSession(t, srv)
	conn := dial(t, srv, created.SessionID, created.ConnectToken)
	require.Equal(t, "SESSION_STATE", read(t, conn).Type)

	tests := []struct {
		msgType string
		payload any
		code    string
	}{
		{"SET_SPEED", map[string]any{"speed": 3}, "INVALID_SPEED"},
		{"UPDATE_STYLE", map[string]any{"font_size": 100}, "VALIDATION_FAILED"},
		{"PLAYER_READY", map[string]any{}, "VALIDATION_FAILED"},
		{"SET_SPEED", "fast", "INVALID_PAYLOAD"},
		{"REORDER_PLAYLIST", nil, "UNKNOWN_MESSAGE_TYPE"},
	}

	for _, tt := range tests {
		send(t, conn, tt.msgType, tt.payload)
		msg := read(t, conn)
		require.Equal(t, "ERROR", msg.Type, tt.msgType)

		var out struct {
			Type string `json:"type"`
			Code string `json:"code"`
		}
		require.NoError(t, json.Unmarshal(msg.Payload, &out))
		assert.Equal(t, tt.code, out.Code, tt.msgType)
		assert.Equal(t, tt.msgType, out.Type)
	}

	// the session survives every error
	send(t, conn, "SET_SPEED", map[string]any{"speed": 0.5})
	assert.Equal(t, "SESSION_STATE", read(t, conn).Type)
}

func TestConnectWithInvalidToken(t *testing.T) {
	srv := newTestServer(t)
	created := createSession(t, srv)
	conn := dial(t, srv, created.SessionID, "garbage")

	msg := read(t, conn)
	require.Equal(t, "ERROR", msg.Type)
	assert.Contains(t, string(msg.Payload), "INVALID_TOKEN")

	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.ClosePolicyViolation))
}

func TestConnectWithoutToken(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/ws/sessions/abc")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
