package controller

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/contentstudio/server/internal/service/studio"
	"github.com/contentstudio/server/pkg/ctxlogger"
	"github.com/contentstudio/server/pkg/rest"
	"github.com/contentstudio/server/pkg/wssender"
)

const closeTimeout = time.Second

// connectSession upgrades the request and serves the session until the
// browser goes away. The read loop is the only goroutine that drives the
// session's player and style.
func (c controller) connectSession(w http.ResponseWriter, r *http.Request) {
	sessionId := chi.URLParam(r, "session-id")
	token := r.URL.Query().Get("token")
	if token == "" {
		rest.WriteJSON(w, http.StatusUnauthorized, rest.Envelope{"error": "token is required"})
		return
	}

	conn, err := c.upgrader.Upgrade(w, r, nil)
	if err != nil {
		c.logger.WarnContext(r.Context(), "failed to upgrade to websocket", "error", err)
		return
	}
	defer conn.Close()

	sender := wssender.New(conn)
	ctx := ctxlogger.AppendCtx(r.Context(), slog.String("session_id", sessionId))

	state, err := c.studioService.ConnectSession(ctx, &studio.ConnectSessionParams{
		SessionID:    sessionId,
		ConnectToken: token,
		Sender:       sender,
	})
	if err != nil {
		c.logger.InfoContext(ctx, "failed to connect session", "error", err)
		c.writeError(ctx, sender, err)
		c.closeConn(conn, websocket.ClosePolicyViolation, "connect rejected")
		return
	}
	defer c.disconnect(ctx, sessionId)

	if err := sender.Send(studio.TypeSessionState, state); err != nil {
		c.logger.WarnContext(ctx, "failed to send session state", "error", err)
		return
	}

	ctx = context.WithValue(ctx, sessionIdCtxKey, sessionId)
	ctx = context.WithValue(ctx, senderCtxKey, sender)

	if err := c.wsmux.ServeConn(ctx, conn); err != nil {
		if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
			c.logger.InfoContext(ctx, "connection closed unexpectedly", "error", err)
			return
		}
		c.logger.DebugContext(ctx, "connection closed", "error", err)
	}
}

func (c controller) disconnect(ctx context.Context, sessionId string) {
	if err := c.studioService.DisconnectSession(ctx, sessionId); err != nil && !errors.Is(err, studio.ErrSessionNotFound) {
		c.logger.WarnContext(ctx, "failed to disconnect session", "error", err)
	}
}

func (c controller) closeConn(conn *websocket.Conn, code int, text string) {
	msg := websocket.FormatCloseMessage(code, text)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeTimeout))
}
