package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/contentstudio/server/internal/bridge"
	"github.com/contentstudio/server/internal/player"
	"github.com/contentstudio/server/internal/service/studio"
	"github.com/contentstudio/server/pkg/validator"
	"github.com/contentstudio/server/pkg/wsrouter"
)

const typeError = "ERROR"

type validationErrors []validator.ValidationError

func (v validationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

type errorOutput struct {
	Type    string                      `json:"type"`
	Code    string                      `json:"code"`
	Message string                      `json:"message"`
	Errors  []validator.ValidationError `json:"errors,omitempty"`
}

func errorCode(err error) string {
	var ve validationErrors
	switch {
	case errors.As(err, &ve):
		return "VALIDATION_FAILED"
	case errors.Is(err, player.ErrInvalidSpeed):
		return "INVALID_SPEED"
	case errors.Is(err, wsrouter.ErrUnknownMessageType):
		return "UNKNOWN_MESSAGE_TYPE"
	case errors.Is(err, wsrouter.ErrInvalidPayload):
		return "INVALID_PAYLOAD"
	case errors.Is(err, studio.ErrInvalidToken):
		return "INVALID_TOKEN"
	case errors.Is(err, studio.ErrSessionNotFound):
		return "SESSION_NOT_FOUND"
	case errors.Is(err, studio.ErrSessionAlreadyConnected):
		return "SESSION_ALREADY_CONNECTED"
	case errors.Is(err, studio.ErrSessionNotConnected):
		return "SESSION_NOT_CONNECTED"
	default:
		return "INTERNAL"
	}
}

// handleWSError reports a failed message to the browser; the session keeps
// being served.
func (c controller) handleWSError(ctx context.Context, _ *websocket.Conn, err error) {
	c.logger.WarnContext(ctx, "failed to handle websocket message", "error", err)
	c.writeError(ctx, c.getSenderFromCtx(ctx), err)
}

func (c controller) writeError(ctx context.Context, sender bridge.Sender, err error) {
	if sender == nil {
		return
	}

	out := errorOutput{
		Type:    wsrouter.GetMessageTypeFromCtx(ctx),
		Code:    errorCode(err),
		Message: err.Error(),
	}
	var ve validationErrors
	if errors.As(err, &ve) {
		out.Errors = ve
	}

	if err := sender.Send(typeError, out); err != nil {
		c.logger.WarnContext(ctx, "failed to write error", "error", err)
	}
}
