package controller

import (
	"context"

	"github.com/contentstudio/server/internal/bridge"
)

type contextKey int

const (
	sessionIdCtxKey contextKey = iota
	senderCtxKey
)

func (c controller) getSessionIdFromCtx(ctx context.Context) string {
	sessionId, ok := ctx.Value(sessionIdCtxKey).(string)
	if !ok {
		return ""
	}

	return sessionId
}

func (c controller) getSenderFromCtx(ctx context.Context) bridge.Sender {
	sender, ok := ctx.Value(senderCtxKey).(bridge.Sender)
	if !ok {
		return nil
	}

	return sender
}
