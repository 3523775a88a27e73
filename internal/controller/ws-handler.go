package controller

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/contentstudio/server/internal/intent"
	"github.com/contentstudio/server/internal/player"
	"github.com/contentstudio/server/internal/service/studio"
)

type EmptyInput struct{}

func (c controller) writeState(ctx context.Context, state studio.SessionState) error {
	if err := c.getSenderFromCtx(ctx).Send(studio.TypeSessionState, state); err != nil {
		return fmt.Errorf("failed to send session state: %w", err)
	}

	return nil
}

func (c controller) handleAlive(_ context.Context, _ *websocket.Conn, _ EmptyInput) error {
	return nil
}

type SetVideoURLInput struct {
	VideoURL string `json:"video_url"`
}

func (c controller) handleSetVideoURL(ctx context.Context, _ *websocket.Conn, input SetVideoURLInput) error {
	state, err := c.studioService.SetVideoURL(ctx, &studio.SetVideoURLParams{
		SessionID: c.getSessionIdFromCtx(ctx),
		VideoURL:  input.VideoURL,
	})
	if err != nil {
		return fmt.Errorf("failed to set video url: %w", err)
	}

	return c.writeState(ctx, state)
}

func (c controller) handleTogglePlayPause(ctx context.Context, _ *websocket.Conn, _ EmptyInput) error {
	state, err := c.studioService.TogglePlayPause(ctx, c.getSessionIdFromCtx(ctx))
	if err != nil {
		return fmt.Errorf("failed to toggle play/pause: %w", err)
	}

	return c.writeState(ctx, state)
}

func (c controller) handleToggleMute(ctx context.Context, _ *websocket.Conn, _ EmptyInput) error {
	state, err := c.studioService.ToggleMute(ctx, c.getSessionIdFromCtx(ctx))
	if err != nil {
		return fmt.Errorf("failed to toggle mute: %w", err)
	}

	return c.writeState(ctx, state)
}

type SetSpeedInput struct {
	Speed float64 `json:"speed"`
}

func (c controller) handleSetSpeed(ctx context.Context, _ *websocket.Conn, input SetSpeedInput) error {
	state, err := c.studioService.SetSpeed(ctx, &studio.SetSpeedParams{
		SessionID: c.getSessionIdFromCtx(ctx),
		Speed:     intent.Speed(input.Speed),
	})
	if err != nil {
		return fmt.Errorf("failed to set speed: %w", err)
	}

	return c.writeState(ctx, state)
}

func (c controller) handleUpdateStyle(ctx context.Context, _ *websocket.Conn, input styleInput) error {
	state, err := c.studioService.UpdateStyle(ctx, &studio.UpdateStyleParams{
		SessionID: c.getSessionIdFromCtx(ctx),
		Patch:     input.toPatch(),
	})
	if err != nil {
		return fmt.Errorf("failed to update style: %w", err)
	}

	return c.writeState(ctx, state)
}

func (c controller) handleSDKReady(ctx context.Context, _ *websocket.Conn, _ EmptyInput) error {
	state, err := c.studioService.HandleSDKReady(ctx, c.getSessionIdFromCtx(ctx))
	if err != nil {
		return fmt.Errorf("failed to handle sdk ready: %w", err)
	}

	return c.writeState(ctx, state)
}

type PlayerReadyInput struct {
	InstanceID string `json:"instance_id" validate:"required"`
}

func (c controller) handlePlayerReady(ctx context.Context, _ *websocket.Conn, input PlayerReadyInput) error {
	state, err := c.studioService.HandlePlayerReady(ctx, &studio.PlayerEventParams{
		SessionID:  c.getSessionIdFromCtx(ctx),
		InstanceID: input.InstanceID,
	})
	if err != nil {
		return fmt.Errorf("failed to handle player ready: %w", err)
	}

	return c.writeState(ctx, state)
}

type PlayerStateChangedInput struct {
	InstanceID string `json:"instance_id" validate:"required"`
	State      *int   `json:"state" validate:"required,oneof=-1 0 1 2 3 5"`
}

func (c controller) handlePlayerStateChanged(ctx context.Context, _ *websocket.Conn, input PlayerStateChangedInput) error {
	state, err := c.studioService.HandlePlayerStateChange(ctx, &studio.PlayerStateChangeParams{
		SessionID:  c.getSessionIdFromCtx(ctx),
		InstanceID: input.InstanceID,
		State:      player.PlaybackState(*input.State),
	})
	if err != nil {
		return fmt.Errorf("failed to handle player state change: %w", err)
	}

	return c.writeState(ctx, state)
}

type PlayerErrorInput struct {
	InstanceID string `json:"instance_id" validate:"required"`
	Code       int    `json:"code"`
}

func (c controller) handlePlayerError(ctx context.Context, _ *websocket.Conn, input PlayerErrorInput) error {
	state, err := c.studioService.HandlePlayerError(ctx, &studio.PlayerErrorParams{
		SessionID:  c.getSessionIdFromCtx(ctx),
		InstanceID: input.InstanceID,
		Code:       input.Code,
	})
	if err != nil {
		return fmt.Errorf("failed to handle player error: %w", err)
	}

	return c.writeState(ctx, state)
}
