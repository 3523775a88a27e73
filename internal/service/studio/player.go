package studio

import (
	"context"
	"fmt"

	"github.com/contentstudio/server/internal/reference"
)

// SetVideoURL resolves the pasted url and hands the reference to the player
// controller. An unresolvable url clears the video; it is not an error.
func (s service) SetVideoURL(ctx context.Context, params *SetVideoURLParams) (SessionState, error) {
	sess, err := s.getConnectedSession(params.SessionID)
	if err != nil {
		return SessionState{}, err
	}

	ref := reference.Resolve(params.VideoURL)
	changed := ref != sess.player.Reference()
	sess.player.SetReference(ref)

	if changed && s.metadataEnabled() {
		if ref.IsNone() {
			sess.meta.want(ref, nil)
		} else {
			s.startMetadataLookup(sess, ref)
		}
	}

	s.logger.DebugContext(ctx, "video url set", "video_id", ref.String(), "changed", changed)

	return s.snapshot(sess), nil
}

func (s service) TogglePlayPause(_ context.Context, sessionId string) (SessionState, error) {
	sess, err := s.getConnectedSession(sessionId)
	if err != nil {
		return SessionState{}, err
	}

	sess.player.TogglePlayPause()

	return s.snapshot(sess), nil
}

func (s service) ToggleMute(_ context.Context, sessionId string) (SessionState, error) {
	sess, err := s.getConnectedSession(sessionId)
	if err != nil {
		return SessionState{}, err
	}

	sess.player.ToggleMute()

	return s.snapshot(sess), nil
}

func (s service) SetSpeed(_ context.Context, params *SetSpeedParams) (SessionState, error) {
	sess, err := s.getConnectedSession(params.SessionID)
	if err != nil {
		return SessionState{}, err
	}

	if err := sess.player.SetSpeed(params.Speed); err != nil {
		return SessionState{}, fmt.Errorf("failed to set speed: %w", err)
	}

	return s.snapshot(sess), nil
}

func (s service) HandleSDKReady(ctx context.Context, sessionId string) (SessionState, error) {
	sess, err := s.getConnectedSession(sessionId)
	if err != nil {
		return SessionState{}, err
	}

	if sess.platform.Loaded() {
		s.logger.DebugContext(ctx, "duplicate sdk ready ignored")
		return s.snapshot(sess), nil
	}

	sess.platform.MarkLoaded()
	sess.player.HandleSDKReady()

	return s.snapshot(sess), nil
}

func (s service) HandlePlayerReady(_ context.Context, params *PlayerEventParams) (SessionState, error) {
	sess, err := s.getConnectedSession(params.SessionID)
	if err != nil {
		return SessionState{}, err
	}

	sess.player.HandleReady(params.InstanceID)

	return s.snapshot(sess), nil
}

func (s service) HandlePlayerStateChange(_ context.Context, params *PlayerStateChangeParams) (SessionState, error) {
	sess, err := s.getConnectedSession(params.SessionID)
	if err != nil {
		return SessionState{}, err
	}

	sess.player.HandleStateChange(params.InstanceID, params.State)

	return s.snapshot(sess), nil
}

// HandlePlayerError records a platform error; the session keeps going.
func (s service) HandlePlayerError(_ context.Context, params *PlayerErrorParams) (SessionState, error) {
	sess, err := s.getConnectedSession(params.SessionID)
	if err != nil {
		return SessionState{}, err
	}

	sess.player.HandleError(params.InstanceID, params.Code)

	return s.snapshot(sess), nil
}
