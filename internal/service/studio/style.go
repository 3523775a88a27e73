package studio

import (
	"context"

	"github.com/contentstudio/server/internal/intent"
	"github.com/contentstudio/server/internal/overlay"
	"github.com/contentstudio/server/internal/reference"
)

func (s service) UpdateStyle(ctx context.Context, params *UpdateStyleParams) (SessionState, error) {
	sess, err := s.getConnectedSession(params.SessionID)
	if err != nil {
		return SessionState{}, err
	}

	sess.style = sess.style.Apply(params.Patch)
	s.logger.DebugContext(ctx, "style updated", "patch", params.Patch)

	return s.snapshot(sess), nil
}

func (s service) Resolve(rawURL string) reference.Ref {
	return reference.Resolve(rawURL)
}

func (s service) Render(params *RenderParams) overlay.RenderTree {
	return overlay.Render(params.Style, params.HasVideo)
}

func (s service) Catalog() Catalog {
	speeds := intent.Speeds()
	options := make([]SpeedOption, 0, len(speeds))
	for _, sp := range speeds {
		options = append(options, SpeedOption{Value: sp, Label: sp.Label()})
	}

	return Catalog{
		Fonts:        overlay.Fonts(),
		Colors:       overlay.Colors(),
		AspectRatios: overlay.AspectRatios(),
		Positions:    overlay.Positions(),
		Aligns:       overlay.Aligns(),
		Speeds:       options,
		DefaultStyle: overlay.DefaultStyle(),
		Intent:       intent.Default(),
	}
}
