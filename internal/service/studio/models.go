package studio

import (
	"time"

	"github.com/contentstudio/server/internal/bridge"
	"github.com/contentstudio/server/internal/intent"
	"github.com/contentstudio/server/internal/overlay"
	"github.com/contentstudio/server/internal/player"
	"github.com/contentstudio/server/internal/reference"
	"github.com/contentstudio/server/internal/repository/metadata"
)

type CreateSessionResponse struct {
	SessionID    string    `json:"session_id"`
	ConnectToken string    `json:"connect_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type ConnectSessionParams struct {
	SessionID    string
	ConnectToken string
	Sender       bridge.Sender
}

type SetVideoURLParams struct {
	SessionID string
	VideoURL  string
}

type SetSpeedParams struct {
	SessionID string
	Speed     intent.Speed
}

type UpdateStyleParams struct {
	SessionID string
	Patch     overlay.Patch
}

type PlayerEventParams struct {
	SessionID  string
	InstanceID string
}

type PlayerStateChangeParams struct {
	SessionID  string
	InstanceID string
	State      player.PlaybackState
}

type PlayerErrorParams struct {
	SessionID  string
	InstanceID string
	Code       int
}

type RenderParams struct {
	Style    overlay.Style
	HasVideo bool
}

// SessionState is the full snapshot pushed to the browser after every
// handled message.
type SessionState struct {
	SessionID string                  `json:"session_id"`
	Player    player.Status           `json:"player"`
	Style     overlay.Style           `json:"style"`
	Metadata  *metadata.VideoMetadata `json:"metadata"`
	Render    overlay.RenderTree      `json:"render"`
}

type VideoMetadataPayload struct {
	VideoID reference.Ref `json:"video_id"`
	metadata.VideoMetadata
}

type SpeedOption struct {
	Value intent.Speed `json:"value"`
	Label string       `json:"label"`
}

type Catalog struct {
	Fonts        []overlay.Font        `json:"fonts"`
	Colors       []overlay.Color       `json:"colors"`
	AspectRatios []overlay.AspectRatio `json:"aspect_ratios"`
	Positions    []overlay.Position    `json:"positions"`
	Aligns       []overlay.Align       `json:"aligns"`
	Speeds       []SpeedOption         `json:"speeds"`
	DefaultStyle overlay.Style         `json:"default_style"`
	Intent       intent.Intent         `json:"default_intent"`
}
