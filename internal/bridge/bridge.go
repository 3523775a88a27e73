// Package bridge drives the IFrame player living in the browser. Commands are
// sent as websocket messages; events come back through the session handlers.
package bridge

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/contentstudio/server/internal/player"
	"github.com/contentstudio/server/internal/reference"
)

const (
	TypeCreatePlayer    = "CREATE_PLAYER"
	TypeDestroyPlayer   = "DESTROY_PLAYER"
	TypePlayVideo       = "PLAY_VIDEO"
	TypePauseVideo      = "PAUSE_VIDEO"
	TypeMute            = "MUTE"
	TypeUnmute          = "UNMUTE"
	TypeSetPlaybackRate = "SET_PLAYBACK_RATE"
)

type Sender interface {
	Send(msgType string, payload any) error
}

// PlayerVars are the IFrame API playerVars sent on creation.
type PlayerVars struct {
	Autoplay       int    `json:"autoplay"`
	Mute           int    `json:"mute"`
	Loop           int    `json:"loop"`
	Playlist       string `json:"playlist,omitempty"`
	Controls       int    `json:"controls"`
	ModestBranding int    `json:"modestbranding"`
	Rel            int    `json:"rel"`
	ShowInfo       int    `json:"showinfo"`
	EnableJSAPI    int    `json:"enablejsapi"`
	Origin         string `json:"origin,omitempty"`
}

type CreatePlayerPayload struct {
	InstanceID string     `json:"instance_id"`
	VideoID    string     `json:"video_id"`
	PlayerVars PlayerVars `json:"player_vars"`
}

type CommandPayload struct {
	InstanceID string `json:"instance_id"`
}

type SetPlaybackRatePayload struct {
	InstanceID string  `json:"instance_id"`
	Rate       float64 `json:"rate"`
}

// Bridge implements player.Platform on top of a Sender.
type Bridge struct {
	sender Sender
	origin string
	loaded bool
	newID  func() string
}

func New(sender Sender, origin string) *Bridge {
	return &Bridge{
		sender: sender,
		origin: origin,
		newID:  uuid.NewString,
	}
}

// MarkLoaded records the browser's one-time "SDK ready" notification.
func (b *Bridge) MarkLoaded() {
	b.loaded = true
}

func (b *Bridge) Loaded() bool {
	return b.loaded
}

func (b *Bridge) NewPlayer(ref reference.Ref, opts player.Options) (player.Instance, error) {
	id := b.newID()
	vars := PlayerVars{
		Autoplay:       boolToInt(opts.Autoplay),
		Mute:           boolToInt(opts.Mute),
		Loop:           boolToInt(opts.Loop),
		Controls:       boolToInt(opts.Controls),
		ModestBranding: 1,
		Rel:            0,
		ShowInfo:       0,
		EnableJSAPI:    1,
		Origin:         b.origin,
	}
	// the IFrame API only honours loop for playlists
	if opts.Loop {
		vars.Playlist = ref.String()
	}

	if err := b.sender.Send(TypeCreatePlayer, CreatePlayerPayload{
		InstanceID: id,
		VideoID:    ref.String(),
		PlayerVars: vars,
	}); err != nil {
		return nil, fmt.Errorf("failed to send create player: %w", err)
	}

	return &instance{id: id, sender: b.sender}, nil
}

type instance struct {
	id     string
	sender Sender
}

func (i *instance) ID() string {
	return i.id
}

func (i *instance) Play() error {
	return i.send(TypePlayVideo)
}

func (i *instance) Pause() error {
	return i.send(TypePauseVideo)
}

func (i *instance) Mute() error {
	return i.send(TypeMute)
}

func (i *instance) Unmute() error {
	return i.send(TypeUnmute)
}

func (i *instance) SetPlaybackRate(rate float64) error {
	return i.sender.Send(TypeSetPlaybackRate, SetPlaybackRatePayload{
		InstanceID: i.id,
		Rate:       rate,
	})
}

func (i *instance) Destroy() error {
	return i.send(TypeDestroyPlayer)
}

func (i *instance) send(msgType string) error {
	return i.sender.Send(msgType, CommandPayload{InstanceID: i.id})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
