package bridge

import (
	"errors"
	"fmt"
	"testing"

	"github.com/contentstudio/server/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sent struct {
	msgType string
	payload any
}

type recordingSender struct {
	messages []sent
	err      error
}

func (s *recordingSender) Send(msgType string, payload any) error {
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, sent{msgType: msgType, payload: payload})
	return nil
}

func newTestBridge(sender Sender) *Bridge {
	b := New(sender, "https://studio.example")
	n := 0
	b.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return b
}

func TestBridgeLoaded(t *testing.T) {
	b := newTestBridge(&recordingSender{})
	assert.False(t, b.Loaded())
	b.MarkLoaded()
	assert.True(t, b.Loaded())
}

func TestNewPlayerSendsCreate(t *testing.T) {
	sender := &recordingSender{}
	b := newTestBridge(sender)

	inst, err := b.NewPlayer("dQw4w9WgXcQ", player.Options{Autoplay: true, Mute: true, Loop: true})
	require.NoError(t, err)
	assert.Equal(t, "id-1", inst.ID())

	require.Len(t, sender.messages, 1)
	assert.Equal(t, TypeCreatePlayer, sender.messages[0].msgType)
	assert.Equal(t, CreatePlayerPayload{
		InstanceID: "id-1",
		VideoID:    "dQw4w9WgXcQ",
		PlayerVars: PlayerVars{
			Autoplay:       1,
			Mute:           1,
			Loop:           1,
			Playlist:       "dQw4w9WgXcQ",
			Controls:       0,
			ModestBranding: 1,
			EnableJSAPI:    1,
			Origin:         "https://studio.example",
		},
	}, sender.messages[0].payload)
}

func TestInstanceCommands(t *testing.T) {
	sender := &recordingSender{}
	b := newTestBridge(sender)
	inst, err := b.NewPlayer("dQw4w9WgXcQ", player.Options{})
	require.NoError(t, err)
	sender.messages = nil

	require.NoError(t, inst.Play())
	require.NoError(t, inst.Pause())
	require.NoError(t, inst.Mute())
	require.NoError(t, inst.Unmute())
	require.NoError(t, inst.SetPlaybackRate(0.5))
	require.NoError(t, inst.Destroy())

	want := []sent{
		{TypePlayVideo, CommandPayload{InstanceID: "id-1"}},
		{TypePauseVideo, CommandPayload{InstanceID: "id-1"}},
		{TypeMute, CommandPayload{InstanceID: "id-1"}},
		{TypeUnmute, CommandPayload{InstanceID: "id-1"}},
		{TypeSetPlaybackRate, SetPlaybackRatePayload{InstanceID: "id-1", Rate: 0.5}},
		{TypeDestroyPlayer, CommandPayload{InstanceID: "id-1"}},
	}
	assert.Equal(t, want, sender.messages)
}

func TestNewPlayerSendFailure(t *testing.T) {
	b := newTestBridge(&recordingSender{err: errors.New("closed")})

	inst, err := b.NewPlayer("dQw4w9WgXcQ", player.Options{})
	assert.Error(t, err)
	assert.Nil(t, inst)
}

var _ player.Platform = (*Bridge)(nil)
