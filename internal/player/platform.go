package player

import "github.com/contentstudio/server/internal/reference"

// Options are passed to the platform when a player is created.
type Options struct {
	Autoplay bool
	Mute     bool
	// Loop is only a hint to the native player; looping is driven by the
	// controller restarting playback on "ended".
	Loop     bool
	Controls bool
}

// Instance is a live player created by a Platform. Its events are delivered
// back to the Controller tagged with ID.
type Instance interface {
	ID() string
	Play() error
	Pause() error
	Mute() error
	Unmute() error
	SetPlaybackRate(rate float64) error
	Destroy() error
}

// Platform is the external player SDK.
type Platform interface {
	// Loaded reports whether the SDK has signalled its one-time readiness.
	Loaded() bool
	NewPlayer(ref reference.Ref, opts Options) (Instance, error)
}

// readySlot holds at most one callback waiting for the SDK to load. A new
// registration replaces the previous one.
type readySlot struct {
	fn func()
}

func (s *readySlot) register(fn func()) {
	s.fn = fn
}

func (s *readySlot) cancel() {
	s.fn = nil
}

func (s *readySlot) pending() bool {
	return s.fn != nil
}

func (s *readySlot) fire() {
	fn := s.fn
	s.fn = nil
	if fn != nil {
		fn()
	}
}
