package player

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/contentstudio/server/internal/intent"
	"github.com/contentstudio/server/internal/reference"
)

var ErrInvalidSpeed = errors.New("invalid playback speed")

type handle struct {
	instance Instance
	ref      reference.Ref
	ready    bool
}

// Controller owns the lifecycle of the single external player and keeps it in
// line with the playback intent. It is not safe for concurrent use: all calls
// must come from the goroutine that drives the session.
type Controller struct {
	platform Platform
	intents  *intent.Store
	logger   *slog.Logger

	state    State
	ref      reference.Ref
	handle   *handle
	pending  readySlot
	disposed bool
}

func NewController(platform Platform, intents *intent.Store, logger *slog.Logger) *Controller {
	return &Controller{
		platform: platform,
		intents:  intents,
		logger:   logger,
		state:    StateIdle,
	}
}

type Status struct {
	State      State         `json:"state"`
	Ready      bool          `json:"ready"`
	VideoID    reference.Ref `json:"video_id"`
	InstanceID string        `json:"instance_id,omitempty"`
	Intent     intent.Intent `json:"intent"`
}

func (c *Controller) Status() Status {
	status := Status{
		State:   c.state,
		Ready:   c.Ready(),
		VideoID: c.ref,
		Intent:  c.intents.Get(),
	}
	if c.handle != nil {
		status.InstanceID = c.handle.instance.ID()
	}

	return status
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Reference() reference.Ref {
	return c.ref
}

// CreationPending reports whether a creation is waiting for the SDK.
func (c *Controller) CreationPending() bool {
	return c.pending.pending()
}

// Ready reports whether commands reach the player right away.
func (c *Controller) Ready() bool {
	return c.state == StateActiveReady && c.handle != nil && c.handle.ready
}

// SetReference switches the player to ref. The current instance, if any, is
// destroyed before a new one is requested.
func (c *Controller) SetReference(ref reference.Ref) {
	if c.disposed || ref == c.ref {
		return
	}

	c.destroyInstance()
	c.pending.cancel()
	c.ref = ref

	if ref.IsNone() {
		c.setState(StateIdle)
		return
	}

	c.setState(StateProvisioning)
	if c.platform.Loaded() {
		c.create(ref)
		return
	}

	c.logger.Debug("player sdk not loaded, deferring creation", "video_id", ref)
	c.pending.register(func() {
		if c.disposed || c.ref != ref || c.handle != nil {
			return
		}
		c.create(ref)
	})
}

// HandleSDKReady runs the pending creation, if one is registered.
func (c *Controller) HandleSDKReady() {
	if c.disposed {
		return
	}

	c.pending.fire()
}

// HandleReady applies the held intent once the instance reports ready. Events
// for an instance other than the live one are ignored.
func (c *Controller) HandleReady(instanceID string) {
	h := c.current(instanceID)
	if h == nil {
		c.logger.Debug("ignoring ready from stale player", "instance_id", instanceID)
		return
	}
	if h.ready {
		return
	}

	h.ready = true
	c.setState(StateActiveReady)
	c.replayIntent()
}

// HandleStateChange restarts playback when the video ends.
func (c *Controller) HandleStateChange(instanceID string, state PlaybackState) {
	h := c.current(instanceID)
	if h == nil {
		c.logger.Debug("ignoring state change from stale player", "instance_id", instanceID, "playback_state", state)
		return
	}

	if state == PlaybackEnded && c.Ready() {
		c.logger.Debug("video ended, looping", "video_id", h.ref)
		c.command("play", h.instance.Play)
	}
}

// HandleError records a player error. The controller stays where it is; the
// player may never become ready.
func (c *Controller) HandleError(instanceID string, code int) {
	if c.current(instanceID) == nil {
		return
	}

	c.logger.Warn("player reported error", "instance_id", instanceID, "code", code, "state", c.state)
}

func (c *Controller) TogglePlayPause() {
	in := c.intents.Get()
	in.Playing = !in.Playing
	c.intents.Set(in)

	if !c.Ready() {
		return
	}
	if in.Playing {
		c.command("play", c.handle.instance.Play)
	} else {
		c.command("pause", c.handle.instance.Pause)
	}
}

func (c *Controller) ToggleMute() {
	in := c.intents.Get()
	in.Muted = !in.Muted
	c.intents.Set(in)

	if !c.Ready() {
		return
	}
	if in.Muted {
		c.command("mute", c.handle.instance.Mute)
	} else {
		c.command("unmute", c.handle.instance.Unmute)
	}
}

// SetSpeed stores speed and applies it if the player is ready. Speeds outside
// the supported set are rejected and leave the intent unchanged.
func (c *Controller) SetSpeed(speed intent.Speed) error {
	if !speed.Valid() {
		return fmt.Errorf("%w: %g", ErrInvalidSpeed, float64(speed))
	}

	in := c.intents.Get()
	in.Speed = speed
	c.intents.Set(in)

	if c.Ready() {
		inst := c.handle.instance
		c.command("set playback rate", func() error {
			return inst.SetPlaybackRate(float64(speed))
		})
	}

	return nil
}

// Teardown destroys the player and drops any pending creation. The
// controller is unusable afterwards.
func (c *Controller) Teardown() {
	if c.disposed {
		return
	}

	c.pending.cancel()
	c.destroyInstance()
	c.disposed = true
	c.setState(StateDestroyed)
}

func (c *Controller) create(ref reference.Ref) {
	in := c.intents.Get()
	inst, err := c.platform.NewPlayer(ref, Options{
		Autoplay: in.Playing,
		Mute:     true,
		Loop:     true,
		Controls: false,
	})
	if err != nil {
		c.logger.Warn("failed to create player", "video_id", ref, "error", err)
		return
	}

	c.handle = &handle{instance: inst, ref: ref}
	c.setState(StateActiveNotReady)
}

func (c *Controller) destroyInstance() {
	if c.handle == nil {
		return
	}

	h := c.handle
	c.handle = nil
	c.setState(StateDestroyed)
	if err := h.instance.Destroy(); err != nil {
		c.logger.Warn("failed to destroy player", "instance_id", h.instance.ID(), "error", err)
	}
}

func (c *Controller) replayIntent() {
	inst := c.handle.instance
	in := c.intents.Get()

	c.command("set playback rate", func() error {
		return inst.SetPlaybackRate(float64(in.Speed))
	})
	if !in.Muted {
		c.command("unmute", inst.Unmute)
	}
	if in.Playing {
		c.command("play", inst.Play)
	} else {
		c.command("pause", inst.Pause)
	}
}

// current returns the live handle if instanceID belongs to it and it was
// created for the current reference.
func (c *Controller) current(instanceID string) *handle {
	if c.disposed || c.handle == nil {
		return nil
	}
	if c.handle.instance.ID() != instanceID || c.handle.ref != c.ref {
		return nil
	}

	return c.handle
}

func (c *Controller) command(name string, fn func() error) {
	if err := fn(); err != nil {
		c.logger.Warn("player command failed", "command", name, "error", err)
	}
}

func (c *Controller) setState(s State) {
	if c.state == s {
		return
	}

	c.logger.Debug("player state changed", "from", c.state, "to", s, "video_id", c.ref)
	c.state = s
}
