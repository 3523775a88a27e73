package player

// State is the lifecycle state of the controller.
type State int

const (
	StateIdle State = iota
	StateProvisioning
	StateActiveNotReady
	StateActiveReady
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateProvisioning:
		return "provisioning"
	case StateActiveNotReady:
		return "active_not_ready"
	case StateActiveReady:
		return "active_ready"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// PlaybackState mirrors the numeric states reported by the IFrame player.
type PlaybackState int

const (
	PlaybackUnstarted PlaybackState = -1
	PlaybackEnded     PlaybackState = 0
	PlaybackPlaying   PlaybackState = 1
	PlaybackPaused    PlaybackState = 2
	PlaybackBuffering PlaybackState = 3
	PlaybackCued      PlaybackState = 5
)

func (s PlaybackState) String() string {
	switch s {
	case PlaybackUnstarted:
		return "unstarted"
	case PlaybackEnded:
		return "ended"
	case PlaybackPlaying:
		return "playing"
	case PlaybackPaused:
		return "paused"
	case PlaybackBuffering:
		return "buffering"
	case PlaybackCued:
		return "cued"
	default:
		return "unknown"
	}
}
