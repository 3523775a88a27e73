package intent

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type Speed float64

var speeds = []Speed{0.25, 0.5, 1, 1.5, 2}

// Speeds returns the supported playback rates in ascending order.
func Speeds() []Speed {
	return slices.Clone(speeds)
}

func (s Speed) Valid() bool {
	return slices.Contains(speeds, s)
}

func (s Speed) Label() string {
	return fmt.Sprintf("%gx", float64(s))
}

// Intent is the playback state the user asked for. It says nothing about
// whether a player exists or is ready.
type Intent struct {
	Playing bool  `json:"playing"`
	Muted   bool  `json:"muted"`
	Speed   Speed `json:"speed"`
}

func Default() Intent {
	return Intent{
		Playing: true,
		Muted:   true,
		Speed:   1,
	}
}

// Store holds the current intent. It performs no validation and has no side
// effects; reconciling the player is up to its owner.
type Store struct {
	current Intent
}

func NewStore(initial Intent) *Store {
	return &Store{current: initial}
}

func (s *Store) Get() Intent {
	return s.current
}

func (s *Store) Set(i Intent) {
	s.current = i
}
