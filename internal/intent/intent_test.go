package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpeedValid(t *testing.T) {
	for _, s := range []Speed{0.25, 0.5, 1, 1.5, 2} {
		assert.True(t, s.Valid(), "%v must be valid", s)
	}
	for _, s := range []Speed{0, 0.75, 1.25, 3, -1} {
		assert.False(t, s.Valid(), "%v must be invalid", s)
	}
}

func TestSpeedLabel(t *testing.T) {
	assert.Equal(t, "0.25x", Speed(0.25).Label())
	assert.Equal(t, "1x", Speed(1).Label())
	assert.Equal(t, "1.5x", Speed(1.5).Label())
}

func TestSpeedsIsACopy(t *testing.T) {
	s := Speeds()
	s[0] = 100
	assert.Equal(t, Speed(0.25), Speeds()[0])
}

func TestStore(t *testing.T) {
	store := NewStore(Default())
	assert.Equal(t, Intent{Playing: true, Muted: true, Speed: 1}, store.Get())

	store.Set(Intent{Playing: false, Muted: false, Speed: 2})
	assert.Equal(t, Intent{Playing: false, Muted: false, Speed: 2}, store.Get())
}
