package overlay

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// RGBA is a CSS color with alpha in [0, 1].
type RGBA struct {
	R uint8   `json:"r"`
	G uint8   `json:"g"`
	B uint8   `json:"b"`
	A float64 `json:"a"`
}

var Transparent = RGBA{}

// HexToRGBA converts a #rrggbb color and an opacity percentage into RGBA.
func HexToRGBA(value string, opacity int) (RGBA, error) {
	digits := strings.TrimPrefix(value, "#")
	if len(digits) != 6 {
		return RGBA{}, fmt.Errorf("invalid hex color %q", value)
	}

	b, err := hex.DecodeString(digits)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid hex color %q: %w", value, err)
	}

	return RGBA{R: b[0], G: b[1], B: b[2], A: float64(opacity) / 100}, nil
}

func (c RGBA) IsTransparent() bool {
	return c.A == 0
}

func (c RGBA) CSS() string {
	if c.IsTransparent() {
		return "transparent"
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}
