package overlay

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type (
	FontID        string
	ColorID       string
	AspectRatioID string
	Position      string
	Align         string
)

const (
	PositionTop    Position = "top"
	PositionCenter Position = "center"
	PositionBottom Position = "bottom"
)

const (
	AlignLeft    Align = "left"
	AlignCenter  Align = "center"
	AlignRight   Align = "right"
	AlignJustify Align = "justify"
)

type Font struct {
	ID     FontID `json:"id"`
	Name   string `json:"name"`
	Family string `json:"family"`
}

type Color struct {
	ID    ColorID `json:"id"`
	Value string  `json:"value"`
}

type AspectRatio struct {
	ID     AspectRatioID `json:"id"`
	Label  string        `json:"label"`
	Width  int           `json:"width"`
	Height int           `json:"height"`
}

func (a AspectRatio) Ratio() float64 {
	return float64(a.Width) / float64(a.Height)
}

// CSS returns the ratio in aspect-ratio property form, e.g. "16 / 9".
func (a AspectRatio) CSS() string {
	return fmt.Sprintf("%d / %d", a.Width, a.Height)
}

var fonts = []Font{
	{ID: "jersey", Name: "Jersey 15", Family: "'Jersey 15', sans-serif"},
	{ID: "vt323", Name: "VT323", Family: "'VT323', monospace"},
	{ID: "oswald", Name: "Oswald", Family: "'Oswald', sans-serif"},
	{ID: "bebas", Name: "Bebas Neue", Family: "'Bebas Neue', sans-serif"},
}

var colors = []Color{
	{ID: "lavender", Value: "#b482c1"},
	{ID: "azure", Value: "#70d0fb"},
	{ID: "green", Value: "#83bf5f"},
	{ID: "magenta", Value: "#f0a2d1"},
	{ID: "orange", Value: "#e18f3d"},
	{ID: "cyan", Value: "#29a9b2"},
	{ID: "white", Value: "#ffffff"},
	{ID: "black", Value: "#000000"},
}

var aspectRatios = []AspectRatio{
	{ID: "16:9", Label: "16:9", Width: 16, Height: 9},
	{ID: "9:16", Label: "9:16", Width: 9, Height: 16},
	{ID: "4:5", Label: "4:5", Width: 4, Height: 5},
}

var (
	positions = []Position{PositionTop, PositionCenter, PositionBottom}
	aligns    = []Align{AlignLeft, AlignCenter, AlignRight, AlignJustify}
)

func Fonts() []Font               { return slices.Clone(fonts) }
func Colors() []Color             { return slices.Clone(colors) }
func AspectRatios() []AspectRatio { return slices.Clone(aspectRatios) }
func Positions() []Position       { return slices.Clone(positions) }
func Aligns() []Align             { return slices.Clone(aligns) }

func LookupFont(id FontID) (Font, bool) {
	i := slices.IndexFunc(fonts, func(f Font) bool { return f.ID == id })
	if i < 0 {
		return Font{}, false
	}
	return fonts[i], true
}

func LookupColor(id ColorID) (Color, bool) {
	i := slices.IndexFunc(colors, func(c Color) bool { return c.ID == id })
	if i < 0 {
		return Color{}, false
	}
	return colors[i], true
}

func LookupAspectRatio(id AspectRatioID) (AspectRatio, bool) {
	i := slices.IndexFunc(aspectRatios, func(a AspectRatio) bool { return a.ID == id })
	if i < 0 {
		return AspectRatio{}, false
	}
	return aspectRatios[i], true
}

func (p Position) Valid() bool { return slices.Contains(positions, p) }
func (a Align) Valid() bool    { return slices.Contains(aligns, a) }
