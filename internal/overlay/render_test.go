package overlay

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderIsPure(t *testing.T) {
	style := DefaultStyle()
	style.BlurAmount = 4
	style.BackgroundEnabled = true

	first := Render(style, true)
	second := Render(style, true)
	assert.Equal(t, first, second)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
}

func TestRenderBackgroundFill(t *testing.T) {
	style := DefaultStyle()
	style.BackgroundColor = "lavender"
	style.BackgroundOpacity = 50
	style.BackgroundEnabled = true

	card := Render(style, true).Card
	assert.Equal(t, RGBA{R: 0xb4, G: 0x82, B: 0xc1, A: 0.5}, card.Fill)
	assert.Equal(t, "rgba(180, 130, 193, 0.5)", card.Background)

	style.BackgroundEnabled = false
	card = Render(style, true).Card
	assert.True(t, card.Fill.IsTransparent())
	assert.Equal(t, "transparent", card.Background)
}

func TestRenderVideoLayer(t *testing.T) {
	style := DefaultStyle()
	style.VideoScale = 150

	tree := Render(style, true)
	require.NotNil(t, tree.Video)
	assert.Nil(t, tree.Placeholder)
	assert.Equal(t, 1.5, tree.Video.Scale)
	assert.Equal(t, "center", tree.Video.Anchor)
	assert.Equal(t, "translate(-50%, -50%) scale(1.5)", tree.Video.Transform)
	assert.Nil(t, tree.Video.Blur)

	style.BlurAmount = 12
	tree = Render(style, true)
	require.NotNil(t, tree.Video.Blur)
	assert.Equal(t, 12, tree.Video.Blur.Amount)
	assert.Equal(t, "px", tree.Video.Blur.Unit)
	assert.Equal(t, 1.5, tree.Video.Scale, "scale must not depend on blur")
}

func TestRenderPlaceholder(t *testing.T) {
	style := DefaultStyle()
	style.BlurAmount = 10

	tree := Render(style, false)
	assert.Nil(t, tree.Video)
	require.NotNil(t, tree.Placeholder)
	assert.Equal(t, "Paste a YouTube URL to begin", tree.Placeholder.Prompt)
	assert.NotEmpty(t, tree.Placeholder.Icon)
}

func TestRenderTextRun(t *testing.T) {
	style := DefaultStyle()
	style.Text = "any% glitchless"
	style.Font = "vt323"
	style.Color = "orange"
	style.FontSize = 48
	style.Position = PositionBottom
	style.Align = AlignJustify

	card := Render(style, true).Card
	assert.Equal(t, PositionBottom, card.Position)
	assert.Equal(t, TextRun{
		Content:    "any% glitchless",
		FontFamily: "'VT323', monospace",
		Color:      "#e18f3d",
		FontSizePx: 48,
		Align:      AlignJustify,
	}, card.Text)
}

func TestRenderPositionAndAlignAreIndependent(t *testing.T) {
	for _, pos := range Positions() {
		for _, align := range Aligns() {
			style := DefaultStyle()
			style.Position = pos
			style.Align = align

			card := Render(style, false).Card
			assert.Equal(t, pos, card.Position)
			assert.Equal(t, align, card.Text.Align)
		}
	}
}

func TestRenderCanvasIndependentOfContent(t *testing.T) {
	for _, ratio := range AspectRatios() {
		style := DefaultStyle()
		style.AspectRatio = ratio.ID

		withVideo := Render(style, true).Canvas
		style.Text = "something else entirely"
		style.BackgroundEnabled = true
		withoutVideo := Render(style, false).Canvas

		assert.Equal(t, withVideo, withoutVideo)
		assert.Equal(t, ratio.ID, withVideo.AspectRatio)
		assert.InDelta(t, float64(ratio.Width)/float64(ratio.Height), withVideo.Ratio, 1e-9)
	}

	assert.Equal(t, "16 / 9", Render(Style{AspectRatio: "16:9"}, true).Canvas.CSS)
}

func TestRenderUnknownIDsFallBack(t *testing.T) {
	style := DefaultStyle()
	style.Font = "comic-sans"
	style.Color = "neon"
	style.AspectRatio = "1:1"
	style.Position = "sideways"

	tree := Render(style, true)
	assert.Equal(t, "'Jersey 15', sans-serif", tree.Card.Text.FontFamily)
	assert.Equal(t, "#70d0fb", tree.Card.Text.Color)
	assert.Equal(t, AspectRatioID("4:5"), tree.Canvas.AspectRatio)
	assert.Equal(t, PositionCenter, tree.Card.Position)
}

func TestHexToRGBA(t *testing.T) {
	c, err := HexToRGBA("#70d0fb", 100)
	require.NoError(t, err)
	assert.Equal(t, RGBA{R: 0x70, G: 0xd0, B: 0xfb, A: 1}, c)
	assert.Equal(t, "rgba(112, 208, 251, 1)", c.CSS())

	_, err = HexToRGBA("#fff", 50)
	assert.Error(t, err)
	_, err = HexToRGBA("#zzzzzz", 50)
	assert.Error(t, err)
}

func TestStyleApply(t *testing.T) {
	text := "new"
	size := 64
	enabled := true
	font := FontID("bebas")

	got := DefaultStyle().Apply(Patch{
		Text:              &text,
		FontSize:          &size,
		BackgroundEnabled: &enabled,
		Font:              &font,
	})

	want := DefaultStyle()
	want.Text = "new"
	want.FontSize = 64
	want.BackgroundEnabled = true
	want.Font = "bebas"
	assert.Equal(t, want, got)

	assert.Equal(t, DefaultStyle(), DefaultStyle().Apply(Patch{}))
}

func TestCatalogLookups(t *testing.T) {
	_, ok := LookupFont("oswald")
	assert.True(t, ok)
	_, ok = LookupColor("cyan")
	assert.True(t, ok)
	_, ok = LookupAspectRatio("9:16")
	assert.True(t, ok)
	_, ok = LookupColor("beige")
	assert.False(t, ok)

	assert.Len(t, Fonts(), 4)
	assert.Len(t, Colors(), 8)
	assert.Len(t, AspectRatios(), 3)
}

func TestPatchLogValue(t *testing.T) {
	size := 40
	font := FontID("vt323")
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	logger.Info("style updated", "patch", Patch{FontSize: &size, Font: &font})

	var line struct {
		Patch map[string]any `json:"patch"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, map[string]any{"font_size": float64(40), "font": "vt323"}, line.Patch)
}
