package overlay

import "fmt"

const (
	placeholderIcon   = "video"
	placeholderPrompt = "Paste a YouTube URL to begin"
)

// RenderTree is the layered description of one preview frame, bottom to top.
type RenderTree struct {
	Canvas      Canvas            `json:"canvas"`
	Video       *VideoLayer       `json:"video,omitempty"`
	Placeholder *PlaceholderLayer `json:"placeholder,omitempty"`
	Card        TextCard          `json:"card"`
}

type Canvas struct {
	AspectRatio AspectRatioID `json:"aspect_ratio"`
	Ratio       float64       `json:"ratio"`
	CSS         string        `json:"css"`
}

type VideoLayer struct {
	Scale     float64    `json:"scale"`
	Anchor    string     `json:"anchor"`
	Transform string     `json:"transform"`
	Blur      *BlurLayer `json:"blur,omitempty"`
}

type BlurLayer struct {
	Amount int    `json:"amount"`
	Unit   string `json:"unit"`
}

type PlaceholderLayer struct {
	Icon   string `json:"icon"`
	Prompt string `json:"prompt"`
}

type TextCard struct {
	Position   Position `json:"position"`
	Background string   `json:"background"`
	Fill       RGBA     `json:"fill"`
	Text       TextRun  `json:"text"`
}

type TextRun struct {
	Content    string `json:"content"`
	FontFamily string `json:"font_family"`
	Color      string `json:"color"`
	FontSizePx int    `json:"font_size_px"`
	Align      Align  `json:"align"`
}

// Render maps style to a frame description. It has no side effects and keeps
// no state; equal inputs give equal trees. Unknown catalog ids fall back to
// the defaults.
func Render(style Style, hasVideo bool) RenderTree {
	tree := RenderTree{
		Canvas: renderCanvas(style.AspectRatio),
		Card:   renderCard(style),
	}

	if hasVideo {
		tree.Video = renderVideo(style)
	} else {
		tree.Placeholder = &PlaceholderLayer{
			Icon:   placeholderIcon,
			Prompt: placeholderPrompt,
		}
	}

	return tree
}

func renderCanvas(id AspectRatioID) Canvas {
	ratio, ok := LookupAspectRatio(id)
	if !ok {
		ratio, _ = LookupAspectRatio(DefaultStyle().AspectRatio)
	}

	return Canvas{
		AspectRatio: ratio.ID,
		Ratio:       ratio.Ratio(),
		CSS:         ratio.CSS(),
	}
}

func renderVideo(style Style) *VideoLayer {
	scale := float64(style.VideoScale) / 100
	layer := &VideoLayer{
		Scale:     scale,
		Anchor:    "center",
		Transform: fmt.Sprintf("translate(-50%%, -50%%) scale(%g)", scale),
	}
	if style.BlurAmount > 0 {
		layer.Blur = &BlurLayer{Amount: style.BlurAmount, Unit: "px"}
	}

	return layer
}

func renderCard(style Style) TextCard {
	font, ok := LookupFont(style.Font)
	if !ok {
		font, _ = LookupFont(DefaultStyle().Font)
	}
	color, ok := LookupColor(style.Color)
	if !ok {
		color, _ = LookupColor(DefaultStyle().Color)
	}

	position := style.Position
	if !position.Valid() {
		position = DefaultStyle().Position
	}
	align := style.Align
	if !align.Valid() {
		align = DefaultStyle().Align
	}

	fill := Transparent
	if style.BackgroundEnabled {
		fill = backgroundFill(style.BackgroundColor, style.BackgroundOpacity)
	}

	return TextCard{
		Position:   position,
		Background: fill.CSS(),
		Fill:       fill,
		Text: TextRun{
			Content:    style.Text,
			FontFamily: font.Family,
			Color:      color.Value,
			FontSizePx: style.FontSize,
			Align:      align,
		},
	}
}

func backgroundFill(id ColorID, opacity int) RGBA {
	color, ok := LookupColor(id)
	if !ok {
		color, _ = LookupColor(DefaultStyle().BackgroundColor)
	}

	fill, err := HexToRGBA(color.Value, opacity)
	if err != nil {
		return Transparent
	}

	return fill
}
