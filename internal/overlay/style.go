package overlay

import "log/slog"

// Style is the declarative overlay and video transform state edited by the
// user. Numeric ranges are enforced by whoever accepts the input.
type Style struct {
	Text              string        `json:"text" yaml:"text"`
	Font              FontID        `json:"font" yaml:"font"`
	Color             ColorID       `json:"color" yaml:"color"`
	FontSize          int           `json:"font_size" yaml:"font_size"`
	Position          Position      `json:"position" yaml:"position"`
	Align             Align         `json:"align" yaml:"align"`
	BackgroundEnabled bool          `json:"background_enabled" yaml:"background_enabled"`
	BackgroundColor   ColorID       `json:"background_color" yaml:"background_color"`
	BackgroundOpacity int           `json:"background_opacity" yaml:"background_opacity"`
	VideoScale        int           `json:"video_scale" yaml:"video_scale"`
	BlurAmount        int           `json:"blur_amount" yaml:"blur_amount"`
	AspectRatio       AspectRatioID `json:"aspect_ratio" yaml:"aspect_ratio"`
}

func DefaultStyle() Style {
	return Style{
		Text:              "Your text here",
		Font:              "jersey",
		Color:             "azure",
		FontSize:          32,
		Position:          PositionCenter,
		Align:             AlignCenter,
		BackgroundEnabled: false,
		BackgroundColor:   "lavender",
		BackgroundOpacity: 50,
		VideoScale:        100,
		BlurAmount:        0,
		AspectRatio:       "4:5",
	}
}

// Patch is a partial Style update; nil fields are left alone.
type Patch struct {
	Text              *string
	Font              *FontID
	Color             *ColorID
	FontSize          *int
	Position          *Position
	Align             *Align
	BackgroundEnabled *bool
	BackgroundColor   *ColorID
	BackgroundOpacity *int
	VideoScale        *int
	BlurAmount        *int
	AspectRatio       *AspectRatioID
}

// LogValue logs only the fields the patch sets, by wire name.
func (p Patch) LogValue() slog.Value {
	var attrs []slog.Attr

	if p.Text != nil {
		attrs = append(attrs, slog.String("text", *p.Text))
	}
	if p.Font != nil {
		attrs = append(attrs, slog.String("font", string(*p.Font)))
	}
	if p.Color != nil {
		attrs = append(attrs, slog.String("color", string(*p.Color)))
	}
	if p.FontSize != nil {
		attrs = append(attrs, slog.Int("font_size", *p.FontSize))
	}
	if p.Position != nil {
		attrs = append(attrs, slog.String("position", string(*p.Position)))
	}
	if p.Align != nil {
		attrs = append(attrs, slog.String("align", string(*p.Align)))
	}
	if p.BackgroundEnabled != nil {
		attrs = append(attrs, slog.Bool("background_enabled", *p.BackgroundEnabled))
	}
	if p.BackgroundColor != nil {
		attrs = append(attrs, slog.String("background_color", string(*p.BackgroundColor)))
	}
	if p.BackgroundOpacity != nil {
		attrs = append(attrs, slog.Int("background_opacity", *p.BackgroundOpacity))
	}
	if p.VideoScale != nil {
		attrs = append(attrs, slog.Int("video_scale", *p.VideoScale))
	}
	if p.BlurAmount != nil {
		attrs = append(attrs, slog.Int("blur_amount", *p.BlurAmount))
	}
	if p.AspectRatio != nil {
		attrs = append(attrs, slog.String("aspect_ratio", string(*p.AspectRatio)))
	}

	return slog.GroupValue(attrs...)
}

func (s Style) Apply(p Patch) Style {
	if p.Text != nil {
		s.Text = *p.Text
	}
	if p.Font != nil {
		s.Font = *p.Font
	}
	if p.Color != nil {
		s.Color = *p.Color
	}
	if p.FontSize != nil {
		s.FontSize = *p.FontSize
	}
	if p.Position != nil {
		s.Position = *p.Position
	}
	if p.Align != nil {
		s.Align = *p.Align
	}
	if p.BackgroundEnabled != nil {
		s.BackgroundEnabled = *p.BackgroundEnabled
	}
	if p.BackgroundColor != nil {
		s.BackgroundColor = *p.BackgroundColor
	}
	if p.BackgroundOpacity != nil {
		s.BackgroundOpacity = *p.BackgroundOpacity
	}
	if p.VideoScale != nil {
		s.VideoScale = *p.VideoScale
	}
	if p.BlurAmount != nil {
		s.BlurAmount = *p.BlurAmount
	}
	if p.AspectRatio != nil {
		s.AspectRatio = *p.AspectRatio
	}

	return s
}
