package controller

import (
	"github.com/contentstudio/server/internal/overlay"
)

// styleInput is a partial style; ranges mirror the editor's sliders.
type styleInput struct {
	Text              *string `json:"text"`
	Font              *string `json:"font" validate:"omitempty,font_id"`
	Color             *string `json:"color" validate:"omitempty,color_id"`
	FontSize          *int    `json:"font_size" validate:"omitempty,gte=16,lte=72"`
	Position          *string `json:"position" validate:"omitempty,position"`
	Align             *string `json:"align" validate:"omitempty,align"`
	BackgroundEnabled *bool   `json:"background_enabled"`
	BackgroundColor   *string `json:"background_color" validate:"omitempty,color_id"`
	BackgroundOpacity *int    `json:"background_opacity" validate:"omitempty,gte=10,lte=100"`
	VideoScale        *int    `json:"video_scale" validate:"omitempty,gte=100,lte=200"`
	BlurAmount        *int    `json:"blur_amount" validate:"omitempty,gte=0,lte=20"`
	AspectRatio       *string `json:"aspect_ratio" validate:"omitempty,aspect_ratio_id"`
}

func (in styleInput) toPatch() overlay.Patch {
	return overlay.Patch{
		Text:              in.Text,
		Font:              convertPtr[string, overlay.FontID](in.Font),
		Color:             convertPtr[string, overlay.ColorID](in.Color),
		FontSize:          in.FontSize,
		Position:          convertPtr[string, overlay.Position](in.Position),
		Align:             convertPtr[string, overlay.Align](in.Align),
		BackgroundEnabled: in.BackgroundEnabled,
		BackgroundColor:   convertPtr[string, overlay.ColorID](in.BackgroundColor),
		BackgroundOpacity: in.BackgroundOpacity,
		VideoScale:        in.VideoScale,
		BlurAmount:        in.BlurAmount,
		AspectRatio:       convertPtr[string, overlay.AspectRatioID](in.AspectRatio),
	}
}

func convertPtr[From ~string, To ~string](v *From) *To {
	if v == nil {
		return nil
	}

	out := To(*v)
	return &out
}
