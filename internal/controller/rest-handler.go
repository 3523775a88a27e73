package controller

import (
	"net/http"

	"github.com/contentstudio/server/internal/overlay"
	"github.com/contentstudio/server/internal/service/studio"
	"github.com/contentstudio/server/pkg/rest"
)

func (c controller) getCatalog(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": c.studioService.Catalog()})
}

type resolveInput struct {
	URL string `json:"url"`
}

type resolveResponse struct {
	VideoID *string `json:"video_id"`
}

func (c controller) resolve(w http.ResponseWriter, r *http.Request) {
	var req resolveInput

	if err := rest.ReadJSON(r, &req); err != nil {
		c.logger.InfoContext(r.Context(), "failed to read json", "error", err)
		rest.WriteJSON(w, http.StatusUnprocessableEntity, rest.Envelope{"error": err.Error()})
		return
	}

	var resp resolveResponse
	if ref := c.studioService.Resolve(req.URL); !ref.IsNone() {
		videoId := ref.String()
		resp.VideoID = &videoId
	}

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": resp})
}

type renderInput struct {
	Style    styleInput `json:"style"`
	HasVideo bool       `json:"has_video"`
}

// render composes a style over the defaults; omitted fields keep their
// default value.
func (c controller) render(w http.ResponseWriter, r *http.Request) {
	var req renderInput

	if err := rest.ReadJSON(r, &req); err != nil {
		c.logger.InfoContext(r.Context(), "failed to read json", "error", err)
		rest.WriteJSON(w, http.StatusUnprocessableEntity, rest.Envelope{"error": err.Error()})
		return
	}

	if validationErrors, ok := c.validate.Validate(req); !ok {
		c.logger.InfoContext(r.Context(), "validation failed", "errors", validationErrors)
		rest.WriteJSON(w, http.StatusBadRequest, rest.Envelope{"errors": validationErrors})
		return
	}

	tree := c.studioService.Render(&studio.RenderParams{
		Style:    overlay.DefaultStyle().Apply(req.Style.toPatch()),
		HasVideo: req.HasVideo,
	})

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": tree})
}

func (c controller) createSession(w http.ResponseWriter, r *http.Request) {
	resp, err := c.studioService.CreateSession(r.Context())
	if err != nil {
		c.logger.WarnContext(r.Context(), "failed to create session", "error", err)
		rest.WriteJSON(w, http.StatusInternalServerError, rest.Envelope{"error": "failed to create session"})
		return
	}

	rest.WriteJSON(w, http.StatusCreated, rest.Envelope{"data": resp})
}
