package controller

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"golang.org/x/exp/slices"

	"github.com/contentstudio/server/internal/overlay"
	"github.com/contentstudio/server/internal/reference"
	"github.com/contentstudio/server/internal/service/studio"
	"github.com/contentstudio/server/pkg/validator"
	"github.com/contentstudio/server/pkg/wsrouter"
)

type iStudioService interface {
	// rest
	CreateSession(context.Context) (studio.CreateSessionResponse, error)
	Resolve(string) reference.Ref
	Render(*studio.RenderParams) overlay.RenderTree
	Catalog() studio.Catalog
	// session lifecycle
	ConnectSession(context.Context, *studio.ConnectSessionParams) (studio.SessionState, error)
	DisconnectSession(context.Context, string) error
	GetSessionState(context.Context, string) (studio.SessionState, error)
	// editing
	SetVideoURL(context.Context, *studio.SetVideoURLParams) (studio.SessionState, error)
	TogglePlayPause(context.Context, string) (studio.SessionState, error)
	ToggleMute(context.Context, string) (studio.SessionState, error)
	SetSpeed(context.Context, *studio.SetSpeedParams) (studio.SessionState, error)
	UpdateStyle(context.Context, *studio.UpdateStyleParams) (studio.SessionState, error)
	// player events
	HandleSDKReady(context.Context, string) (studio.SessionState, error)
	HandlePlayerReady(context.Context, *studio.PlayerEventParams) (studio.SessionState, error)
	HandlePlayerStateChange(context.Context, *studio.PlayerStateChangeParams) (studio.SessionState, error)
	HandlePlayerError(context.Context, *studio.PlayerErrorParams) (studio.SessionState, error)
}

type controller struct {
	studioService  iStudioService
	upgrader       websocket.Upgrader
	validate       *validator.Validator
	logger         *slog.Logger
	wsmux          *wsrouter.WSRouter
	allowedOrigins []string
}

// NewController builds the HTTP and websocket surface. An empty
// allowedOrigins list accepts every origin.
func NewController(studioService iStudioService, logger *slog.Logger, allowedOrigins []string) *controller {
	c := &controller{
		studioService:  studioService,
		validate:       newValidator(),
		logger:         logger,
		allowedOrigins: allowedOrigins,
	}
	c.upgrader = websocket.Upgrader{
		CheckOrigin: c.checkOrigin,
	}
	c.wsmux = c.getWSRouter()

	return c
}

func (c *controller) checkOrigin(r *http.Request) bool {
	if len(c.allowedOrigins) == 0 {
		return true
	}

	origin := r.Header.Get("Origin")
	return origin == "" || slices.Contains(c.allowedOrigins, origin)
}

func newValidator() *validator.Validator {
	v := validator.NewValidator()
	rules := map[string]func(string) bool{
		"font_id": func(s string) bool {
			_, ok := overlay.LookupFont(overlay.FontID(s))
			return ok
		},
		"color_id": func(s string) bool {
			_, ok := overlay.LookupColor(overlay.ColorID(s))
			return ok
		},
		"aspect_ratio_id": func(s string) bool {
			_, ok := overlay.LookupAspectRatio(overlay.AspectRatioID(s))
			return ok
		},
		"position": func(s string) bool { return overlay.Position(s).Valid() },
		"align":    func(s string) bool { return overlay.Align(s).Valid() },
	}
	for tag, fn := range rules {
		if err := v.RegisterStringRule(tag, fn); err != nil {
			panic(err)
		}
	}

	return v
}
