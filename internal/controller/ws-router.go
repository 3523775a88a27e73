package controller

import (
	"github.com/contentstudio/server/pkg/wsrouter"
)

func (c controller) getWSRouter() *wsrouter.WSRouter {
	mux := wsrouter.New()
	mux.Use(c.wsRequestIdWSMw(), c.loggerWSMw(), c.validateWSMw())
	mux.OnError(c.handleWSError)

	wsrouter.Handle(mux, "ALIVE", c.handleAlive)

	// editing
	wsrouter.Handle(mux, "SET_VIDEO_URL", c.handleSetVideoURL)
	wsrouter.Handle(mux, "TOGGLE_PLAY_PAUSE", c.handleTogglePlayPause)
	wsrouter.Handle(mux, "TOGGLE_MUTE", c.handleToggleMute)
	wsrouter.Handle(mux, "SET_SPEED", c.handleSetSpeed)
	wsrouter.Handle(mux, "UPDATE_STYLE", c.handleUpdateStyle)

	// player events
	wsrouter.Handle(mux, "SDK_READY", c.handleSDKReady)
	wsrouter.Handle(mux, "PLAYER_READY", c.handlePlayerReady)
	wsrouter.Handle(mux, "PLAYER_STATE_CHANGED", c.handlePlayerStateChanged)
	wsrouter.Handle(mux, "PLAYER_ERROR", c.handlePlayerError)

	return mux
}
