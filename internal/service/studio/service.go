// Package studio hosts the editing sessions. Each connected session owns a
// player lifecycle controller, its playback intent and the overlay style;
// all of them are driven from the session's websocket read loop only.
package studio

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/contentstudio/server/internal/repository/metadata"
	"github.com/contentstudio/server/pkg/ytvideodata"
)

var (
	ErrSessionNotFound         = errors.New("session not found")
	ErrSessionNotConnected     = errors.New("session not connected")
	ErrSessionAlreadyConnected = errors.New("session already connected")
	ErrInvalidToken            = errors.New("invalid connect token")
)

const (
	TypeSessionState  = "SESSION_STATE"
	TypeVideoMetadata = "VIDEO_METADATA"
)

type iSessionRepo interface {
	Add(string, *Session) error
	Get(string) (*Session, error)
	Remove(string) error
	RemoveExpired(time.Time, func(*Session) bool) []string
}

type iMetadataRepo interface {
	GetVideoMetadata(context.Context, string) (metadata.VideoMetadata, error)
	SetVideoMetadata(context.Context, string, metadata.VideoMetadata) error
}

type iVideoDataFetcher interface {
	Get(context.Context, string) (*ytvideodata.VideoData, error)
}

type Config struct {
	Secret          string
	SessionTTL      time.Duration
	MetadataTimeout time.Duration
	// Origin is passed to the embedded player as its origin parameter.
	Origin string
}

type service struct {
	sessionRepo  iSessionRepo
	metadataRepo iMetadataRepo
	fetcher      iVideoDataFetcher
	logger       *slog.Logger
	secret       []byte
	sessionTTL   time.Duration
	lookupTTL    time.Duration
	origin       string
}

// NewService wires the studio. metadataRepo and fetcher may be nil: without
// a fetcher metadata lookups are disabled, without a repo they are uncached.
func NewService(sessionRepo iSessionRepo, metadataRepo iMetadataRepo, fetcher iVideoDataFetcher, logger *slog.Logger, cfg *Config) *service {
	lookupTTL := cfg.MetadataTimeout
	if lookupTTL <= 0 {
		lookupTTL = 5 * time.Second
	}

	return &service{
		sessionRepo:  sessionRepo,
		metadataRepo: metadataRepo,
		fetcher:      fetcher,
		logger:       logger,
		secret:       []byte(cfg.Secret),
		sessionTTL:   cfg.SessionTTL,
		lookupTTL:    lookupTTL,
		origin:       cfg.Origin,
	}
}

func (s service) metadataEnabled() bool {
	return s.fetcher != nil
}
