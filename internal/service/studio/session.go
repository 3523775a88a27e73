package studio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/contentstudio/server/internal/bridge"
	"github.com/contentstudio/server/internal/intent"
	"github.com/contentstudio/server/internal/overlay"
	"github.com/contentstudio/server/internal/player"
	"github.com/contentstudio/server/internal/reference"
	"github.com/contentstudio/server/internal/repository/metadata"
	"github.com/contentstudio/server/internal/repository/session"
)

// Session is one browser's studio. Fields past connected are set once on
// connect and then owned by the connection's read loop.
type Session struct {
	id        string
	connected atomic.Bool

	sender   bridge.Sender
	platform *bridge.Bridge
	intents  *intent.Store
	player   *player.Controller
	style    overlay.Style
	meta     metadataSlot

	ctx     context.Context
	cancel  context.CancelFunc
	lookups sync.WaitGroup
}

// metadataSlot is written by lookup goroutines and read by the owner. Only
// the result for the wanted reference is kept.
type metadataSlot struct {
	mu      sync.Mutex
	wanted  reference.Ref
	cancel  context.CancelFunc
	videoID reference.Ref
	data    metadata.VideoMetadata
}

// want switches the slot to ref and cancels the lookup for the previous one.
// cancel belongs to the lookup started for ref and may be nil.
func (m *metadataSlot) want(ref reference.Ref, cancel context.CancelFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		m.cancel()
	}
	m.wanted = ref
	m.cancel = cancel
}

// set stores md and reports whether ref is still the wanted reference.
func (m *metadataSlot) set(ref reference.Ref, md metadata.VideoMetadata) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ref != m.wanted {
		return false
	}
	m.videoID = ref
	m.data = md
	return true
}

func (m *metadataSlot) get(ref reference.Ref) *metadata.VideoMetadata {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ref.IsNone() || m.videoID != ref {
		return nil
	}

	md := m.data
	return &md
}

func (s service) CreateSession(ctx context.Context) (CreateSessionResponse, error) {
	sessionId := uuid.NewString()
	expiresAt := time.Now().Add(s.sessionTTL)

	connectToken, err := s.generateJWT(sessionId, expiresAt)
	if err != nil {
		return CreateSessionResponse{}, fmt.Errorf("failed to generate connect token: %w", err)
	}

	if err := s.sessionRepo.Add(sessionId, &Session{id: sessionId}); err != nil {
		return CreateSessionResponse{}, fmt.Errorf("failed to add session: %w", err)
	}

	s.logger.DebugContext(ctx, "session created", "session_id", sessionId)

	return CreateSessionResponse{
		SessionID:    sessionId,
		ConnectToken: connectToken,
		ExpiresAt:    expiresAt,
	}, nil
}

// ConnectSession binds a connection to a created session. A session accepts
// exactly one connection during its lifetime.
func (s service) ConnectSession(ctx context.Context, params *ConnectSessionParams) (SessionState, error) {
	sessionId, err := s.parseJWT(params.ConnectToken)
	if err != nil {
		return SessionState{}, err
	}

	if sessionId != params.SessionID {
		return SessionState{}, ErrInvalidToken
	}

	sess, err := s.getSession(sessionId)
	if err != nil {
		return SessionState{}, err
	}

	if !sess.connected.CompareAndSwap(false, true) {
		return SessionState{}, ErrSessionAlreadyConnected
	}

	// the expiry sweep may have dropped it between Get and the swap
	if _, err := s.getSession(sessionId); err != nil {
		return SessionState{}, err
	}

	sess.ctx, sess.cancel = context.WithCancel(ctx)
	sess.sender = params.Sender
	sess.platform = bridge.New(params.Sender, s.origin)
	sess.intents = intent.NewStore(intent.Default())
	sess.player = player.NewController(sess.platform, sess.intents, s.logger.With("session_id", sessionId))
	sess.style = overlay.DefaultStyle()

	s.logger.InfoContext(ctx, "session connected", "session_id", sessionId)

	return s.snapshot(sess), nil
}

// DisconnectSession tears the player down and forgets the session. Pending
// metadata lookups are cancelled and awaited.
func (s service) DisconnectSession(ctx context.Context, sessionId string) error {
	sess, err := s.getSession(sessionId)
	if err != nil {
		return err
	}

	if err := s.sessionRepo.Remove(sessionId); err != nil && !errors.Is(err, session.ErrNotFound) {
		return fmt.Errorf("failed to remove session: %w", err)
	}

	if sess.connected.Load() && sess.player != nil {
		sess.cancel()
		sess.player.Teardown()
		sess.lookups.Wait()
	}

	s.logger.InfoContext(ctx, "session disconnected", "session_id", sessionId)

	return nil
}

// ExpireSessions drops sessions that were created before now-ttl and never
// connected.
func (s service) ExpireSessions(ctx context.Context, now time.Time) []string {
	expired := s.sessionRepo.RemoveExpired(now.Add(-s.sessionTTL), func(sess *Session) bool {
		return sess.connected.Load()
	})

	if len(expired) > 0 {
		s.logger.InfoContext(ctx, "expired sessions removed", "count", len(expired))
	}

	return expired
}

func (s service) GetSessionState(_ context.Context, sessionId string) (SessionState, error) {
	sess, err := s.getConnectedSession(sessionId)
	if err != nil {
		return SessionState{}, err
	}

	return s.snapshot(sess), nil
}

func (s service) getSession(sessionId string) (*Session, error) {
	sess, err := s.sessionRepo.Get(sessionId)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return sess, nil
}

func (s service) getConnectedSession(sessionId string) (*Session, error) {
	sess, err := s.getSession(sessionId)
	if err != nil {
		return nil, err
	}

	if !sess.connected.Load() || sess.player == nil {
		return nil, ErrSessionNotConnected
	}

	return sess, nil
}

func (s service) snapshot(sess *Session) SessionState {
	status := sess.player.Status()

	return SessionState{
		SessionID: sess.id,
		Player:    status,
		Style:     sess.style,
		Metadata:  sess.meta.get(status.VideoID),
		Render:    overlay.Render(sess.style, !status.VideoID.IsNone()),
	}
}

func (s service) sessionLogger(sess *Session) *slog.Logger {
	return s.logger.With("session_id", sess.id)
}
