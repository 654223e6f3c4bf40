package conversation

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"frontdesk/models"
	"frontdesk/services/notification"
	"frontdesk/utils"
)

// SessionManager hands out one engine per session. Concurrent turns against
// different sessions are safe; the engine's own contract forbids concurrent
// turns within one session, which the per-session lock enforces.
type SessionManager struct {
	mu      sync.Mutex
	engines map[string]*sessionEntry

	factory  func() *Engine
	store    *RedisStateStore
	notifier notification.Notifier
	logger   *zap.Logger
}

type sessionEntry struct {
	mu     sync.Mutex
	engine *Engine
}

// NewSessionManager builds a manager. factory creates a fresh engine per new
// session; store and notifier may be nil to disable snapshot caching and
// reset events respectively.
func NewSessionManager(factory func() *Engine, store *RedisStateStore, notifier notification.Notifier) *SessionManager {
	return &SessionManager{
		engines:  make(map[string]*sessionEntry),
		factory:  factory,
		store:    store,
		notifier: notifier,
		logger:   utils.GetLogger(),
	}
}

// NewSessionID mints a fresh session identifier.
func (m *SessionManager) NewSessionID() string {
	return uuid.New().String()
}

func (m *SessionManager) entry(sessionID string) *sessionEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	ent, ok := m.engines[sessionID]
	if !ok {
		ent = &sessionEntry{engine: m.factory()}
		m.engines[sessionID] = ent
	}
	return ent
}

// HandleMessage routes one turn to the session's engine and caches the
// resulting state snapshot best-effort.
func (m *SessionManager) HandleMessage(ctx context.Context, sessionID, message string) models.ConversationOutcome {
	ent := m.entry(sessionID)
	ent.mu.Lock()
	outcome := ent.engine.HandleTextConversation(ctx, message)
	state := ent.engine.State()
	ent.mu.Unlock()

	if m.store != nil {
		if err := m.store.Set(ctx, sessionID, state); err != nil {
			m.logger.Warn("conversation state snapshot failed", zap.String("sessionId", sessionID), zap.Error(err))
		}
	}
	return outcome
}

// Snapshot returns a session's conversation state: the live engine state when
// the session is resident in this process, falling back to the cached Redis
// snapshot so dashboards can observe sessions across restarts.
func (m *SessionManager) Snapshot(ctx context.Context, sessionID string) (models.ConversationState, error) {
	m.mu.Lock()
	ent, ok := m.engines[sessionID]
	m.mu.Unlock()

	if ok {
		ent.mu.Lock()
		state := ent.engine.State()
		ent.mu.Unlock()
		return state, nil
	}

	if m.store != nil {
		state, err := m.store.Get(ctx, sessionID)
		if err != nil {
			return models.ConversationState{}, err
		}
		return *state, nil
	}
	return models.ConversationState{}, fmt.Errorf("unknown session %s", sessionID)
}

// Reset clears a session's conversation state and its cached snapshot.
func (m *SessionManager) Reset(ctx context.Context, sessionID string) {
	ent := m.entry(sessionID)
	ent.mu.Lock()
	ent.engine.ResetConversation()
	ent.mu.Unlock()

	if m.store != nil {
		if err := m.store.Clear(ctx, sessionID); err != nil {
			m.logger.Warn("conversation state clear failed", zap.String("sessionId", sessionID), zap.Error(err))
		}
	}
	if m.notifier != nil {
		m.notifier.Publish(notification.ConversationResetEvent{SessionID: sessionID})
	}
}
