package conversation

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSessionManager() *SessionManager {
	return NewSessionManager(func() *Engine {
		return NewEngine(nil, nil,
			WithClock(func() time.Time { return testClock }),
			WithRandSource(rand.NewSource(1)),
			WithLogger(zap.NewNop()),
		)
	}, nil, nil)
}

func TestSessionsAreIsolated(t *testing.T) {
	m := newTestSessionManager()
	ctx := context.Background()

	a := m.NewSessionID()
	b := m.NewSessionID()
	require.NotEqual(t, a, b)

	outA := m.HandleMessage(ctx, a, "book a table for 2 people")
	require.True(t, outA.Success)
	require.NotNil(t, outA.ConversationState.ActiveBooking)

	// Session B sees no trace of A's booking draft.
	outB := m.HandleMessage(ctx, b, "what are your hours")
	require.True(t, outB.Success)
	assert.Nil(t, outB.ConversationState.ActiveBooking)
	assert.Len(t, outB.ConversationState.History, 1)
}

func TestSessionResetClearsOnlyThatSession(t *testing.T) {
	m := newTestSessionManager()
	ctx := context.Background()

	m.HandleMessage(ctx, "a", "book a table for 2 people")
	m.HandleMessage(ctx, "b", "book a table for 4 people")

	m.Reset(ctx, "a")

	outA := m.HandleMessage(ctx, "a", "hello")
	assert.Nil(t, outA.ConversationState.ActiveBooking)

	outB := m.HandleMessage(ctx, "b", "my name is Smith")
	require.NotNil(t, outB.ConversationState.ActiveBooking)
	assert.Equal(t, 4, outB.ConversationState.ActiveBooking.PartySize)
}

func TestSnapshotReturnsLiveState(t *testing.T) {
	m := newTestSessionManager()
	ctx := context.Background()

	id := m.NewSessionID()
	m.HandleMessage(ctx, id, "book a table for 2 people")

	state, err := m.Snapshot(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, state.ActiveBooking)
	assert.Equal(t, 2, state.ActiveBooking.PartySize)
	assert.Len(t, state.History, 1)

	// Without a state store there is nothing to fall back to.
	_, err = m.Snapshot(ctx, "never-seen")
	assert.Error(t, err)
}

func TestConcurrentSessionsDoNotRace(t *testing.T) {
	m := newTestSessionManager()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		sessionID := m.NewSessionID()
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				out := m.HandleMessage(ctx, sessionID, "what are your hours")
				assert.True(t, out.Success)
			}
		}()
	}
	wg.Wait()
}
