package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"frontdesk/models"
	"frontdesk/services/conversation"
)

func newConversationRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := conversation.NewSessionManager(func() *conversation.Engine {
		return conversation.NewEngine(nil, nil, conversation.WithLogger(zap.NewNop()))
	}, nil, nil)
	h := NewConversationHandler(sessions)

	r := gin.New()
	r.POST("/api/conversation/message", h.MessageHandler)
	r.POST("/api/conversation/reset", h.ResetHandler)
	r.GET("/api/conversation/state/:sessionID", h.StateHandler)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMessageHandlerMintsSessionID(t *testing.T) {
	r := newConversationRouter(t)

	w := postJSON(t, r, "/api/conversation/message", gin.H{"message": "What are your hours?"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp ConversationMessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "askHours", resp.Intent)
	assert.Contains(t, resp.Response, "Our hours are")
}

func TestMessageHandlerKeepsSessionAcrossTurns(t *testing.T) {
	r := newConversationRouter(t)

	w := postJSON(t, r, "/api/conversation/message", gin.H{"message": "book a table for 2 people"})
	require.Equal(t, http.StatusOK, w.Code)
	var first ConversationMessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	require.NotEmpty(t, first.SessionID)

	// Same session: a bare answer continues the booking flow.
	w = postJSON(t, r, "/api/conversation/message", gin.H{
		"session_id": first.SessionID,
		"message":    "my name is Johnson",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var second ConversationMessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(t, first.SessionID, second.SessionID)
	assert.Equal(t, "makeReservation", second.Intent)
}

func TestMessageHandlerRejectsMissingMessage(t *testing.T) {
	r := newConversationRouter(t)
	w := postJSON(t, r, "/api/conversation/message", gin.H{"session_id": "s1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResetHandler(t *testing.T) {
	r := newConversationRouter(t)

	w := postJSON(t, r, "/api/conversation/reset", gin.H{"session_id": "s1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "reset")

	w = postJSON(t, r, "/api/conversation/reset", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStateHandler(t *testing.T) {
	r := newConversationRouter(t)

	w := postJSON(t, r, "/api/conversation/message", gin.H{"message": "book a table for 2 people"})
	require.Equal(t, http.StatusOK, w.Code)
	var msg ConversationMessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	require.NotEmpty(t, msg.SessionID)

	req := httptest.NewRequest(http.MethodGet, "/api/conversation/state/"+msg.SessionID, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SessionID string                   `json:"session_id"`
		State     models.ConversationState `json:"state"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, msg.SessionID, resp.SessionID)
	require.NotNil(t, resp.State.ActiveBooking)
	assert.Equal(t, 2, resp.State.ActiveBooking.PartySize)
	assert.Len(t, resp.State.History, 1)

	// Sessions the manager has never seen return 404.
	req = httptest.NewRequest(http.MethodGet, "/api/conversation/state/nope", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
