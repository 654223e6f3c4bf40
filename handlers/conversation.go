package handlers

import (
	"net/http"

	"frontdesk/services/conversation"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConversationMessageRequest is the expected input for a chat turn.
type ConversationMessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

// ConversationMessageResponse wraps the engine outcome with the session id so
// clients without one can keep the thread going.
type ConversationMessageResponse struct {
	SessionID string `json:"session_id"`
	Success   bool   `json:"success"`
	Response  string `json:"response"`
	Intent    string `json:"intent,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ConversationResetRequest identifies the session to clear.
type ConversationResetRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// ConversationHandler exposes the front-desk chat over HTTP.
type ConversationHandler struct {
	Sessions *conversation.SessionManager
}

func NewConversationHandler(sessions *conversation.SessionManager) *ConversationHandler {
	return &ConversationHandler{Sessions: sessions}
}

// MessageHandler processes one guest message and returns the reply.
func (h *ConversationHandler) MessageHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req ConversationMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid conversation message request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = h.Sessions.NewSessionID()
	}

	outcome := h.Sessions.HandleMessage(c.Request.Context(), sessionID, req.Message)
	if !outcome.Success {
		logger.Warn("Conversation turn failed",
			zap.String("sessionId", sessionID),
			zap.String("error", outcome.Error),
		)
	}

	c.JSON(http.StatusOK, ConversationMessageResponse{
		SessionID: sessionID,
		Success:   outcome.Success,
		Response:  outcome.Response,
		Intent:    outcome.Intent,
		Error:     outcome.Error,
	})
}

// StateHandler returns the current conversation state for a session, served
// from the live engine or the cached snapshot.
func (h *ConversationHandler) StateHandler(c *gin.Context) {
	logger := utils.GetLogger()

	sessionID := c.Param("sessionID")
	state, err := h.Sessions.Snapshot(c.Request.Context(), sessionID)
	if err != nil {
		logger.Warn("Conversation state lookup failed", zap.String("sessionId", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "Session not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "state": state})
}

// ResetHandler clears the conversation state for a session.
func (h *ConversationHandler) ResetHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req ConversationResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid conversation reset request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	h.Sessions.Reset(c.Request.Context(), req.SessionID)
	c.JSON(http.StatusOK, gin.H{"session_id": req.SessionID, "status": "reset"})
}
