package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Conversation endpoints
	ConversationMessageHandler gin.HandlerFunc
	ConversationResetHandler   gin.HandlerFunc
	ConversationStateHandler   gin.HandlerFunc

	// Booking endpoints
	ListBookingsHandler  gin.HandlerFunc
	GetBookingHandler    gin.HandlerFunc
	CancelBookingHandler gin.HandlerFunc
}
