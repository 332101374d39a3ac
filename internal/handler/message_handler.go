package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fokanendapascal/internship-management-app/internal/dto"
	"github.com/fokanendapascal/internship-management-app/internal/service"
	"github.com/fokanendapascal/internship-management-app/pkg/response"
)

// MessageHandler handles direct messaging HTTP requests
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Send handles POST /messages
func (h *MessageHandler) Send(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	message, err := h.messageService.Send(c.Request.Context(), principal(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, message)
}

// Conversation handles GET /messages/conversation/:userId
func (h *MessageHandler) Conversation(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	messages, err := h.messageService.Conversation(c.Request.Context(), principal(c), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, messages)
}

// MarkRead handles PUT /messages/:id/read
func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.messageService.MarkRead(c.Request.Context(), principal(c), id); err != nil {
		respondError(c, err)
		return
	}
	response.NoContent(c)
}
