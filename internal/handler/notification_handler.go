package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fokanendapascal/internship-management-app/internal/service"
	"github.com/fokanendapascal/internship-management-app/pkg/response"
)

// NotificationHandler handles notification HTTP requests
type NotificationHandler struct {
	notificationService service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List handles GET /notifications
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.notificationService.ListForUser(c.Request.Context(), principal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, notifications)
}

// MarkRead handles PUT /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.notificationService.MarkRead(c.Request.Context(), principal(c), id); err != nil {
		respondError(c, err)
		return
	}
	response.NoContent(c)
}

// Delete handles DELETE /notifications/:id
func (h *NotificationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.notificationService.Delete(c.Request.Context(), principal(c), id); err != nil {
		respondError(c, err)
		return
	}
	response.NoContent(c)
}
