package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MobeenM17/SuswearGProject/internal/service"
	"github.com/MobeenM17/SuswearGProject/pkg/response"
)

// NotificationHandler the signed-in user's donation events
type NotificationHandler struct {
	notificationSvc service.NotificationService
	logger          *zap.Logger
}

// NewNotificationHandler creates a NotificationHandler
func NewNotificationHandler(notificationSvc service.NotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc, logger: logger}
}

// List GET /api/notifications and GET /api/staff/notifications (?limit=)
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	limit := 0
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			response.BadRequest(c, 10001, "limit must be a number")
			return
		}
		limit = n
	}

	list, err := h.notificationSvc.ListForUser(c.Request.Context(), userID, limit)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OKList(c, list, len(list))
}
