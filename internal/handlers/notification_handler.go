package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/quicklic/clinic-scheduler/internal/httperr"
	"github.com/quicklic/clinic-scheduler/internal/httpresp"
	"github.com/quicklic/clinic-scheduler/internal/middleware"
	"github.com/quicklic/clinic-scheduler/internal/models"
)

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	query := h.db.
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if c.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}

	var notifications []models.Notification
	if err := query.Limit(100).Find(&notifications).Error; err != nil {
		httperr.Internal(c, "failed_to_list_notifications", "Please try again later.")
		return
	}

	httpresp.List(c, notifications)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	notificationID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Notification id must be numeric.")
		return
	}

	result := h.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)

	if result.Error != nil {
		httperr.Internal(c, "failed_to_mark_notification", "Please try again later.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "notification_not_found", "Notification does not exist.")
		return
	}

	httpresp.OK(c, gin.H{"id": notificationID, "is_read": true})
}
