package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/quicklic/clinic-scheduler/internal/httperr"
	"github.com/quicklic/clinic-scheduler/internal/httpresp"
	"github.com/quicklic/clinic-scheduler/internal/middleware"
	"github.com/quicklic/clinic-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) Get(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User does not exist.")
		return
	}

	httpresp.OK(c, userPayload(&user))
}
