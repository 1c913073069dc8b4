package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitmanager/internal/app"
	"fitmanager/internal/transport/http/middleware"
	"fitmanager/internal/transport/http/response"
)

type DashboardHandler struct {
	dashboardService *app.DashboardService
}

func NewDashboardHandler(dashboardService *app.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Message(c, http.StatusUnauthorized, "user not found in token")
		return
	}

	dashboard, err := h.dashboardService.Get(userID)
	if err != nil {
		if errors.Is(err, app.ErrUserNotFound) {
			response.Message(c, http.StatusNotFound, "User not found")
			return
		}
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
