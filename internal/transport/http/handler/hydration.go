package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitmanager/internal/app"
	"fitmanager/internal/model"
	"fitmanager/internal/transport/http/middleware"
	"fitmanager/internal/transport/http/response"
)

type HydrationHandler struct {
	hydrationService *app.HydrationService
}

type HydrationRequest struct {
	Date   string   `json:"date" binding:"omitempty"`
	Amount *float64 `json:"amount" binding:"required,gte=0,lte=10000"`
}

func NewHydrationHandler(hydrationService *app.HydrationService) *HydrationHandler {
	return &HydrationHandler{hydrationService: hydrationService}
}

func (h *HydrationHandler) Create(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req HydrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, err.Error())
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		response.Invalid(c, "date must be an ISO date")
		return
	}

	entry, err := h.hydrationService.Create(userID, date, *req.Amount)
	if err != nil {
		entryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// List supports ?last=true, ?date=today and ?date=YYYY-MM-DD.
func (h *HydrationHandler) List(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	if c.Query("last") == "true" {
		entry, err := h.hydrationService.GetLast(userID)
		if err != nil {
			response.ServerError(c)
			return
		}
		if entry == nil {
			c.JSON(http.StatusOK, []model.HydrationEntry{})
			return
		}
		c.JSON(http.StatusOK, []model.HydrationEntry{*entry})
		return
	}

	var (
		entries []model.HydrationEntry
		err     error
	)
	switch date := c.Query("date"); date {
	case "":
		entries, err = h.hydrationService.List(userID)
	case "today":
		entries, err = h.hydrationService.ListToday(userID)
	default:
		day, parseErr := parseDate(date)
		if parseErr != nil {
			response.Invalid(c, "date must be \"today\" or an ISO date")
			return
		}
		entries, err = h.hydrationService.ListByDate(userID, day)
	}
	if err != nil {
		response.ServerError(c)
		return
	}
	if entries == nil {
		entries = []model.HydrationEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

func (h *HydrationHandler) Get(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, ok := parseID(c)
	if !ok {
		response.Message(c, http.StatusNotFound, "Entry not found")
		return
	}

	entry, err := h.hydrationService.GetByID(userID, id)
	if err != nil {
		entryError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *HydrationHandler) Update(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, ok := parseID(c)
	if !ok {
		response.Message(c, http.StatusNotFound, "Entry not found")
		return
	}

	var req HydrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, err.Error())
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		response.Invalid(c, "date must be an ISO date")
		return
	}

	entry, err := h.hydrationService.Update(userID, id, date, *req.Amount)
	if err != nil {
		entryError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *HydrationHandler) Delete(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, ok := parseID(c)
	if !ok {
		response.Message(c, http.StatusNotFound, "Entry not found")
		return
	}

	if err := h.hydrationService.Delete(userID, id); err != nil {
		entryError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Entry deleted")
}

func (h *HydrationHandler) DeleteLast(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	if err := h.hydrationService.DeleteLast(userID); err != nil {
		entryError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Entry deleted")
}
