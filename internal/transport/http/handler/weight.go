package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitmanager/internal/app"
	"fitmanager/internal/model"
	"fitmanager/internal/transport/http/middleware"
	"fitmanager/internal/transport/http/response"
)

type WeightHandler struct {
	weightService *app.WeightService
}

type WeightRequest struct {
	Date   string   `json:"date" binding:"omitempty"`
	Weight *float64 `json:"weight" binding:"required,gte=0,lte=500"`
}

func NewWeightHandler(weightService *app.WeightService) *WeightHandler {
	return &WeightHandler{weightService: weightService}
}

func (h *WeightHandler) Create(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req WeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, err.Error())
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		response.Invalid(c, "date must be an ISO date")
		return
	}

	entry, err := h.weightService.Create(userID, date, *req.Weight)
	if err != nil {
		entryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *WeightHandler) List(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	if c.Query("last") == "true" {
		entry, err := h.weightService.GetLast(userID)
		if err != nil {
			response.ServerError(c)
			return
		}
		if entry == nil {
			c.JSON(http.StatusOK, []model.WeightEntry{})
			return
		}
		c.JSON(http.StatusOK, []model.WeightEntry{*entry})
		return
	}

	entries, err := h.weightService.List(userID)
	if err != nil {
		response.ServerError(c)
		return
	}
	if entries == nil {
		entries = []model.WeightEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

func (h *WeightHandler) Get(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, ok := parseID(c)
	if !ok {
		response.Message(c, http.StatusNotFound, "Entry not found")
		return
	}

	entry, err := h.weightService.GetByID(userID, id)
	if err != nil {
		entryError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *WeightHandler) Update(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, ok := parseID(c)
	if !ok {
		response.Message(c, http.StatusNotFound, "Entry not found")
		return
	}

	var req WeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, err.Error())
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		response.Invalid(c, "date must be an ISO date")
		return
	}

	entry, err := h.weightService.Update(userID, id, date, *req.Weight)
	if err != nil {
		entryError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *WeightHandler) Delete(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, ok := parseID(c)
	if !ok {
		response.Message(c, http.StatusNotFound, "Entry not found")
		return
	}

	if err := h.weightService.Delete(userID, id); err != nil {
		entryError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Entry deleted")
}

// DeleteLast removes the caller's most recent entry.
func (h *WeightHandler) DeleteLast(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	if err := h.weightService.DeleteLast(userID); err != nil {
		entryError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Entry deleted")
}
