package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitmanager/internal/app"
	"fitmanager/internal/model"
	"fitmanager/internal/transport/http/middleware"
	"fitmanager/internal/transport/http/response"
)

type MacroHandler struct {
	macroService *app.MacroService
}

type MacroRequest struct {
	Date    string   `json:"date" binding:"omitempty"`
	Protein *float64 `json:"protein" binding:"required,gte=0,lte=1000"`
	Carbs   *float64 `json:"carbs" binding:"required,gte=0,lte=1000"`
	Fats    *float64 `json:"fats" binding:"required,gte=0,lte=1000"`
}

func NewMacroHandler(macroService *app.MacroService) *MacroHandler {
	return &MacroHandler{macroService: macroService}
}

func (h *MacroHandler) Create(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req MacroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, err.Error())
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		response.Invalid(c, "date must be an ISO date")
		return
	}

	entry, err := h.macroService.Create(userID, app.MacroInput{
		Date:    date,
		Protein: *req.Protein,
		Carbs:   *req.Carbs,
		Fats:    *req.Fats,
	})
	if err != nil {
		entryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// List supports ?last=true, ?date=today and ?date=YYYY-MM-DD.
func (h *MacroHandler) List(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	if c.Query("last") == "true" {
		entry, err := h.macroService.GetLast(userID)
		if err != nil {
			response.ServerError(c)
			return
		}
		if entry == nil {
			c.JSON(http.StatusOK, []model.MacroEntry{})
			return
		}
		c.JSON(http.StatusOK, []model.MacroEntry{*entry})
		return
	}

	var (
		entries []model.MacroEntry
		err     error
	)
	switch date := c.Query("date"); date {
	case "":
		entries, err = h.macroService.List(userID)
	case "today":
		entries, err = h.macroService.ListToday(userID)
	default:
		day, parseErr := parseDate(date)
		if parseErr != nil {
			response.Invalid(c, "date must be \"today\" or an ISO date")
			return
		}
		entries, err = h.macroService.ListByDate(userID, day)
	}
	if err != nil {
		response.ServerError(c)
		return
	}
	if entries == nil {
		entries = []model.MacroEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

func (h *MacroHandler) Get(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, ok := parseID(c)
	if !ok {
		response.Message(c, http.StatusNotFound, "Entry not found")
		return
	}

	entry, err := h.macroService.GetByID(userID, id)
	if err != nil {
		entryError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *MacroHandler) Update(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, ok := parseID(c)
	if !ok {
		response.Message(c, http.StatusNotFound, "Entry not found")
		return
	}

	var req MacroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, err.Error())
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		response.Invalid(c, "date must be an ISO date")
		return
	}

	entry, err := h.macroService.Update(userID, id, app.MacroInput{
		Date:    date,
		Protein: *req.Protein,
		Carbs:   *req.Carbs,
		Fats:    *req.Fats,
	})
	if err != nil {
		entryError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *MacroHandler) Delete(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, ok := parseID(c)
	if !ok {
		response.Message(c, http.StatusNotFound, "Entry not found")
		return
	}

	if err := h.macroService.Delete(userID, id); err != nil {
		entryError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Entry deleted")
}
