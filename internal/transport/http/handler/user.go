package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitmanager/internal/app"
	"fitmanager/internal/transport/http/middleware"
	"fitmanager/internal/transport/http/response"
)

type UserHandler struct {
	userService *app.UserService
}

type UpdateProfileRequest struct {
	Username        *string  `json:"username" binding:"omitempty,min=3,max=30"`
	DateOfBirth     *string  `json:"dateOfBirth" binding:"omitempty"`
	Sex             *string  `json:"sex" binding:"omitempty,oneof=M F O"`
	Height          *float64 `json:"height" binding:"omitempty,gte=0"`
	InitialWeight   *float64 `json:"initialWeight" binding:"omitempty,gte=0,lte=500"`
	TargetWeight    *float64 `json:"targetWeight" binding:"omitempty,gte=0,lte=500"`
	WorkoutsPerWeek *int     `json:"workoutsPerWeek" binding:"omitempty,gte=0,lte=21"`
}

func NewUserHandler(userService *app.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Message(c, http.StatusUnauthorized, "user not found in token")
		return
	}

	user, err := h.userService.Get(userID)
	if err != nil {
		if errors.Is(err, app.ErrUserNotFound) {
			response.Message(c, http.StatusNotFound, "User not found")
			return
		}
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Message(c, http.StatusUnauthorized, "user not found in token")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, err.Error())
		return
	}

	input := app.UpdateProfileInput{
		Username:        req.Username,
		Sex:             req.Sex,
		Height:          req.Height,
		InitialWeight:   req.InitialWeight,
		TargetWeight:    req.TargetWeight,
		WorkoutsPerWeek: req.WorkoutsPerWeek,
	}
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		dob, err := parseDate(*req.DateOfBirth)
		if err != nil {
			response.Invalid(c, "dateOfBirth must be an ISO date")
			return
		}
		input.DateOfBirth = &dob
	}

	user, err := h.userService.UpdateProfile(userID, input)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUsernameTaken):
			response.Message(c, http.StatusBadRequest, "Username already taken")
		case errors.Is(err, app.ErrUserNotFound):
			response.Message(c, http.StatusNotFound, "User not found")
		default:
			response.ServerError(c)
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Message(c, http.StatusUnauthorized, "user not found in token")
		return
	}

	if err := h.userService.Delete(userID); err != nil {
		if errors.Is(err, app.ErrUserNotFound) {
			response.Message(c, http.StatusNotFound, "User not found")
			return
		}
		response.ServerError(c)
		return
	}
	response.Message(c, http.StatusOK, "User account deleted successfully")
}
