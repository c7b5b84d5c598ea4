package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"projectpad/internal/app"
	"projectpad/internal/transport/http/response"
)

type AuthHandler struct {
	authService *app.AuthService
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(authService *app.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "All fields are required!")
		return
	}

	_, err := h.authService.Register(c.Request.Context(), app.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Message(c, http.StatusBadRequest, "All fields are required!")
		case errors.Is(err, app.ErrEmailExists):
			response.Message(c, http.StatusConflict, "Email already registered. Please login instead.")
		default:
			response.Message(c, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	response.Message(c, http.StatusCreated, "User registered successfully!")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "All fields are required!")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), app.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Message(c, http.StatusBadRequest, "All fields are required!")
		case errors.Is(err, app.ErrUserNotFound):
			response.Message(c, http.StatusNotFound, "User not found. Please signup.")
		case errors.Is(err, app.ErrWrongPassword):
			response.Message(c, http.StatusUnauthorized, "Invalid password. Try again.")
		default:
			response.Message(c, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful!",
		"token":   result.Token,
		"user": gin.H{
			"_id":   result.User.ID,
			"name":  result.User.Name,
			"email": result.User.Email,
		},
	})
}
