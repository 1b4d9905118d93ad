package handler

import (
	"errors"
	"fmt"
	"net/http"

	"bookshelf/internal/http-api/dto"
	"bookshelf/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Username, email, and password are required!"))
		return
	}

	user, err := h.authService.Register(req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, dto.Fail(`Invalid email format! Email must contain "@" symbol.`))
		return
	case errors.Is(err, service.ErrEmailInUse):
		c.JSON(http.StatusBadRequest, dto.Fail("Email is already registered!"))
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, dto.Error("Error registering user"))
		return
	}

	c.JSON(http.StatusCreated, dto.Success("User registered successfully", dto.RegisterData{UserID: user.ID}))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Email and password are required!"))
		return
	}

	token, err := h.authService.Login(req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.Fail("User not found"))
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.Fail("Invalid email or password"))
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, dto.Error("An error occurred while logging in"))
		return
	}

	c.JSON(http.StatusOK, dto.Success("Login successful", dto.LoginData{Token: token}))
}

// GetUser returns the profile of the authenticated user.
func (h *AuthHandler) GetUser(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.authService.GetSelf(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.Fail(fmt.Sprintf("User with ID %s not found", userID)))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error("An error occurred while retrieving user data"))
		return
	}

	c.JSON(http.StatusOK, dto.Success("User retrieved successfully", user))
}
