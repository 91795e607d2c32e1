package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/devraj/portfolio-v2/backend/internal/service"
)

// AuthHandler handles admin registration, login and identity lookup.
type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// RegisterRoutes registers the auth endpoints. authMW guards /me.
func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/me", authMW, h.Me)
	}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Register creates the admin account. The password policy is enforced here at
// the boundary only.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	if msg, ok := checkPasswordPolicy(req.Password); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		return
	}

	if _, err := h.auth.Register(req.Email, req.Password); err != nil {
		if errors.Is(err, service.ErrAdminExists) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Admin already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Admin registered"})
}

// Login responds with the same generic error for unknown email and wrong
// password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, loginResponse{Token: token})
}

// Me returns the current admin without the password hash.
func (h *AuthHandler) Me(c *gin.Context) {
	adminID, exists := c.Get("admin_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	admin, err := h.auth.GetAdmin(adminID.(uuid.UUID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, admin)
}

// checkPasswordPolicy mirrors the registration form rules: 8-20 characters
// with at least one uppercase, one lowercase and one special character.
func checkPasswordPolicy(password string) (string, bool) {
	if len(password) < 8 || len(password) > 20 {
		return "Password must be between 8 and 20 characters", false
	}

	var upper, lower, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case strings.ContainsRune(`!@#$%^&*(),.?":{}|<>`, r):
			special = true
		}
	}
	if !upper || !lower || !special {
		return "Password must contain at least one uppercase letter, one lowercase letter, and one special character", false
	}

	return "", true
}
