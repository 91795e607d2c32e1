package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devraj/portfolio-v2/backend/internal/models"
	"github.com/devraj/portfolio-v2/backend/internal/service"
)

// MessageHandler handles visitor messages. Creation is public, everything
// else is admin-only.
type MessageHandler struct {
	messages *service.MessageService
}

func NewMessageHandler(messages *service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

func (h *MessageHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	messages := r.Group("/messages")
	{
		messages.POST("", h.Create)
		messages.GET("", authMW, h.List)
		messages.GET("/:id", authMW, h.Get)
		messages.PATCH("/:id/read", authMW, h.SetRead)
		messages.DELETE("/:id", authMW, h.Delete)
	}
}

type createMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

type setReadRequest struct {
	Read *bool `json:"read" binding:"required"`
}

// Create stores a visitor message and fires the notification email. Public.
func (h *MessageHandler) Create(c *gin.Context) {
	var req createMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email, and message are required"})
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email, and message are required"})
		return
	}

	message := &models.Message{
		Name:  req.Name,
		Email: req.Email,
		Body:  req.Message,
		Type:  req.Type,
	}
	if _, err := h.messages.CreateMessage(c.Request.Context(), message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully"})
}

// List returns all messages, newest first. Admin only.
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.messages.ListMessages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// Get returns one message. Admin only.
func (h *MessageHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
		return
	}

	message, err := h.messages.GetMessage(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, message)
}

// SetRead updates only the read flag. Admin only.
func (h *MessageHandler) SetRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
		return
	}

	var req setReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Read flag is required"})
		return
	}

	message, err := h.messages.SetRead(c.Request.Context(), id, *req.Read)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, message)
}

// Delete removes a message. Admin only.
func (h *MessageHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
		return
	}

	if err := h.messages.DeleteMessage(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
