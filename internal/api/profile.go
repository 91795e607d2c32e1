package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devraj/portfolio-v2/backend/internal/models"
	"github.com/devraj/portfolio-v2/backend/internal/service"
)

// maxProfileImageSize caps profile image uploads at 5 MiB.
const maxProfileImageSize = 5 << 20

// ProfileHandler handles the singleton profile record and the profile image.
type ProfileHandler struct {
	profiles *service.ProfileService
	local    *service.LocalImageStore
}

func NewProfileHandler(profiles *service.ProfileService, local *service.LocalImageStore) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		local:    local,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	profile := r.Group("/profile")
	{
		profile.GET("", h.Get)
		profile.PUT("", authMW, h.Update)
		profile.GET("/image", h.GetImage)
		profile.POST("/upload", authMW, h.UploadImage)
	}
}

type updateProfileRequest struct {
	Leetcode   string `json:"leetcode"`
	Codeforces string `json:"codeforces"`
	Codechef   string `json:"codechef"`
	Github     string `json:"github"`
}

// Get returns the singleton, creating an empty one on first access. Public.
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profiles.GetProfile(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Update overwrites all four link fields. Admin only.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	profile, err := h.profiles.UpdateProfile(c.Request.Context(), &models.Profile{
		Leetcode:   req.Leetcode,
		Codeforces: req.Codeforces,
		Codechef:   req.Codechef,
		Github:     req.Github,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetImage returns the most recent profile image URL, or the default
// placeholder path when nothing has been uploaded. Public.
func (h *ProfileHandler) GetImage(c *gin.Context) {
	imageURL, err := h.local.LatestProfileImage()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profileImageUrl": imageURL})
}

// UploadImage stores a new profile image under a unique name. Admin only.
func (h *ProfileHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("profileImage")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Profile image is required"})
		return
	}

	if file.Size > maxProfileImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Profile image must be smaller than 5MB"})
		return
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only image files are allowed"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload profile image"})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload profile image"})
		return
	}

	imageURL, err := h.local.SaveProfileImage(data, file.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload profile image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Profile image uploaded successfully",
		"profileImageUrl": imageURL,
	})
}
