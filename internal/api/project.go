package api

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/devraj/portfolio-v2/backend/internal/models"
	"github.com/devraj/portfolio-v2/backend/internal/service"
)

// maxProjectImageSize caps multipart project image uploads.
const maxProjectImageSize = 10 << 20 // 10 MiB

// ProjectHandler handles portfolio project CRUD. Reads are public, writes are
// admin-only.
type ProjectHandler struct {
	projects *service.ProjectService
	hosted   service.ProjectImageStore
	local    *service.LocalImageStore
}

func NewProjectHandler(projects *service.ProjectService, hosted service.ProjectImageStore, local *service.LocalImageStore) *ProjectHandler {
	return &ProjectHandler{
		projects: projects,
		hosted:   hosted,
		local:    local,
	}
}

func (h *ProjectHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	projects := r.Group("/projects")
	{
		projects.GET("", h.List)
		projects.GET("/:id", h.Get)
		projects.POST("", authMW, h.Create)
		projects.PUT("/:id", authMW, h.Update)
		projects.DELETE("/:id", authMW, h.Delete)
	}
}

// List returns all projects, newest first. Public.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projects.ListProjects(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Get returns one project. Public.
func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}

	project, err := h.projects.GetProject(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// Create stores a new project from multipart form data. Admin only.
func (h *ProjectHandler) Create(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	if title == "" || description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and description are required"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image is required"})
		return
	}

	imageURL := h.storeImage(c, file, title)

	project := &models.Project{
		Title:       title,
		Description: description,
		Category:    c.PostForm("category"),
		ImageURL:    imageURL,
		TechStack:   service.SplitTechStack(c.PostForm("techStack")),
		GithubURL:   c.PostForm("githubUrl"),
		LiveURL:     c.PostForm("liveUrl"),
	}

	created, err := h.projects.CreateProject(c.Request.Context(), project)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update replaces the supplied fields; a new image replaces the image URL.
// Admin only.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}

	updates := map[string]interface{}{}
	if title := c.PostForm("title"); title != "" {
		updates["title"] = title
	}
	if description := c.PostForm("description"); description != "" {
		updates["description"] = description
	}
	if category := c.PostForm("category"); category != "" {
		updates["category"] = category
	}
	if techStack := c.PostForm("techStack"); techStack != "" {
		updates["tech_stack"] = service.SplitTechStack(techStack)
	}
	if githubURL := c.PostForm("githubUrl"); githubURL != "" {
		updates["github_url"] = githubURL
	}
	if liveURL := c.PostForm("liveUrl"); liveURL != "" {
		updates["live_url"] = liveURL
	}

	if file, err := c.FormFile("image"); err == nil {
		updates["image_url"] = h.storeImage(c, file, c.PostForm("title"))
	}

	project, err := h.projects.UpdateProject(c.Request.Context(), id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// Delete removes the project and best-effort removes its local image file.
// Admin only.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}

	if err := h.projects.DeleteProject(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

// storeImage saves the uploaded file to the hosted store when configured,
// falling back to local disk and finally to a placeholder URL. A storage
// failure never fails the enclosing write.
func (h *ProjectHandler) storeImage(c *gin.Context, file *multipart.FileHeader, title string) string {
	if file.Size > maxProjectImageSize {
		logrus.WithField("size", file.Size).Warn("Project image too large, using placeholder")
		return service.PlaceholderImageURL(title)
	}

	src, err := file.Open()
	if err != nil {
		return service.PlaceholderImageURL(title)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return service.PlaceholderImageURL(title)
	}

	if h.hosted != nil {
		contentType := file.Header.Get("Content-Type")
		url, err := h.hosted.StoreProjectImage(c.Request.Context(), data, contentType)
		if err == nil {
			return url
		}
		logrus.WithError(err).Warn("Hosted image upload failed, using placeholder")
		return service.PlaceholderImageURL(title)
	}

	url, err := h.local.SaveProjectImage(data, file.Filename)
	if err != nil {
		logrus.WithError(err).Warn("Local image store failed, using placeholder")
		return service.PlaceholderImageURL(title)
	}
	return url
}
