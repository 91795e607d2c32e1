package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/devraj/portfolio-v2/backend/internal/models"
)

// ProjectService handles portfolio project operations.
type ProjectService struct {
	db        *gorm.DB
	uploadDir string
}

func NewProjectService(db *gorm.DB, uploadDir string) *ProjectService {
	return &ProjectService{
		db:        db,
		uploadDir: uploadDir,
	}
}

// CreateProject persists a new project.
func (s *ProjectService) CreateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	if err := s.db.WithContext(ctx).Create(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// GetProject retrieves a project by ID.
func (s *ProjectService) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := s.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListProjects returns all projects, newest first.
func (s *ProjectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// UpdateProject replaces the supplied fields and returns the updated record.
func (s *ProjectService) UpdateProject(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Project, error) {
	var project models.Project
	if err := s.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	// Map-based Updates skip the json field serializer, so the tech stack
	// slice must be stored as its JSON text.
	if stack, ok := updates["tech_stack"].([]string); ok {
		data, err := json.Marshal(stack)
		if err != nil {
			return nil, err
		}
		updates["tech_stack"] = string(data)
	}
	if err := s.db.WithContext(ctx).Model(&project).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetProject(ctx, id)
}

// DeleteProject removes the record and best-effort removes a locally stored
// image file. Hosted or placeholder URLs are left alone.
func (s *ProjectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	var project models.Project
	if err := s.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id).Error; err != nil {
		return err
	}

	if name, ok := localUploadName(project.ImageURL); ok {
		if err := os.Remove(filepath.Join(s.uploadDir, name)); err != nil && !os.IsNotExist(err) {
			logrus.WithError(err).WithField("image", project.ImageURL).
				Warn("Failed to remove project image file")
		}
	}

	return nil
}

// SplitTechStack turns the comma-separated form field into a trimmed list.
func SplitTechStack(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	stack := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			stack = append(stack, p)
		}
	}
	return stack
}

// localUploadName extracts the filename from a /uploads/ URL. Returns false
// for remote URLs and the bundled placeholder.
func localUploadName(imageURL string) (string, bool) {
	const prefix = "/uploads/"
	if !strings.HasPrefix(imageURL, prefix) {
		return "", false
	}
	name := strings.TrimPrefix(imageURL, prefix)
	if name == "" || name == "profile.svg" || name == "placeholder.png" {
		return "", false
	}
	return name, true
}
