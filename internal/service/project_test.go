package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/devraj/portfolio-v2/backend/internal/models"
	"github.com/devraj/portfolio-v2/backend/internal/service"
	"github.com/devraj/portfolio-v2/backend/internal/testhelpers"
)

func TestProjectListNewestFirst(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProjectService(db, t.TempDir())
	ctx := context.Background()

	older := &models.Project{
		Title:       "Old project",
		Description: "first",
		ImageURL:    "/uploads/a.png",
		CreatedAt:   time.Now().Add(-time.Hour),
	}
	newer := &models.Project{
		Title:       "New project",
		Description: "second",
		ImageURL:    "/uploads/b.png",
		CreatedAt:   time.Now(),
	}

	_, err := svc.CreateProject(ctx, older)
	assert.NoError(t, err)
	_, err = svc.CreateProject(ctx, newer)
	assert.NoError(t, err)

	projects, err := svc.ListProjects(ctx)
	assert.NoError(t, err)
	assert.Len(t, projects, 2)
	assert.Equal(t, "New project", projects[0].Title)
	assert.Equal(t, "Old project", projects[1].Title)
}

func TestProjectUpdateReplacesFields(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProjectService(db, t.TempDir())
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, &models.Project{
		Title:       "Site",
		Description: "desc",
		ImageURL:    "/uploads/a.png",
		TechStack:   []string{"React"},
	})
	assert.NoError(t, err)

	updated, err := svc.UpdateProject(ctx, project.ID, map[string]interface{}{
		"title":      "Site v2",
		"tech_stack": []string{"React", "Go"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "Site v2", updated.Title)
	assert.Equal(t, []string{"React", "Go"}, updated.TechStack)
	// Untouched fields survive
	assert.Equal(t, "desc", updated.Description)
	assert.Equal(t, "/uploads/a.png", updated.ImageURL)
}

func TestProjectDeleteRemovesRecordAndLocalFile(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	dir := t.TempDir()
	svc := service.NewProjectService(db, dir)
	ctx := context.Background()

	imagePath := filepath.Join(dir, "project-abc.png")
	assert.NoError(t, os.WriteFile(imagePath, []byte("img"), 0o644))

	project, err := svc.CreateProject(ctx, &models.Project{
		Title:       "Gone soon",
		Description: "desc",
		ImageURL:    "/uploads/project-abc.png",
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.DeleteProject(ctx, project.ID))

	_, err = svc.GetProject(ctx, project.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	projects, err := svc.ListProjects(ctx)
	assert.NoError(t, err)
	assert.Empty(t, projects)

	_, err = os.Stat(imagePath)
	assert.True(t, os.IsNotExist(err))
}

func TestProjectDeleteLeavesRemoteImagesAlone(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProjectService(db, t.TempDir())
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, &models.Project{
		Title:       "Hosted",
		Description: "desc",
		ImageURL:    "https://bucket.s3.amazonaws.com/project-images/x.png",
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.DeleteProject(ctx, project.ID))
}

func TestDeleteMissingProject(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProjectService(db, t.TempDir())

	err := svc.DeleteProject(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSplitTechStack(t *testing.T) {
	assert.Equal(t, []string{"React", "Node", "MongoDB"}, service.SplitTechStack("React, Node ,MongoDB"))
	assert.Equal(t, []string{"Go"}, service.SplitTechStack("Go,"))
	assert.Empty(t, service.SplitTechStack(""))
}
