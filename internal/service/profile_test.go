package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devraj/portfolio-v2/backend/internal/models"
	"github.com/devraj/portfolio-v2/backend/internal/service"
	"github.com/devraj/portfolio-v2/backend/internal/testhelpers"
)

func TestGetProfileCreatesSingletonLazily(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()

	var count int64
	db.Model(&models.Profile{}).Count(&count)
	assert.Equal(t, int64(0), count)

	profile, err := svc.GetProfile(ctx)
	assert.NoError(t, err)
	assert.Empty(t, profile.Leetcode)
	assert.Empty(t, profile.Github)

	// Second read returns the same record, not a new one.
	again, err := svc.GetProfile(ctx)
	assert.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID)

	db.Model(&models.Profile{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateProfileOverwritesAllLinks(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, &models.Profile{
		Leetcode:   "https://leetcode.com/u/dev",
		Codeforces: "https://codeforces.com/profile/dev",
		Codechef:   "https://www.codechef.com/users/dev",
		Github:     "https://github.com/dev",
	})
	assert.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, &models.Profile{
		Github: "https://github.com/other",
	})
	assert.NoError(t, err)

	// Update is a full overwrite: cleared fields stay cleared.
	assert.Equal(t, "https://github.com/other", updated.Github)
	assert.Empty(t, updated.Leetcode)
	assert.Empty(t, updated.Codeforces)
	assert.Empty(t, updated.Codechef)

	var count int64
	db.Model(&models.Profile{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
