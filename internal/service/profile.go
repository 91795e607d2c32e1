package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/devraj/portfolio-v2/backend/internal/models"
)

// ProfileService handles the singleton coding-profile record.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile returns the singleton, creating an empty one on first access.
func (s *ProfileService) GetProfile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.Profile{}
		if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile overwrites all four link fields.
func (s *ProfileService) UpdateProfile(ctx context.Context, links *models.Profile) (*models.Profile, error) {
	profile, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"leetcode":   links.Leetcode,
		"codeforces": links.Codeforces,
		"codechef":   links.Codechef,
		"github":     links.Github,
		"updated_at": time.Now(),
	}
	if err := s.db.WithContext(ctx).Model(profile).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetProfile(ctx)
}
