package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project categories accepted by the API.
const (
	CategoryFrontend    = "Frontend"
	CategoryFullStack   = "Full Stack"
	CategoryLandingPage = "Landing Page"
)

// Project is a single portfolio entry. Projects are publicly readable and
// mutated only by the admin.
type Project struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    string    `gorm:"not null;default:'Frontend'" json:"category"`
	ImageURL    string    `gorm:"size:512;not null" json:"imageUrl"`
	TechStack   []string  `gorm:"serializer:json" json:"techStack"`
	GithubURL   string    `gorm:"size:512" json:"githubUrl"`
	LiveURL     string    `gorm:"size:512" json:"liveUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Category == "" {
		p.Category = CategoryFrontend
	}
	return nil
}
