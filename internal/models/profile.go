package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the singleton record of external coding-profile links. It is
// created lazily on first read and never deleted.
type Profile struct {
	ID         uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Leetcode   string    `gorm:"size:512" json:"leetcode"`
	Codeforces string    `gorm:"size:512" json:"codeforces"`
	Codechef   string    `gorm:"size:512" json:"codechef"`
	Github     string    `gorm:"size:512" json:"github"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
