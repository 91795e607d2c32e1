package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message kinds. Anything else submitted by a visitor falls back to contact.
const (
	MessageTypeContact = "contact"
	MessageTypeHire    = "hire"
)

// Message is a visitor-submitted contact or hire inquiry.
type Message struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Body      string    `gorm:"column:message;type:text;not null" json:"message"`
	Type      string    `gorm:"not null;default:'contact'" json:"type"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Type != MessageTypeHire {
		m.Type = MessageTypeContact
	}
	return nil
}
