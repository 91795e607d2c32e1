package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/devraj/portfolio-v2/backend/internal/models"
)

// MessageService handles visitor messages. The notification email is a side
// effect of CreateMessage and never fails the write.
type MessageService struct {
	db    *gorm.DB
	email IEmailService
}

func NewMessageService(db *gorm.DB, email IEmailService) *MessageService {
	return &MessageService{
		db:    db,
		email: email,
	}
}

// CreateMessage stores the message, then attempts the notification email.
// The message is durable before the send starts; a send failure is logged
// and otherwise ignored.
func (s *MessageService) CreateMessage(ctx context.Context, message *models.Message) (*models.Message, error) {
	if err := s.db.WithContext(ctx).Create(message).Error; err != nil {
		return nil, err
	}

	if s.email != nil {
		if err := s.email.SendMessageNotification(message); err != nil {
			logrus.WithError(err).WithField("message_id", message.ID).
				Warn("Email notification failed, message is stored")
		}
	}

	return message, nil
}

// GetMessage retrieves a message by ID.
func (s *MessageService) GetMessage(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	var message models.Message
	if err := s.db.WithContext(ctx).First(&message, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// ListMessages returns all messages, newest first.
func (s *MessageService) ListMessages(ctx context.Context) ([]models.Message, error) {
	var messages []models.Message
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// SetRead updates only the read flag.
func (s *MessageService) SetRead(ctx context.Context, id uuid.UUID, read bool) (*models.Message, error) {
	var message models.Message
	if err := s.db.WithContext(ctx).First(&message, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&message).Update("read", read).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// DeleteMessage removes a message.
func (s *MessageService) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	var message models.Message
	if err := s.db.WithContext(ctx).First(&message, "id = ?", id).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.Message{}, "id = ?", id).Error
}
