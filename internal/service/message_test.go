package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/devraj/portfolio-v2/backend/internal/models"
	"github.com/devraj/portfolio-v2/backend/internal/service"
	"github.com/devraj/portfolio-v2/backend/internal/testhelpers"
)

type recordingEmail struct {
	sent []*models.Message
	err  error
}

func (r *recordingEmail) SendMessageNotification(message *models.Message) error {
	r.sent = append(r.sent, message)
	return r.err
}

func (r *recordingEmail) SendEmail(to, subject, body string) error {
	return r.err
}

func TestCreateMessageDefaultsToContact(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	email := &recordingEmail{}
	svc := service.NewMessageService(db, email)

	created, err := svc.CreateMessage(context.Background(), &models.Message{
		Name:  "A",
		Email: "a@b.com",
		Body:  "hi",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.MessageTypeContact, created.Type)
	assert.False(t, created.Read)
	assert.Len(t, email.sent, 1)
}

func TestCreateMessageSurvivesEmailFailure(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	email := &recordingEmail{err: errors.New("smtp down")}
	svc := service.NewMessageService(db, email)

	created, err := svc.CreateMessage(context.Background(), &models.Message{
		Name:  "A",
		Email: "a@b.com",
		Body:  "hi",
		Type:  models.MessageTypeHire,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.MessageTypeHire, created.Type)

	// The message is durable even though the notification failed.
	stored, err := svc.GetMessage(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "hi", stored.Body)
}

func TestSetReadFlipsOnlyReadFlag(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewMessageService(db, &recordingEmail{})
	ctx := context.Background()

	created, err := svc.CreateMessage(ctx, &models.Message{
		Name:  "A",
		Email: "a@b.com",
		Body:  "hi",
		Type:  models.MessageTypeHire,
	})
	assert.NoError(t, err)

	updated, err := svc.SetRead(ctx, created.ID, true)
	assert.NoError(t, err)
	assert.True(t, updated.Read)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.Body, updated.Body)
	assert.Equal(t, created.Type, updated.Type)

	updated, err = svc.SetRead(ctx, created.ID, false)
	assert.NoError(t, err)
	assert.False(t, updated.Read)
}

func TestListMessagesNewestFirst(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewMessageService(db, &recordingEmail{})
	ctx := context.Background()

	_, err := svc.CreateMessage(ctx, &models.Message{
		Name: "A", Email: "a@b.com", Body: "first", CreatedAt: time.Now().Add(-time.Minute),
	})
	assert.NoError(t, err)
	_, err = svc.CreateMessage(ctx, &models.Message{
		Name: "B", Email: "b@b.com", Body: "second", CreatedAt: time.Now(),
	})
	assert.NoError(t, err)

	messages, err := svc.ListMessages(ctx)
	assert.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.Equal(t, "second", messages[0].Body)
}

func TestDeleteMessage(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewMessageService(db, &recordingEmail{})
	ctx := context.Background()

	created, err := svc.CreateMessage(ctx, &models.Message{
		Name: "A", Email: "a@b.com", Body: "hi",
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.DeleteMessage(ctx, created.ID))

	_, err = svc.GetMessage(ctx, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
