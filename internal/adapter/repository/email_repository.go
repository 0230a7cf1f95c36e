package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
)

// EmailDraftRepository handles email draft data operations
type EmailDraftRepository struct {
	db *gorm.DB
}

// NewEmailDraftRepository creates a new email draft repository
func NewEmailDraftRepository(db *gorm.DB) *EmailDraftRepository {
	return &EmailDraftRepository{db: db}
}

// Create creates a new email draft
func (r *EmailDraftRepository) Create(ctx context.Context, draft *entities.EmailDraft) error {
	if draft == nil {
		return errors.New("draft cannot be nil")
	}
	return r.db.WithContext(ctx).Create(draft).Error
}

// FindByID retrieves an email draft by ID
func (r *EmailDraftRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.EmailDraft, error) {
	var draft entities.EmailDraft
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&draft).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &draft, nil
}

// ListByMeeting retrieves all drafts attached to a meeting, newest first
func (r *EmailDraftRepository) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]entities.EmailDraft, error) {
	var drafts []entities.EmailDraft
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at DESC").
		Find(&drafts).Error; err != nil {
		return nil, err
	}
	return drafts, nil
}

// Update updates an email draft
func (r *EmailDraftRepository) Update(ctx context.Context, draft *entities.EmailDraft) error {
	if draft == nil {
		return errors.New("draft cannot be nil")
	}
	draft.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(draft).Error
}

// MarkSent stamps the draft as sent
func (r *EmailDraftRepository) MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&entities.EmailDraft{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"sent_at":    sentAt,
			"updated_at": time.Now(),
		}).Error
}

// Delete removes an email draft by ID
func (r *EmailDraftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.EmailDraft{}).Error
}
