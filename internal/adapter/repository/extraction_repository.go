package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
)

// ExtractionRepository handles persistence for extracted meeting intelligence
type ExtractionRepository struct {
	db *gorm.DB
}

// NewExtractionRepository creates a new extraction repository
func NewExtractionRepository(db *gorm.DB) *ExtractionRepository {
	return &ExtractionRepository{db: db}
}

// InsertDecisions bulk-inserts decisions for a meeting
func (r *ExtractionRepository) InsertDecisions(ctx context.Context, decisions []*entities.Decision) error {
	if len(decisions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&decisions).Error
}

// InsertActionItems bulk-inserts action items for a meeting
func (r *ExtractionRepository) InsertActionItems(ctx context.Context, items []*entities.ActionItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

// InsertFollowUps bulk-inserts follow-ups for a meeting
func (r *ExtractionRepository) InsertFollowUps(ctx context.Context, followUps []*entities.FollowUp) error {
	if len(followUps) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&followUps).Error
}

// InsertProblemStatements bulk-inserts problem statements for a meeting
func (r *ExtractionRepository) InsertProblemStatements(ctx context.Context, problems []*entities.ProblemStatement) error {
	if len(problems) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&problems).Error
}

// ListDecisions returns all decisions for a meeting
func (r *ExtractionRepository) ListDecisions(ctx context.Context, meetingID uuid.UUID) ([]entities.Decision, error) {
	var decisions []entities.Decision
	if err := r.db.WithContext(ctx).Where("meeting_id = ?", meetingID).Find(&decisions).Error; err != nil {
		return nil, err
	}
	return decisions, nil
}

// ListActionItems returns all action items for a meeting
func (r *ExtractionRepository) ListActionItems(ctx context.Context, meetingID uuid.UUID) ([]entities.ActionItem, error) {
	var items []entities.ActionItem
	if err := r.db.WithContext(ctx).Where("meeting_id = ?", meetingID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListFollowUps returns all follow-ups for a meeting
func (r *ExtractionRepository) ListFollowUps(ctx context.Context, meetingID uuid.UUID) ([]entities.FollowUp, error) {
	var followUps []entities.FollowUp
	if err := r.db.WithContext(ctx).Where("meeting_id = ?", meetingID).Find(&followUps).Error; err != nil {
		return nil, err
	}
	return followUps, nil
}

// ListProblemStatements returns all problem statements for a meeting
func (r *ExtractionRepository) ListProblemStatements(ctx context.Context, meetingID uuid.UUID) ([]entities.ProblemStatement, error) {
	var problems []entities.ProblemStatement
	if err := r.db.WithContext(ctx).Where("meeting_id = ?", meetingID).Find(&problems).Error; err != nil {
		return nil, err
	}
	return problems, nil
}

// FindActionItem retrieves an action item by ID
func (r *ExtractionRepository) FindActionItem(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error) {
	var item entities.ActionItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// UpdateActionItem saves an action item
func (r *ExtractionRepository) UpdateActionItem(ctx context.Context, item *entities.ActionItem) error {
	if item == nil {
		return errors.New("action item cannot be nil")
	}
	return r.db.WithContext(ctx).
		Model(&entities.ActionItem{}).
		Where("id = ?", item.ID).
		Save(item).Error
}

// UpdateActionItemStatus updates only the workflow status of an action item
func (r *ExtractionRepository) UpdateActionItemStatus(ctx context.Context, id uuid.UUID, status entities.ActionStatus) error {
	return r.db.WithContext(ctx).
		Model(&entities.ActionItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}
