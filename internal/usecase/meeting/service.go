package meeting

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-intelligence/errors"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/repositories"
)

const (
	maxAudioSizeMB  = 100
	maxAudioSize    = maxAudioSizeMB * 1024 * 1024
	detailCacheTTL  = 5 * time.Minute
	presignedExpiry = 24 * time.Hour
)

var allowedAudioExtensions = map[string]string{
	".wav": "audio/wav",
	".mp3": "audio/mpeg",
}

// AudioStorage is the object storage dependency for meeting audio
type AudioStorage interface {
	UploadAudio(ctx context.Context, objectName string, reader io.ReadSeeker, size int64, contentType string) error
	GetAudioURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	DeleteAudio(ctx context.Context, objectName string) error
}

// Cache is the short-lived response cache dependency
type Cache interface {
	Set(ctx context.Context, key, value string, expiration time.Duration)
	Get(ctx context.Context, key string) (string, bool)
	Delete(ctx context.Context, key string)
}

// Service handles meeting CRUD, audio upload, and detail aggregation
type Service struct {
	meetings    repositories.MeetingRepository
	transcripts repositories.TranscriptRepository
	extractions repositories.ExtractionRepository
	storage     AudioStorage
	cache       Cache
	logger      *zap.Logger
}

// NewService creates a meeting service
func NewService(
	meetings repositories.MeetingRepository,
	transcripts repositories.TranscriptRepository,
	extractions repositories.ExtractionRepository,
	storage AudioStorage,
	cache Cache,
	logger *zap.Logger,
) *Service {
	return &Service{
		meetings:    meetings,
		transcripts: transcripts,
		extractions: extractions,
		storage:     storage,
		cache:       cache,
		logger:      logger,
	}
}

// CreateInput represents input for creating a meeting
type CreateInput struct {
	Title       string
	ProjectID   *uuid.UUID
	MeetingDate time.Time
	MeetingTime string
	MeetingType entities.MeetingType
	Attendees   []string
	Source      string
}

// Create creates a new meeting owned by the user
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*entities.Meeting, error) {
	meeting := entities.NewMeeting(userID, input.Title)
	meeting.ProjectID = input.ProjectID
	meeting.MeetingDate = input.MeetingDate
	meeting.MeetingTime = input.MeetingTime
	meeting.Attendees = input.Attendees
	if input.MeetingType != "" {
		meeting.MeetingType = input.MeetingType
	}
	if input.Source != "" {
		meeting.Source = input.Source
	}

	if err := s.meetings.Create(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	return meeting, nil
}

// List returns all meetings owned by the user
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]entities.Meeting, error) {
	return s.meetings.ListByUser(ctx, userID)
}

// Get returns a single meeting owned by the user
func (s *Service) Get(ctx context.Context, meetingID, userID uuid.UUID) (*entities.Meeting, error) {
	meeting, err := s.meetings.FindByIDForUser(ctx, meetingID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find meeting: %w", err)
	}
	if meeting == nil {
		return nil, entities.ErrMeetingNotFound
	}
	return meeting, nil
}

// UpdateInput represents fields that can change after creation
type UpdateInput struct {
	Title       *string
	MeetingDate *time.Time
	MeetingTime *string
	MeetingType *entities.MeetingType
	Attendees   []string
	Summary     *string
}

// Update applies partial changes to a meeting
func (s *Service) Update(ctx context.Context, meetingID, userID uuid.UUID, input UpdateInput) (*entities.Meeting, error) {
	meeting, err := s.Get(ctx, meetingID, userID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		meeting.Title = *input.Title
	}
	if input.MeetingDate != nil {
		meeting.MeetingDate = *input.MeetingDate
	}
	if input.MeetingTime != nil {
		meeting.MeetingTime = *input.MeetingTime
	}
	if input.MeetingType != nil {
		meeting.MeetingType = *input.MeetingType
	}
	if input.Attendees != nil {
		meeting.Attendees = input.Attendees
	}
	if input.Summary != nil {
		meeting.Summary = *input.Summary
	}

	if err := s.meetings.Update(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}
	s.cache.Delete(ctx, detailCacheKey(meetingID))
	return meeting, nil
}

// Delete removes a meeting and its stored audio
func (s *Service) Delete(ctx context.Context, meetingID, userID uuid.UUID) error {
	meeting, err := s.Get(ctx, meetingID, userID)
	if err != nil {
		return err
	}

	if meeting.HasAudio() {
		if err := s.storage.DeleteAudio(ctx, meeting.AudioFilePath); err != nil {
			// Orphaned objects are preferable to undeletable meetings
			s.logger.Warn("failed to delete audio object",
				zap.String("meeting_id", meetingID.String()),
				zap.Error(err),
			)
		}
	}

	if err := s.meetings.Delete(ctx, meetingID); err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	s.cache.Delete(ctx, detailCacheKey(meetingID))
	return nil
}

// UploadAudio validates and stores an audio recording for a meeting, then
// records the object path on the meeting row.
func (s *Service) UploadAudio(ctx context.Context, meetingID, userID uuid.UUID, filename string, size int64, reader io.ReadSeeker) (*entities.Meeting, error) {
	meeting, err := s.Get(ctx, meetingID, userID)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowedAudioExtensions[ext]
	if !ok {
		return nil, apperrors.ErrUploadInvalidType(".wav, .mp3")
	}
	if size > maxAudioSize {
		return nil, apperrors.ErrUploadTooLarge(maxAudioSizeMB)
	}

	objectName := fmt.Sprintf("meetings/%s_%s%s", meetingID, uuid.New(), ext)
	if err := s.storage.UploadAudio(ctx, objectName, reader, size, contentType); err != nil {
		return nil, apperrors.ErrStorageFailed("upload audio", err)
	}

	fileURL, err := s.storage.GetAudioURL(ctx, objectName, presignedExpiry)
	if err != nil {
		return nil, apperrors.ErrStorageFailed("resolve audio url", err)
	}

	if err := s.meetings.UpdateAudio(ctx, meetingID, objectName, fileURL); err != nil {
		return nil, fmt.Errorf("failed to record audio path: %w", err)
	}

	meeting.AudioFilePath = objectName
	meeting.AudioFileURL = fileURL
	s.cache.Delete(ctx, detailCacheKey(meetingID))

	s.logger.Info("audio uploaded",
		zap.String("meeting_id", meetingID.String()),
		zap.String("object", objectName),
		zap.Int64("size", size),
	)
	return meeting, nil
}

// Detail aggregates a meeting with its latest transcript and all extracted
// intelligence
type Detail struct {
	Meeting           *entities.Meeting           `json:"meeting"`
	Transcript        *entities.Transcript        `json:"transcript,omitempty"`
	Decisions         []entities.Decision         `json:"decisions"`
	ActionItems       []entities.ActionItem       `json:"action_items"`
	FollowUps         []entities.FollowUp         `json:"follow_ups"`
	ProblemStatements []entities.ProblemStatement `json:"problem_statements"`
}

// GetDetail returns the aggregated view of a meeting. The aggregation joins
// five tables, so completed meetings are served from cache for a few minutes.
func (s *Service) GetDetail(ctx context.Context, meetingID, userID uuid.UUID) (*Detail, error) {
	meeting, err := s.Get(ctx, meetingID, userID)
	if err != nil {
		return nil, err
	}

	cacheKey := detailCacheKey(meetingID)
	if cached, ok := s.cache.Get(ctx, cacheKey); ok {
		var detail Detail
		if err := json.Unmarshal([]byte(cached), &detail); err == nil {
			return &detail, nil
		}
		s.cache.Delete(ctx, cacheKey)
	}

	detail := &Detail{Meeting: meeting}

	if detail.Transcript, err = s.transcripts.FindLatestByMeetingID(ctx, meetingID); err != nil {
		return nil, fmt.Errorf("failed to load transcript: %w", err)
	}
	if detail.Decisions, err = s.extractions.ListDecisions(ctx, meetingID); err != nil {
		return nil, fmt.Errorf("failed to load decisions: %w", err)
	}
	if detail.ActionItems, err = s.extractions.ListActionItems(ctx, meetingID); err != nil {
		return nil, fmt.Errorf("failed to load action items: %w", err)
	}
	if detail.FollowUps, err = s.extractions.ListFollowUps(ctx, meetingID); err != nil {
		return nil, fmt.Errorf("failed to load follow-ups: %w", err)
	}
	if detail.ProblemStatements, err = s.extractions.ListProblemStatements(ctx, meetingID); err != nil {
		return nil, fmt.Errorf("failed to load problem statements: %w", err)
	}

	// Only completed meetings are stable enough to cache
	if meeting.Status == entities.MeetingStatusCompleted {
		if b, err := json.Marshal(detail); err == nil {
			s.cache.Set(ctx, cacheKey, string(b), detailCacheTTL)
		}
	}
	return detail, nil
}

// InvalidateDetail drops the cached aggregation after reprocessing
func (s *Service) InvalidateDetail(ctx context.Context, meetingID uuid.UUID) {
	s.cache.Delete(ctx, detailCacheKey(meetingID))
}

func detailCacheKey(meetingID uuid.UUID) string {
	return "meeting:detail:" + meetingID.String()
}
