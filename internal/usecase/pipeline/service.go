package pipeline

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-intelligence/errors"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/repositories"
	"github.com/johnquangdev/meeting-intelligence/internal/usecase/extraction"
)

// Transcriber produces a transcript row for a meeting's stored audio
type Transcriber interface {
	Transcribe(ctx context.Context, meetingID uuid.UUID, audioPath string) (uuid.UUID, error)
}

// Extractor runs structured extraction over a transcript and persists the
// typed results
type Extractor interface {
	Extract(ctx context.Context, meetingID uuid.UUID, transcript string) (*extraction.Result, error)
	Persist(ctx context.Context, result *extraction.Result) error
}

// Service orchestrates the meeting processing pipeline: transcribe the audio,
// extract structured intelligence, then mark the meeting completed. The
// meeting status is only touched on full success; a failed run leaves the
// meeting as it was so the caller can re-invoke processing. Re-processing
// appends a new transcript row and new extraction items rather than replacing
// earlier runs.
type Service struct {
	meetings    repositories.MeetingRepository
	transcripts repositories.TranscriptRepository
	transcriber Transcriber
	extractor   Extractor
	logger      *zap.Logger
}

// NewService creates a pipeline service
func NewService(
	meetings repositories.MeetingRepository,
	transcripts repositories.TranscriptRepository,
	transcriber Transcriber,
	extractor Extractor,
	logger *zap.Logger,
) *Service {
	return &Service{
		meetings:    meetings,
		transcripts: transcripts,
		transcriber: transcriber,
		extractor:   extractor,
		logger:      logger,
	}
}

// ProcessMeeting runs the full pipeline for a meeting and returns the ID of
// the transcript produced by this run.
func (s *Service) ProcessMeeting(ctx context.Context, meetingID uuid.UUID) (uuid.UUID, error) {
	meeting, err := s.meetings.FindByID(ctx, meetingID)
	if err != nil {
		return uuid.Nil, apperrors.ErrPersistenceFailed("find meeting", err)
	}
	if meeting == nil {
		return uuid.Nil, apperrors.ErrNotFound("Meeting")
	}
	if !meeting.HasAudio() {
		return uuid.Nil, apperrors.ErrAudioRequired(meetingID.String())
	}

	s.logger.Info("processing meeting",
		zap.String("meeting_id", meetingID.String()),
		zap.String("audio_path", meeting.AudioFilePath),
	)

	transcriptID, err := s.transcriber.Transcribe(ctx, meetingID, meeting.AudioFilePath)
	if err != nil {
		return uuid.Nil, mapTranscriptionError(err)
	}

	transcript, err := s.transcripts.FindByID(ctx, transcriptID)
	if err != nil {
		return uuid.Nil, apperrors.ErrPersistenceFailed("find transcript", err)
	}
	if transcript == nil {
		return uuid.Nil, apperrors.ErrNoTranscript(meetingID.String())
	}

	result, err := s.extractor.Extract(ctx, meetingID, transcript.CleanedTranscript)
	if err != nil {
		return uuid.Nil, mapExtractionError(err, meetingID)
	}
	if err := s.extractor.Persist(ctx, result); err != nil {
		return uuid.Nil, apperrors.ErrPersistenceFailed("store extraction", err)
	}

	if err := s.meetings.UpdateStatus(ctx, meetingID, entities.MeetingStatusCompleted); err != nil {
		return uuid.Nil, apperrors.ErrPersistenceFailed("update meeting status", err)
	}

	s.logger.Info("meeting processed",
		zap.String("meeting_id", meetingID.String()),
		zap.String("transcript_id", transcriptID.String()),
		zap.Int("extracted_items", result.TotalItems()),
	)
	return transcriptID, nil
}

func mapTranscriptionError(err error) error {
	switch {
	case errors.Is(err, entities.ErrAudioUnavailable):
		return apperrors.ErrAudioUnavailable(err)
	default:
		// backend failures and missing credentials both surface as a
		// transcription stage failure
		return apperrors.ErrTranscriptionFailed(err)
	}
}

func mapExtractionError(err error, meetingID uuid.UUID) error {
	switch {
	case errors.Is(err, entities.ErrNoTranscript):
		return apperrors.ErrNoTranscript(meetingID.String())
	case errors.Is(err, entities.ErrExtractionUnavailable):
		return apperrors.ErrExtractionUnavailable(err)
	default:
		return apperrors.ErrInternal(err)
	}
}
