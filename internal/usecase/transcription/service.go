package transcription

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/repositories"
)

// Backend is a pluggable speech-to-text provider. Implementations must treat
// the context as the overall deadline for the call.
type Backend interface {
	Name() string
	Configured() bool
	Transcribe(ctx context.Context, filename string, audio io.Reader, language string) (string, error)
}

// AudioURLProvider resolves a stored audio object to a fetchable URL
type AudioURLProvider interface {
	GetAudioURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

// Service turns a meeting's stored audio into a transcript row. A row is
// created in processing state before any network I/O so every attempt leaves
// an audit trail, then receives exactly one terminal update.
type Service struct {
	transcripts repositories.TranscriptRepository
	storage     AudioURLProvider
	backend     Backend
	httpClient  *http.Client
	language    string
	timeout     time.Duration
	logger      *zap.Logger
}

// NewService creates a transcription service
func NewService(
	transcripts repositories.TranscriptRepository,
	storage AudioURLProvider,
	backend Backend,
	language string,
	timeout time.Duration,
	logger *zap.Logger,
) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &Service{
		transcripts: transcripts,
		storage:     storage,
		backend:     backend,
		httpClient:  &http.Client{Timeout: 60 * time.Second},
		language:    language,
		timeout:     timeout,
		logger:      logger,
	}
}

// Transcribe fetches the meeting's audio, runs the configured backend, and
// returns the ID of the transcript row. On failure the row is marked failed
// with the reason and the stage error is returned.
func (s *Service) Transcribe(ctx context.Context, meetingID uuid.UUID, audioPath string) (uuid.UUID, error) {
	if !s.backend.Configured() {
		return uuid.Nil, fmt.Errorf("%s backend: %w", s.backend.Name(), entities.ErrConfigurationMissing)
	}

	transcript := entities.NewTranscript(meetingID)
	transcript.ModelUsed = s.backend.Name()
	if err := s.transcripts.Create(ctx, transcript); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create transcript record: %w", err)
	}

	s.logger.Info("transcription started",
		zap.String("meeting_id", meetingID.String()),
		zap.String("transcript_id", transcript.ID.String()),
		zap.String("backend", s.backend.Name()),
	)

	audioFile, err := s.fetchAudio(ctx, audioPath)
	if err != nil {
		s.markFailed(ctx, transcript.ID, err.Error())
		return transcript.ID, fmt.Errorf("%w: %v", entities.ErrAudioUnavailable, err)
	}
	defer func() {
		audioFile.Close()
		os.Remove(audioFile.Name())
	}()

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.backend.Transcribe(callCtx, path.Base(audioPath), audioFile, s.language)
	if err != nil {
		s.markFailed(ctx, transcript.ID, err.Error())
		return transcript.ID, fmt.Errorf("%w: %v", entities.ErrTranscriptionFailed, err)
	}

	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		// A completed transcript always carries usable text; a blank
		// backend response is a failure, not an empty success.
		reason := "backend returned empty transcript"
		s.markFailed(ctx, transcript.ID, reason)
		return transcript.ID, fmt.Errorf("%w: %s", entities.ErrTranscriptionFailed, reason)
	}
	if err := s.transcripts.MarkCompleted(ctx, transcript.ID, raw, cleaned); err != nil {
		return transcript.ID, fmt.Errorf("failed to store transcript: %w", err)
	}

	s.logger.Info("transcription completed",
		zap.String("transcript_id", transcript.ID.String()),
		zap.Int("chars", len(cleaned)),
	)
	return transcript.ID, nil
}

// fetchAudio downloads the stored audio to a temp file. Staging locally keeps
// the storage connection short and gives the backend a rewindable reader.
func (s *Service) fetchAudio(ctx context.Context, audioPath string) (*os.File, error) {
	url, err := s.storage.GetAudioURL(ctx, audioPath, 15*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve audio url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("audio fetch returned status %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp("", "meeting-audio-*"+path.Ext(audioPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("failed to download audio: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, err
	}
	return tmp, nil
}

func (s *Service) markFailed(ctx context.Context, id uuid.UUID, reason string) {
	if err := s.transcripts.MarkFailed(ctx, id, reason); err != nil {
		s.logger.Error("failed to mark transcript failed",
			zap.String("transcript_id", id.String()),
			zap.Error(err),
		)
	}
}
