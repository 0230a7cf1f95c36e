package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-intelligence/errors"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	"github.com/johnquangdev/meeting-intelligence/internal/usecase/extraction"
)

type fakeMeetingRepo struct {
	meetings map[uuid.UUID]*entities.Meeting
	statuses map[uuid.UUID]entities.MeetingStatus
}

func newFakeMeetingRepo(meetings ...*entities.Meeting) *fakeMeetingRepo {
	repo := &fakeMeetingRepo{
		meetings: make(map[uuid.UUID]*entities.Meeting),
		statuses: make(map[uuid.UUID]entities.MeetingStatus),
	}
	for _, m := range meetings {
		repo.meetings[m.ID] = m
	}
	return repo
}

func (f *fakeMeetingRepo) Create(_ context.Context, m *entities.Meeting) error {
	f.meetings[m.ID] = m
	return nil
}

func (f *fakeMeetingRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Meeting, error) {
	return f.meetings[id], nil
}

func (f *fakeMeetingRepo) FindByIDForUser(_ context.Context, id, userID uuid.UUID) (*entities.Meeting, error) {
	m := f.meetings[id]
	if m == nil || m.UserID != userID {
		return nil, nil
	}
	return m, nil
}

func (f *fakeMeetingRepo) ListByUser(_ context.Context, _ uuid.UUID) ([]entities.Meeting, error) {
	return nil, nil
}

func (f *fakeMeetingRepo) Update(_ context.Context, m *entities.Meeting) error {
	f.meetings[m.ID] = m
	return nil
}

func (f *fakeMeetingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entities.MeetingStatus) error {
	f.statuses[id] = status
	return nil
}

func (f *fakeMeetingRepo) UpdateAudio(_ context.Context, _ uuid.UUID, _, _ string) error { return nil }
func (f *fakeMeetingRepo) Delete(_ context.Context, _ uuid.UUID) error                   { return nil }

type fakeTranscriptStore struct {
	transcripts map[uuid.UUID]*entities.Transcript
}

func (f *fakeTranscriptStore) Create(_ context.Context, t *entities.Transcript) error {
	f.transcripts[t.ID] = t
	return nil
}

func (f *fakeTranscriptStore) FindByID(_ context.Context, id uuid.UUID) (*entities.Transcript, error) {
	return f.transcripts[id], nil
}

func (f *fakeTranscriptStore) FindLatestByMeetingID(_ context.Context, _ uuid.UUID) (*entities.Transcript, error) {
	return nil, nil
}

func (f *fakeTranscriptStore) MarkCompleted(_ context.Context, _ uuid.UUID, _, _ string) error {
	return nil
}

func (f *fakeTranscriptStore) MarkFailed(_ context.Context, _ uuid.UUID, _ string) error { return nil }

// fakeTranscriber simulates the transcription stage: on success it writes a
// completed transcript row like the real service would.
type fakeTranscriber struct {
	store *fakeTranscriptStore
	text  string
	err   error
	calls int
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, meetingID uuid.UUID, _ string) (uuid.UUID, error) {
	f.calls++
	if f.err != nil {
		return uuid.Nil, f.err
	}
	tr := entities.NewTranscript(meetingID)
	tr.Status = entities.TranscriptStatusCompleted
	tr.RawTranscript = f.text
	tr.CleanedTranscript = strings.TrimSpace(f.text)
	f.store.Create(ctx, tr)
	return tr.ID, nil
}

type fakeExtractor struct {
	extractErr error
	persistErr error
	extracted  []string
	persisted  int
}

func (f *fakeExtractor) Extract(_ context.Context, meetingID uuid.UUID, transcript string) (*extraction.Result, error) {
	if f.extractErr != nil {
		return nil, f.extractErr
	}
	f.extracted = append(f.extracted, transcript)
	return &extraction.Result{
		MeetingID: meetingID,
		Decisions: []*entities.Decision{
			{ID: uuid.New(), MeetingID: meetingID, DecisionText: "Launch on Friday", ConfidenceScore: 0.95},
		},
	}, nil
}

func (f *fakeExtractor) Persist(_ context.Context, _ *extraction.Result) error {
	if f.persistErr != nil {
		return f.persistErr
	}
	f.persisted++
	return nil
}

func meetingWithAudio() *entities.Meeting {
	m := entities.NewMeeting(uuid.New(), "Launch planning")
	m.AudioFilePath = "audio/" + m.ID.String() + ".wav"
	return m
}

func appCode(t *testing.T, err error) apperrors.ErrorCode {
	t.Helper()
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

func TestProcessMeetingSuccess(t *testing.T) {
	meeting := meetingWithAudio()
	meetings := newFakeMeetingRepo(meeting)
	store := &fakeTranscriptStore{transcripts: make(map[uuid.UUID]*entities.Transcript)}
	transcriber := &fakeTranscriber{store: store, text: " We will launch on Friday. "}
	extractor := &fakeExtractor{}

	svc := NewService(meetings, store, transcriber, extractor, zap.NewNop())

	transcriptID, err := svc.ProcessMeeting(context.Background(), meeting.ID)
	if err != nil {
		t.Fatalf("ProcessMeeting failed: %v", err)
	}
	if transcriptID == uuid.Nil {
		t.Fatal("expected a transcript id")
	}
	if len(extractor.extracted) != 1 || extractor.extracted[0] != "We will launch on Friday." {
		t.Errorf("extractor should receive the cleaned transcript, got %v", extractor.extracted)
	}
	if extractor.persisted != 1 {
		t.Errorf("expected 1 persist call, got %d", extractor.persisted)
	}
	if meetings.statuses[meeting.ID] != entities.MeetingStatusCompleted {
		t.Errorf("meeting should be completed, got %s", meetings.statuses[meeting.ID])
	}
}

func TestProcessMeetingNotFound(t *testing.T) {
	svc := NewService(newFakeMeetingRepo(), &fakeTranscriptStore{transcripts: map[uuid.UUID]*entities.Transcript{}}, &fakeTranscriber{}, &fakeExtractor{}, zap.NewNop())

	_, err := svc.ProcessMeeting(context.Background(), uuid.New())
	if code := appCode(t, err); code != apperrors.ErrorCode_NOT_FOUND {
		t.Errorf("code = %s, want NOT_FOUND", code)
	}
}

func TestProcessMeetingWithoutAudio(t *testing.T) {
	meeting := entities.NewMeeting(uuid.New(), "No recording")
	meetings := newFakeMeetingRepo(meeting)
	transcriber := &fakeTranscriber{}

	svc := NewService(meetings, &fakeTranscriptStore{transcripts: map[uuid.UUID]*entities.Transcript{}}, transcriber, &fakeExtractor{}, zap.NewNop())

	_, err := svc.ProcessMeeting(context.Background(), meeting.ID)
	if code := appCode(t, err); code != apperrors.ErrorCode_AUDIO_REQUIRED {
		t.Errorf("code = %s, want AUDIO_REQUIRED", code)
	}
	if transcriber.calls != 0 {
		t.Error("transcription must not start for a meeting without audio")
	}
}

func TestProcessMeetingAudioUnavailable(t *testing.T) {
	meeting := meetingWithAudio()
	meetings := newFakeMeetingRepo(meeting)
	transcriber := &fakeTranscriber{
		err: fmt.Errorf("%w: audio fetch returned status 404", entities.ErrAudioUnavailable),
	}

	svc := NewService(meetings, &fakeTranscriptStore{transcripts: map[uuid.UUID]*entities.Transcript{}}, transcriber, &fakeExtractor{}, zap.NewNop())

	_, err := svc.ProcessMeeting(context.Background(), meeting.ID)
	if code := appCode(t, err); code != apperrors.ErrorCode_AUDIO_UNAVAILABLE {
		t.Errorf("code = %s, want AUDIO_UNAVAILABLE", code)
	}
	if _, touched := meetings.statuses[meeting.ID]; touched {
		t.Error("meeting status must stay untouched when transcription fails")
	}
}

func TestProcessMeetingTranscriptionFailed(t *testing.T) {
	meeting := meetingWithAudio()
	meetings := newFakeMeetingRepo(meeting)
	transcriber := &fakeTranscriber{
		err: fmt.Errorf("%w: model overloaded", entities.ErrTranscriptionFailed),
	}

	svc := NewService(meetings, &fakeTranscriptStore{transcripts: map[uuid.UUID]*entities.Transcript{}}, transcriber, &fakeExtractor{}, zap.NewNop())

	_, err := svc.ProcessMeeting(context.Background(), meeting.ID)
	if code := appCode(t, err); code != apperrors.ErrorCode_TRANSCRIPTION_FAILED {
		t.Errorf("code = %s, want TRANSCRIPTION_FAILED", code)
	}
}

func TestProcessMeetingExtractionUnavailable(t *testing.T) {
	meeting := meetingWithAudio()
	meetings := newFakeMeetingRepo(meeting)
	store := &fakeTranscriptStore{transcripts: make(map[uuid.UUID]*entities.Transcript)}
	transcriber := &fakeTranscriber{store: store, text: "some transcript"}
	extractor := &fakeExtractor{
		extractErr: fmt.Errorf("%w: model api key not set", entities.ErrExtractionUnavailable),
	}

	svc := NewService(meetings, store, transcriber, extractor, zap.NewNop())

	_, err := svc.ProcessMeeting(context.Background(), meeting.ID)
	if code := appCode(t, err); code != apperrors.ErrorCode_EXTRACTION_UNAVAILABLE {
		t.Errorf("code = %s, want EXTRACTION_UNAVAILABLE", code)
	}
	if _, touched := meetings.statuses[meeting.ID]; touched {
		t.Error("meeting status must stay untouched when extraction fails")
	}
}

func TestProcessMeetingPersistFailure(t *testing.T) {
	meeting := meetingWithAudio()
	meetings := newFakeMeetingRepo(meeting)
	store := &fakeTranscriptStore{transcripts: make(map[uuid.UUID]*entities.Transcript)}
	transcriber := &fakeTranscriber{store: store, text: "some transcript"}
	extractor := &fakeExtractor{persistErr: errors.New("db down")}

	svc := NewService(meetings, store, transcriber, extractor, zap.NewNop())

	_, err := svc.ProcessMeeting(context.Background(), meeting.ID)
	if code := appCode(t, err); code != apperrors.ErrorCode_PERSISTENCE_FAILED {
		t.Errorf("code = %s, want PERSISTENCE_FAILED", code)
	}
}

func TestReprocessingAppendsRuns(t *testing.T) {
	meeting := meetingWithAudio()
	meetings := newFakeMeetingRepo(meeting)
	store := &fakeTranscriptStore{transcripts: make(map[uuid.UUID]*entities.Transcript)}
	transcriber := &fakeTranscriber{store: store, text: "transcript"}
	extractor := &fakeExtractor{}

	svc := NewService(meetings, store, transcriber, extractor, zap.NewNop())

	first, err := svc.ProcessMeeting(context.Background(), meeting.ID)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := svc.ProcessMeeting(context.Background(), meeting.ID)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if first == second {
		t.Error("each run should produce its own transcript row")
	}
	if len(store.transcripts) != 2 {
		t.Errorf("expected 2 transcript rows, got %d", len(store.transcripts))
	}
	if extractor.persisted != 2 {
		t.Errorf("expected 2 persist calls, got %d", extractor.persisted)
	}
}
