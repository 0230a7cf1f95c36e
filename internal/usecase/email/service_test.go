package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
)

type fakeDraftRepo struct {
	drafts map[uuid.UUID]*entities.EmailDraft
}

func newFakeDraftRepo(drafts ...*entities.EmailDraft) *fakeDraftRepo {
	repo := &fakeDraftRepo{drafts: make(map[uuid.UUID]*entities.EmailDraft)}
	for _, d := range drafts {
		repo.drafts[d.ID] = d
	}
	return repo
}

func (f *fakeDraftRepo) Create(_ context.Context, d *entities.EmailDraft) error {
	f.drafts[d.ID] = d
	return nil
}

func (f *fakeDraftRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.EmailDraft, error) {
	return f.drafts[id], nil
}

func (f *fakeDraftRepo) ListByMeeting(_ context.Context, meetingID uuid.UUID) ([]entities.EmailDraft, error) {
	var out []entities.EmailDraft
	for _, d := range f.drafts {
		if d.MeetingID == meetingID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDraftRepo) Update(_ context.Context, d *entities.EmailDraft) error {
	f.drafts[d.ID] = d
	return nil
}

func (f *fakeDraftRepo) MarkSent(_ context.Context, id uuid.UUID, sentAt time.Time) error {
	f.drafts[id].SentAt = &sentAt
	return nil
}

func (f *fakeDraftRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.drafts, id)
	return nil
}

type fakeMeetingRepo struct {
	meeting *entities.Meeting
}

func (f *fakeMeetingRepo) Create(_ context.Context, _ *entities.Meeting) error { return nil }
func (f *fakeMeetingRepo) FindByID(_ context.Context, _ uuid.UUID) (*entities.Meeting, error) {
	return f.meeting, nil
}

func (f *fakeMeetingRepo) FindByIDForUser(_ context.Context, id, userID uuid.UUID) (*entities.Meeting, error) {
	if f.meeting == nil || f.meeting.ID != id || f.meeting.UserID != userID {
		return nil, nil
	}
	return f.meeting, nil
}

func (f *fakeMeetingRepo) ListByUser(_ context.Context, _ uuid.UUID) ([]entities.Meeting, error) {
	return nil, nil
}
func (f *fakeMeetingRepo) Update(_ context.Context, _ *entities.Meeting) error { return nil }
func (f *fakeMeetingRepo) UpdateStatus(_ context.Context, _ uuid.UUID, _ entities.MeetingStatus) error {
	return nil
}
func (f *fakeMeetingRepo) UpdateAudio(_ context.Context, _ uuid.UUID, _, _ string) error { return nil }
func (f *fakeMeetingRepo) Delete(_ context.Context, _ uuid.UUID) error                   { return nil }

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) Configured() bool { return true }

func (f *fakeSender) Send(to, _ []string, subject, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, subject)
	return nil
}

func TestCreateAndSendDraft(t *testing.T) {
	owner := uuid.New()
	meeting := entities.NewMeeting(owner, "Launch planning")
	drafts := newFakeDraftRepo()
	sender := &fakeSender{}
	svc := NewService(drafts, &fakeMeetingRepo{meeting: meeting}, sender, zap.NewNop())

	draft, err := svc.Create(context.Background(), owner, CreateInput{
		MeetingID:  meeting.ID,
		Subject:    "Launch announcement",
		Body:       "We launch Friday.",
		Recipients: []string{"team@example.com"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if draft.SentAt != nil {
		t.Error("new drafts must be unsent")
	}

	sentDraft, err := svc.Send(context.Background(), draft.ID)
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if sentDraft.SentAt == nil {
		t.Error("sent draft should carry a sent timestamp")
	}
	if len(sender.sent) != 1 || sender.sent[0] != "Launch announcement" {
		t.Errorf("sender calls = %v", sender.sent)
	}
}

func TestSendTwiceFails(t *testing.T) {
	owner := uuid.New()
	meeting := entities.NewMeeting(owner, "Standup")
	drafts := newFakeDraftRepo()
	sender := &fakeSender{}
	svc := NewService(drafts, &fakeMeetingRepo{meeting: meeting}, sender, zap.NewNop())

	draft, _ := svc.Create(context.Background(), owner, CreateInput{
		MeetingID:  meeting.ID,
		Subject:    "Notes",
		Body:       "...",
		Recipients: []string{"team@example.com"},
	})

	if _, err := svc.Send(context.Background(), draft.ID); err != nil {
		t.Fatalf("first Send failed: %v", err)
	}
	if _, err := svc.Send(context.Background(), draft.ID); !errors.Is(err, entities.ErrDraftAlreadySent) {
		t.Fatalf("expected ErrDraftAlreadySent, got %v", err)
	}
	if len(sender.sent) != 1 {
		t.Errorf("message should be delivered exactly once, got %d", len(sender.sent))
	}
}

func TestSendFailureLeavesDraftUnsent(t *testing.T) {
	owner := uuid.New()
	meeting := entities.NewMeeting(owner, "Standup")
	drafts := newFakeDraftRepo()
	sender := &fakeSender{err: errors.New("relay refused")}
	svc := NewService(drafts, &fakeMeetingRepo{meeting: meeting}, sender, zap.NewNop())

	draft, _ := svc.Create(context.Background(), owner, CreateInput{
		MeetingID:  meeting.ID,
		Subject:    "Notes",
		Body:       "...",
		Recipients: []string{"team@example.com"},
	})

	if _, err := svc.Send(context.Background(), draft.ID); err == nil {
		t.Fatal("expected send failure")
	}
	if drafts.drafts[draft.ID].SentAt != nil {
		t.Error("failed send must not stamp the draft")
	}
}

func TestUpdateSentDraftRejected(t *testing.T) {
	owner := uuid.New()
	meeting := entities.NewMeeting(owner, "Standup")
	draft := entities.NewEmailDraft(meeting.ID, "Notes", "...", []string{"a@example.com"})
	now := time.Now()
	draft.SentAt = &now

	svc := NewService(newFakeDraftRepo(draft), &fakeMeetingRepo{meeting: meeting}, &fakeSender{}, zap.NewNop())

	subject := "Edited"
	if _, err := svc.Update(context.Background(), draft.ID, UpdateInput{Subject: &subject}); !errors.Is(err, entities.ErrDraftAlreadySent) {
		t.Fatalf("expected ErrDraftAlreadySent, got %v", err)
	}
}
