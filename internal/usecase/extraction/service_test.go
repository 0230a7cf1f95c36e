package extraction

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
)

// fakeLLM routes each category prompt to a canned response
type fakeLLM struct {
	configured bool
	decisions  string
	actions    string
	followUps  string
	problems   string
	errFor     string // category substring that should return an error
}

func (f *fakeLLM) Configured() bool { return f.configured }

func (f *fakeLLM) ChatCompletion(_ context.Context, _, prompt string, _ float64, _ int) (string, error) {
	switch {
	case strings.Contains(prompt, "decisions made during the meeting"):
		if f.errFor == "decisions" {
			return "", errors.New("rate limited")
		}
		return f.decisions, nil
	case strings.Contains(prompt, "action items, tasks, and commitments"):
		if f.errFor == "action_items" {
			return "", errors.New("rate limited")
		}
		return f.actions, nil
	case strings.Contains(prompt, "follow-up items that need tracking"):
		if f.errFor == "follow_ups" {
			return "", errors.New("rate limited")
		}
		return f.followUps, nil
	case strings.Contains(prompt, "problem statements, concerns, or issues"):
		if f.errFor == "problem_statements" {
			return "", errors.New("rate limited")
		}
		return f.problems, nil
	}
	return "", errors.New("unrecognized prompt")
}

type fakeExtractionRepo struct {
	decisions []*entities.Decision
	actions   []*entities.ActionItem
	followUps []*entities.FollowUp
	problems  []*entities.ProblemStatement
	failOn    string
}

func (f *fakeExtractionRepo) InsertDecisions(_ context.Context, d []*entities.Decision) error {
	if f.failOn == "decisions" {
		return errors.New("db down")
	}
	f.decisions = append(f.decisions, d...)
	return nil
}

func (f *fakeExtractionRepo) InsertActionItems(_ context.Context, a []*entities.ActionItem) error {
	if f.failOn == "action_items" {
		return errors.New("db down")
	}
	f.actions = append(f.actions, a...)
	return nil
}

func (f *fakeExtractionRepo) InsertFollowUps(_ context.Context, fu []*entities.FollowUp) error {
	if f.failOn == "follow_ups" {
		return errors.New("db down")
	}
	f.followUps = append(f.followUps, fu...)
	return nil
}

func (f *fakeExtractionRepo) InsertProblemStatements(_ context.Context, p []*entities.ProblemStatement) error {
	if f.failOn == "problem_statements" {
		return errors.New("db down")
	}
	f.problems = append(f.problems, p...)
	return nil
}

func (f *fakeExtractionRepo) ListDecisions(_ context.Context, meetingID uuid.UUID) ([]entities.Decision, error) {
	var out []entities.Decision
	for _, d := range f.decisions {
		if d.MeetingID == meetingID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeExtractionRepo) ListActionItems(_ context.Context, meetingID uuid.UUID) ([]entities.ActionItem, error) {
	var out []entities.ActionItem
	for _, a := range f.actions {
		if a.MeetingID == meetingID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeExtractionRepo) ListFollowUps(_ context.Context, meetingID uuid.UUID) ([]entities.FollowUp, error) {
	var out []entities.FollowUp
	for _, fu := range f.followUps {
		if fu.MeetingID == meetingID {
			out = append(out, *fu)
		}
	}
	return out, nil
}

func (f *fakeExtractionRepo) ListProblemStatements(_ context.Context, meetingID uuid.UUID) ([]entities.ProblemStatement, error) {
	var out []entities.ProblemStatement
	for _, p := range f.problems {
		if p.MeetingID == meetingID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeExtractionRepo) FindActionItem(_ context.Context, id uuid.UUID) (*entities.ActionItem, error) {
	for _, a := range f.actions {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeExtractionRepo) UpdateActionItem(_ context.Context, _ *entities.ActionItem) error { return nil }

func (f *fakeExtractionRepo) UpdateActionItemStatus(_ context.Context, _ uuid.UUID, _ entities.ActionStatus) error {
	return nil
}

func goodLLM() *fakeLLM {
	return &fakeLLM{
		configured: true,
		decisions:  `[{"decision": "Launch the product on Friday", "confidence": 0.95}]`,
		actions:    `[{"action_type": "Email", "description": "Send launch announcement", "assigned_to": "Alice", "confidence": 0.9}]`,
		followUps:  `[{"description": "Check beta feedback", "confidence": 0.8}]`,
		problems:   `[{"statement": "Signup flow drops mobile users", "confidence": 0.85}]`,
	}
}

func TestExtractAllCategories(t *testing.T) {
	svc := NewService(goodLLM(), &fakeExtractionRepo{}, zap.NewNop())
	meetingID := uuid.New()

	result, err := svc.Extract(context.Background(), meetingID, "We agreed to launch Friday. Alice emails the announcement.")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(result.Failures) != 0 {
		t.Errorf("no category should fail, got %v", result.Failures)
	}
	if result.TotalItems() != 4 {
		t.Errorf("total items = %d, want 4", result.TotalItems())
	}
	if len(result.Decisions) != 1 || !strings.Contains(result.Decisions[0].DecisionText, "Friday") {
		t.Errorf("decisions = %+v", result.Decisions)
	}
	if len(result.ActionItems) != 1 {
		t.Fatalf("expected 1 action item, got %d", len(result.ActionItems))
	}
	item := result.ActionItems[0]
	if item.ActionType != entities.ActionTypeEmail {
		t.Errorf("action type = %s, want Email", item.ActionType)
	}
	if item.AssignedTo == nil || *item.AssignedTo != "Alice" {
		t.Errorf("assigned_to = %v, want Alice", item.AssignedTo)
	}
}

func TestExtractCategoryFailureIsolated(t *testing.T) {
	llm := goodLLM()
	llm.followUps = "Sorry, I can only answer in prose."
	svc := NewService(llm, &fakeExtractionRepo{}, zap.NewNop())

	result, err := svc.Extract(context.Background(), uuid.New(), "transcript text")
	if err != nil {
		t.Fatalf("a single bad category must not fail the run: %v", err)
	}

	if _, ok := result.Failures["follow_ups"]; !ok {
		t.Error("follow_ups should be recorded as failed")
	}
	if len(result.FollowUps) != 0 {
		t.Errorf("failed category should contribute no items, got %d", len(result.FollowUps))
	}
	if len(result.Decisions) != 1 || len(result.ActionItems) != 1 || len(result.ProblemStatements) != 1 {
		t.Error("other categories should still produce items")
	}
}

func TestExtractModelErrorIsolated(t *testing.T) {
	llm := goodLLM()
	llm.errFor = "decisions"
	svc := NewService(llm, &fakeExtractionRepo{}, zap.NewNop())

	result, err := svc.Extract(context.Background(), uuid.New(), "transcript text")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if reason := result.Failures["decisions"]; !strings.Contains(reason, "rate limited") {
		t.Errorf("failure reason = %q", reason)
	}
	if len(result.ActionItems) != 1 {
		t.Error("remaining categories should be unaffected")
	}
}

func TestExtractEmptyTranscript(t *testing.T) {
	svc := NewService(goodLLM(), &fakeExtractionRepo{}, zap.NewNop())

	for _, transcript := range []string{"", "   \n\t  "} {
		if _, err := svc.Extract(context.Background(), uuid.New(), transcript); !errors.Is(err, entities.ErrNoTranscript) {
			t.Errorf("transcript %q: expected ErrNoTranscript, got %v", transcript, err)
		}
	}
}

func TestExtractUnconfiguredClient(t *testing.T) {
	svc := NewService(&fakeLLM{configured: false}, &fakeExtractionRepo{}, zap.NewNop())

	_, err := svc.Extract(context.Background(), uuid.New(), "real transcript")
	if !errors.Is(err, entities.ErrExtractionUnavailable) {
		t.Fatalf("expected ErrExtractionUnavailable, got %v", err)
	}
}

func TestPersistPartialFailure(t *testing.T) {
	repo := &fakeExtractionRepo{failOn: "decisions"}
	svc := NewService(goodLLM(), repo, zap.NewNop())
	meetingID := uuid.New()

	result, err := svc.Extract(context.Background(), meetingID, "transcript text")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	err = svc.Persist(context.Background(), result)
	if err == nil {
		t.Fatal("expected an error when one category fails to persist")
	}
	if !strings.Contains(err.Error(), "decisions") {
		t.Errorf("error should name the failed category: %v", err)
	}

	// The other categories must still have been written
	if len(repo.actions) != 1 || len(repo.followUps) != 1 || len(repo.problems) != 1 {
		t.Error("remaining categories should persist despite the failure")
	}
}

func TestPersistEmptyResultIsNoop(t *testing.T) {
	repo := &fakeExtractionRepo{failOn: "decisions"}
	svc := NewService(goodLLM(), repo, zap.NewNop())

	if err := svc.Persist(context.Background(), &Result{MeetingID: uuid.New()}); err != nil {
		t.Fatalf("persisting an empty result should not touch the failing repo: %v", err)
	}
}
