package extraction

import (
	"testing"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
)

func TestParseDecisions(t *testing.T) {
	p := NewParser()
	meetingID := uuid.New()

	decisions, err := p.ParseDecisions(meetingID, `[
		{"decision": "Launch on Friday", "confidence": 0.95},
		{"decision": "Use the new logo", "confidence": 0.7}
	]`)
	if err != nil {
		t.Fatalf("ParseDecisions failed: %v", err)
	}
	if len(decisions) != 2 {
		t.Fatalf("expected 2 decisions, got %d", len(decisions))
	}
	if decisions[0].DecisionText != "Launch on Friday" {
		t.Errorf("decision text = %q", decisions[0].DecisionText)
	}
	if decisions[0].ConfidenceScore != 0.95 {
		t.Errorf("confidence = %v, want 0.95", decisions[0].ConfidenceScore)
	}
	if decisions[0].MeetingID != meetingID {
		t.Error("decision not tagged with meeting id")
	}
}

func TestParseDecisionsMarkdownFenced(t *testing.T) {
	p := NewParser()

	content := "```json\n[{\"decision\": \"Ship it\", \"confidence\": 0.9}]\n```"
	decisions, err := p.ParseDecisions(uuid.New(), content)
	if err != nil {
		t.Fatalf("fenced payload should parse: %v", err)
	}
	if len(decisions) != 1 || decisions[0].DecisionText != "Ship it" {
		t.Errorf("unexpected result: %+v", decisions)
	}
}

func TestParseDecisionsEmptyVsGarbage(t *testing.T) {
	p := NewParser()

	decisions, err := p.ParseDecisions(uuid.New(), "[]")
	if err != nil {
		t.Fatalf("empty array is a valid result: %v", err)
	}
	if len(decisions) != 0 {
		t.Errorf("expected no decisions, got %d", len(decisions))
	}

	if _, err := p.ParseDecisions(uuid.New(), "I could not find any decisions."); err == nil {
		t.Error("prose output should be a parse failure, not an empty result")
	}
}

func TestParseConfidenceClamped(t *testing.T) {
	p := NewParser()

	decisions, err := p.ParseDecisions(uuid.New(), `[
		{"decision": "a", "confidence": 1.7},
		{"decision": "b", "confidence": -0.2},
		{"decision": "c"}
	]`)
	if err != nil {
		t.Fatalf("ParseDecisions failed: %v", err)
	}
	if got := decisions[0].ConfidenceScore; got != 1.0 {
		t.Errorf("confidence above range should clamp to 1.0, got %v", got)
	}
	if got := decisions[1].ConfidenceScore; got != 0.0 {
		t.Errorf("confidence below range should clamp to 0.0, got %v", got)
	}
	if got := decisions[2].ConfidenceScore; got != 0.0 {
		t.Errorf("missing confidence should default to 0.0, got %v", got)
	}
}

func TestParseActionItems(t *testing.T) {
	p := NewParser()
	meetingID := uuid.New()

	items, err := p.ParseActionItems(meetingID, `[
		{
			"action_type": "Email",
			"description": "Send launch announcement",
			"assigned_to": "Alice",
			"due_date": "2026-09-04",
			"confidence": 0.9
		},
		{
			"description": "Look into the staging flake"
		}
	]`)
	if err != nil {
		t.Fatalf("ParseActionItems failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	first := items[0]
	if first.ActionType != entities.ActionTypeEmail {
		t.Errorf("action type = %s, want Email", first.ActionType)
	}
	if first.AssignedTo == nil || *first.AssignedTo != "Alice" {
		t.Errorf("assigned_to = %v, want Alice", first.AssignedTo)
	}
	if first.DueDate == nil || first.DueDate.Format("2006-01-02") != "2026-09-04" {
		t.Errorf("due date = %v", first.DueDate)
	}
	if first.Status != entities.ActionStatusPending {
		t.Errorf("new items must be pending, got %s", first.Status)
	}

	second := items[1]
	if second.ActionType != entities.ActionTypeTask {
		t.Errorf("missing action type should default to Task, got %s", second.ActionType)
	}
	if second.AssignedTo != nil {
		t.Errorf("missing assignee should be nil, got %v", *second.AssignedTo)
	}
	if second.DueDate != nil {
		t.Errorf("missing due date should be nil, got %v", second.DueDate)
	}
}

func TestParseActionItemsBadDueDate(t *testing.T) {
	p := NewParser()

	items, err := p.ParseActionItems(uuid.New(), `[
		{"action_type": "Task", "description": "x", "due_date": "next Tuesday", "confidence": 0.5}
	]`)
	if err != nil {
		t.Fatalf("ParseActionItems failed: %v", err)
	}
	if items[0].DueDate != nil {
		t.Errorf("unparseable due date should be dropped, got %v", items[0].DueDate)
	}
}

func TestParseActionItemsUnknownType(t *testing.T) {
	p := NewParser()

	items, err := p.ParseActionItems(uuid.New(), `[
		{"action_type": "Phone Call", "description": "x", "confidence": 0.5}
	]`)
	if err != nil {
		t.Fatalf("ParseActionItems failed: %v", err)
	}
	if items[0].ActionType != entities.ActionTypeTask {
		t.Errorf("unknown action type should fall back to Task, got %s", items[0].ActionType)
	}
}

func TestParseFollowUps(t *testing.T) {
	p := NewParser()

	followUps, err := p.ParseFollowUps(uuid.New(), `[
		{"description": "Check with design on mockups", "confidence": 0.85}
	]`)
	if err != nil {
		t.Fatalf("ParseFollowUps failed: %v", err)
	}
	if len(followUps) != 1 {
		t.Fatalf("expected 1 follow-up, got %d", len(followUps))
	}
	if followUps[0].Status != entities.FollowUpStatusTracked {
		t.Errorf("new follow-ups must start tracked, got %s", followUps[0].Status)
	}
}

func TestParseProblemStatements(t *testing.T) {
	p := NewParser()

	problems, err := p.ParseProblemStatements(uuid.New(), `[
		{"statement": "Dashboard is slow with large datasets", "confidence": 0.92}
	]`)
	if err != nil {
		t.Fatalf("ParseProblemStatements failed: %v", err)
	}
	if len(problems) != 1 || problems[0].Statement != "Dashboard is slow with large datasets" {
		t.Errorf("unexpected result: %+v", problems)
	}
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `[{"a":1}]`, `[{"a":1}]`},
		{"json fence", "```json\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"bare fence", "```\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"surrounding whitespace", "  \n[{\"a\":1}]\n  ", `[{"a":1}]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSON(tc.input); got != tc.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
