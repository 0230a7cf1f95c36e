package extraction

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
)

// Parser converts raw model output into typed extraction records. Each Parse
// method returns an error when the payload is not a JSON array; an empty array
// is a valid result and comes back as an empty slice with a nil error. Callers
// use that distinction to tell "the model found nothing" from "the model
// produced garbage".
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

type decisionPayload struct {
	Decision   string  `json:"decision"`
	Confidence float64 `json:"confidence"`
}

type actionItemPayload struct {
	ActionType  string  `json:"action_type"`
	Description string  `json:"description"`
	AssignedTo  string  `json:"assigned_to"`
	DueDate     string  `json:"due_date"`
	Confidence  float64 `json:"confidence"`
}

type followUpPayload struct {
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

type problemPayload struct {
	Statement  string  `json:"statement"`
	Confidence float64 `json:"confidence"`
}

// ParseDecisions parses model output into decision records
func (p *Parser) ParseDecisions(meetingID uuid.UUID, content string) ([]*entities.Decision, error) {
	var payload []decisionPayload
	if err := unmarshalArray(content, &payload); err != nil {
		return nil, err
	}

	decisions := make([]*entities.Decision, 0, len(payload))
	for _, d := range payload {
		decisions = append(decisions, &entities.Decision{
			ID:              uuid.New(),
			MeetingID:       meetingID,
			DecisionText:    d.Decision,
			ConfidenceScore: clampConfidence(d.Confidence),
		})
	}
	return decisions, nil
}

// ParseActionItems parses model output into action item records. Items are
// always created in pending state; unknown action types fall back to Task and
// unparseable due dates are dropped rather than failing the item.
func (p *Parser) ParseActionItems(meetingID uuid.UUID, content string) ([]*entities.ActionItem, error) {
	var payload []actionItemPayload
	if err := unmarshalArray(content, &payload); err != nil {
		return nil, err
	}

	items := make([]*entities.ActionItem, 0, len(payload))
	for _, a := range payload {
		item := &entities.ActionItem{
			ID:              uuid.New(),
			MeetingID:       meetingID,
			ActionType:      normalizeActionType(a.ActionType),
			Description:     a.Description,
			Status:          entities.ActionStatusPending,
			ConfidenceScore: clampConfidence(a.Confidence),
		}
		if a.AssignedTo != "" {
			assignee := a.AssignedTo
			item.AssignedTo = &assignee
		}
		if a.DueDate != "" && a.DueDate != "null" {
			if due, err := time.Parse("2006-01-02", a.DueDate); err == nil {
				item.DueDate = &due
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// ParseFollowUps parses model output into follow-up records
func (p *Parser) ParseFollowUps(meetingID uuid.UUID, content string) ([]*entities.FollowUp, error) {
	var payload []followUpPayload
	if err := unmarshalArray(content, &payload); err != nil {
		return nil, err
	}

	followUps := make([]*entities.FollowUp, 0, len(payload))
	for _, f := range payload {
		followUps = append(followUps, &entities.FollowUp{
			ID:              uuid.New(),
			MeetingID:       meetingID,
			Description:     f.Description,
			Status:          entities.FollowUpStatusTracked,
			ConfidenceScore: clampConfidence(f.Confidence),
		})
	}
	return followUps, nil
}

// ParseProblemStatements parses model output into problem statement records
func (p *Parser) ParseProblemStatements(meetingID uuid.UUID, content string) ([]*entities.ProblemStatement, error) {
	var payload []problemPayload
	if err := unmarshalArray(content, &payload); err != nil {
		return nil, err
	}

	problems := make([]*entities.ProblemStatement, 0, len(payload))
	for _, pr := range payload {
		problems = append(problems, &entities.ProblemStatement{
			ID:              uuid.New(),
			MeetingID:       meetingID,
			Statement:       pr.Statement,
			ConfidenceScore: clampConfidence(pr.Confidence),
		})
	}
	return problems, nil
}

func unmarshalArray(content string, out interface{}) error {
	content = extractJSON(content)
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("response is not a valid JSON array: %w", err)
	}
	return nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}

// clampConfidence bounds a model-reported confidence to [0, 1]. A missing
// field decodes to zero, which is the documented default.
func clampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func normalizeActionType(raw string) entities.ActionType {
	switch entities.ActionType(raw) {
	case entities.ActionTypeEmail, entities.ActionTypeMeeting, entities.ActionTypeTask:
		return entities.ActionType(raw)
	default:
		return entities.ActionTypeTask
	}
}
