package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActionType is the kind of follow-through an action item requires
type ActionType string

const (
	ActionTypeEmail   ActionType = "Email"
	ActionTypeMeeting ActionType = "Meeting"
	ActionTypeTask    ActionType = "Task"
)

// ActionStatus is the workflow status of an action item. The pipeline only
// creates items in Pending; later transitions belong to the CRUD layer.
type ActionStatus string

const (
	ActionStatusPending   ActionStatus = "PENDING"
	ActionStatusApproved  ActionStatus = "APPROVED"
	ActionStatusRejected  ActionStatus = "REJECTED"
	ActionStatusExecuted  ActionStatus = "EXECUTED"
	ActionStatusCompleted ActionStatus = "COMPLETED"
)

// FollowUpStatus is the tracking status of a follow-up
type FollowUpStatus string

const (
	FollowUpStatusTracked   FollowUpStatus = "Tracked"
	FollowUpStatusCompleted FollowUpStatus = "Completed"
)

// ExtractedItem is the common capability shared by the four extraction
// categories, used by the engine for uniform logging and validation.
type ExtractedItem interface {
	ItemText() string
	ItemConfidence() float64
}

// Decision is a decision extracted from a meeting transcript
type Decision struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID       uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	DecisionText    string    `json:"decision_text" gorm:"type:text;not null"`
	ConfidenceScore float64   `json:"confidence_score"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Decision) TableName() string { return "decisions" }

func (d *Decision) ItemText() string        { return d.DecisionText }
func (d *Decision) ItemConfidence() float64 { return d.ConfidenceScore }

// ActionItem is a task, email, or meeting commitment extracted from a transcript
type ActionItem struct {
	ID              uuid.UUID                                  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID       uuid.UUID                                  `json:"meeting_id" gorm:"type:uuid;not null;index"`
	ProjectID       *uuid.UUID                                 `json:"project_id,omitempty" gorm:"type:uuid;index"`
	ActionType      ActionType                                 `json:"action_type" gorm:"type:varchar(20);not null"`
	Description     string                                     `json:"description" gorm:"type:text;not null"`
	AssignedTo      *string                                    `json:"assigned_to,omitempty" gorm:"type:varchar(255)"`
	DueDate         *time.Time                                 `json:"due_date,omitempty" gorm:"type:date"`
	Status          ActionStatus                               `json:"status" gorm:"type:varchar(20);default:'PENDING';index"`
	ConfidenceScore float64                                    `json:"confidence_score"`
	Metadata        datatypes.JSONType[map[string]interface{}] `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt       time.Time                                  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time                                  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (ActionItem) TableName() string { return "action_items" }

func (a *ActionItem) ItemText() string        { return a.Description }
func (a *ActionItem) ItemConfidence() float64 { return a.ConfidenceScore }

// FollowUp is an item that needs tracking after the meeting
type FollowUp struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID       uuid.UUID      `json:"meeting_id" gorm:"type:uuid;not null;index"`
	ProjectID       *uuid.UUID     `json:"project_id,omitempty" gorm:"type:uuid"`
	Description     string         `json:"description" gorm:"type:text;not null"`
	Status          FollowUpStatus `json:"status" gorm:"type:varchar(20);default:'Tracked'"`
	ConfidenceScore float64        `json:"confidence_score"`
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (FollowUp) TableName() string { return "follow_ups" }

func (f *FollowUp) ItemText() string        { return f.Description }
func (f *FollowUp) ItemConfidence() float64 { return f.ConfidenceScore }

// ProblemStatement is a problem or concern raised during a meeting
type ProblemStatement struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID       uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Statement       string    `json:"statement" gorm:"type:text;not null"`
	ConfidenceScore float64   `json:"confidence_score"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (ProblemStatement) TableName() string { return "problem_statements" }

func (p *ProblemStatement) ItemText() string        { return p.Statement }
func (p *ProblemStatement) ItemConfidence() float64 { return p.ConfidenceScore }
