package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EmailDraft is a composed email tied to a meeting, optionally spawned from an
// extracted action item. SentAt is nil until the draft is actually sent.
type EmailDraft struct {
	ID           uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID    uuid.UUID                   `json:"meeting_id" gorm:"type:uuid;not null;index"`
	ActionItemID *uuid.UUID                  `json:"action_item_id,omitempty" gorm:"type:uuid"`
	Subject      string                      `json:"subject" gorm:"type:varchar(512);not null"`
	Body         string                      `json:"body" gorm:"type:text;not null"`
	Recipients   datatypes.JSONSlice[string] `json:"recipients" gorm:"type:jsonb"`
	CC           datatypes.JSONSlice[string] `json:"cc,omitempty" gorm:"type:jsonb"`
	SentAt       *time.Time                  `json:"sent_at,omitempty"`
	CreatedAt    time.Time                   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time                   `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (EmailDraft) TableName() string {
	return "email_drafts"
}

// NewEmailDraft creates an unsent draft for a meeting
func NewEmailDraft(meetingID uuid.UUID, subject, body string, recipients []string) *EmailDraft {
	return &EmailDraft{
		ID:         uuid.New(),
		MeetingID:  meetingID,
		Subject:    subject,
		Body:       body,
		Recipients: datatypes.NewJSONSlice(recipients),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}
