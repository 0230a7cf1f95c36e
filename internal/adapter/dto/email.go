package dto

import "github.com/google/uuid"

// CreateDraftRequest is the payload for composing an email draft
type CreateDraftRequest struct {
	MeetingID    uuid.UUID  `json:"meeting_id" validate:"required"`
	ActionItemID *uuid.UUID `json:"action_item_id,omitempty"`
	Subject      string     `json:"subject" validate:"required,max=512"`
	Body         string     `json:"body" validate:"required"`
	Recipients   []string   `json:"recipients" validate:"required,min=1,dive,email"`
	CC           []string   `json:"cc,omitempty" validate:"omitempty,dive,email"`
}

// UpdateDraftRequest is the payload for editing an unsent draft
type UpdateDraftRequest struct {
	Subject    *string  `json:"subject,omitempty" validate:"omitempty,max=512"`
	Body       *string  `json:"body,omitempty"`
	Recipients []string `json:"recipients,omitempty" validate:"omitempty,min=1,dive,email"`
	CC         []string `json:"cc,omitempty" validate:"omitempty,dive,email"`
}
