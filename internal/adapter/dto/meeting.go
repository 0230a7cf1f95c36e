package dto

import (
	"github.com/google/uuid"
)

// CreateMeetingRequest is the payload for creating a meeting
type CreateMeetingRequest struct {
	Title       string     `json:"title" validate:"required,max=255"`
	ProjectID   *uuid.UUID `json:"project_id,omitempty"`
	MeetingDate string     `json:"meeting_date" validate:"required,datetime=2006-01-02"`
	MeetingTime string     `json:"meeting_time,omitempty"`
	MeetingType string     `json:"meeting_type,omitempty" validate:"omitempty,oneof='Weekly Update' Standup Discussion Planning Review"`
	Attendees   []string   `json:"attendees,omitempty"`
	Source      string     `json:"source,omitempty"`
}

// UpdateMeetingRequest is the payload for partially updating a meeting
type UpdateMeetingRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,max=255"`
	MeetingDate *string  `json:"meeting_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	MeetingTime *string  `json:"meeting_time,omitempty"`
	MeetingType *string  `json:"meeting_type,omitempty" validate:"omitempty,oneof='Weekly Update' Standup Discussion Planning Review"`
	Attendees   []string `json:"attendees,omitempty"`
	Summary     *string  `json:"summary,omitempty"`
}

// ProcessMeetingResponse is returned after a processing run completes
type ProcessMeetingResponse struct {
	Message      string    `json:"message"`
	MeetingID    uuid.UUID `json:"meeting_id"`
	TranscriptID uuid.UUID `json:"transcript_id"`
}

// UploadAudioResponse is returned after an audio upload
type UploadAudioResponse struct {
	Message       string `json:"message"`
	AudioFilePath string `json:"audio_file_path"`
	AudioFileURL  string `json:"audio_file_url"`
}
