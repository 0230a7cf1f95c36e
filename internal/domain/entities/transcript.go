package entities

import (
	"time"

	"github.com/google/uuid"
)

// TranscriptStatus is the lifecycle status of a transcription attempt
type TranscriptStatus string

const (
	TranscriptStatusProcessing TranscriptStatus = "processing"
	TranscriptStatusCompleted  TranscriptStatus = "completed"
	TranscriptStatusFailed     TranscriptStatus = "failed"
)

// Transcript is the stored transcript model. One row per processing attempt:
// created in processing state before any network I/O, then exactly one terminal
// update to completed or failed.
type Transcript struct {
	ID                uuid.UUID        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID         uuid.UUID        `json:"meeting_id" gorm:"type:uuid;not null;index"`
	RawTranscript     string           `json:"raw_transcript,omitempty" gorm:"type:text"`
	CleanedTranscript string           `json:"cleaned_transcript,omitempty" gorm:"type:text"`
	Status            TranscriptStatus `json:"transcription_status" gorm:"column:transcription_status;type:varchar(20);not null"`
	ErrorMessage      string           `json:"error_message,omitempty" gorm:"type:text"`
	ModelUsed         string           `json:"model_used,omitempty" gorm:"type:varchar(100)"`
	CreatedAt         time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Transcript) TableName() string {
	return "transcripts"
}

// NewTranscript creates a transcript in processing state
func NewTranscript(meetingID uuid.UUID) *Transcript {
	return &Transcript{
		ID:        uuid.New(),
		MeetingID: meetingID,
		Status:    TranscriptStatusProcessing,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}
