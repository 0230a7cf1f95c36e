package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MeetingStatus is the lifecycle status of a meeting
type MeetingStatus string

const (
	MeetingStatusScheduled  MeetingStatus = "Scheduled"
	MeetingStatusProcessing MeetingStatus = "Processing"
	MeetingStatusCompleted  MeetingStatus = "Completed"
	MeetingStatusFailed     MeetingStatus = "Failed"
)

// MeetingType categorizes a meeting
type MeetingType string

const (
	MeetingTypeWeeklyUpdate MeetingType = "Weekly Update"
	MeetingTypeStandup      MeetingType = "Standup"
	MeetingTypeDiscussion   MeetingType = "Discussion"
	MeetingTypePlanning     MeetingType = "Planning"
	MeetingTypeReview       MeetingType = "Review"
)

// Meeting is the stored meeting model. The processing pipeline only touches
// Status and reads AudioFilePath; everything else is CRUD-owned.
type Meeting struct {
	ID            uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID        uuid.UUID                   `json:"user_id" gorm:"type:uuid;not null;index"`
	ProjectID     *uuid.UUID                  `json:"project_id,omitempty" gorm:"type:uuid;index"`
	Title         string                      `json:"title" gorm:"type:varchar(255);not null"`
	MeetingDate   time.Time                   `json:"meeting_date" gorm:"type:date;not null"`
	MeetingTime   string                      `json:"meeting_time" gorm:"type:varchar(8)"`
	MeetingType   MeetingType                 `json:"meeting_type" gorm:"type:varchar(50);default:'Discussion'"`
	Attendees     datatypes.JSONSlice[string] `json:"attendees" gorm:"type:jsonb"`
	Status        MeetingStatus               `json:"status" gorm:"type:varchar(20);default:'Scheduled';index"`
	Source        string                      `json:"source" gorm:"type:varchar(50);default:'manual'"`
	AudioFilePath string                      `json:"audio_file_path,omitempty" gorm:"type:varchar(512)"`
	AudioFileURL  string                      `json:"audio_file_url,omitempty" gorm:"type:varchar(1024)"`
	Summary       string                      `json:"summary,omitempty" gorm:"type:text"`
	CreatedAt     time.Time                   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time                   `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a new meeting owned by the given user
func NewMeeting(userID uuid.UUID, title string) *Meeting {
	return &Meeting{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		MeetingType: MeetingTypeDiscussion,
		Status:      MeetingStatusScheduled,
		Source:      "manual",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// HasAudio reports whether an audio recording has been uploaded
func (m *Meeting) HasAudio() bool {
	return m.AudioFilePath != ""
}
