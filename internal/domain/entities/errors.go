package entities

import "errors"

// Domain errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrMeetingNotFound   = errors.New("meeting not found")
	ErrProjectNotFound   = errors.New("project not found")
	ErrDraftNotFound     = errors.New("email draft not found")
	ErrDraftAlreadySent  = errors.New("email draft already sent")
	ErrActionNotFound    = errors.New("action item not found")
)

// Pipeline errors. Kept as distinct sentinels so the orchestrator can decide
// whether a meeting should be marked failed or left retryable.
var (
	ErrAudioRequired         = errors.New("meeting has no audio file")
	ErrAudioUnavailable      = errors.New("audio file could not be fetched")
	ErrTranscriptionFailed   = errors.New("transcription failed")
	ErrConfigurationMissing  = errors.New("capability credential not configured")
	ErrNoTranscript          = errors.New("no transcript available")
	ErrExtractionUnavailable = errors.New("extraction capability unavailable")
)
