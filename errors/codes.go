package errors

// ErrorCode identifies an error category for API responses and logs
type ErrorCode string

const (
	ErrorCode_INTERNAL         ErrorCode = "INTERNAL"
	ErrorCode_INVALID_ARGUMENT ErrorCode = "INVALID_ARGUMENT"
	ErrorCode_NOT_FOUND        ErrorCode = "NOT_FOUND"
	ErrorCode_ALREADY_EXISTS   ErrorCode = "ALREADY_EXISTS"
	ErrorCode_UNAUTHENTICATED  ErrorCode = "UNAUTHENTICATED"
	ErrorCode_FORBIDDEN        ErrorCode = "FORBIDDEN"
	ErrorCode_INVALID_PAYLOAD  ErrorCode = "INVALID_PAYLOAD"

	// Auth
	ErrorCode_AUTH_INVALID_TOKEN       ErrorCode = "AUTH_INVALID_TOKEN"
	ErrorCode_AUTH_TOKEN_EXPIRED       ErrorCode = "AUTH_TOKEN_EXPIRED"
	ErrorCode_AUTH_INVALID_CREDENTIALS ErrorCode = "AUTH_INVALID_CREDENTIALS"
	ErrorCode_AUTH_USER_ALREADY_EXISTS ErrorCode = "AUTH_USER_ALREADY_EXISTS"

	// Pipeline
	ErrorCode_AUDIO_REQUIRED         ErrorCode = "AUDIO_REQUIRED"
	ErrorCode_AUDIO_UNAVAILABLE      ErrorCode = "AUDIO_UNAVAILABLE"
	ErrorCode_TRANSCRIPTION_FAILED   ErrorCode = "TRANSCRIPTION_FAILED"
	ErrorCode_NO_TRANSCRIPT          ErrorCode = "NO_TRANSCRIPT"
	ErrorCode_EXTRACTION_UNAVAILABLE ErrorCode = "EXTRACTION_UNAVAILABLE"
	ErrorCode_PERSISTENCE_FAILED     ErrorCode = "PERSISTENCE_FAILED"

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = "INTEGRATION_STORAGE_FAILED"
	ErrorCode_INTEGRATION_SMTP_FAILED    ErrorCode = "INTEGRATION_SMTP_FAILED"

	// Upload
	ErrorCode_UPLOAD_INVALID_TYPE ErrorCode = "UPLOAD_INVALID_TYPE"
	ErrorCode_UPLOAD_TOO_LARGE    ErrorCode = "UPLOAD_TOO_LARGE"
)

// String returns the code as a string
func (c ErrorCode) String() string {
	return string(c)
}
