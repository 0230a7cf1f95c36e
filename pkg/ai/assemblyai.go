package ai

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/johnquangdev/meeting-intelligence/pkg/config"
)

// AssemblyAIClient wraps the official AssemblyAI SDK as an alternate
// speech-to-text backend. The flow is upload, submit, then poll until the
// transcript reaches a terminal status; the caller's context bounds the wait.
type AssemblyAIClient struct {
	apiKey string
	client *aai.Client
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config.
// If cfg is nil, falls back to environment variables.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) *AssemblyAIClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}
	return &AssemblyAIClient{
		apiKey: apiKey,
		client: aai.NewClient(apiKey),
	}
}

// Configured reports whether an API key is present
func (c *AssemblyAIClient) Configured() bool {
	return c.apiKey != ""
}

// TranscribeStream uploads the audio, submits a transcription job, and polls
// until it completes or errors. Returns the transcribed text.
func (c *AssemblyAIClient) TranscribeStream(ctx context.Context, audio io.Reader, language string) (string, error) {
	uploadURL, err := c.client.Upload(ctx, audio)
	if err != nil {
		return "", fmt.Errorf("failed to upload to assemblyai: %w", err)
	}

	params := &aai.TranscriptOptionalParams{}
	if language != "" {
		params.LanguageCode = aai.TranscriptLanguageCode(language)
	}

	transcript, err := c.client.Transcripts.SubmitFromURL(ctx, uploadURL, params)
	if err != nil {
		return "", fmt.Errorf("failed to submit transcription: %w", err)
	}
	if transcript.ID == nil {
		return "", fmt.Errorf("assemblyai returned no transcript id")
	}
	transcriptID := *transcript.ID

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("transcription timed out: %w", ctx.Err())
		case <-ticker.C:
		}

		current, err := c.client.Transcripts.Get(ctx, transcriptID)
		if err != nil {
			return "", fmt.Errorf("failed to poll transcript: %w", err)
		}

		switch current.Status {
		case aai.TranscriptStatusCompleted:
			if current.Text == nil {
				return "", fmt.Errorf("assemblyai returned empty transcript")
			}
			return *current.Text, nil
		case aai.TranscriptStatusError:
			msg := "assemblyai transcription failed"
			if current.Error != nil {
				msg = *current.Error
			}
			return "", fmt.Errorf("assemblyai error: %s", msg)
		}
		// queued or processing; keep polling
	}
}
