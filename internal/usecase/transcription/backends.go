package transcription

import (
	"context"
	"io"

	"github.com/johnquangdev/meeting-intelligence/pkg/ai"
)

// GroqBackend adapts the Groq Whisper endpoint to the Backend interface
type GroqBackend struct {
	client *ai.GroqClient
}

// NewGroqBackend creates a Groq-backed transcriber
func NewGroqBackend(client *ai.GroqClient) *GroqBackend {
	return &GroqBackend{client: client}
}

func (b *GroqBackend) Name() string { return "whisper-large-v3" }

func (b *GroqBackend) Configured() bool { return b.client.Configured() }

func (b *GroqBackend) Transcribe(ctx context.Context, filename string, audio io.Reader, language string) (string, error) {
	return b.client.TranscribeAudio(ctx, filename, audio, language)
}

// AssemblyAIBackend adapts the AssemblyAI SDK to the Backend interface
type AssemblyAIBackend struct {
	client *ai.AssemblyAIClient
}

// NewAssemblyAIBackend creates an AssemblyAI-backed transcriber
func NewAssemblyAIBackend(client *ai.AssemblyAIClient) *AssemblyAIBackend {
	return &AssemblyAIBackend{client: client}
}

func (b *AssemblyAIBackend) Name() string { return "assemblyai" }

func (b *AssemblyAIBackend) Configured() bool { return b.client.Configured() }

func (b *AssemblyAIBackend) Transcribe(ctx context.Context, _ string, audio io.Reader, language string) (string, error) {
	return b.client.TranscribeStream(ctx, audio, language)
}
