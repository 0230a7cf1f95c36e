package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/johnquangdev/meeting-intelligence/pkg/config"
)

func newTestClient(baseURL string) *GroqClient {
	return NewGroqClient(&config.GroqConfig{
		APIKey:       "test-key",
		BaseURL:      baseURL,
		Model:        "llama-3.1-70b-versatile",
		WhisperModel: "whisper-large-v3",
	}, time.Minute)
}

func TestChatCompletion(t *testing.T) {
	var gotAuth string
	var gotReq ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openai/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"choices":[{"message":{"content":"[{\"decision\": \"ship it\"}]"}}]}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	content, err := client.ChatCompletion(context.Background(), "system text", "user prompt", 0.3, 2000)
	if err != nil {
		t.Fatalf("ChatCompletion failed: %v", err)
	}
	if content != `[{"decision": "ship it"}]` {
		t.Errorf("unexpected content %q", content)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("unexpected auth header %q", gotAuth)
	}
	if gotReq.Model != "llama-3.1-70b-versatile" {
		t.Errorf("unexpected model %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Content != "user prompt" {
		t.Errorf("unexpected messages %+v", gotReq.Messages)
	}
	if gotReq.Temperature != 0.3 || gotReq.MaxTokens != 2000 {
		t.Errorf("unexpected sampling params %+v", gotReq)
	}
}

func TestChatCompletionServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	if _, err := client.ChatCompletion(context.Background(), "s", "p", 0.3, 100); err == nil {
		t.Fatal("expected error for 429 response")
	}
}

func TestChatCompletionEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"choices":[]}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	if _, err := client.ChatCompletion(context.Background(), "s", "p", 0.3, 100); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestChatCompletionNotConfigured(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	client := NewGroqClient(&config.GroqConfig{BaseURL: "http://unused"}, time.Minute)
	if client.Configured() {
		t.Fatal("client without key should not report configured")
	}
	if _, err := client.ChatCompletion(context.Background(), "s", "p", 0.3, 100); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestTranscribeAudio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openai/v1/audio/transcriptions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("model"); got != "whisper-large-v3" {
			t.Errorf("unexpected model field %q", got)
		}
		if got := r.FormValue("language"); got != "en" {
			t.Errorf("unexpected language field %q", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("read file field: %v", err)
		}
		defer file.Close()
		if header.Filename != "standup.mp3" {
			t.Errorf("unexpected filename %q", header.Filename)
		}
		audio, _ := io.ReadAll(file)
		if string(audio) != "fake-audio-bytes" {
			t.Errorf("unexpected audio payload %q", audio)
		}
		io.WriteString(w, `{"text":"We agreed to ship on Friday."}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	text, err := client.TranscribeAudio(context.Background(), "standup.mp3", strings.NewReader("fake-audio-bytes"), "en")
	if err != nil {
		t.Fatalf("TranscribeAudio failed: %v", err)
	}
	if text != "We agreed to ship on Friday." {
		t.Errorf("unexpected transcript %q", text)
	}
}

func TestTranscribeAudioServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	if _, err := client.TranscribeAudio(context.Background(), "a.wav", strings.NewReader("x"), ""); err == nil {
		t.Fatal("expected error for 502 response")
	}
}
