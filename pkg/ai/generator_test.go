package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOpenAICompatGenerateText(t *testing.T) {
	var gotAuth string
	var gotReq oaiChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "  a warm answer  "}},
			},
		})
	}))
	defer srv.Close()

	gen := NewOpenAICompatGenerator(srv.URL+"/v1/", "sk-test", "local-model")
	text, err := gen.GenerateText(context.Background(), "be kind", "tell me about us")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if text != "a warm answer" {
		t.Fatalf("text = %q", text)
	}
	if gotAuth != "Bearer sk-test" {
		t.Fatalf("auth header = %q", gotAuth)
	}
	if gotReq.Model != "local-model" || len(gotReq.Messages) != 2 {
		t.Fatalf("unexpected request: %+v", gotReq)
	}
	if gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Fatalf("unexpected message roles: %+v", gotReq.Messages)
	}
}

func TestOpenAICompatSkipsEmptySystemPrompt(t *testing.T) {
	var gotReq oaiChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": "ok"}},
			},
		})
	}))
	defer srv.Close()

	gen := NewOpenAICompatGenerator(srv.URL, "", "m")
	if _, err := gen.GenerateText(context.Background(), "   ", "hi"); err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" {
		t.Fatalf("unexpected messages: %+v", gotReq.Messages)
	}
}

func TestOpenAICompatAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "rate limited"},
		})
	}))
	defer srv.Close()

	gen := NewOpenAICompatGenerator(srv.URL, "", "m")
	_, err := gen.GenerateText(context.Background(), "", "hi")
	if err == nil || !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("err = %v, want api error message", err)
	}
}

func TestOpenAICompatEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	gen := NewOpenAICompatGenerator(srv.URL, "", "m")
	if _, err := gen.GenerateText(context.Background(), "", "hi"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestGeminiGenerateText(t *testing.T) {
	var gotPath, gotKey string
	var gotReq generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": " hello "}}}},
			},
		})
	}))
	defer srv.Close()

	client, err := NewGeminiClient("key-123")
	if err != nil {
		t.Fatalf("NewGeminiClient: %v", err)
	}
	client.baseURL = srv.URL

	gen := NewGeminiGenerator(client, "models/gemini-pro")
	text, err := gen.GenerateText(context.Background(), "persona", "question")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if text != "hello" {
		t.Fatalf("text = %q", text)
	}
	if gotPath != "/models/gemini-pro:generateContent" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotKey != "key-123" {
		t.Fatalf("key = %q", gotKey)
	}
	if gotReq.SystemInstruction == nil || gotReq.SystemInstruction.Parts[0].Text != "persona" {
		t.Fatalf("system instruction not sent: %+v", gotReq)
	}
}

func TestGeminiClientRequiresKey(t *testing.T) {
	if _, err := NewGeminiClient("  "); err == nil {
		t.Fatal("expected error for empty api key")
	}
}

func TestGeminiEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer srv.Close()

	client, err := NewGeminiClient("k")
	if err != nil {
		t.Fatalf("NewGeminiClient: %v", err)
	}
	client.baseURL = srv.URL
	if _, err := client.GenerateText(context.Background(), "m", "", "hi"); err == nil {
		t.Fatal("expected error for empty candidates")
	}
}
