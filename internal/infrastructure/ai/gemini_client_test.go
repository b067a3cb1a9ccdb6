package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"MoodSpot-App/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiClient_GenerateContent(t *testing.T) {
	var gotPath, gotKey, gotPrompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")

		var req GeminiRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotPrompt = req.Contents[0].Parts[0].Text

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(GeminiResponse{
			Candidates: []Candidate{{Content: Content{Parts: []Part{{Text: "[{\"title\":"}, {Text: "\"x\"}]"}}}}},
		})
	}))
	defer server.Close()

	client := NewGeminiClientWithBaseURL("test-key", "gemini-2.0-flash", server.URL)
	text, err := client.GenerateContent(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, `[{"title":"x"}]`, text)
	assert.Equal(t, "/models/gemini-2.0-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "hello", gotPrompt)
}

func TestGeminiClient_Errors(t *testing.T) {
	t.Run("APIキー未設定", func(t *testing.T) {
		_, err := NewGeminiClient("", "").GenerateContent(context.Background(), "hello")
		assert.ErrorIs(t, err, model.ErrBackendUnavailable)
	})

	t.Run("クォータ超過", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"code":429}}`))
		}))
		defer server.Close()

		_, err := NewGeminiClientWithBaseURL("k", "", server.URL).GenerateContent(context.Background(), "hello")
		assert.ErrorIs(t, err, model.ErrBackendUnavailable)
	})

	t.Run("候補なし", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		}))
		defer server.Close()

		_, err := NewGeminiClientWithBaseURL("k", "", server.URL).GenerateContent(context.Background(), "hello")
		assert.ErrorIs(t, err, model.ErrMalformedResponse)
	})

	t.Run("ブロックされたプロンプト", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"promptFeedback":{"blockReason":"SAFETY"}}`))
		}))
		defer server.Close()

		_, err := NewGeminiClientWithBaseURL("k", "", server.URL).GenerateContent(context.Background(), "hello")
		assert.ErrorIs(t, err, model.ErrMalformedResponse)
	})

	t.Run("接続不可", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		_, err := NewGeminiClientWithBaseURL("k", "", url).GenerateContent(context.Background(), "hello")
		assert.ErrorIs(t, err, model.ErrNetwork)
	})
}
