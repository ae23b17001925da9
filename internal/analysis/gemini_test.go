package analysis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeminiClient(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewGeminiClient("test-key", "test-model", 5*time.Second)
	client.baseURL = srv.URL
	return client
}

func TestGeminiClient_Analyze(t *testing.T) {
	client := newTestGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "research gaps")

		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []struct {
				Content geminiContent `json:"content"`
			}{
				{Content: geminiContent{Parts: []geminiPart{{Text: "the gaps are..."}}}},
			},
		})
	})

	out, err := client.Analyze(context.Background(), "paper text", KindResearchGaps)
	require.NoError(t, err)
	assert.Equal(t, "the gaps are...", out)
}

func TestGeminiClient_Analyze_ProviderError(t *testing.T) {
	client := newTestGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	})

	_, err := client.Analyze(context.Background(), "paper text", KindSummary)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGeminiClient_Analyze_EmptyCandidates(t *testing.T) {
	client := newTestGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := client.Analyze(context.Background(), "paper text", KindSummary)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content")
}
