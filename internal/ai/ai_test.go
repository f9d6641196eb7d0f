package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rojahomes/rentmarket/internal/config"
	"github.com/rojahomes/rentmarket/pkg/clients"
)

func newTestClient(address, key string) *Client {
	return New(&config.Config{OpenAIAddress: address, OpenAIKey: key}, clients.NewHTTPClient())
}

func completionServer(t *testing.T, answer string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, model, req.Model)
		require.Len(t, req.Messages, 2)

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": answer}},
			},
		})
	}))
}

func TestRateSentiment(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		expected float64
	}{
		{name: "Plain number", answer: "4", expected: 4},
		{name: "Answer with whitespace", answer: " 3.5\n", expected: 3.5},
		{name: "Clamped above", answer: "9", expected: 5},
		{name: "Clamped below", answer: "0", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := completionServer(t, tt.answer)
			defer srv.Close()

			rating, err := newTestClient(srv.URL, "test-key").RateSentiment(context.Background(), "great place to live")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rating)
		})
	}
}

func TestRateSentimentBadAnswer(t *testing.T) {
	srv := completionServer(t, "I would say it is positive")
	defer srv.Close()

	_, err := newTestClient(srv.URL, "test-key").RateSentiment(context.Background(), "great place")
	assert.Error(t, err)
}

func TestRateSentimentNotConfigured(t *testing.T) {
	_, err := newTestClient("https://api.openai.com", "").RateSentiment(context.Background(), "text")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGenerateDescription(t *testing.T) {
	srv := completionServer(t, "A lovely three bedroom home in Avondale.")
	defer srv.Close()

	text, err := newTestClient(srv.URL, "test-key").GenerateDescription(
		context.Background(), "Avondale Home", "House", "Avondale", 3, 2, []string{"borehole", "solar"})
	require.NoError(t, err)
	assert.Equal(t, "A lovely three bedroom home in Avondale.", text)
}

func TestEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, "test-key").RateSentiment(context.Background(), "text")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}
