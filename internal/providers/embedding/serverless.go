package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sandevgo/pdfchat/pkg/log"
)

const (
	taskGetEmbedding = "get_embedding"
	taskGetAPIKey    = "get_api_key"
)

// Serverless is a client for the workshop's lambda endpoint. The same URL
// serves embeddings and provider API keys, multiplexed on the "task" field.
type Serverless struct {
	client *http.Client
	url    string
}

func NewServerless(url string) *Serverless {
	return &Serverless{
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
		url: url,
	}
}

// Configured reports whether an endpoint URL was supplied.
func (s *Serverless) Configured() bool {
	return s.url != ""
}

type embeddingInput struct {
	Input     string `json:"input"`
	InputType string `json:"input_type"`
}

// Embed returns the unit-normalized embedding for the input, which is plain
// text for queries or a base64-encoded image for documents.
func (s *Serverless) Embed(ctx context.Context, input, inputType string) ([]float64, error) {
	if !s.Configured() {
		return nil, fmt.Errorf("no embedding service available")
	}

	payload := map[string]any{
		"task": taskGetEmbedding,
		"data": embeddingInput{Input: input, InputType: inputType},
	}

	data, err := s.post(ctx, payload)
	if err != nil {
		return nil, err
	}

	var result struct {
		Embedding []float64 `json:"embedding"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode embedding response: %w", err)
	}
	if result.Embedding == nil {
		return nil, fmt.Errorf("no embedding field in response")
	}

	vec := Normalize(result.Embedding)
	log.FromCtx(ctx).Debug().Int("dims", len(vec)).Msg("generated embedding")
	return vec, nil
}

// APIKey fetches a provider API key from the endpoint.
func (s *Serverless) APIKey(ctx context.Context, provider string) (string, error) {
	if !s.Configured() {
		return "", fmt.Errorf("serverless endpoint not configured")
	}

	payload := map[string]any{
		"task": taskGetAPIKey,
		"data": provider,
	}

	data, err := s.post(ctx, payload)
	if err != nil {
		return "", err
	}

	var result struct {
		APIKey string `json:"api_key"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode api key response: %w", err)
	}
	if result.APIKey == "" {
		return "", fmt.Errorf("no api_key field in response")
	}
	return result.APIKey, nil
}

func (s *Serverless) post(ctx context.Context, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
	}
	return data, nil
}
