package embedding

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{
			name: "zero vector unchanged",
			in:   []float64{0, 0, 0},
			want: []float64{0, 0, 0},
		},
		{
			name: "unit vector unchanged",
			in:   []float64{1, 0},
			want: []float64{1, 0},
		},
		{
			name: "scales to unit norm",
			in:   []float64{3, 4},
			want: []float64{0.6, 0.8},
		},
		{
			name: "negative components",
			in:   []float64{0, -2},
			want: []float64{0, -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got[i], 1e-9)
			}
		})
	}
}

func TestNormalizeUnitNorm(t *testing.T) {
	vecs := [][]float64{
		{1, 2, 3},
		{-0.5, 0.25, 8},
		{1e-8, 1e-8},
	}
	for _, vec := range vecs {
		got := Normalize(vec)
		var sum float64
		for _, v := range got {
			sum += v * v
		}
		assert.InDelta(t, 1.0, math.Sqrt(sum), 1e-9)
	}
}

func TestServerlessEmbed(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    []float64
		wantErr string
	}{
		{
			name: "normalizes returned vector",
			handler: func(w http.ResponseWriter, r *http.Request) {
				var req struct {
					Task string `json:"task"`
					Data struct {
						Input     string `json:"input"`
						InputType string `json:"input_type"`
					} `json:"data"`
				}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "get_embedding", req.Task)
				assert.Equal(t, "query", req.Data.InputType)

				json.NewEncoder(w).Encode(map[string]any{"embedding": []float64{3, 4}})
			},
			want: []float64{0.6, 0.8},
		},
		{
			name: "http 500",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			wantErr: "http 500",
		},
		{
			name: "missing embedding field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{"status": "ok"})
			},
			wantErr: "no embedding field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			got, err := NewServerless(ts.URL).Embed(context.Background(), "test query", "query")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got[i], 1e-9)
			}
		})
	}
}

func TestServerlessEmbedNotConfigured(t *testing.T) {
	_, err := NewServerless("").Embed(context.Background(), "q", "query")
	require.Error(t, err)
}

func TestServerlessAPIKey(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Task string `json:"task"`
			Data string `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "get_api_key", req.Task)
		assert.Equal(t, "google", req.Data)

		json.NewEncoder(w).Encode(map[string]string{"api_key": "secret"})
	}))
	defer ts.Close()

	key, err := NewServerless(ts.URL).APIKey(context.Background(), "google")
	require.NoError(t, err)
	assert.Equal(t, "secret", key)
}

func TestServerlessAPIKeyMissingField(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer ts.Close()

	_, err := NewServerless(ts.URL).APIKey(context.Background(), "google")
	require.Error(t, err)
}
