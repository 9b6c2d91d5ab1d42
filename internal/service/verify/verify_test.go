package verify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/pdfchat/internal/core"
)

type stubPages struct {
	count int64
	err   error
}

func (s *stubPages) InsertPages(ctx context.Context, docs []core.PageDoc) error { return nil }

func (s *stubPages) Count(ctx context.Context) (int64, error) { return s.count, s.err }

type stubEmbedder struct {
	vec []float64
	err error
}

func (s *stubEmbedder) Embed(ctx context.Context, input, inputType string) ([]float64, error) {
	return s.vec, s.err
}

type stubGen struct {
	reply string
	err   error
}

func (s *stubGen) Generate(ctx context.Context, system string, parts []core.Part) (string, error) {
	return s.reply, s.err
}

func (s *stubGen) Decide(ctx context.Context, system string, parts []core.Part) (core.Decision, error) {
	return core.Decision{}, nil
}

func TestRunAllProbesHealthy(t *testing.T) {
	s := New(
		func(ctx context.Context) error { return nil },
		&stubPages{count: 14},
		&stubEmbedder{vec: make([]float64, 1024)},
		&stubGen{reply: "OK"},
	)

	results := s.Run(context.Background())

	require.Len(t, results, 4)
	for _, r := range results {
		assert.True(t, r.OK(), "%s: %v", r.Name, r.Err)
	}
	assert.Equal(t, "14 pages", results[1].Detail)
	assert.Equal(t, "1024 dimensions", results[2].Detail)
}

func TestRunContinuesPastFailures(t *testing.T) {
	s := New(
		func(ctx context.Context) error { return errors.New("connection refused") },
		&stubPages{err: errors.New("count failed")},
		&stubEmbedder{vec: []float64{1}},
		&stubGen{reply: "OK"},
	)

	results := s.Run(context.Background())

	require.Len(t, results, 4)
	assert.False(t, results[0].OK())
	assert.False(t, results[1].OK())
	assert.True(t, results[2].OK())
	assert.True(t, results[3].OK())
}

func TestEmptyCollectionIsAFailure(t *testing.T) {
	s := New(
		func(ctx context.Context) error { return nil },
		&stubPages{count: 0},
		&stubEmbedder{vec: []float64{1}},
		&stubGen{reply: "OK"},
	)

	results := s.Run(context.Background())

	require.False(t, results[1].OK())
	assert.Contains(t, results[1].Err.Error(), "run ingest first")
}

func TestProbeRetriesTransientFailures(t *testing.T) {
	calls := 0
	s := New(
		func(ctx context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("cold start")
			}
			return nil
		},
		&stubPages{count: 1},
		&stubEmbedder{vec: []float64{1}},
		&stubGen{reply: "OK"},
	)

	results := s.Run(context.Background())

	assert.True(t, results[0].OK())
	assert.Equal(t, 3, calls)
}
