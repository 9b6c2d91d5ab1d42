package verify

import (
	"context"
	"fmt"
	"time"

	"github.com/sandevgo/pdfchat/internal/core"
	"github.com/sandevgo/pdfchat/pkg/log"
	"github.com/sandevgo/pdfchat/pkg/retry"
)

// Service probes every external collaborator before a chat session: the
// document store, the embedding endpoint and the LLM. Each probe retries
// transient failures so a cold serverless endpoint gets a chance to warm up.
type Service struct {
	ping     func(ctx context.Context) error
	pages    core.PagesRepository
	embedder core.Embedder
	gen      core.Generator

	retrier *retry.Retrier
}

// Result is the outcome of one probe.
type Result struct {
	Name   string
	Detail string
	Err    error
}

func (r Result) OK() bool {
	return r.Err == nil
}

func New(ping func(ctx context.Context) error, pages core.PagesRepository, embedder core.Embedder, gen core.Generator) *Service {
	return &Service{
		ping:     ping,
		pages:    pages,
		embedder: embedder,
		gen:      gen,
		retrier: retry.NewRetrier(&retry.Config{
			MaxRetries:    2,
			BackoffFactor: 2,
			InitialDelay:  500 * time.Millisecond,
			MaxDelay:      5 * time.Second,
			Jitter:        100 * time.Millisecond,
		}),
	}
}

// Run executes all probes in order and never stops early: a broken store
// should not hide a broken embedder.
func (s *Service) Run(ctx context.Context) []Result {
	probes := []struct {
		name string
		run  func(ctx context.Context) (string, error)
	}{
		{"document store", s.probeStore},
		{"ingested pages", s.probePages},
		{"embedding endpoint", s.probeEmbedding},
		{"llm provider", s.probeLLM},
	}

	results := make([]Result, 0, len(probes))
	for _, p := range probes {
		var detail string
		err := s.retrier.Do(ctx, func() error {
			var probeErr error
			detail, probeErr = p.run(ctx)
			return probeErr
		})
		if err != nil {
			log.FromCtx(ctx).Warn().Err(err).Str("probe", p.name).Msg("verification probe failed")
		}
		results = append(results, Result{Name: p.name, Detail: detail, Err: err})
	}
	return results
}

func (s *Service) probeStore(ctx context.Context) (string, error) {
	if err := s.ping(ctx); err != nil {
		return "", err
	}
	return "reachable", nil
}

func (s *Service) probePages(ctx context.Context) (string, error) {
	n, err := s.pages.Count(ctx)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", fmt.Errorf("collection is empty, run ingest first")
	}
	return fmt.Sprintf("%d pages", n), nil
}

func (s *Service) probeEmbedding(ctx context.Context) (string, error) {
	vec, err := s.embedder.Embed(ctx, "connectivity probe", core.InputQuery)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d dimensions", len(vec)), nil
}

func (s *Service) probeLLM(ctx context.Context) (string, error) {
	reply, err := s.gen.Generate(ctx, "Reply with the single word OK.", []core.Part{core.TextPart("ping")})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("replied %q", truncate(reply, 20)), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
