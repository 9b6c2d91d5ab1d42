package agent

import (
	"context"

	"github.com/sandevgo/pdfchat/internal/core"
	"github.com/sandevgo/pdfchat/pkg/log"
)

// Retriever is the single registered tool: embed a search phrase, then run
// vector search over the ingested pages.
type Retriever struct {
	embedder core.Embedder
	pages    core.PageSearcher
}

func NewRetriever(embedder core.Embedder, pages core.PageSearcher) *Retriever {
	return &Retriever{embedder: embedder, pages: pages}
}

// Retrieve degrades to an empty result on any failure: the orchestration
// continues without context rather than aborting the turn.
func (r *Retriever) Retrieve(ctx context.Context, query string) []core.PageHit {
	logger := log.FromCtx(ctx)
	logger.Info().Str("query", query).Msg("retrieving context")

	vector, err := r.embedder.Embed(ctx, query, core.InputQuery)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to embed search query")
		return nil
	}

	hits, err := r.pages.Search(ctx, vector)
	if err != nil {
		logger.Warn().Err(err).Msg("vector search failed")
		return nil
	}

	for _, hit := range hits {
		logger.Debug().
			Str("key", hit.Key).
			Int("page", hit.PageNumber).
			Float64("score", hit.Score).
			Msg("retrieved page")
	}
	return hits
}
