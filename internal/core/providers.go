package core

import "context"

// Embedder turns text or base64-encoded image input into a normalized
// embedding vector.
type Embedder interface {
	Embed(ctx context.Context, input, inputType string) ([]float64, error)
}

// CredentialSource resolves provider API keys at startup.
type CredentialSource interface {
	APIKey(ctx context.Context, provider string) (string, error)
}

// Generator is the hosted LLM surface the orchestrator talks to.
//
// Generate produces grounded text from interleaved parts under a system
// instruction. Decide runs the same call with the tool registry declared and
// returns the model's structured verdict.
type Generator interface {
	Generate(ctx context.Context, system string, parts []Part) (string, error)
	Decide(ctx context.Context, system string, parts []Part) (Decision, error)
}

// PageSearcher runs approximate nearest-neighbor search over stored page
// embeddings.
type PageSearcher interface {
	Search(ctx context.Context, vector []float64) ([]PageHit, error)
}
