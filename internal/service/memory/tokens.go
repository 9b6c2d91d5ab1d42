package memory

import (
	"context"

	"github.com/pkoukk/tiktoken-go"

	"github.com/sandevgo/pdfchat/pkg/log"
)

const tokenEncoding = "cl100k_base"

// TokenCount reports how many text tokens the session replay currently
// carries. Used by the status display and debug logs only; the replay itself
// is never truncated.
func (m *Memory) TokenCount(ctx context.Context, sessionID string) int {
	if !m.enabled {
		return 0
	}

	enc, err := tiktoken.GetEncoding(tokenEncoding)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("failed to load token encoding")
		return 0
	}

	total := 0
	for _, part := range m.History(ctx, sessionID) {
		if part.IsImage() {
			continue
		}
		total += len(enc.Encode(part.Text, nil, nil))
	}
	return total
}
