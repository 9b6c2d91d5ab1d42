package agent

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/sandevgo/pdfchat/internal/core"
	"github.com/sandevgo/pdfchat/pkg/log"
)

// loadImageParts reads the page images behind retrieval hits. Unreadable
// files are skipped with a warning so a pruned pages directory degrades the
// answer instead of failing the turn.
func loadImageParts(ctx context.Context, read func(string) ([]byte, error), keys []string) []core.Part {
	logger := log.FromCtx(ctx)

	var parts []core.Part
	for _, key := range keys {
		data, err := read(key)
		if err != nil {
			logger.Warn().Err(err).Str("key", key).Msg("could not load retrieved page image")
			continue
		}
		parts = append(parts, core.ImagePart(mimeForPath(key), data))
	}
	return parts
}

func mimeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "image/png"
	}
}

func hitKeys(hits []core.PageHit) []string {
	keys := make([]string, 0, len(hits))
	for _, hit := range hits {
		keys = append(keys, hit.Key)
	}
	return keys
}
