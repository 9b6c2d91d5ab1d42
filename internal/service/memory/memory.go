package memory

import (
	"context"
	"os"
	"time"

	"github.com/sandevgo/pdfchat/internal/core"
	"github.com/sandevgo/pdfchat/pkg/log"
)

// Memory replays prior session turns into new orchestration calls. When
// disabled every operation is a no-op, so a disabled session behaves exactly
// as if memory were absent.
//
// History is strictly session-scoped: isolation rests entirely on the
// session_id filter, so IDs must stay unguessable for the lifetime of a run.
type Memory struct {
	enabled   bool
	repo      core.HistoryRepository
	loadImage func(path string) ([]byte, error)
}

func New(enabled bool, repo core.HistoryRepository) *Memory {
	return &Memory{
		enabled:   enabled,
		repo:      repo,
		loadImage: os.ReadFile,
	}
}

func (m *Memory) Enabled() bool {
	return m.enabled
}

// Append stores one turn fragment. Storage failures are warnings: losing a
// history entry must never abort the turn that produced it.
func (m *Memory) Append(ctx context.Context, sessionID, role, msgType, content string) {
	if !m.enabled {
		return
	}

	msg := core.ChatMessage{
		SessionID: sessionID,
		Role:      role,
		Type:      msgType,
		Content:   content,
		Timestamp: time.Now(),
	}
	if err := m.repo.Add(ctx, msg); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("failed to store chat message")
	}
}

// History returns the session's prior turns in timestamp order, as parts
// ready for a generation call. Image references that no longer load are
// skipped with a warning, never substituted.
func (m *Memory) History(ctx context.Context, sessionID string) []core.Part {
	if !m.enabled {
		return nil
	}
	logger := log.FromCtx(ctx)

	messages, err := m.repo.BySession(ctx, sessionID)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to retrieve history")
		return nil
	}

	var parts []core.Part
	for _, msg := range messages {
		switch msg.Type {
		case core.TypeText:
			parts = append(parts, core.TextPart(msg.Content))
		case core.TypeImage:
			data, err := m.loadImage(msg.Content)
			if err != nil {
				logger.Warn().Err(err).Str("path", msg.Content).Msg("could not load image from history")
				continue
			}
			parts = append(parts, core.ImagePart("image/png", data))
		}
	}
	return parts
}

// Clear removes every message of the session and reports how many were
// deleted.
func (m *Memory) Clear(ctx context.Context, sessionID string) (int64, error) {
	if !m.enabled {
		return 0, nil
	}
	return m.repo.Clear(ctx, sessionID)
}
