package core

import "context"

type HistoryRepository interface {
	Add(ctx context.Context, msg ChatMessage) error
	BySession(ctx context.Context, sessionID string) ([]ChatMessage, error)
	Clear(ctx context.Context, sessionID string) (int64, error)
}

type PagesRepository interface {
	InsertPages(ctx context.Context, docs []PageDoc) error
	Count(ctx context.Context) (int64, error)
}
