package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sandevgo/pdfchat/internal/core"
	"github.com/sandevgo/pdfchat/pkg/log"
)

// HistoryRepo is the append-only per-session chat log. Messages are inserted
// one at a time with no transactional grouping; a crash between the user and
// agent inserts can leave an odd-length history, which is acceptable for a
// chat log.
type HistoryRepo struct {
	coll *mongo.Collection
}

func NewHistoryRepo(coll *mongo.Collection) *HistoryRepo {
	return &HistoryRepo{coll: coll}
}

func (r *HistoryRepo) Add(ctx context.Context, msg core.ChatMessage) error {
	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}
	return nil
}

func (r *HistoryRepo) BySession(ctx context.Context, sessionID string) ([]core.ChatMessage, error) {
	filter := bson.D{{Key: "session_id", Value: sessionID}}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find session history: %w", err)
	}
	defer cur.Close(ctx)

	var messages []core.ChatMessage
	if err := cur.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("decode session history: %w", err)
	}

	log.FromCtx(ctx).Debug().Int("count", len(messages)).Msg("loaded session history")
	return messages, nil
}

func (r *HistoryRepo) Clear(ctx context.Context, sessionID string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.D{{Key: "session_id", Value: sessionID}})
	if err != nil {
		return 0, fmt.Errorf("clear session history: %w", err)
	}
	return res.DeletedCount, nil
}
