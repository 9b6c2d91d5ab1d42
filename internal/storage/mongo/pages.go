package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sandevgo/pdfchat/internal/core"
	"github.com/sandevgo/pdfchat/pkg/log"
)

// Candidate pool is deliberately much larger than the final result count to
// improve approximate-search recall before ranking.
const (
	searchCandidates = 150
	searchLimit      = 2
)

// PagesRepo holds the ingested page images and their embeddings, and runs
// $vectorSearch against the named Atlas index.
type PagesRepo struct {
	coll  *mongo.Collection
	index string
}

func NewPagesRepo(coll *mongo.Collection, index string) *PagesRepo {
	return &PagesRepo{coll: coll, index: index}
}

func (r *PagesRepo) Search(ctx context.Context, vector []float64) ([]core.PageHit, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$vectorSearch", Value: bson.D{
			{Key: "index", Value: r.index},
			{Key: "path", Value: "embedding"},
			{Key: "queryVector", Value: vector},
			{Key: "numCandidates", Value: searchCandidates},
			{Key: "limit", Value: searchLimit},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "key", Value: 1},
			{Key: "width", Value: 1},
			{Key: "height", Value: 1},
			{Key: "page_number", Value: 1},
			{Key: "score", Value: bson.D{{Key: "$meta", Value: "vectorSearchScore"}}},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("vector search aggregate: %w", err)
	}
	defer cur.Close(ctx)

	var hits []core.PageHit
	if err := cur.All(ctx, &hits); err != nil {
		return nil, fmt.Errorf("decode search results: %w", err)
	}

	log.FromCtx(ctx).Debug().Int("hits", len(hits)).Msg("vector search completed")
	return hits, nil
}

func (r *PagesRepo) InsertPages(ctx context.Context, docs []core.PageDoc) error {
	if len(docs) == 0 {
		return nil
	}

	models := make([]interface{}, 0, len(docs))
	for _, d := range docs {
		models = append(models, d)
	}

	if _, err := r.coll.InsertMany(ctx, models); err != nil {
		return fmt.Errorf("insert pages: %w", err)
	}
	return nil
}

func (r *PagesRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return n, nil
}
