// Package indexes ensures the MongoDB indexes the application relies on.
package indexes

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureAll is called at startup. Index creation is idempotent, so running
// it on every boot is safe.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	return ensureArticles(ctx, db)
}

func ensureArticles(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("articles")
	_, err := c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		// article_id is the cross-store foreign key; every read-by-id and
		// every dual-write step resolves through it.
		{
			Keys:    bson.D{{Key: "article_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_articles_article_id"),
		},
		// author supports per-writer listings.
		{
			Keys:    bson.D{{Key: "author", Value: 1}},
			Options: options.Index().SetName("idx_articles_author"),
		},
	})
	return err
}
