// internal/app/store/articles/articlestore.go
//
// Articles are split across the relational store (identity) and the document
// store (content). This store is the single owner of both halves: every
// create, update, and delete goes through it so the cross-store foreign key
// stays consistent.
//
// There is no transaction spanning the two stores. Create and update write
// relational-first, so a failure between steps leaves an orphaned relational
// row. Delete removes the relational row first, so a failure leaves an
// orphaned document. The orphan direction is part of the contract: a
// reconciliation sweep only ever has to look for one orphan type per
// operation. No rollback or retry is attempted here.
package articlestore

import (
	"context"
	"errors"
	"time"

	"github.com/dattali18/FSWD-Project-6-Backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no article matches the identifier.
var ErrNotFound = errors.New("article not found")

// Store coordinates the two halves of an article.
type Store struct {
	db *gorm.DB
	c  *mongo.Collection
}

// New creates an article Store over both database handles.
func New(db *gorm.DB, mdb *mongo.Database) *Store {
	return &Store{db: db, c: mdb.Collection("articles")}
}

// UpdateFields holds the changeable parts of an article. Nil fields are
// left untouched.
type UpdateFields struct {
	Title   *string
	Content *string
	Tags    *[]string
}

// Create inserts the relational row first to mint the article identifier,
// then mirrors title/author plus the content into the document store. If
// the document insert fails the relational row is left orphaned.
func (s *Store) Create(ctx context.Context, title string, author uint, content string, tags []string) (*models.Article, error) {
	rec := models.ArticleRecord{Title: title, Author: author}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := models.Article{
		ArticleID:   rec.ID,
		Title:       title,
		Author:      author,
		Content:     content,
		Tags:        tags,
		CreatedDate: now,
		LastUpdated: now,
	}
	res, err := s.c.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return &doc, nil
}

// Update fetches the document half by the relational identifier, syncs the
// relational title when it changes, then applies the field update and
// refreshes last_updated. Ordering is relational-then-document, matching
// Create.
func (s *Store) Update(ctx context.Context, articleID uint, fields UpdateFields) (*models.Article, error) {
	current, err := s.GetByArticleID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if fields.Title != nil && *fields.Title != current.Title {
		err := s.db.WithContext(ctx).
			Model(&models.ArticleRecord{}).
			Where("id = ?", current.ArticleID).
			Update("title", *fields.Title).Error
		if err != nil {
			return nil, err
		}
	}

	set := bson.M{"last_updated": time.Now().UTC()}
	if fields.Title != nil {
		set["title"] = *fields.Title
	}
	if fields.Content != nil {
		set["content"] = *fields.Content
	}
	if fields.Tags != nil {
		set["tags"] = *fields.Tags
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Article
	err = s.c.FindOneAndUpdate(ctx, bson.M{"article_id": articleID}, bson.M{"$set": set}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the relational row first, then the document. A failure
// between the steps leaves an orphaned document rather than a dangling
// relational identifier.
func (s *Store) Delete(ctx context.Context, articleID uint) error {
	current, err := s.GetByArticleID(ctx, articleID)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(&models.ArticleRecord{}, current.ArticleID).Error; err != nil {
		return err
	}

	_, err = s.c.DeleteOne(ctx, bson.M{"_id": current.ID})
	return err
}

// GetByArticleID returns the document half for the relational identifier.
func (s *Store) GetByArticleID(ctx context.Context, articleID uint) (*models.Article, error) {
	var a models.Article
	err := s.c.FindOne(ctx, bson.M{"article_id": articleID}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns every article, newest first. Pagination is applied in memory
// by the caller; fine at current scale, revisit if the collection grows.
func (s *Store) List(ctx context.Context) ([]models.Article, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_date", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var articles []models.Article
	if err := cur.All(ctx, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}
