package blog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const collectionName = "blogs"

// Store is the persistence contract used by BlogService.
type Store interface {
	InsertBlog(ctx context.Context, blog *Blog) error
	ListSlugs(ctx context.Context) ([]string, error)
	GetBlogBySlug(ctx context.Context, slug string) (*Blog, error)
}

type BlogRepository struct {
	collection *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{
		collection: db.Collection(collectionName),
	}
}

// EnsureIndexes creates the unique slug index.
func (r *BlogRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("slug_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create slug index: %w", err)
	}
	return nil
}

func (r *BlogRepository) InsertBlog(ctx context.Context, blog *Blog) error {
	now := time.Now()
	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = now
	}
	blog.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, blog)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlugExists
		}
		return fmt.Errorf("failed to insert blog: %w", err)
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		blog.ID = id
	}
	return nil
}

// ListSlugs returns every slug, newest first.
func (r *BlogRepository) ListSlugs(ctx context.Context) ([]string, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.M{"slug": 1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve blogs: %w", err)
	}
	defer cursor.Close(ctx)

	slugs := []string{}
	for cursor.Next(ctx) {
		var doc struct {
			Slug string `bson:"slug"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		slugs = append(slugs, doc.Slug)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return slugs, nil
}

func (r *BlogRepository) GetBlogBySlug(ctx context.Context, slug string) (*Blog, error) {
	var blog Blog
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to retrieve blog: %w", err)
	}
	return &blog, nil
}
