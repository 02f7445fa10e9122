package portfolio

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const documentID = "default"

type PortfolioRepository struct {
	collection *mongo.Collection
}

func NewPortfolioRepository(db *mongo.Database) *PortfolioRepository {
	return &PortfolioRepository{
		collection: db.Collection("portfolio"),
	}
}

func (r *PortfolioRepository) Get(ctx context.Context) (*Portfolio, error) {
	var p Portfolio
	err := r.collection.FindOne(ctx, bson.M{"_id": documentID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotSeeded
		}
		return nil, fmt.Errorf("failed to retrieve portfolio: %w", err)
	}
	return &p, nil
}

// Upsert replaces the stored portfolio document.
func (r *PortfolioRepository) Upsert(ctx context.Context, p *Portfolio) error {
	doc := *p
	doc.ID = documentID
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": documentID}, &doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to store portfolio: %w", err)
	}
	return nil
}
