package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clinica/appointments-api/internal/domain/center"
	"github.com/clinica/appointments-api/internal/httperr"
	"github.com/clinica/appointments-api/internal/models"
)

type CenterMongoRepository struct {
	col *mongo.Collection
}

func NewCenterMongoRepository(db *mongo.Database) *CenterMongoRepository {
	return &CenterMongoRepository{col: db.Collection(CollectionCenters)}
}

func (r *CenterMongoRepository) ListCenters(ctx context.Context) ([]models.Center, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list centers: %w", err)
	}
	defer cur.Close(ctx)

	centers := []models.Center{}
	if err := cur.All(ctx, &centers); err != nil {
		return nil, fmt.Errorf("decode centers: %w", err)
	}
	return centers, nil
}

func (r *CenterMongoRepository) GetCenterByName(ctx context.Context, name string) (*models.Center, error) {
	var c models.Center
	if err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&c); err != nil {
		return nil, noDocuments(err, httperr.CodeCenterNotFound)
	}
	return &c, nil
}

func (r *CenterMongoRepository) SeedCenters(ctx context.Context, centers []models.Center) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, fmt.Errorf("count centers: %w", err)
	}
	if count > 0 || len(centers) == 0 {
		return false, nil
	}

	docs := make([]any, 0, len(centers))
	for _, c := range centers {
		docs = append(docs, c)
	}
	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		return false, fmt.Errorf("seed centers: %w", err)
	}
	return true, nil
}

var _ center.Repository = (*CenterMongoRepository)(nil)
