package about

import (
	"context"
	"time"

	"github.com/adewale-dev/portfolio-api/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository persists the singleton about document.
type Repository interface {
	// Get returns the about document, or (nil, nil) when none exists yet.
	Get(ctx context.Context) (*models.About, error)
	// Save upserts the singleton: it updates the existing document when one
	// exists and inserts otherwise.
	Save(ctx context.Context, a *models.About) (*models.About, error)
}

// MongoRepository implements Repository using MongoDB
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Get(ctx context.Context) (*models.About, error) {
	var a models.About
	if err := r.col.FindOne(ctx, bson.M{}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *MongoRepository) Save(ctx context.Context, a *models.About) (*models.About, error) {
	now := time.Now().UTC()
	set := bson.M{
		"bio":          a.Bio,
		"title":        a.Title,
		"skills":       a.Skills,
		"experience":   a.Experience,
		"education":    a.Education,
		"displayName":  a.DisplayName,
		"initials":     a.Initials,
		"profileImage": a.ProfileImage,
		"updatedAt":    now,
	}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"_id": uuid.NewString(), "createdAt": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var saved models.About
	if err := r.col.FindOneAndUpdate(ctx, bson.M{}, update, opts).Decode(&saved); err != nil {
		return nil, err
	}
	return &saved, nil
}
