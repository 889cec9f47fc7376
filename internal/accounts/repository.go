package accounts

import (
	"context"
	"errors"
	"time"

	"github.com/adewale-dev/portfolio-api/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("account not found")

// Repository defines persistence operations for administrator accounts
type Repository interface {
	Create(ctx context.Context, a *models.Account) error
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	// First returns the oldest account, or ErrNotFound when none exists.
	First(ctx context.Context) (*models.Account, error)
	Count(ctx context.Context) (int64, error)
	UpdatePassword(ctx context.Context, id, hash string, changedAt time.Time) error
	UpdateEmail(ctx context.Context, id, email string, changedAt time.Time) error
	UpdateProfile(ctx context.Context, id string, p models.Profile) (*models.Account, error)
}

// MongoRepository implements Repository using MongoDB
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, a *models.Account) error {
	now := time.Now().UTC()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.CreatedAt = now
	a.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, a)
	return err
}

func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	var a models.Account
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	var a models.Account
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *MongoRepository) First(ctx context.Context) (*models.Account, error) {
	var a models.Account
	if err := r.col.FindOne(ctx, bson.M{}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *MongoRepository) UpdatePassword(ctx context.Context, id, hash string, changedAt time.Time) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"password":           hash,
		"lastPasswordChange": changedAt,
		"updatedAt":          changedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) UpdateEmail(ctx context.Context, id, email string, changedAt time.Time) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"email":           email,
		"lastEmailChange": changedAt,
		"updatedAt":       changedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) UpdateProfile(ctx context.Context, id string, p models.Profile) (*models.Account, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Account
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"profile":   p,
		"updatedAt": time.Now().UTC(),
	}}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}
