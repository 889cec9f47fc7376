package notifications

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

var ErrNotFound = errors.New("notification not found")

// UpdateParams is the partial-update payload for PATCH; nil fields are left
// untouched.
type UpdateParams struct {
	Read    *bool
	Title   *string
	Message *string
	Link    *string
}

// Repository defines persistence operations for notifications
type Repository interface {
	Create(ctx context.Context, n *models.Notification) error
	CreateMany(ctx context.Context, ns []*models.Notification) error
	List(ctx context.Context, limit int64) ([]*models.Notification, error)
	Update(ctx context.Context, id string, p UpdateParams) (*models.Notification, error)
	Delete(ctx context.Context, id string) error
	// MarkAllRead sets read=true on every unread notification and returns the
	// number of documents modified. Idempotent.
	MarkAllRead(ctx context.Context) (int64, error)
}

// MongoRepository implements Repository using MongoDB
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, n *models.Notification) error {
	now := time.Now().UTC()
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	n.CreatedAt = now
	n.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, n)
	return err
}

func (r *MongoRepository) CreateMany(ctx context.Context, ns []*models.Notification) error {
	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(ns))
	for _, n := range ns {
		if n.ID == "" {
			n.ID = uuid.NewString()
		}
		n.CreatedAt = now
		n.UpdatedAt = now
		docs = append(docs, n)
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}

func (r *MongoRepository) List(ctx context.Context, limit int64) ([]*models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*models.Notification{}
	for cur.Next(ctx) {
		var n models.Notification
		if err := cur.Decode(&n); err != nil {
			return nil, err
		}
		out = append(out, &n)
	}
	return out, cur.Err()
}

func (r *MongoRepository) Update(ctx context.Context, id string, p UpdateParams) (*models.Notification, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if p.Read != nil {
		set["read"] = *p.Read
	}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Message != nil {
		set["message"] = *p.Message
	}
	if p.Link != nil {
		set["link"] = *p.Link
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Notification
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) MarkAllRead(ctx context.Context) (int64, error) {
	res, err := r.col.UpdateMany(ctx, bson.M{"read": false}, bson.M{"$set": bson.M{"read": true, "updatedAt": time.Now().UTC()}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
