package resumes

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

var ErrNotFound = errors.New("resume not found")

// Repository defines persistence operations for resumes
type Repository interface {
	Create(ctx context.Context, r *models.Resume) error
	// List returns all resumes, newest first.
	List(ctx context.Context) ([]*models.Resume, error)
	Get(ctx context.Context, id string) (*models.Resume, error)
	Update(ctx context.Context, r *models.Resume) (*models.Resume, error)
	Delete(ctx context.Context, id string) error
}

// MongoRepository implements Repository using MongoDB
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, doc *models.Resume) error {
	now := time.Now().UTC()
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	doc.CreatedAt = now
	doc.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, doc)
	return err
}

func (r *MongoRepository) List(ctx context.Context) ([]*models.Resume, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*models.Resume{}
	for cur.Next(ctx) {
		var doc models.Resume
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, &doc)
	}
	return out, cur.Err()
}

func (r *MongoRepository) Get(ctx context.Context, id string) (*models.Resume, error) {
	var doc models.Resume
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *MongoRepository) Update(ctx context.Context, doc *models.Resume) (*models.Resume, error) {
	set := bson.M{
		"personalInfo":   doc.PersonalInfo,
		"experience":     doc.Experience,
		"education":      doc.Education,
		"skills":         doc.Skills,
		"certifications": doc.Certifications,
		"languages":      doc.Languages,
		"isActive":       doc.IsActive,
		"updatedAt":      time.Now().UTC(),
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Resume
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": doc.ID}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
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
