package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"givehub/internal/domain"
)

// ContactRepositoryMongo implements ContactStore on MongoDB.
type ContactRepositoryMongo struct {
	coll *mongo.Collection
}

// NewContactRepository creates a new contact repo.
func NewContactRepository(db *mongo.Database) *ContactRepositoryMongo {
	return &ContactRepositoryMongo{coll: db.Collection("contacts")}
}

// Insert stores a new contact message.
func (r *ContactRepositoryMongo) Insert(ctx context.Context, msg *domain.ContactMessage) error {
	res, err := r.coll.InsertOne(ctx, msg)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		msg.ID = id
	}
	return nil
}

// List returns all contact messages, most recent first.
func (r *ContactRepositoryMongo) List(ctx context.Context) ([]domain.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []domain.ContactMessage{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
