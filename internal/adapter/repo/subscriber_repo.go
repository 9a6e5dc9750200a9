package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"givehub/internal/domain"
)

// SubscriberRepositoryMongo implements SubscriberStore on MongoDB.
type SubscriberRepositoryMongo struct {
	coll *mongo.Collection
}

// NewSubscriberRepository creates a new subscriber repo.
func NewSubscriberRepository(db *mongo.Database) *SubscriberRepositoryMongo {
	return &SubscriberRepositoryMongo{coll: db.Collection("subscribers")}
}

// FindByEmail returns the subscriber with the given (lowercased) email,
// or domain.ErrNotFound.
func (r *SubscriberRepositoryMongo) FindByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	var sub domain.Subscriber
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

// Insert stores a new subscriber. A unique-index violation on email maps to
// domain.ErrDuplicate so concurrent subscriptions degrade to a conflict.
func (r *SubscriberRepositoryMongo) Insert(ctx context.Context, sub *domain.Subscriber) error {
	res, err := r.coll.InsertOne(ctx, sub)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		sub.ID = id
	}
	return nil
}

// List returns all subscribers, most recent first.
func (r *SubscriberRepositoryMongo) List(ctx context.Context) ([]domain.Subscriber, error) {
	opts := options.Find().SetSort(bson.D{{Key: "subscribedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []domain.Subscriber{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
