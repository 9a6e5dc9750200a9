package repo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"givehub/internal/domain"
)

// DonationRepositoryMongo implements DonationStore on MongoDB.
type DonationRepositoryMongo struct {
	coll *mongo.Collection
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(db *mongo.Database) *DonationRepositoryMongo {
	return &DonationRepositoryMongo{coll: db.Collection("donations")}
}

// FindByReference returns the donation with the given payment reference,
// or domain.ErrNotFound.
func (r *DonationRepositoryMongo) FindByReference(ctx context.Context, reference string) (*domain.Donation, error) {
	var donation domain.Donation
	err := r.coll.FindOne(ctx, bson.M{"reference": reference}).Decode(&donation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &donation, nil
}

// Insert stores a new donation. A unique-index violation on reference maps
// to domain.ErrDuplicate.
func (r *DonationRepositoryMongo) Insert(ctx context.Context, donation *domain.Donation) error {
	res, err := r.coll.InsertOne(ctx, donation)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		donation.ID = id
	}
	return nil
}

// List returns all donations, most recent first.
func (r *DonationRepositoryMongo) List(ctx context.Context) ([]domain.Donation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "donatedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []domain.Donation{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpsertVerified marks the donation with the given reference as a verified
// success, overwriting amount and email from the gateway. The record is
// created when no donation matches the reference.
func (r *DonationRepositoryMongo) UpsertVerified(ctx context.Context, reference string, amount float64, email string) error {
	update := bson.M{
		"$set": bson.M{
			"status": domain.DonationStatusSuccess,
			"amount": amount,
			"email":  email,
		},
		"$setOnInsert": bson.M{
			"donatedAt": time.Now(),
		},
	}
	_, err := r.coll.UpdateOne(ctx, bson.M{"reference": reference}, update, options.Update().SetUpsert(true))
	return err
}
