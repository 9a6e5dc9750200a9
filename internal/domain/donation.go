package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation statuses.
const (
	DonationStatusSuccess = "success"
	DonationStatusFailed  = "failed"
	DonationStatusPending = "pending"
)

// Donation is a recorded contribution. The donations collection enforces
// uniqueness on the reference field; payment verification upserts by it.
type Donation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Amount    float64            `bson:"amount" json:"amount"`
	Reference string             `bson:"reference" json:"reference"`
	Status    string             `bson:"status" json:"status"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	DonatedAt time.Time          `bson:"donatedAt" json:"donatedAt"`
}

// ValidDonationStatus reports whether status is one of the accepted values.
func ValidDonationStatus(status string) bool {
	switch status {
	case DonationStatusSuccess, DonationStatusFailed, DonationStatusPending:
		return true
	}
	return false
}
