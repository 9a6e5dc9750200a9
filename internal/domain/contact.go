package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact reasons accepted by the contact form.
const (
	ReasonGeneral       = "general"
	ReasonCollaboration = "collaboration"
	ReasonPartnership   = "partnership"
	ReasonSupport       = "support"
	ReasonOther         = "other"
)

// Contact message workflow states.
const (
	ContactStatusNew       = "new"
	ContactStatusRead      = "read"
	ContactStatusResponded = "responded"
)

// ContactMessage is a contact form submission.
type ContactMessage struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Reason      string             `bson:"reason" json:"reason"`
	Message     string             `bson:"message" json:"message"`
	SubmittedAt time.Time          `bson:"submittedAt" json:"submittedAt"`
	Status      string             `bson:"status" json:"status"`
}

// ValidContactReason reports whether reason is one of the accepted values.
func ValidContactReason(reason string) bool {
	switch reason {
	case ReasonGeneral, ReasonCollaboration, ReasonPartnership, ReasonSupport, ReasonOther:
		return true
	}
	return false
}
