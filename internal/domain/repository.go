package domain

import "context"

// SubscriberStore defines persistence for newsletter subscribers.
type SubscriberStore interface {
	FindByEmail(ctx context.Context, email string) (*Subscriber, error)
	Insert(ctx context.Context, sub *Subscriber) error
	List(ctx context.Context) ([]Subscriber, error)
}

// ContactStore defines persistence for contact messages.
type ContactStore interface {
	Insert(ctx context.Context, msg *ContactMessage) error
	List(ctx context.Context) ([]ContactMessage, error)
}

// DonationStore defines persistence for donations. UpsertVerified updates
// the donation matching reference to a verified success, creating the record
// when none exists.
type DonationStore interface {
	FindByReference(ctx context.Context, reference string) (*Donation, error)
	Insert(ctx context.Context, donation *Donation) error
	List(ctx context.Context) ([]Donation, error)
	UpsertVerified(ctx context.Context, reference string, amount float64, email string) error
}
