package handlers

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"givehub/internal/domain"
	"givehub/internal/paystack"
)

func newTestApp() (*App, *fakeSubscriberStore, *fakeContactStore, *fakeDonationStore, *fakeVerifier) {
	subs := &fakeSubscriberStore{}
	contacts := &fakeContactStore{}
	donations := &fakeDonationStore{}
	verifier := &fakeVerifier{}
	app := NewApp(subs, contacts, donations, verifier, "public", zerolog.Nop())
	return app, subs, contacts, donations, verifier
}

type fakeSubscriberStore struct {
	subs      []domain.Subscriber
	insertErr error
	listErr   error
}

func (f *fakeSubscriberStore) FindByEmail(_ context.Context, email string) (*domain.Subscriber, error) {
	for i := range f.subs {
		if f.subs[i].Email == email {
			return &f.subs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSubscriberStore) Insert(_ context.Context, sub *domain.Subscriber) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	for i := range f.subs {
		if f.subs[i].Email == sub.Email {
			return domain.ErrDuplicate
		}
	}
	f.subs = append(f.subs, *sub)
	return nil
}

func (f *fakeSubscriberStore) List(_ context.Context) ([]domain.Subscriber, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	items := append([]domain.Subscriber(nil), f.subs...)
	sort.Slice(items, func(i, j int) bool { return items[i].SubscribedAt.After(items[j].SubscribedAt) })
	return items, nil
}

type fakeContactStore struct {
	msgs      []domain.ContactMessage
	insertErr error
	listErr   error
}

func (f *fakeContactStore) Insert(_ context.Context, msg *domain.ContactMessage) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.msgs = append(f.msgs, *msg)
	return nil
}

func (f *fakeContactStore) List(_ context.Context) ([]domain.ContactMessage, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	items := append([]domain.ContactMessage(nil), f.msgs...)
	sort.Slice(items, func(i, j int) bool { return items[i].SubmittedAt.After(items[j].SubmittedAt) })
	return items, nil
}

type fakeDonationStore struct {
	donations []domain.Donation
	insertErr error
	listErr   error
	upsertErr error
}

func (f *fakeDonationStore) FindByReference(_ context.Context, reference string) (*domain.Donation, error) {
	for i := range f.donations {
		if f.donations[i].Reference == reference {
			return &f.donations[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeDonationStore) Insert(_ context.Context, donation *domain.Donation) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	for i := range f.donations {
		if f.donations[i].Reference == donation.Reference {
			return domain.ErrDuplicate
		}
	}
	f.donations = append(f.donations, *donation)
	return nil
}

func (f *fakeDonationStore) List(_ context.Context) ([]domain.Donation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	items := append([]domain.Donation(nil), f.donations...)
	sort.Slice(items, func(i, j int) bool { return items[i].DonatedAt.After(items[j].DonatedAt) })
	return items, nil
}

func (f *fakeDonationStore) UpsertVerified(_ context.Context, reference string, amount float64, email string) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	for i := range f.donations {
		if f.donations[i].Reference == reference {
			f.donations[i].Status = domain.DonationStatusSuccess
			f.donations[i].Amount = amount
			f.donations[i].Email = email
			return nil
		}
	}
	f.donations = append(f.donations, domain.Donation{
		Amount:    amount,
		Reference: reference,
		Status:    domain.DonationStatusSuccess,
		Email:     email,
	})
	return nil
}

type fakeVerifier struct {
	result *paystack.VerifyResult
	err    error
	refs   []string
}

func (f *fakeVerifier) Verify(_ context.Context, reference string) (*paystack.VerifyResult, error) {
	f.refs = append(f.refs, reference)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}
