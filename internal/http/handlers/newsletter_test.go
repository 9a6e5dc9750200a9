package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"givehub/internal/domain"
)

func TestNewsletterSubscribeRejectsInvalidEmail(t *testing.T) {
	app, _, _, _, _ := newTestApp()

	for _, body := range []string{`{}`, `{"email":""}`, `{"email":"not-an-email"}`} {
		req := httptest.NewRequest("POST", "/api/newsletter", strings.NewReader(body))
		rr := httptest.NewRecorder()

		app.NewsletterSubscribe(rr, req)

		if rr.Code != 400 {
			t.Fatalf("body %s: unexpected status code: got %d, want 400", body, rr.Code)
		}
		var resp struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Success {
			t.Fatalf("body %s: expected success=false", body)
		}
		if resp.Message != "Please provide a valid email address" {
			t.Fatalf("unexpected message: %q", resp.Message)
		}
	}
}

func TestNewsletterSubscribeNormalizesEmail(t *testing.T) {
	app, subs, _, _, _ := newTestApp()

	req := httptest.NewRequest("POST", "/api/newsletter", strings.NewReader(`{"email":"  User@Example.COM "}`))
	rr := httptest.NewRecorder()

	app.NewsletterSubscribe(rr, req)

	if rr.Code != 201 {
		t.Fatalf("unexpected status code: got %d, want 201", rr.Code)
	}
	if len(subs.subs) != 1 {
		t.Fatalf("expected 1 stored subscriber, got %d", len(subs.subs))
	}
	if subs.subs[0].Email != "user@example.com" {
		t.Fatalf("expected normalized email, got %q", subs.subs[0].Email)
	}
	if subs.subs[0].SubscribedAt.IsZero() {
		t.Fatalf("expected subscribedAt to be set")
	}
}

func TestNewsletterSubscribeDuplicateEmail(t *testing.T) {
	app, subs, _, _, _ := newTestApp()
	subs.subs = []domain.Subscriber{{Email: "user@example.com", SubscribedAt: time.Now()}}

	req := httptest.NewRequest("POST", "/api/newsletter", strings.NewReader(`{"email":"USER@example.com"}`))
	rr := httptest.NewRecorder()

	app.NewsletterSubscribe(rr, req)

	if rr.Code != 400 {
		t.Fatalf("unexpected status code: got %d, want 400", rr.Code)
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "This email is already subscribed" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if len(subs.subs) != 1 {
		t.Fatalf("expected store unchanged, got %d subscribers", len(subs.subs))
	}
}

func TestNewsletterSubscribeLosesInsertRace(t *testing.T) {
	app, subs, _, _, _ := newTestApp()
	subs.insertErr = domain.ErrDuplicate

	req := httptest.NewRequest("POST", "/api/newsletter", strings.NewReader(`{"email":"user@example.com"}`))
	rr := httptest.NewRecorder()

	app.NewsletterSubscribe(rr, req)

	if rr.Code != 400 {
		t.Fatalf("duplicate-key insert should answer 400, got %d", rr.Code)
	}
}

func TestNewsletterSubscribersNewestFirst(t *testing.T) {
	app, subs, _, _, _ := newTestApp()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	subs.subs = []domain.Subscriber{
		{Email: "a@example.com", SubscribedAt: base},
		{Email: "c@example.com", SubscribedAt: base.Add(2 * time.Hour)},
		{Email: "b@example.com", SubscribedAt: base.Add(time.Hour)},
	}

	req := httptest.NewRequest("GET", "/api/newsletter/subscribers", nil)
	rr := httptest.NewRecorder()

	app.NewsletterSubscribers(rr, req)

	if rr.Code != 200 {
		t.Fatalf("unexpected status code: got %d, want 200", rr.Code)
	}
	var resp struct {
		Success     bool                `json:"success"`
		Count       int                 `json:"count"`
		Subscribers []domain.Subscriber `json:"subscribers"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Count != 3 {
		t.Fatalf("expected success with count 3, got %+v", resp)
	}
	want := []string{"c@example.com", "b@example.com", "a@example.com"}
	for i, email := range want {
		if resp.Subscribers[i].Email != email {
			t.Fatalf("subscribers[%d] = %q, want %q", i, resp.Subscribers[i].Email, email)
		}
	}
}
