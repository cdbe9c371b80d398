package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authorsite-backend/internal/domains/newsletter"
)

// fakeNewsletterRepo keeps subscribers in memory and mimics the unique
// index on lower(email).
type fakeNewsletterRepo struct {
	subscribers map[string]*newsletter.Subscriber
}

func newFakeNewsletterRepo() *fakeNewsletterRepo {
	return &fakeNewsletterRepo{subscribers: map[string]*newsletter.Subscriber{}}
}

func (r *fakeNewsletterRepo) Create(ctx context.Context, email string) (*newsletter.Subscriber, error) {
	if _, exists := r.subscribers[email]; exists {
		return nil, newsletter.ErrAlreadySubscribed
	}
	s := &newsletter.Subscriber{
		ID:           uuid.New(),
		Email:        email,
		SubscribedAt: time.Now(),
		Active:       true,
	}
	r.subscribers[email] = s
	return s, nil
}

func (r *fakeNewsletterRepo) GetByEmail(ctx context.Context, email string) (*newsletter.Subscriber, error) {
	s, ok := r.subscribers[email]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (r *fakeNewsletterRepo) Reactivate(ctx context.Context, id uuid.UUID) (*newsletter.Subscriber, error) {
	for _, s := range r.subscribers {
		if s.ID == id {
			s.Active = true
			s.SubscribedAt = time.Now()
			return s, nil
		}
	}
	return nil, newsletter.ErrAlreadySubscribed
}

func (r *fakeNewsletterRepo) List(ctx context.Context) ([]newsletter.Subscriber, error) {
	out := make([]newsletter.Subscriber, 0, len(r.subscribers))
	for _, s := range r.subscribers {
		out = append(out, *s)
	}
	return out, nil
}

func TestSubscribe(t *testing.T) {
	repo := newFakeNewsletterRepo()
	svc := NewNewsletterService(repo, nil)

	sub, err := svc.Subscribe(context.Background(), &newsletter.SubscribeRequest{Email: "reader@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", sub.Email)
	assert.True(t, sub.Active)
}

func TestSubscribe_DoesNotResolveDomain(t *testing.T) {
	repo := newFakeNewsletterRepo()
	svc := NewNewsletterService(repo, nil)

	// Validation is a format check only. Addresses on domains that do
	// not resolve (or do not exist) must still be accepted.
	for _, email := range []string{"a@b.com", "reader@no-such-host.invalid"} {
		sub, err := svc.Subscribe(context.Background(), &newsletter.SubscribeRequest{Email: email})
		require.NoError(t, err, email)
		assert.Equal(t, email, sub.Email)
	}
}

func TestSubscribe_NormalizesEmail(t *testing.T) {
	repo := newFakeNewsletterRepo()
	svc := NewNewsletterService(repo, nil)

	sub, err := svc.Subscribe(context.Background(), &newsletter.SubscribeRequest{Email: "  Reader@Example.COM "})
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", sub.Email)
}

func TestSubscribe_ActiveDuplicateConflicts(t *testing.T) {
	repo := newFakeNewsletterRepo()
	svc := NewNewsletterService(repo, nil)

	_, err := svc.Subscribe(context.Background(), &newsletter.SubscribeRequest{Email: "reader@example.com"})
	require.NoError(t, err)

	// Same address with different casing is still a duplicate.
	_, err = svc.Subscribe(context.Background(), &newsletter.SubscribeRequest{Email: "READER@example.com"})
	assert.ErrorIs(t, err, newsletter.ErrAlreadySubscribed)
}

func TestSubscribe_ReactivatesInactive(t *testing.T) {
	repo := newFakeNewsletterRepo()
	svc := NewNewsletterService(repo, nil)

	first, err := svc.Subscribe(context.Background(), &newsletter.SubscribeRequest{Email: "reader@example.com"})
	require.NoError(t, err)

	repo.subscribers["reader@example.com"].Active = false

	second, err := svc.Subscribe(context.Background(), &newsletter.SubscribeRequest{Email: "reader@example.com"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.Active)

	// Reactivation must not create a second record.
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSubscribe_InvalidEmail(t *testing.T) {
	repo := newFakeNewsletterRepo()
	svc := NewNewsletterService(repo, nil)

	for _, email := range []string{"", "not-an-email"} {
		_, err := svc.Subscribe(context.Background(), &newsletter.SubscribeRequest{Email: email})
		assert.ErrorIs(t, err, newsletter.ErrInvalidEmail, email)
	}
}
