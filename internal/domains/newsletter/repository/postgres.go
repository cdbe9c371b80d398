package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"authorsite-backend/internal/domains/newsletter"
)

const subscriberColumns = `id, email, subscribed_at, active`

type postgresNewsletterRepository struct {
	db *pgxpool.Pool
}

// NewPostgresNewsletterRepository creates a PostgreSQL newsletter repository
func NewPostgresNewsletterRepository(db *pgxpool.Pool) newsletter.Repository {
	return &postgresNewsletterRepository{db: db}
}

func scanSubscriber(row pgx.Row) (*newsletter.Subscriber, error) {
	var s newsletter.Subscriber
	err := row.Scan(&s.ID, &s.Email, &s.SubscribedAt, &s.Active)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *postgresNewsletterRepository) Create(ctx context.Context, email string) (*newsletter.Subscriber, error) {
	query := fmt.Sprintf(`
		INSERT INTO newsletter_subscribers (email)
		VALUES ($1)
		RETURNING %s`, subscriberColumns)

	s, err := scanSubscriber(r.db.QueryRow(ctx, query, email))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, newsletter.ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("failed to create subscriber: %w", err)
	}
	return s, nil
}

func (r *postgresNewsletterRepository) GetByEmail(ctx context.Context, email string) (*newsletter.Subscriber, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM newsletter_subscribers
		WHERE lower(email) = lower($1)`, subscriberColumns)

	s, err := scanSubscriber(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscriber: %w", err)
	}
	return s, nil
}

func (r *postgresNewsletterRepository) Reactivate(ctx context.Context, id uuid.UUID) (*newsletter.Subscriber, error) {
	query := fmt.Sprintf(`
		UPDATE newsletter_subscribers
		SET active = TRUE, subscribed_at = NOW()
		WHERE id = $1
		RETURNING %s`, subscriberColumns)

	s, err := scanSubscriber(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to reactivate subscriber: %w", err)
	}
	return s, nil
}

func (r *postgresNewsletterRepository) List(ctx context.Context) ([]newsletter.Subscriber, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM newsletter_subscribers
		ORDER BY subscribed_at DESC`, subscriberColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer rows.Close()

	subscribers := make([]newsletter.Subscriber, 0)
	for rows.Next() {
		s, err := scanSubscriber(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		subscribers = append(subscribers, *s)
	}
	return subscribers, rows.Err()
}
