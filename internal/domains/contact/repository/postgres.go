package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"authorsite-backend/internal/domains/contact"
)

const inquiryColumns = `id, name, email, subject, message, status, submitted_at`

type postgresContactRepository struct {
	db *pgxpool.Pool
}

// NewPostgresContactRepository creates a PostgreSQL contact repository
func NewPostgresContactRepository(db *pgxpool.Pool) contact.Repository {
	return &postgresContactRepository{db: db}
}

func scanInquiry(row pgx.Row) (*contact.Inquiry, error) {
	var i contact.Inquiry
	err := row.Scan(&i.ID, &i.Name, &i.Email, &i.Subject, &i.Message, &i.Status, &i.SubmittedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *postgresContactRepository) Create(ctx context.Context, inquiry *contact.Inquiry) (*contact.Inquiry, error) {
	query := fmt.Sprintf(`
		INSERT INTO contact_inquiries (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING %s`, inquiryColumns)

	created, err := scanInquiry(r.db.QueryRow(ctx, query,
		inquiry.Name, inquiry.Email, inquiry.Subject, inquiry.Message))
	if err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}
	return created, nil
}

func (r *postgresContactRepository) List(ctx context.Context) ([]contact.Inquiry, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM contact_inquiries
		ORDER BY submitted_at DESC`, inquiryColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := make([]contact.Inquiry, 0)
	for rows.Next() {
		i, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, *i)
	}
	return inquiries, rows.Err()
}
