package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
)

// PostgresAgreementRepository implements AgreementRepository using PostgreSQL
type PostgresAgreementRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAgreementRepository creates a new PostgresAgreementRepository
func NewPostgresAgreementRepository(pool *pgxpool.Pool) *PostgresAgreementRepository {
	return &PostgresAgreementRepository{pool: pool}
}

// validator_id is nullable while the agreement is DRAFT; 0 means unset.
const agreementColumns = `id, creation_date, start_date, end_date, status, document_url, application_id, COALESCE(validator_id, 0)`

func scanAgreement(row pgx.Row) (*domain.Agreement, error) {
	agreement := &domain.Agreement{}
	err := row.Scan(
		&agreement.ID,
		&agreement.CreationDate,
		&agreement.StartDate,
		&agreement.EndDate,
		&agreement.Status,
		&agreement.DocumentURL,
		&agreement.ApplicationID,
		&agreement.ValidatorID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return agreement, nil
}

// Create creates a new agreement
func (r *PostgresAgreementRepository) Create(ctx context.Context, agreement *domain.Agreement) error {
	query := `
		INSERT INTO agreements (creation_date, start_date, end_date, status, document_url, application_id, validator_id)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, 0::bigint))
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		agreement.CreationDate,
		agreement.StartDate,
		agreement.EndDate,
		agreement.Status,
		agreement.DocumentURL,
		agreement.ApplicationID,
		agreement.ValidatorID,
	).Scan(&agreement.ID)
}

// GetByID retrieves an agreement by ID with its full ownership graph:
// the application (student, internship, company) and the validator.
func (r *PostgresAgreementRepository) GetByID(ctx context.Context, id int64) (*domain.Agreement, error) {
	query := `SELECT ` + agreementColumns + ` FROM agreements WHERE id = $1`
	agreement, err := scanAgreement(r.pool.QueryRow(ctx, query, id))
	if err != nil || agreement == nil {
		return agreement, err
	}

	applications := &PostgresApplicationRepository{pool: r.pool}
	application, err := applications.GetByID(ctx, agreement.ApplicationID)
	if err != nil {
		return nil, err
	}
	agreement.Application = application

	if agreement.ValidatorID != 0 {
		validator, err := scanTeacher(r.pool.QueryRow(ctx,
			`SELECT id, user_id, department, grade, specialty FROM teachers WHERE id = $1`, agreement.ValidatorID))
		if err != nil {
			return nil, err
		}
		agreement.Validator = validator
	}
	return agreement, nil
}

// ExistsByApplication checks whether an agreement is already bound to
// the given application.
func (r *PostgresAgreementRepository) ExistsByApplication(ctx context.Context, applicationID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM agreements WHERE application_id = $1)`, applicationID,
	).Scan(&exists)
	return exists, err
}

// List retrieves all agreements
func (r *PostgresAgreementRepository) List(ctx context.Context) ([]*domain.Agreement, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+agreementColumns+` FROM agreements ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agreements []*domain.Agreement
	for rows.Next() {
		agreement, err := scanAgreement(rows)
		if err != nil {
			return nil, err
		}
		agreements = append(agreements, agreement)
	}
	return agreements, rows.Err()
}

// Update updates an agreement
func (r *PostgresAgreementRepository) Update(ctx context.Context, agreement *domain.Agreement) error {
	query := `
		UPDATE agreements
		SET start_date = $2, end_date = $3, status = $4, document_url = $5, validator_id = NULLIF($6, 0::bigint)
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		agreement.ID,
		agreement.StartDate,
		agreement.EndDate,
		agreement.Status,
		agreement.DocumentURL,
		agreement.ValidatorID,
	)
	return err
}

// CompareAndUpdateStatus atomically moves the agreement between two
// statuses. A stale expected status leaves the row untouched and
// returns false, so concurrent validations cannot double-fire.
func (r *PostgresAgreementRepository) CompareAndUpdateStatus(ctx context.Context, id int64, from, to domain.AgreementStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE agreements SET status = $3 WHERE id = $1 AND status = $2`,
		id, from, to,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete deletes an agreement
func (r *PostgresAgreementRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM agreements WHERE id = $1`, id)
	return err
}
