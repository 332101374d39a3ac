package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
)

// PostgresInternshipRepository implements InternshipRepository using PostgreSQL
type PostgresInternshipRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresInternshipRepository creates a new PostgresInternshipRepository
func NewPostgresInternshipRepository(pool *pgxpool.Pool) *PostgresInternshipRepository {
	return &PostgresInternshipRepository{pool: pool}
}

const internshipColumns = `id, title, description, city, country, start_date, end_date, is_active, is_paid, company_id`

func scanInternship(row pgx.Row) (*domain.Internship, error) {
	internship := &domain.Internship{}
	err := row.Scan(
		&internship.ID,
		&internship.Title,
		&internship.Description,
		&internship.City,
		&internship.Country,
		&internship.StartDate,
		&internship.EndDate,
		&internship.IsActive,
		&internship.IsPaid,
		&internship.CompanyID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return internship, nil
}

// Create creates a new internship offer
func (r *PostgresInternshipRepository) Create(ctx context.Context, internship *domain.Internship) error {
	query := `
		INSERT INTO internships (title, description, city, country, start_date, end_date, is_active, is_paid, company_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		internship.Title,
		internship.Description,
		internship.City,
		internship.Country,
		internship.StartDate,
		internship.EndDate,
		internship.IsActive,
		internship.IsPaid,
		internship.CompanyID,
	).Scan(&internship.ID)
}

// GetByID retrieves an internship by ID, including its company
func (r *PostgresInternshipRepository) GetByID(ctx context.Context, id int64) (*domain.Internship, error) {
	query := `SELECT ` + internshipColumns + ` FROM internships WHERE id = $1`
	internship, err := scanInternship(r.pool.QueryRow(ctx, query, id))
	if err != nil || internship == nil {
		return internship, err
	}

	company, err := scanCompany(r.pool.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, internship.CompanyID))
	if err != nil {
		return nil, err
	}
	internship.Company = company
	return internship, nil
}

// List retrieves all internship offers
func (r *PostgresInternshipRepository) List(ctx context.Context) ([]*domain.Internship, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+internshipColumns+` FROM internships ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var internships []*domain.Internship
	for rows.Next() {
		internship, err := scanInternship(rows)
		if err != nil {
			return nil, err
		}
		internships = append(internships, internship)
	}
	return internships, rows.Err()
}

// Update updates an internship offer
func (r *PostgresInternshipRepository) Update(ctx context.Context, internship *domain.Internship) error {
	query := `
		UPDATE internships
		SET title = $2, description = $3, city = $4, country = $5,
		    start_date = $6, end_date = $7, is_active = $8, is_paid = $9
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		internship.ID,
		internship.Title,
		internship.Description,
		internship.City,
		internship.Country,
		internship.StartDate,
		internship.EndDate,
		internship.IsActive,
		internship.IsPaid,
	)
	return err
}

// Delete deletes an internship offer
func (r *PostgresInternshipRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM internships WHERE id = $1`, id)
	return err
}
