package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
)

// PostgresCompanyRepository implements CompanyRepository using PostgreSQL
type PostgresCompanyRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCompanyRepository creates a new PostgresCompanyRepository
func NewPostgresCompanyRepository(pool *pgxpool.Pool) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{pool: pool}
}

const companyColumns = `id, user_id, name, address, description, website, phone, professional_email`

func scanCompany(row pgx.Row) (*domain.Company, error) {
	company := &domain.Company{}
	err := row.Scan(
		&company.ID,
		&company.UserID,
		&company.Name,
		&company.Address,
		&company.Description,
		&company.Website,
		&company.Phone,
		&company.ProfessionalEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return company, nil
}

// Create creates a new company profile
func (r *PostgresCompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	query := `
		INSERT INTO companies (user_id, name, address, description, website, phone, professional_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		company.UserID,
		company.Name,
		company.Address,
		company.Description,
		company.Website,
		company.Phone,
		company.ProfessionalEmail,
	).Scan(&company.ID)
}

// GetByID retrieves a company by ID
func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return scanCompany(r.pool.QueryRow(ctx, query, id))
}

// GetByUserID retrieves a company by its user account ID
func (r *PostgresCompanyRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE user_id = $1`
	return scanCompany(r.pool.QueryRow(ctx, query, userID))
}

// List retrieves all companies
func (r *PostgresCompanyRepository) List(ctx context.Context) ([]*domain.Company, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*domain.Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}

// Update updates a company profile
func (r *PostgresCompanyRepository) Update(ctx context.Context, company *domain.Company) error {
	query := `
		UPDATE companies
		SET name = $2, address = $3, description = $4, website = $5, phone = $6, professional_email = $7
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		company.ID,
		company.Name,
		company.Address,
		company.Description,
		company.Website,
		company.Phone,
		company.ProfessionalEmail,
	)
	return err
}

// Delete deletes a company profile
func (r *PostgresCompanyRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	return err
}
