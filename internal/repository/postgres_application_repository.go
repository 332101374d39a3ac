package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
)

// PostgresApplicationRepository implements ApplicationRepository using PostgreSQL
type PostgresApplicationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresApplicationRepository creates a new PostgresApplicationRepository
func NewPostgresApplicationRepository(pool *pgxpool.Pool) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{pool: pool}
}

const applicationColumns = `id, student_id, internship_id, status, cv_url, cover_letter, application_date`

func scanApplication(row pgx.Row) (*domain.Application, error) {
	application := &domain.Application{}
	err := row.Scan(
		&application.ID,
		&application.StudentID,
		&application.InternshipID,
		&application.Status,
		&application.CvURL,
		&application.CoverLetter,
		&application.ApplicationDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return application, nil
}

// Create creates a new application
func (r *PostgresApplicationRepository) Create(ctx context.Context, application *domain.Application) error {
	query := `
		INSERT INTO applications (student_id, internship_id, status, cv_url, cover_letter, application_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		application.StudentID,
		application.InternshipID,
		application.Status,
		application.CvURL,
		application.CoverLetter,
		application.ApplicationDate,
	).Scan(&application.ID)
}

// GetByID retrieves an application by ID, including its student and
// internship (with company) associations.
func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	application, err := scanApplication(r.pool.QueryRow(ctx, query, id))
	if err != nil || application == nil {
		return application, err
	}

	if err := r.loadAssociations(ctx, application); err != nil {
		return nil, err
	}
	return application, nil
}

func (r *PostgresApplicationRepository) loadAssociations(ctx context.Context, application *domain.Application) error {
	student, err := scanStudent(r.pool.QueryRow(ctx,
		`SELECT id, user_id, student_code, level FROM students WHERE id = $1`, application.StudentID))
	if err != nil {
		return err
	}
	application.Student = student

	internship := &PostgresInternshipRepository{pool: r.pool}
	offer, err := internship.GetByID(ctx, application.InternshipID)
	if err != nil {
		return err
	}
	application.Internship = offer
	return nil
}

// List retrieves all applications
func (r *PostgresApplicationRepository) List(ctx context.Context) ([]*domain.Application, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+applicationColumns+` FROM applications ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []*domain.Application
	for rows.Next() {
		application, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, application)
	}
	return applications, rows.Err()
}

// Update updates an application
func (r *PostgresApplicationRepository) Update(ctx context.Context, application *domain.Application) error {
	query := `
		UPDATE applications
		SET status = $2, cv_url = $3, cover_letter = $4
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		application.ID,
		application.Status,
		application.CvURL,
		application.CoverLetter,
	)
	return err
}

// Delete deletes an application
func (r *PostgresApplicationRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	return err
}
