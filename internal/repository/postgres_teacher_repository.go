package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
)

// PostgresTeacherRepository implements TeacherRepository using PostgreSQL
type PostgresTeacherRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTeacherRepository creates a new PostgresTeacherRepository
func NewPostgresTeacherRepository(pool *pgxpool.Pool) *PostgresTeacherRepository {
	return &PostgresTeacherRepository{pool: pool}
}

func scanTeacher(row pgx.Row) (*domain.Teacher, error) {
	teacher := &domain.Teacher{}
	err := row.Scan(
		&teacher.ID,
		&teacher.UserID,
		&teacher.Department,
		&teacher.Grade,
		&teacher.Specialty,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return teacher, nil
}

// Create creates a new teacher profile
func (r *PostgresTeacherRepository) Create(ctx context.Context, teacher *domain.Teacher) error {
	query := `
		INSERT INTO teachers (user_id, department, grade, specialty)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		teacher.UserID,
		teacher.Department,
		teacher.Grade,
		teacher.Specialty,
	).Scan(&teacher.ID)
}

// GetByID retrieves a teacher by ID
func (r *PostgresTeacherRepository) GetByID(ctx context.Context, id int64) (*domain.Teacher, error) {
	query := `SELECT id, user_id, department, grade, specialty FROM teachers WHERE id = $1`
	return scanTeacher(r.pool.QueryRow(ctx, query, id))
}

// GetByUserID retrieves a teacher by its user account ID
func (r *PostgresTeacherRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Teacher, error) {
	query := `SELECT id, user_id, department, grade, specialty FROM teachers WHERE user_id = $1`
	return scanTeacher(r.pool.QueryRow(ctx, query, userID))
}

// List retrieves all teachers
func (r *PostgresTeacherRepository) List(ctx context.Context) ([]*domain.Teacher, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, user_id, department, grade, specialty FROM teachers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*domain.Teacher
	for rows.Next() {
		teacher, err := scanTeacher(rows)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, teacher)
	}
	return teachers, rows.Err()
}

// Update updates a teacher profile
func (r *PostgresTeacherRepository) Update(ctx context.Context, teacher *domain.Teacher) error {
	query := `UPDATE teachers SET department = $2, grade = $3, specialty = $4 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, teacher.ID, teacher.Department, teacher.Grade, teacher.Specialty)
	return err
}

// Delete deletes a teacher profile
func (r *PostgresTeacherRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	return err
}
