package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
)

// PostgresStudentRepository implements StudentRepository using PostgreSQL
type PostgresStudentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresStudentRepository creates a new PostgresStudentRepository
func NewPostgresStudentRepository(pool *pgxpool.Pool) *PostgresStudentRepository {
	return &PostgresStudentRepository{pool: pool}
}

func scanStudent(row pgx.Row) (*domain.Student, error) {
	student := &domain.Student{}
	err := row.Scan(
		&student.ID,
		&student.UserID,
		&student.StudentCode,
		&student.Level,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return student, nil
}

// Create creates a new student profile
func (r *PostgresStudentRepository) Create(ctx context.Context, student *domain.Student) error {
	query := `
		INSERT INTO students (user_id, student_code, level)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		student.UserID,
		student.StudentCode,
		student.Level,
	).Scan(&student.ID)
}

// GetByID retrieves a student by ID
func (r *PostgresStudentRepository) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	query := `SELECT id, user_id, student_code, level FROM students WHERE id = $1`
	return scanStudent(r.pool.QueryRow(ctx, query, id))
}

// GetByUserID retrieves a student by its user account ID
func (r *PostgresStudentRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Student, error) {
	query := `SELECT id, user_id, student_code, level FROM students WHERE user_id = $1`
	return scanStudent(r.pool.QueryRow(ctx, query, userID))
}

// List retrieves all students
func (r *PostgresStudentRepository) List(ctx context.Context) ([]*domain.Student, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, user_id, student_code, level FROM students ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*domain.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

// Update updates a student profile
func (r *PostgresStudentRepository) Update(ctx context.Context, student *domain.Student) error {
	query := `UPDATE students SET student_code = $2, level = $3 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, student.ID, student.StudentCode, student.Level)
	return err
}

// Delete deletes a student profile
func (r *PostgresStudentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	return err
}
