package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
)

// PostgresNotificationRepository implements NotificationRepository using PostgreSQL
type PostgresNotificationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresNotificationRepository creates a new PostgresNotificationRepository
func NewPostgresNotificationRepository(pool *pgxpool.Pool) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{pool: pool}
}

const notificationColumns = `id, message, notification_date, is_read, related_url, user_id`

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	notification := &domain.Notification{}
	err := row.Scan(
		&notification.ID,
		&notification.Message,
		&notification.NotificationDate,
		&notification.IsRead,
		&notification.RelatedURL,
		&notification.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return notification, nil
}

// Create creates a new notification
func (r *PostgresNotificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	query := `
		INSERT INTO notifications (message, notification_date, is_read, related_url, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		notification.Message,
		notification.NotificationDate,
		notification.IsRead,
		notification.RelatedURL,
		notification.UserID,
	).Scan(&notification.ID)
}

// GetByID retrieves a notification by ID
func (r *PostgresNotificationRepository) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`
	return scanNotification(r.pool.QueryRow(ctx, query, id))
}

// ListByUser retrieves all notifications for a user, newest first
func (r *PostgresNotificationRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE user_id = $1 ORDER BY notification_date DESC, id DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		notification, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}
	return notifications, rows.Err()
}

// MarkRead marks a notification as read
func (r *PostgresNotificationRepository) MarkRead(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	return err
}

// Delete deletes a notification
func (r *PostgresNotificationRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	return err
}
