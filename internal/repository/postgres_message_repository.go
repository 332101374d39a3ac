package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
)

// PostgresMessageRepository implements MessageRepository using PostgreSQL
type PostgresMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMessageRepository creates a new PostgresMessageRepository
func NewPostgresMessageRepository(pool *pgxpool.Pool) *PostgresMessageRepository {
	return &PostgresMessageRepository{pool: pool}
}

const messageColumns = `id, content, sent_date, is_read, sender_id, recipient_id`

func scanMessage(row pgx.Row) (*domain.Message, error) {
	message := &domain.Message{}
	err := row.Scan(
		&message.ID,
		&message.Content,
		&message.SentDate,
		&message.IsRead,
		&message.SenderID,
		&message.RecipientID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return message, nil
}

// Create creates a new message
func (r *PostgresMessageRepository) Create(ctx context.Context, message *domain.Message) error {
	query := `
		INSERT INTO messages (content, sent_date, is_read, sender_id, recipient_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		message.Content,
		message.SentDate,
		message.IsRead,
		message.SenderID,
		message.RecipientID,
	).Scan(&message.ID)
}

// GetByID retrieves a message by ID
func (r *PostgresMessageRepository) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE id = $1`
	return scanMessage(r.pool.QueryRow(ctx, query, id))
}

// ListConversation retrieves all messages exchanged between two users,
// oldest first.
func (r *PostgresMessageRepository) ListConversation(ctx context.Context, userA, userB int64) ([]*domain.Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE (sender_id = $1 AND recipient_id = $2)
		   OR (sender_id = $2 AND recipient_id = $1)
		ORDER BY sent_date, id
	`
	rows, err := r.pool.Query(ctx, query, userA, userB)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*domain.Message
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}

// MarkRead marks a message as read
func (r *PostgresMessageRepository) MarkRead(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE messages SET is_read = TRUE WHERE id = $1`, id)
	return err
}

// Delete deletes a message
func (r *PostgresMessageRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	return err
}
