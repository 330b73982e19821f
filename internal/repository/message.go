package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/model"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/storage/db"
)

type CreateMessageParams struct {
	Name  string
	Email string
	Body  string
}

type MessageRepository interface {
	WithDB(db db.DB) MessageRepository
	ListMessages(ctx context.Context) ([]model.Message, error)
	CountUnread(ctx context.Context) (int64, error)
	CreateMessage(ctx context.Context, params CreateMessageParams) (int64, error)
	MarkRead(ctx context.Context, id int64) error
	DeleteMessage(ctx context.Context, id int64) error
}

type messageRepository struct {
	db db.DB
}

func NewMessageRepository(db db.DB) MessageRepository {
	return &messageRepository{
		db: db,
	}
}

func (r messageRepository) WithDB(db db.DB) MessageRepository {
	return &messageRepository{
		db: db,
	}
}

type messageRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Message   string    `db:"message"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}

func (r messageRepository) ListMessages(ctx context.Context) ([]model.Message, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, message, is_read, created_at
		FROM messages
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}

	msgs, err := pgx.CollectRows(rows, pgx.RowToStructByName[messageRow])
	if err != nil {
		return nil, fmt.Errorf("collect messages: %w", err)
	}

	results := make([]model.Message, 0, len(msgs))
	for _, msg := range msgs {
		results = append(results, model.Message{
			ID:        msg.ID,
			Name:      msg.Name,
			Email:     msg.Email,
			Body:      msg.Message,
			IsRead:    msg.IsRead,
			CreatedAt: msg.CreatedAt,
		})
	}

	return results, nil
}

func (r messageRepository) CountUnread(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM messages WHERE is_read = FALSE`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count unread messages: %w", err)
	}
	return n, nil
}

func (r messageRepository) CreateMessage(ctx context.Context, params CreateMessageParams) (int64, error) {
	var id int64
	if err := r.db.QueryRow(ctx, `
		INSERT INTO messages (name, email, message)
		VALUES (@name, @email, @message)
		RETURNING id
	`, pgx.NamedArgs{
		"name":    params.Name,
		"email":   params.Email,
		"message": params.Body,
	}).Scan(&id); err != nil {
		return 0, fmt.Errorf("create message: %w", err)
	}

	return id, nil
}

func (r messageRepository) MarkRead(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `UPDATE messages SET is_read = TRUE WHERE id = @id`, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("mark message read: %w", err)
	}
	return nil
}

func (r messageRepository) DeleteMessage(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM messages WHERE id = @id`, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}
