package messagerepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/rojahomes/rentmarket/internal/domain"
	"github.com/rojahomes/rentmarket/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	query := `
		INSERT INTO messages (sender_id, receiver_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, sent_at
	`
	err := r.db.QueryRow(ctx, query, m.SenderID, m.ReceiverID, m.Content).Scan(&m.ID, &m.SentAt)
	if err != nil {
		zap.L().Error("can't save message", zap.Error(err))
		return nil, err
	}
	return m, nil
}

func (r *Repository) ListConversation(ctx context.Context, userID, otherID int) ([]domain.Message, error) {
	query := `
		SELECT id, sender_id, receiver_id, content, is_read, sent_at
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY sent_at
	`
	rows, err := r.db.Query(ctx, query, userID, otherID)
	if err != nil {
		zap.L().Error("can't list conversation", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.IsRead, &m.SentAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// ListChats returns one row per conversation partner with the latest
// message and the count of messages not yet read by the user.
func (r *Repository) ListChats(ctx context.Context, userID int) ([]domain.Chat, error) {
	query := `
		SELECT DISTINCT ON (partner_id)
		       partner_id, u.first_name, u.last_name,
		       m.id, m.sender_id, m.receiver_id, m.content, m.is_read, m.sent_at,
		       (SELECT COUNT(*) FROM messages
		        WHERE sender_id = partner_id AND receiver_id = $1 AND NOT is_read) AS unread
		FROM (
			SELECT *, CASE WHEN sender_id = $1 THEN receiver_id ELSE sender_id END AS partner_id
			FROM messages
			WHERE sender_id = $1 OR receiver_id = $1
		) m
		JOIN users u ON u.id = partner_id
		ORDER BY partner_id, m.sent_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list chats", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var chats []domain.Chat
	for rows.Next() {
		var c domain.Chat
		err := rows.Scan(&c.OtherUser.ID, &c.OtherUser.FirstName, &c.OtherUser.LastName,
			&c.LastMessage.ID, &c.LastMessage.SenderID, &c.LastMessage.ReceiverID,
			&c.LastMessage.Content, &c.LastMessage.IsRead, &c.LastMessage.SentAt, &c.UnreadCount)
		if err != nil {
			return nil, err
		}
		chats = append(chats, c)
	}
	return chats, rows.Err()
}

// MarkRead marks everything the other party sent to the user as read.
func (r *Repository) MarkRead(ctx context.Context, userID, otherID int) error {
	_, err := r.db.Exec(ctx,
		"UPDATE messages SET is_read = TRUE WHERE sender_id = $1 AND receiver_id = $2 AND NOT is_read",
		otherID, userID)
	if err != nil {
		zap.L().Error("can't mark messages read", zap.Error(err))
	}
	return err
}
