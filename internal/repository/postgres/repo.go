package postgres

import (
	"context"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/propdesk/messaging-service/internal/config"
	"github.com/propdesk/messaging-service/internal/model"
)

var messageColumns = []string{
	"id",
	"seq",
	"author",
	"role",
	"content",
	"sent_at",
	"kind",
	"conversation_id",
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return NewWithDB(conn)
}

func NewWithDB(conn *sqlx.DB) *Repository {
	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	query, args, err := sq.Insert("messages").
		Columns("id", "author", "role", "content", "sent_at", "kind", "conversation_id").
		Values(message.ID, message.Author, message.Role, message.Content, message.SentAt, message.Kind, message.ConversationID).
		Suffix("RETURNING seq").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	var seq int64
	if err := r.connection.GetContext(ctx, &seq, query, args...); err != nil {
		return fmt.Errorf("failed to save message: %v", err)
	}
	message.Seq = seq

	return nil
}

func (r *Repository) GetMessages(ctx context.Context) (model.MessageList, error) {
	return r.selectMessages(ctx, selectMessages())
}

func (r *Repository) GetMessagesByKind(ctx context.Context, kind model.ConversationKind) (model.MessageList, error) {
	return r.selectMessages(ctx, selectMessages().Where(sq.Eq{"kind": kind}))
}

func (r *Repository) GetConversationMessages(ctx context.Context, key model.ConversationKey) (model.MessageList, error) {
	return r.selectMessages(ctx, selectMessages().Where(sq.Eq{
		"kind":            key.Kind,
		"conversation_id": key.ID,
	}))
}

func (r *Repository) MarkRead(ctx context.Context, key model.ConversationKey) error {
	query, args, err := sq.Insert("conversation_reads").
		Columns("kind", "conversation_id").
		Values(key.Kind, key.ID).
		Suffix("ON CONFLICT (kind, conversation_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	return err
}

func (r *Repository) IsRead(ctx context.Context, key model.ConversationKey) (bool, error) {
	query, args, err := sq.
		Select("COUNT(*) > 0").
		From("conversation_reads").
		Where(sq.And{
			sq.Eq{"kind": key.Kind},
			sq.Eq{"conversation_id": key.ID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var isRead bool
	err = r.connection.GetContext(ctx, &isRead, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check read status: %v", err)
	}

	return isRead, nil
}

func (r *Repository) GetReadConversations(ctx context.Context) (map[model.ConversationKey]bool, error) {
	query, args, err := sq.Select("kind", "conversation_id").
		From("conversation_reads").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var keys []model.ConversationKey
	err = r.connection.SelectContext(ctx, &keys, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get read conversations: %v", err)
	}

	read := make(map[model.ConversationKey]bool, len(keys))
	for _, key := range keys {
		read[key] = true
	}

	return read, nil
}

func selectMessages() sq.SelectBuilder {
	return sq.Select(messageColumns...).
		From("messages").
		OrderBy("seq ASC")
}

func (r *Repository) selectMessages(ctx context.Context, queryBuilder sq.SelectBuilder) (model.MessageList, error) {
	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	messages := make(model.MessageList, 0)
	err = r.connection.SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %v", err)
	}

	return messages, nil
}
