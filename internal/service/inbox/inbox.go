package inbox

import (
	"context"
	"fmt"

	"github.com/propdesk/messaging-service/internal/model"
)

// Inbox owns the message store, the read-status tracker and the aggregation over them.
// It is built once in main and handed to whatever serves the dashboard.
//
// Passing an invalid conversation key (unknown kind or empty id) is a programming error and
// panics; callers validate user input before reaching the inbox.
type Inbox struct {
	repo    Repository
	names   NameResolver
	clock   Clock
	ids     IDGenerator
	metrics Metrics
}

func New(repo Repository, names NameResolver, clock Clock, ids IDGenerator, metrics Metrics) *Inbox {
	return &Inbox{
		repo:    repo,
		names:   names,
		clock:   clock,
		ids:     ids,
		metrics: metrics,
	}
}

// Append stores a message at the end of the sequence, assigning an id and a timestamp
// when the input has none.
func (i *Inbox) Append(ctx context.Context, in model.MessageInput) (model.Message, error) {
	mustValidKey(in.Key)

	message := model.Message{
		ID:             in.ID,
		Author:         in.Author,
		Role:           in.Role,
		Content:        in.Content,
		SentAt:         in.SentAt,
		Kind:           in.Key.Kind,
		ConversationID: in.Key.ID,
	}
	if message.ID == "" {
		message.ID = i.ids.NewID()
	}
	if message.SentAt.IsZero() {
		message.SentAt = i.clock.Now()
	}

	if err := i.repo.SaveMessage(ctx, &message); err != nil {
		return model.Message{}, fmt.Errorf("failed to save message: %w", err)
	}
	i.metrics.MessageAppended(message.Kind)

	return message, nil
}

// All returns every stored message in insertion order.
func (i *Inbox) All(ctx context.Context) (model.MessageList, error) {
	messages, err := i.repo.GetMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	return messages, nil
}

func (i *Inbox) MessagesFor(ctx context.Context, key model.ConversationKey) (model.MessageList, error) {
	mustValidKey(key)

	messages, err := i.repo.GetConversationMessages(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages of %s: %w", key, err)
	}
	return messages, nil
}

// SummariesFor recomputes the summaries of every conversation of the given kind.
func (i *Inbox) SummariesFor(ctx context.Context, kind model.ConversationKind) (model.ConversationSummaryList, error) {
	if !kind.Valid() {
		panic(fmt.Sprintf("inbox: invalid conversation kind %q", kind))
	}

	messages, err := i.repo.GetMessagesByKind(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s messages: %w", kind, err)
	}

	read, err := i.repo.GetReadConversations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get read conversations: %w", err)
	}

	return Summarize(messages, read, i.names), nil
}

// UnreadTotals returns the unread count per conversation kind across all conversations.
func (i *Inbox) UnreadTotals(ctx context.Context) (map[model.ConversationKind]int, error) {
	messages, err := i.repo.GetMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	read, err := i.repo.GetReadConversations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get read conversations: %w", err)
	}

	return UnreadTotals(Summarize(messages, read, i.names)), nil
}

// MarkRead flips the conversation to read. It is idempotent and nothing flips it back.
func (i *Inbox) MarkRead(ctx context.Context, key model.ConversationKey) error {
	mustValidKey(key)

	if err := i.repo.MarkRead(ctx, key); err != nil {
		return fmt.Errorf("failed to mark %s as read: %w", key, err)
	}
	i.metrics.ConversationRead(key.Kind)

	return nil
}

func (i *Inbox) IsRead(ctx context.Context, key model.ConversationKey) (bool, error) {
	mustValidKey(key)

	isRead, err := i.repo.IsRead(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to get read status of %s: %w", key, err)
	}
	return isRead, nil
}

func mustValidKey(key model.ConversationKey) {
	if err := key.Validate(); err != nil {
		panic(fmt.Sprintf("inbox: invalid conversation key %q: %v", key, err))
	}
}
