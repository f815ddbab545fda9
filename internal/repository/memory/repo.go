package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/propdesk/messaging-service/internal/model"
)

// Repository keeps messages and read flags for the lifetime of the process.
type Repository struct {
	mu       sync.RWMutex
	messages model.MessageList
	ids      map[string]struct{}
	read     map[model.ConversationKey]bool
}

func New() *Repository {
	return &Repository{
		ids:  make(map[string]struct{}),
		read: make(map[model.ConversationKey]bool),
	}
}

func (r *Repository) SaveMessage(_ context.Context, message *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ids[message.ID]; exists {
		return fmt.Errorf("message %s already exists", message.ID)
	}

	message.Seq = int64(len(r.messages) + 1)
	r.messages = append(r.messages, *message)
	r.ids[message.ID] = struct{}{}

	return nil
}

func (r *Repository) GetMessages(_ context.Context) (model.MessageList, error) {
	return r.filter(func(model.Message) bool { return true }), nil
}

func (r *Repository) GetMessagesByKind(_ context.Context, kind model.ConversationKind) (model.MessageList, error) {
	return r.filter(func(m model.Message) bool { return m.Kind == kind }), nil
}

func (r *Repository) GetConversationMessages(_ context.Context, key model.ConversationKey) (model.MessageList, error) {
	return r.filter(func(m model.Message) bool { return m.Key() == key }), nil
}

func (r *Repository) MarkRead(_ context.Context, key model.ConversationKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.read[key] = true
	return nil
}

func (r *Repository) IsRead(_ context.Context, key model.ConversationKey) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.read[key], nil
}

func (r *Repository) GetReadConversations(_ context.Context) (map[model.ConversationKey]bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	read := make(map[model.ConversationKey]bool, len(r.read))
	for key, ok := range r.read {
		read[key] = ok
	}
	return read, nil
}

func (r *Repository) filter(keep func(model.Message) bool) model.MessageList {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messages := make(model.MessageList, 0, len(r.messages))
	for _, m := range r.messages {
		if keep(m) {
			messages = append(messages, m)
		}
	}
	return messages
}
