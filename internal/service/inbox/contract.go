//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package inbox

import (
	"context"
	"time"

	"github.com/propdesk/messaging-service/internal/model"
)

type Repository interface {
	SaveMessage(ctx context.Context, message *model.Message) error
	GetMessages(ctx context.Context) (model.MessageList, error)
	GetMessagesByKind(ctx context.Context, kind model.ConversationKind) (model.MessageList, error)
	GetConversationMessages(ctx context.Context, key model.ConversationKey) (model.MessageList, error)
	MarkRead(ctx context.Context, key model.ConversationKey) error
	IsRead(ctx context.Context, key model.ConversationKey) (bool, error)
	GetReadConversations(ctx context.Context) (map[model.ConversationKey]bool, error)
}

type NameResolver interface {
	ResolveName(kind model.ConversationKind, id string) string
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID() string
}

type Metrics interface {
	MessageAppended(kind model.ConversationKind)
	ConversationRead(kind model.ConversationKind)
}
