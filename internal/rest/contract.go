//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/propdesk/messaging-service/internal/model"
	"github.com/propdesk/messaging-service/internal/rest/api"
)

type Inbox interface {
	Append(ctx context.Context, in model.MessageInput) (model.Message, error)
	All(ctx context.Context) (model.MessageList, error)
	MessagesFor(ctx context.Context, key model.ConversationKey) (model.MessageList, error)
	SummariesFor(ctx context.Context, kind model.ConversationKind) (model.ConversationSummaryList, error)
	UnreadTotals(ctx context.Context) (map[model.ConversationKind]int, error)
	MarkRead(ctx context.Context, key model.ConversationKey) error
	IsRead(ctx context.Context, key model.ConversationKey) (bool, error)
}

type CentrifugeClient interface {
	Publish(ctx context.Context, channel string, data model.Message) error
}

type Validator interface {
	ValidateKind(kind string) (model.ConversationKind, error)
	ValidateConversation(kind, id string) (model.ConversationKey, error)
	ValidateSendMessage(req *api.SendMessageRequest) error
}

type JWTGenerator interface {
	GenerateConnectToken(userID string) (string, int64, error)
	GenerateSubscribeToken(userID string, key model.ConversationKey) (string, int64, error)
}
