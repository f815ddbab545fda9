package model

import (
	"fmt"
	"time"
)

type ConversationKind string

const (
	PropertyConversation ConversationKind = "property"
	BidConversation      ConversationKind = "bid"
)

func ParseConversationKind(s string) (ConversationKind, error) {
	switch k := ConversationKind(s); k {
	case PropertyConversation, BidConversation:
		return k, nil
	default:
		return "", fmt.Errorf("conversation kind '%s' is not supported", s)
	}
}

func (k ConversationKind) Valid() bool {
	return k == PropertyConversation || k == BidConversation
}

// Label is the prefix used for conversations missing from the name directory.
func (k ConversationKind) Label() string {
	switch k {
	case PropertyConversation:
		return "Property"
	case BidConversation:
		return "Bid"
	default:
		return string(k)
	}
}

type Role string

const (
	OwnerRole    Role = "owner"
	ManagerRole  Role = "manager"
	ExternalRole Role = "external"
)

// ConversationKey identifies a conversation: every message belongs to exactly one.
type ConversationKey struct {
	Kind ConversationKind `db:"kind" json:"kind"`
	ID   string           `db:"conversation_id" json:"conversation_id"`
}

func (k ConversationKey) Validate() error {
	if !k.Kind.Valid() {
		return fmt.Errorf("conversation kind '%s' is not supported", k.Kind)
	}
	if k.ID == "" {
		return fmt.Errorf("conversation id is required")
	}
	return nil
}

// Channel is the real-time channel new messages of the conversation are published to.
// Centrifugo reads ':' as a namespace boundary, so kind and id are joined with '.'
// and the channels live in the default namespace.
func (k ConversationKey) Channel() string {
	return fmt.Sprintf("%s.%s", k.Kind, k.ID)
}

func (k ConversationKey) String() string {
	return k.Channel()
}

type MessageList []Message

type Message struct {
	ID             string           `db:"id" json:"id"`
	Seq            int64            `db:"seq" json:"seq"`
	Author         string           `db:"author" json:"author"`
	Role           Role             `db:"role" json:"role"`
	Content        string           `db:"content" json:"content"`
	SentAt         time.Time        `db:"sent_at" json:"sent_at"`
	Kind           ConversationKind `db:"kind" json:"kind"`
	ConversationID string           `db:"conversation_id" json:"conversation_id"`
}

func (m Message) Key() ConversationKey {
	return ConversationKey{Kind: m.Kind, ID: m.ConversationID}
}

// After reports whether m sorts after other: later sent_at, then later insertion.
func (m Message) After(other Message) bool {
	if !m.SentAt.Equal(other.SentAt) {
		return m.SentAt.After(other.SentAt)
	}
	return m.Seq > other.Seq
}

// MessageInput is what callers hand to the inbox. ID and SentAt are filled in when empty.
type MessageInput struct {
	ID      string
	Author  string
	Role    Role
	Content string
	SentAt  time.Time
	Key     ConversationKey
}
