package model

type ConversationSummaryList []ConversationSummary

// ConversationSummary is derived from the stored messages on every request and never persisted.
type ConversationSummary struct {
	Kind           ConversationKind `json:"kind"`
	ConversationID string           `json:"conversation_id"`
	DisplayName    string           `json:"display_name"`
	LatestMessage  Message          `json:"latest_message"`
	MessageCount   int              `json:"message_count"`
	UnreadCount    int              `json:"unread_count"`
}

func (s ConversationSummary) Key() ConversationKey {
	return ConversationKey{Kind: s.Kind, ID: s.ConversationID}
}
