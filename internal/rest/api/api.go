// Package api holds the JSON request and response bodies of the HTTP API.
package api

type Error struct {
	Error string `json:"error"`
}

type SendMessageRequest struct {
	Author  string `json:"author" validate:"required,max=120"`
	Role    string `json:"role" validate:"required,oneof=owner manager external"`
	Content string `json:"content" validate:"required"`
}

type SendMessageResponse struct {
	MessageId string `json:"message_id"`
	SentAt    string `json:"sent_at"`
}

type Message struct {
	Id             string `json:"id"`
	Author         string `json:"author"`
	Role           string `json:"role"`
	Content        string `json:"content"`
	SentAt         string `json:"sent_at"`
	Kind           string `json:"kind"`
	ConversationId string `json:"conversation_id"`
}

type GetMessagesResponse struct {
	Messages []Message `json:"messages"`
}

type ConversationSummary struct {
	Kind           string  `json:"kind"`
	ConversationId string  `json:"conversation_id"`
	DisplayName    string  `json:"display_name"`
	LatestMessage  Message `json:"latest_message"`
	MessageCount   int     `json:"message_count"`
	UnreadCount    int     `json:"unread_count"`
}

type GetConversationsResponse struct {
	Conversations []ConversationSummary `json:"conversations"`
}

type ReadStatusResponse struct {
	Kind           string `json:"kind"`
	ConversationId string `json:"conversation_id"`
	IsRead         bool   `json:"is_read"`
}

type GetUnreadTotalsResponse struct {
	Property int `json:"property"`
	Bid      int `json:"bid"`
	Total    int `json:"total"`
}

type GetConnectAccessTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type GetSubscribeTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	Channel   string `json:"channel"`
}
