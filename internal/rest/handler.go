package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/propdesk/messaging-service/internal/config"
	"github.com/propdesk/messaging-service/internal/model"
	"github.com/propdesk/messaging-service/internal/rest/api"
)

const (
	paramKind           = "kind"
	paramConversationID = "conversation_id"
)

type Handler struct {
	inbox            Inbox
	centrifugeClient CentrifugeClient
	validator        Validator
	jwtGenerator     JWTGenerator
}

func New(
	inbox Inbox,
	centrifugeClient CentrifugeClient,
	validator Validator,
	jwtGenerator JWTGenerator,
) *Handler {
	return &Handler{
		inbox:            inbox,
		centrifugeClient: centrifugeClient,
		validator:        validator,
		jwtGenerator:     jwtGenerator,
	}
}

func (h *Handler) GetConversations(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversations")

	kind, err := h.validator.ValidateKind(chi.URLParam(r, paramKind))
	if err != nil {
		logger.Error(fmt.Sprintf("kind validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("kind validation failed: %v", err), http.StatusBadRequest)
		return
	}

	summaries, err := h.inbox.SummariesFor(r.Context(), kind)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversations: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get conversations: %v", err), http.StatusInternalServerError)
		return
	}

	conversations := make([]api.ConversationSummary, len(summaries))
	for i, summary := range summaries {
		conversations[i] = api.ConversationSummary{
			Kind:           string(summary.Kind),
			ConversationId: summary.ConversationID,
			DisplayName:    summary.DisplayName,
			LatestMessage:  toAPIMessage(summary.LatestMessage),
			MessageCount:   summary.MessageCount,
			UnreadCount:    summary.UnreadCount,
		}
	}

	response := api.GetConversationsResponse{
		Conversations: conversations,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMessages")

	messages, err := h.inbox.All(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get messages: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get messages: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.GetMessagesResponse{Messages: toAPIMessages(messages)}, http.StatusOK)
}

func (h *Handler) GetConversationMessages(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversationMessages")

	key, err := h.validator.ValidateConversation(chi.URLParam(r, paramKind), chi.URLParam(r, paramConversationID))
	if err != nil {
		logger.Error(fmt.Sprintf("conversation validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("conversation validation failed: %v", err), http.StatusBadRequest)
		return
	}

	messages, err := h.inbox.MessagesFor(r.Context(), key)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		h.writeError(w, fmt.Sprintf("failed to fetch messages: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.GetMessagesResponse{Messages: toAPIMessages(messages)}, http.StatusOK)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	key, err := h.validator.ValidateConversation(chi.URLParam(r, paramKind), chi.URLParam(r, paramConversationID))
	if err != nil {
		logger.Error(fmt.Sprintf("conversation validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("conversation validation failed: %v", err), http.StatusBadRequest)
		return
	}

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateSendMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	message, err := h.inbox.Append(r.Context(), model.MessageInput{
		Author:  req.Author,
		Role:    model.Role(req.Role),
		Content: req.Content,
		Key:     key,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to append message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to send message: %v", err), http.StatusInternalServerError)
		return
	}

	err = h.centrifugeClient.Publish(r.Context(), key.Channel(), message)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to publish message to conversation: %v", err))
	}

	response := api.SendMessageResponse{
		MessageId: message.ID,
		SentAt:    message.SentAt.Format(time.RFC3339Nano),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MarkRead")

	key, err := h.validator.ValidateConversation(chi.URLParam(r, paramKind), chi.URLParam(r, paramConversationID))
	if err != nil {
		logger.Error(fmt.Sprintf("conversation validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("conversation validation failed: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.inbox.MarkRead(r.Context(), key); err != nil {
		logger.Error(fmt.Sprintf("failed to mark conversation as read: %v", err))
		h.writeError(w, fmt.Sprintf("failed to mark conversation as read: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, readStatus(key, true), http.StatusOK)
}

func (h *Handler) GetReadStatus(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetReadStatus")

	key, err := h.validator.ValidateConversation(chi.URLParam(r, paramKind), chi.URLParam(r, paramConversationID))
	if err != nil {
		logger.Error(fmt.Sprintf("conversation validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("conversation validation failed: %v", err), http.StatusBadRequest)
		return
	}

	isRead, err := h.inbox.IsRead(r.Context(), key)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get read status: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get read status: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, readStatus(key, isRead), http.StatusOK)
}

func (h *Handler) GetUnreadTotals(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetUnreadTotals")

	totals, err := h.inbox.UnreadTotals(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get unread totals: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get unread totals: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.GetUnreadTotalsResponse{
		Property: totals[model.PropertyConversation],
		Bid:      totals[model.BidConversation],
	}
	response.Total = response.Property + response.Bid

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetConnectAccessToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectAccessToken")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate access token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated access token for user %s", userUUID))

	response := api.GetConnectAccessTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetSubscribeToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetSubscribeToken")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	key, err := h.validator.ValidateConversation(chi.URLParam(r, paramKind), chi.URLParam(r, paramConversationID))
	if err != nil {
		logger.Error(fmt.Sprintf("conversation validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("conversation validation failed: %v", err), http.StatusBadRequest)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateSubscribeToken(userUUID, key)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate subscribe token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate subscribe token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated subscribe token for user %s, conversation %s", userUUID, key))

	response := api.GetSubscribeTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Channel:   key.Channel(),
	}

	h.writeJSON(w, response, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func toAPIMessage(msg model.Message) api.Message {
	return api.Message{
		Id:             msg.ID,
		Author:         msg.Author,
		Role:           string(msg.Role),
		Content:        msg.Content,
		SentAt:         msg.SentAt.Format(time.RFC3339Nano),
		Kind:           string(msg.Kind),
		ConversationId: msg.ConversationID,
	}
}

func toAPIMessages(messages model.MessageList) []api.Message {
	apiMessages := make([]api.Message, len(messages))
	for i, msg := range messages {
		apiMessages[i] = toAPIMessage(msg)
	}
	return apiMessages
}

func readStatus(key model.ConversationKey, isRead bool) api.ReadStatusResponse {
	return api.ReadStatusResponse{
		Kind:           string(key.Kind),
		ConversationId: key.ID,
		IsRead:         isRead,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
