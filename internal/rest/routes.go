package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Register mounts the API under /api. limitSend wraps the message append endpoint only.
func (h *Handler) Register(router chi.Router, limitSend func(http.Handler) http.Handler) {
	router.Route("/api", func(r chi.Router) {
		r.Get("/messages", h.GetMessages)
		r.Get("/unread", h.GetUnreadTotals)
		r.Get("/realtime/connect-token", h.GetConnectAccessToken)

		r.Route("/conversations/{"+paramKind+"}", func(r chi.Router) {
			r.Get("/", h.GetConversations)

			r.Route("/{"+paramConversationID+"}", func(r chi.Router) {
				r.Get("/messages", h.GetConversationMessages)
				r.With(limitSend).Post("/messages", h.SendMessage)
				r.Get("/read", h.GetReadStatus)
				r.Post("/read", h.MarkRead)
				r.Get("/subscribe-token", h.GetSubscribeToken)
			})
		})
	})
}
