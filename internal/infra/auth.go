package infra

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/propdesk/messaging-service/internal/config"
	"github.com/propdesk/messaging-service/internal/rest/api"
)

// HeaderUserUUID is set by the gateway in front of the service after it authenticated the user.
const HeaderUserUUID = "X-User-Uuid"

func AuthInterceptorHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userUUID := r.Header.Get(HeaderUserUUID)
		if _, err := uuid.Parse(userUUID); err != nil {
			writeError(w, "missing or invalid "+HeaderUserUUID+" header", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, userUUID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
