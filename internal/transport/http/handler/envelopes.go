package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jhalaktiwarii/dealerspot-backend/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AuthEnvelope wraps login/register responses.
type AuthEnvelope struct {
	Token   string          `json:"token,omitempty"`
	Account *domain.Account `json:"account,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// FriendEnvelope wraps add-friend responses.
type FriendEnvelope struct {
	Message string             `json:"message"`
	Friend  *domain.FriendLink `json:"friend"`
}

// CarEnvelope wraps car-creation responses.
type CarEnvelope struct {
	Message string      `json:"message"`
	Car     *domain.Car `json:"car"`
}

// PaginatedCarsEnvelope wraps the public paginated listing feed.
type PaginatedCarsEnvelope struct {
	Items      []domain.Car `json:"items"`
	NextCursor string       `json:"nextCursor,omitempty"`
}

// SettingsEnvelope wraps notification-settings responses.
type SettingsEnvelope struct {
	NotificationsEnabled bool `json:"notificationsEnabled"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

// httpError maps domain sentinel errors onto HTTP status codes.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicateFriend), errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
