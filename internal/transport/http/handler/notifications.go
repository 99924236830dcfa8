package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/application/notification"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/transport/http/middleware"
)

// NotificationHandler handles notification and settings endpoints.
type NotificationHandler struct {
	svc notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	company, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	notifications, err := h.svc.ListAll(r.Context(), company)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

func (h *NotificationHandler) ListUnread(w http.ResponseWriter, r *http.Request) {
	company, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	notifications, err := h.svc.ListUnread(r.Context(), company)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

func (h *NotificationHandler) ListUnseen(w http.ResponseWriter, r *http.Request) {
	company, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	notifications, err := h.svc.ListUnseen(r.Context(), company)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	company, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := h.svc.MarkRead(r.Context(), chi.URLParam(r, "id"), company); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "notification marked as read"})
}

func (h *NotificationHandler) MarkSeen(w http.ResponseWriter, r *http.Request) {
	company, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := h.svc.MarkSeen(r.Context(), chi.URLParam(r, "id"), company); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "notification marked as seen"})
}

func (h *NotificationHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	company, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	enabled, err := h.svc.GetSettings(r.Context(), company)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SettingsEnvelope{NotificationsEnabled: enabled})
}

func (h *NotificationHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	company, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req struct {
		Enabled *bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Enabled == nil {
		writeError(w, http.StatusBadRequest, "enabled is required")
		return
	}
	if err := h.svc.SetSettings(r.Context(), company, *req.Enabled); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "notification settings updated successfully"})
}
