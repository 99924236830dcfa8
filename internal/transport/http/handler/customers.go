package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jhalaktiwarii/dealerspot-backend/internal/application/customer"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/domain"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/transport/http/middleware"
)

// CustomerHandler handles customer feedback endpoints.
type CustomerHandler struct {
	svc customer.Service
}

func NewCustomerHandler(svc customer.Service) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

func (h *CustomerHandler) Submit(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.CustomerFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	fb, err := h.svc.Submit(r.Context(), owner, req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, fb)
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	walkIn := true
	if v := r.URL.Query().Get("isWalkIn"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "isWalkIn must be a boolean")
			return
		}
		walkIn = b
	}
	items, err := h.svc.List(r.Context(), owner, walkIn)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
