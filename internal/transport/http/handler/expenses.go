package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jhalaktiwarii/dealerspot-backend/internal/application/expense"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/domain"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/transport/http/middleware"
)

// ExpenseHandler handles monthly expense endpoints.
type ExpenseHandler struct {
	svc expense.Service
}

func NewExpenseHandler(svc expense.Service) *ExpenseHandler {
	return &ExpenseHandler{svc: svc}
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	companyName, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e, err := h.svc.Create(r.Context(), companyName, req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	companyName, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	items, err := h.svc.List(r.Context(), companyName)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
