package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/application/friend"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/domain"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/pkg/validate"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/transport/http/middleware"
)

// FriendHandler handles the friend-directory endpoints.
type FriendHandler struct {
	svc friend.Service
}

func NewFriendHandler(svc friend.Service) *FriendHandler {
	return &FriendHandler{svc: svc}
}

func (h *FriendHandler) Add(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.AddFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	link, err := h.svc.AddFriend(r.Context(), owner, req.FriendName, req.FriendCompany)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, FriendEnvelope{Message: "friend added successfully", Friend: link})
}

func (h *FriendHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	friends, err := h.svc.ListFriends(r.Context(), owner)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, friends)
}

func (h *FriendHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := h.svc.RemoveFriend(r.Context(), owner, chi.URLParam(r, "friendId")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "friend deleted successfully"})
}

func (h *FriendHandler) Search(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	results, err := h.svc.SearchAccounts(r.Context(), owner, r.URL.Query().Get("query"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (h *FriendHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	cars, err := h.svc.ListFriendsListings(r.Context(), owner)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}
