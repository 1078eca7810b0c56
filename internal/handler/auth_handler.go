package handlers

import (
	"net/http"

	"blogCPT/internal/service"
)

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		WriteAppError(w, r, err)
		return
	}

	user, err := h.AuthService.Register(r.Context(), req)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	// a freshly registered user is logged in straight away
	token, err := h.AuthService.IssueToken(user)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, token, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		WriteAppError(w, r, err)
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, token, http.StatusOK)
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.Me(r.Context(), IdentityFromContext(r.Context()))
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, NewUserResponse(user), http.StatusOK)
}
