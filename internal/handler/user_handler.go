package handlers

import (
	"net/http"
	"time"

	"blogCPT/internal/models"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	user, err := h.UserService.Get(r.Context(), userID)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, NewUserResponse(user), http.StatusOK)
}
