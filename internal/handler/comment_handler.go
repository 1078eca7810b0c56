package handlers

import (
	"net/http"

	"blogCPT/internal/service"
)

type CountResponse struct {
	Count int64 `json:"count"`
}

func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.CommentService.ListAll(r.Context())
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, comments, http.StatusOK)
}

func (h *Handlers) GetComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "id")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	comment, err := h.CommentService.Get(r.Context(), commentID)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, comment, http.StatusOK)
}

func (h *Handlers) ListPostComments(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	comments, err := h.CommentService.ListByPost(r.Context(), postID, IdentityFromContext(r.Context()))
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, comments, http.StatusOK)
}

func (h *Handlers) CountPostComments(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	count, err := h.CommentService.CountByPost(r.Context(), postID, IdentityFromContext(r.Context()))
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, CountResponse{Count: count}, http.StatusOK)
}

func (h *Handlers) ListUserComments(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	comments, err := h.CommentService.ListByUser(r.Context(), userID)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, comments, http.StatusOK)
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	var req service.CommentRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		WriteAppError(w, r, err)
		return
	}

	comment, err := h.CommentService.Create(r.Context(), IdentityFromContext(r.Context()), postID, req)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, comment, http.StatusCreated)
}

func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "id")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	var req service.CommentRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		WriteAppError(w, r, err)
		return
	}

	comment, err := h.CommentService.Update(r.Context(), commentID, IdentityFromContext(r.Context()), req)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, comment, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "id")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	if err := h.CommentService.Delete(r.Context(), commentID, IdentityFromContext(r.Context())); err != nil {
		WriteAppError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) LikeComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "id")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	comment, err := h.CommentService.Like(r.Context(), commentID)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, comment, http.StatusOK)
}

func (h *Handlers) UnlikeComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "id")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	comment, err := h.CommentService.Unlike(r.Context(), commentID)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, comment, http.StatusOK)
}
