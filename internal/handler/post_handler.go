package handlers

import (
	"net/http"

	"blogCPT/internal/service"
)

// ListPosts returns published posts, filtered by the optional categoryId and
// tagId query parameters.
func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var categoryID, tagID string
	var err error

	if raw := query.Get("categoryId"); raw != "" {
		if categoryID, err = parseID(raw, "categoryId"); err != nil {
			WriteAppError(w, r, err)
			return
		}
	}

	if raw := query.Get("tagId"); raw != "" {
		if tagID, err = parseID(raw, "tagId"); err != nil {
			WriteAppError(w, r, err)
			return
		}
	}

	posts, err := h.PostService.List(r.Context(), categoryID, tagID)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, posts, http.StatusOK)
}

func (h *Handlers) ListDrafts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListDrafts(r.Context(), IdentityFromContext(r.Context()))
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	post, err := h.PostService.Get(r.Context(), postID, IdentityFromContext(r.Context()))
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req service.CreatePostRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		WriteAppError(w, r, err)
		return
	}

	post, err := h.PostService.Create(r.Context(), IdentityFromContext(r.Context()), req)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	var req service.UpdatePostRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		WriteAppError(w, r, err)
		return
	}

	post, err := h.PostService.Update(r.Context(), postID, IdentityFromContext(r.Context()), req)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	if err := h.PostService.Delete(r.Context(), postID, IdentityFromContext(r.Context())); err != nil {
		WriteAppError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
