package handlers

import (
	"net/http"

	"blogCPT/internal/service"
)

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CategoryService.List(r.Context())
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, categories, http.StatusOK)
}

func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req service.CategoryRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		WriteAppError(w, r, err)
		return
	}

	category, err := h.CategoryService.Create(r.Context(), req.Name)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, category, http.StatusCreated)
}

func (h *Handlers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "id")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	var req service.CategoryRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		WriteAppError(w, r, err)
		return
	}

	category, err := h.CategoryService.Update(r.Context(), categoryID, req.Name)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, category, http.StatusOK)
}

func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "id")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	if err := h.CategoryService.Delete(r.Context(), categoryID); err != nil {
		WriteAppError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) GetCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "id")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	category, err := h.CategoryService.Get(r.Context(), categoryID)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, category, http.StatusOK)
}
