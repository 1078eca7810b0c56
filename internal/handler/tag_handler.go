package handlers

import (
	"net/http"
	"strings"

	"blogCPT/internal/apperr"
	"blogCPT/internal/service"

	"github.com/gorilla/mux"
)

type ExistsResponse struct {
	Exists bool `json:"exists"`
}

func (h *Handlers) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.TagService.List(r.Context())
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, tags, http.StatusOK)
}

func (h *Handlers) GetTag(w http.ResponseWriter, r *http.Request) {
	tagID, err := pathID(r, "id")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	tag, err := h.TagService.Get(r.Context(), tagID)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, tag, http.StatusOK)
}

// CreateTags creates or reuses a tag for every name in the batch.
func (h *Handlers) CreateTags(w http.ResponseWriter, r *http.Request) {
	var req service.CreateTagsRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		WriteAppError(w, r, err)
		return
	}

	tags, err := h.TagService.CreateMany(r.Context(), req.Names)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, tags, http.StatusCreated)
}

func (h *Handlers) UpdateTag(w http.ResponseWriter, r *http.Request) {
	tagID, err := pathID(r, "id")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	var req service.UpdateTagRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		WriteAppError(w, r, err)
		return
	}

	tag, err := h.TagService.Update(r.Context(), tagID, req.Name)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, tag, http.StatusOK)
}

func (h *Handlers) DeleteTag(w http.ResponseWriter, r *http.Request) {
	tagID, err := pathID(r, "id")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	if err := h.TagService.Delete(r.Context(), tagID); err != nil {
		WriteAppError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) TagExists(w http.ResponseWriter, r *http.Request) {
	tagID, err := pathID(r, "id")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	exists, err := h.TagService.ExistsByID(r.Context(), tagID)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, ExistsResponse{Exists: exists}, http.StatusOK)
}

func (h *Handlers) TagExistsByName(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(mux.Vars(r)["name"])
	if name == "" {
		WriteAppError(w, r, apperr.Validation("tag name is required"))
		return
	}

	exists, err := h.TagService.ExistsByName(r.Context(), name)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, ExistsResponse{Exists: exists}, http.StatusOK)
}
