package handlers

import (
	"log"
	"net/http"
)

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	status, err := h.HealthService.Check(r.Context())
	if err != nil {
		log.Printf("request_id=%s health check failed: %v", RequestIDFromContext(r.Context()), err)
		WriteJSON(w, status, http.StatusServiceUnavailable)
		return
	}

	WriteJSON(w, status, http.StatusOK)
}
