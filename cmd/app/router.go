package app

import (
	"net/http"

	handlers "blogCPT/internal/handler"
	"blogCPT/internal/middleware"

	"github.com/gorilla/mux"
)

// NewRouter mounts the API under /api/v1 and wraps it with the request
// logging, CORS and authentication middleware.
func NewRouter(h *handlers.Handlers) http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, "resource not found", http.StatusNotFound)
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
	})

	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	// auth
	api.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	api.Handle("/auth/me", protected(h.GetCurrentUser)).Methods(http.MethodGet)

	// users
	api.HandleFunc("/users/{id}", h.GetUser).Methods(http.MethodGet)

	// categories
	api.HandleFunc("/categories", h.ListCategories).Methods(http.MethodGet)
	api.Handle("/categories", protected(h.CreateCategory)).Methods(http.MethodPost)
	api.HandleFunc("/categories/{id}", h.GetCategory).Methods(http.MethodGet)
	api.Handle("/categories/{id}", protected(h.UpdateCategory)).Methods(http.MethodPut)
	api.Handle("/categories/{id}", protected(h.DeleteCategory)).Methods(http.MethodDelete)

	// tags
	api.HandleFunc("/tags", h.ListTags).Methods(http.MethodGet)
	api.Handle("/tags", protected(h.CreateTags)).Methods(http.MethodPost)
	api.HandleFunc("/tags/exists/name/{name}", h.TagExistsByName).Methods(http.MethodGet)
	api.HandleFunc("/tags/exists/{id}", h.TagExists).Methods(http.MethodGet)
	api.HandleFunc("/tags/{id}", h.GetTag).Methods(http.MethodGet)
	api.Handle("/tags/{id}", protected(h.UpdateTag)).Methods(http.MethodPut)
	api.Handle("/tags/{id}", protected(h.DeleteTag)).Methods(http.MethodDelete)

	// posts
	api.HandleFunc("/posts", h.ListPosts).Methods(http.MethodGet)
	api.Handle("/posts", protected(h.CreatePost)).Methods(http.MethodPost)
	api.Handle("/posts/drafts", protected(h.ListDrafts)).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", h.GetPost).Methods(http.MethodGet)
	api.Handle("/posts/{id}", protected(h.UpdatePost)).Methods(http.MethodPut)
	api.Handle("/posts/{id}", protected(h.DeletePost)).Methods(http.MethodDelete)

	// comments
	api.HandleFunc("/comments", h.ListComments).Methods(http.MethodGet)
	api.HandleFunc("/comments/post/{postId}/count", h.CountPostComments).Methods(http.MethodGet)
	api.HandleFunc("/comments/post/{postId}", h.ListPostComments).Methods(http.MethodGet)
	api.Handle("/comments/post/{postId}", protected(h.CreateComment)).Methods(http.MethodPost)
	api.HandleFunc("/comments/user/{userId}", h.ListUserComments).Methods(http.MethodGet)
	api.HandleFunc("/comments/{id}/like", h.LikeComment).Methods(http.MethodPost)
	api.HandleFunc("/comments/{id}/unlike", h.UnlikeComment).Methods(http.MethodPost)
	api.HandleFunc("/comments/{id}", h.GetComment).Methods(http.MethodGet)
	api.Handle("/comments/{id}", protected(h.UpdateComment)).Methods(http.MethodPut)
	api.Handle("/comments/{id}", protected(h.DeleteComment)).Methods(http.MethodDelete)

	return middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(h.AuthService),
	)
}

func protected(handler http.HandlerFunc) http.Handler {
	return middleware.RequireAuth(handler)
}
