package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"blogCPT/internal/apperr"
	handlers "blogCPT/internal/handler"
	"blogCPT/internal/service"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type Middleware func(http.Handler) http.Handler

// AuthMiddleware resolves a Bearer token into an identity when one is
// presented. Requests without a usable token continue anonymously; the
// rejection reason is kept in the context for RequireAuth.
func AuthMiddleware(authService service.AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
				ctx = handlers.WithAuthError(ctx, apperr.Unauthenticated("invalid authorization header format"))
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			identity, err := authService.ResolveIdentity(ctx, strings.TrimSpace(parts[1]))
			if err != nil {
				if apperr.KindOf(err) == apperr.KindInternal {
					handlers.WriteAppError(w, r, err)
					return
				}
				ctx = handlers.WithAuthError(ctx, err)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			next.ServeHTTP(w, r.WithContext(handlers.WithIdentity(ctx, identity)))
		})
	}
}

// RequireAuth rejects requests that carry no resolved identity.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handlers.IdentityFromContext(r.Context()) != nil {
			next.ServeHTTP(w, r)
			return
		}

		err := handlers.AuthErrorFromContext(r.Context())
		if err == nil {
			err = apperr.Unauthenticated("authentication required")
		}
		handlers.WriteError(w, apperr.MessageOf(err), http.StatusUnauthorized)
	})
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+requestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware tags every request with an id, echoed in the
// X-Request-ID header, and logs one line per request.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startedAt := time.Now()

		requestID := normalizeRequestID(r.Header.Get(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r.WithContext(handlers.WithRequestID(r.Context(), requestID)))

		log.Printf(
			"request_id=%s method=%s path=%s status=%d latency_ms=%.2f",
			requestID,
			r.Method,
			r.URL.Path,
			recorder.status,
			float64(time.Since(startedAt).Microseconds())/1000.0,
		)
	})
}

func normalizeRequestID(raw string) string {
	candidate := strings.TrimSpace(raw)
	if len(candidate) > 128 {
		candidate = candidate[:128]
	}
	return candidate
}

// Chain wraps h so that the first middleware listed runs first.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
