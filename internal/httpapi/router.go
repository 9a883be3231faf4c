package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/bankapp/internal/logging"
)

// NewRouter builds the API routes:
//
//	POST /api/auth/login
//	POST /api/auth/register
//	POST /api/transfer        stub, moves nothing
//	GET  /api/info/{topic}    fixed menu texts
//	GET  /api/ping
func NewRouter(as AuthService, l logging.Logger) http.Handler {
	h := &handler{authService: as, logger: l}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(l))
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", h.ping)
		r.Post("/auth/login", h.login)
		r.Post("/auth/register", h.register)
		r.Post("/transfer", h.transfer)
		r.Get("/info/{topic}", h.info)
	})

	return r
}

func requestLogger(l logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			l.Debug(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()))
		})
	}
}
