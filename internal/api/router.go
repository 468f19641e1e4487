package api

import (
	"net/http"
	"time"

	"jobtrack/internal/api/handler"
	"jobtrack/internal/api/middleware"
	"jobtrack/internal/app/service"
	"jobtrack/internal/app/ws"
	"jobtrack/internal/common/security"
	"jobtrack/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	jobService *service.JobService,
	hub *ws.Hub,
	allowedOrigin string,
) http.Handler {
	r := chi.NewRouter()

	// Base middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{allowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Live connection endpoint. Kept outside the logging/timeout middlewares:
	// the upgrade hijacks the connection and outlives any request deadline.
	wsHandler := handler.NewWSHandler(hub, allowedOrigin)
	r.Get("/ws", wsHandler.Serve)

	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)

	r.Route("/api", func(api chi.Router) {
		api.Use(logger.RequestLogging)
		api.Use(chiMiddleware.Timeout(60 * time.Second))
		api.Use(jwtauth.Verifier(security.TokenAuth)) // Verifies token, puts claims in context

		api.Route("/auth", func(auth chi.Router) {
			authHandler.RegisterPublicRoutes(auth)
			auth.Group(func(protected chi.Router) {
				protected.Use(middleware.Authenticator)
				authHandler.RegisterProtectedRoutes(protected)
			})
		})

		api.Route("/jobs", func(jobs chi.Router) {
			jobs.Use(middleware.Authenticator)
			jobHandler.RegisterRoutes(jobs)
		})
	})

	return r
}
