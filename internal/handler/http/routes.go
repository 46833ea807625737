package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(h.withTraceID, h.withLogging, h.withRateLimit)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Get("/version", h.version)
		r.Post("/auth/signup", h.signup)
		r.Post("/auth/login", h.login)
		r.Post("/auth/refresh", h.refresh)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/auth/logout", h.logout)
			r.Get("/auth/me", h.me)

			r.Get("/sessions", h.listSessions)
			r.Post("/sessions", h.createSession)
			r.Get("/sessions/{id}", h.getSession)
			r.Patch("/sessions/{id}", h.updateSession)

			r.Post("/punches", h.logPunch)
			r.Get("/punches/session/{id}", h.sessionPunches)

			r.Get("/analytics/weekly", h.weeklyAnalytics)
			r.Get("/analytics/{id}", h.sessionAnalytics)

			r.Post("/coach/invite", h.inviteAthlete)
			r.Post("/coach/accept", h.acceptInvite)
			r.Get("/coach/athletes", h.coachAthletes)
			r.Get("/coach/leaderboard", h.leaderboard)
		})
	})

	return router
}
