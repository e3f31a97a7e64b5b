/**
 * @description
 * This file sets up the HTTP router for the client gateway. It defines the API
 * endpoints, associates them with their corresponding handlers, and applies
 * the middleware stack: request logging, panic recovery, timeouts, CORS for
 * the browser, and session authentication with role gating.
 *
 * @dependencies
 * - net/http: Standard Go library for HTTP functionality.
 * - github.com/go-chi/chi/v5: A lightweight and idiomatic router for Go.
 * - github.com/go-chi/cors: CORS middleware for the browser-facing surface.
 */

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/workbridge/client-gateway/internal/domain"
)

// Routes creates and returns the router for the gateway facade.
func Routes(h *Handlers, sessionSecret string, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	// Add standard middleware for logging, panic recovery, and timeouts.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("healthy"))
	})

	// Group routes that require authentication.
	r.Group(func(r chi.Router) {
		r.Use(SessionMiddleware(sessionSecret))

		r.Get("/navigation", h.NavigationHandler)

		// Job browsing is open to every authenticated role.
		r.Get("/jobs", h.ListJobsHandler)
		r.Get("/jobs/{jobID}", h.GetJobHandler)

		// Job lifecycle management belongs to employers; admins carry the
		// status override as well.
		r.Group(func(r chi.Router) {
			r.Use(RequireRole(domain.RoleEmployer, domain.RoleAdmin))

			r.Post("/jobs", h.CreateJobHandler)
			r.Put("/jobs/{jobID}", h.UpdateJobHandler)
			r.Delete("/jobs/{jobID}", h.DeleteJobHandler)
			r.Post("/jobs/{jobID}/end", h.EndJobHandler)

			r.Get("/jobs/{jobID}/applications", h.JobApplicationsHandler)
			r.Post("/applications/{applicationID}", h.UpdateApplicationStatusHandler)

			r.Post("/jobs/{jobID}/ratings/{userID}", h.RateApplicantHandler)
			r.Delete("/jobs/{jobID}/ratings/{userID}", h.DeleteRatingHandler)
		})

		r.Group(func(r chi.Router) {
			r.Use(RequireRole(domain.RoleAdmin))

			r.Patch("/jobs/{jobID}/status", h.UpdateJobStatusHandler)

			r.Get("/admin/subscriptions", h.ListSubscriptionsHandler)
			r.Get("/admin/users", h.ListUsersHandler)
			r.Post("/admin/subscriptions/{subscriptionID}/approve", h.ApproveSubscriptionHandler)
			r.Post("/admin/subscriptions/{subscriptionID}/reject", h.RejectSubscriptionHandler)
			r.Post("/admin/subscriptions/{subscriptionID}/reopen", h.ReopenSubscriptionHandler)
			r.Post("/admin/subscriptions/{subscriptionID}/activate", h.ActivateSubscriptionHandler)
			r.Post("/admin/subscriptions/{subscriptionID}/deactivate", h.DeactivateSubscriptionHandler)
			r.Put("/admin/subscriptions/{subscriptionID}/tokens", h.SetTokenBalanceHandler)
		})
	})

	return r
}
