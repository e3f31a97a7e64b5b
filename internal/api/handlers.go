/**
 * @description
 * This file contains the HTTP handlers for the gateway facade. Handlers are
 * responsible for parsing incoming requests, calling the appropriate methods
 * on the orchestration service, and writing the HTTP response. They act as the
 * bridge between the browser-facing surface and the business logic layer.
 *
 * Errors are mapped onto HTTP statuses by kind: validation failures are 400,
 * state-machine refusals are 409, statuses reported by the remote service are
 * passed through, and transport failures surface as 502.
 *
 * @dependencies
 * - encoding/json, log, net/http: Standard Go libraries.
 * - internal/app, internal/domain: For service logic, models, and custom errors.
 */

package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/workbridge/client-gateway/internal/app"
	"github.com/workbridge/client-gateway/internal/domain"
	"github.com/workbridge/client-gateway/pkg/marketclient"
)

// Handlers holds the orchestration service that handlers will use.
type Handlers struct {
	service *app.Service
}

// NewHandlers creates a new instance of Handlers.
func NewHandlers(service *app.Service) *Handlers {
	return &Handlers{service: service}
}

// NavigationHandler returns the menu for the authenticated caller's role.
func (h *Handlers) NavigationHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "Authorization required")
		return
	}
	menu := domain.NavigationFor(id.Role)
	if menu == nil {
		menu = []domain.MenuItem{}
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"items": menu})
}

// ListJobsHandler refreshes and returns the job listing.
func (h *Handlers) ListJobsHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RefreshJobs(r.Context()); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"jobs": h.service.Jobs()})
}

// GetJobHandler returns a single job from the cache.
func (h *Handlers) GetJobHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "jobID")
	if !ok {
		return
	}
	job, found := h.service.Job(id)
	if !found {
		if err := h.service.RefreshJobs(r.Context()); err != nil {
			h.writeServiceError(w, r, err)
			return
		}
		if job, found = h.service.Job(id); !found {
			h.writeError(w, http.StatusNotFound, "Job not found")
			return
		}
	}
	h.writeJSON(w, http.StatusOK, job)
}

// CreateJobHandler posts a new job listing.
func (h *Handlers) CreateJobHandler(w http.ResponseWriter, r *http.Request) {
	var draft domain.JobDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	job, err := h.service.CreateJob(r.Context(), draft)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, job)
}

// UpdateJobHandler edits an existing job listing.
func (h *Handlers) UpdateJobHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "jobID")
	if !ok {
		return
	}
	var draft domain.JobDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	job, err := h.service.UpdateJob(r.Context(), id, draft)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, job)
}

// DeleteJobHandler removes a job listing.
func (h *Handlers) DeleteJobHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "jobID")
	if !ok {
		return
	}
	if err := h.service.DeleteJob(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Job deleted"})
}

// EndJobHandler closes an active job. This is the employer's own terminal
// action, distinct from the admin status override.
func (h *Handlers) EndJobHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "jobID")
	if !ok {
		return
	}
	if err := h.service.EndJob(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Job ended"})
}

// UpdateJobStatusHandler is the admin lifecycle override (pause / resume /
// end).
func (h *Handlers) UpdateJobStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "jobID")
	if !ok {
		return
	}
	var req struct {
		Status domain.JobLifeCycle `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.service.UpdateJobStatus(r.Context(), id, req.Status); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Job status updated"})
}

// JobApplicationsHandler returns the applications for one job.
func (h *Handlers) JobApplicationsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "jobID")
	if !ok {
		return
	}
	apps, err := h.service.JobApplications(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"applications": apps})
}

// UpdateApplicationStatusHandler decides an application (hire or reject).
func (h *Handlers) UpdateApplicationStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "applicationID")
	if !ok {
		return
	}
	var req struct {
		Status domain.ApplicationStatus `json:"status"`
		JobID  int64                    `json:"job_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.service.UpdateApplicationStatus(r.Context(), id, req.Status, req.JobID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Application updated"})
}

// RateApplicantHandler submits or revises a rating for a hired applicant.
func (h *Handlers) RateApplicantHandler(w http.ResponseWriter, r *http.Request) {
	jobID, ok := h.pathID(w, r, "jobID")
	if !ok {
		return
	}
	userID, ok := h.pathID(w, r, "userID")
	if !ok {
		return
	}
	var req struct {
		Rating int `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.service.Rate(r.Context(), jobID, userID, req.Rating); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Rating saved"})
}

// DeleteRatingHandler withdraws a rating.
func (h *Handlers) DeleteRatingHandler(w http.ResponseWriter, r *http.Request) {
	jobID, ok := h.pathID(w, r, "jobID")
	if !ok {
		return
	}
	userID, ok := h.pathID(w, r, "userID")
	if !ok {
		return
	}
	if err := h.service.DeleteRating(r.Context(), jobID, userID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Rating removed"})
}

// ListSubscriptionsHandler refreshes and returns the subscription requests.
func (h *Handlers) ListSubscriptionsHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RefreshSubscriptions(r.Context()); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"subscriptions": h.service.Subscriptions()})
}

// ListUsersHandler refreshes and returns the account listing.
func (h *Handlers) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RefreshUsers(r.Context()); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"users": h.service.Users()})
}

// subscriptionDecisionRequest carries the admin's intent on a request. The
// token count is optional and only meaningful when approving a 20_token plan.
type subscriptionDecisionRequest struct {
	UserID     int64  `json:"user_id"`
	TokenCount *int64 `json:"token_count,omitempty"`
}

func (h *Handlers) decodeSubscriptionDecision(w http.ResponseWriter, r *http.Request) (int64, subscriptionDecisionRequest, bool) {
	id, ok := h.pathID(w, r, "subscriptionID")
	if !ok {
		return 0, subscriptionDecisionRequest{}, false
	}
	var req subscriptionDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return 0, subscriptionDecisionRequest{}, false
	}
	return id, req, true
}

// ApproveSubscriptionHandler transitions a pending request to active.
func (h *Handlers) ApproveSubscriptionHandler(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.decodeSubscriptionDecision(w, r)
	if !ok {
		return
	}
	if err := h.service.ApproveSubscription(r.Context(), req.UserID, id, req.TokenCount); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Subscription approved"})
}

// RejectSubscriptionHandler transitions a pending request to inactive.
func (h *Handlers) RejectSubscriptionHandler(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.decodeSubscriptionDecision(w, r)
	if !ok {
		return
	}
	if err := h.service.RejectSubscription(r.Context(), req.UserID, id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Subscription rejected"})
}

// ReopenSubscriptionHandler returns a decided request to pending.
func (h *Handlers) ReopenSubscriptionHandler(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.decodeSubscriptionDecision(w, r)
	if !ok {
		return
	}
	if err := h.service.ReopenSubscription(r.Context(), req.UserID, id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Subscription reopened"})
}

// ActivateSubscriptionHandler is the manual admin override to active.
func (h *Handlers) ActivateSubscriptionHandler(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.decodeSubscriptionDecision(w, r)
	if !ok {
		return
	}
	if err := h.service.ActivateSubscription(r.Context(), req.UserID, id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Subscription activated"})
}

// DeactivateSubscriptionHandler is the manual admin override to inactive.
func (h *Handlers) DeactivateSubscriptionHandler(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.decodeSubscriptionDecision(w, r)
	if !ok {
		return
	}
	if err := h.service.DeactivateSubscription(r.Context(), req.UserID, id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Subscription deactivated"})
}

// SetTokenBalanceHandler edits the token balance of an active 20_token
// subscription.
func (h *Handlers) SetTokenBalanceHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "subscriptionID")
	if !ok {
		return
	}
	var req struct {
		UserID     int64 `json:"user_id"`
		TokenCount int64 `json:"token_count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.service.SetTokenBalance(r.Context(), req.UserID, id, req.TokenCount); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Token balance updated"})
}

// pathID parses a numeric chi URL parameter, writing a 400 on failure.
func (h *Handlers) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.writeError(w, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// writeServiceError maps service-layer errors onto HTTP statuses.
func (h *Handlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *app.ValidationError
	if errors.As(err, &vErr) {
		h.writeError(w, http.StatusBadRequest, vErr.Error())
		return
	}
	var sErr *app.StateError
	if errors.As(err, &sErr) {
		h.writeError(w, http.StatusConflict, sErr.Error())
		return
	}
	var apiErr *marketclient.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		h.writeError(w, status, apiErr.Message)
		return
	}
	var netErr *marketclient.NetworkError
	if errors.As(err, &netErr) {
		h.writeError(w, http.StatusBadGateway, "Remote service unreachable")
		return
	}

	log.Printf("level=error component=api method=%s path=%s msg=\"unhandled service error\" err=%v", r.Method, r.URL.Path, err)
	h.writeError(w, http.StatusInternalServerError, "Internal server error")
}

// writeJSON is a helper for writing JSON responses.
func (h *Handlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError is a helper for writing JSON error responses.
func (h *Handlers) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
