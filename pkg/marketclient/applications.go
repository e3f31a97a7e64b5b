/**
 * @description
 * Application endpoints of the remote job service. The service exposes no
 * per-job filter: GET /jobs/user-applied returns every application visible to
 * the caller and filtering happens client-side on canonical integer ids.
 */

package marketclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/workbridge/client-gateway/internal/domain"
)

// applicationWire is the remote representation of an application. The user
// snapshot arrives flattened alongside the application fields.
type applicationWire struct {
	ID              FlexInt `json:"id"`
	JobID           FlexInt `json:"job_id"`
	UserID          FlexInt `json:"user_id"`
	Status          string  `json:"status"`
	ApplicationDate string  `json:"application_date"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Username        string  `json:"username"`
	ProfilePicture  string  `json:"profile_picture"`
	Contact         string  `json:"contact"`
}

func (w applicationWire) toDomain() domain.Application {
	app := domain.Application{
		ID:     w.ID.Int64(),
		JobID:  w.JobID.Int64(),
		UserID: w.UserID.Int64(),
		Status: domain.ApplicationStatus(w.Status),
		Applicant: domain.Applicant{
			FirstName:      w.FirstName,
			LastName:       w.LastName,
			Username:       w.Username,
			ProfilePicture: w.ProfilePicture,
			Contact:        w.Contact,
		},
	}
	if w.ApplicationDate != "" {
		for _, layout := range []string{time.RFC3339, durationDateLayout} {
			if at, err := time.Parse(layout, w.ApplicationDate); err == nil {
				app.AppliedAt = at
				break
			}
		}
	}
	return app
}

// ListApplications fetches all applications visible to the authenticated
// caller, across every one of their jobs.
func (c *Client) ListApplications(ctx context.Context) ([]domain.Application, error) {
	var wires []applicationWire
	if err := c.do(ctx, "GET", "/jobs/user-applied", nil, &wires); err != nil {
		if errors.Is(err, errNoData) {
			return nil, nil
		}
		return nil, err
	}
	apps := make([]domain.Application, 0, len(wires))
	for _, w := range wires {
		apps = append(apps, w.toDomain())
	}
	return apps, nil
}

// UpdateApplicationStatus moves an application to accepted or rejected.
func (c *Client) UpdateApplicationStatus(ctx context.Context, applicationID int64, status domain.ApplicationStatus, jobID int64) error {
	payload := struct {
		Status string `json:"status"`
		JobID  int64  `json:"job_id"`
	}{Status: string(status), JobID: jobID}
	return c.do(ctx, "POST", fmt.Sprintf("/jobs/user-applied/%d", applicationID), payload, nil)
}
