/**
 * @description
 * This file defines the Job aggregate and its lifecycle rules. A job posting moves
 * through a small state machine: it is created active, an admin may pause it
 * (active -> pending) and resume it (pending -> active), and its owner may end it
 * (active -> ended). Ended is terminal; once a job has ended, no application under
 * it may change status and performance ratings become eligible.
 *
 * CanTransitionLifeCycle is the single client-side authority for lifecycle
 * transitions. Both the employer "end job" path and the admin status patch are
 * validated through it.
 */

package domain

import "time"

// JobType enumerates the kinds of work a posting can offer.
type JobType string

const (
	JobTypeFullTime JobType = "full_time"
	JobTypePartTime JobType = "part_time"
	JobTypeOrder    JobType = "order"
)

// Valid reports whether the job type is one of the known values.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeOrder:
		return true
	}
	return false
}

// JobLifeCycle enumerates the lifecycle states of a job posting.
type JobLifeCycle string

const (
	JobLifeCycleActive  JobLifeCycle = "active"
	JobLifeCyclePending JobLifeCycle = "pending"
	JobLifeCycleEnded   JobLifeCycle = "ended"
)

// Valid reports whether the lifecycle value is one of the known states.
func (l JobLifeCycle) Valid() bool {
	switch l {
	case JobLifeCycleActive, JobLifeCyclePending, JobLifeCycleEnded:
		return true
	}
	return false
}

// CanTransitionLifeCycle reports whether a job may move from one lifecycle state
// to another. Ended is terminal. A same-state "transition" is not a transition.
func CanTransitionLifeCycle(from, to JobLifeCycle) bool {
	switch from {
	case JobLifeCycleActive:
		return to == JobLifeCycleEnded || to == JobLifeCyclePending
	case JobLifeCyclePending:
		return to == JobLifeCycleActive
	}
	return false
}

// Job represents a posted work opportunity. The remote job service is the source
// of truth; instances held client-side are cached snapshots.
type Job struct {
	ID              int64        `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Location        string       `json:"location"`
	Company         string       `json:"company,omitempty"`
	Salary          int64        `json:"salary"`
	Contact         string       `json:"contact"`
	Duration        time.Time    `json:"duration"` // end date of the engagement
	Type            JobType      `json:"type"`
	LifeCycle       JobLifeCycle `json:"life_cycle"`
	MaxApplicants   int          `json:"max_applicants"`
	ApplicantsCount int          `json:"applicants_count"`
	EmployerID      int64        `json:"employer_id,omitempty"`
}

// Active reports whether the job is accepting application transitions.
func (j *Job) Active() bool { return j.LifeCycle == JobLifeCycleActive }

// Ended reports whether the job has reached its terminal state.
func (j *Job) Ended() bool { return j.LifeCycle == JobLifeCycleEnded }

// JobDraft carries the caller-supplied fields for creating or editing a job.
// Company is optional; everything else is required.
type JobDraft struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	Company       string    `json:"company,omitempty"`
	Salary        int64     `json:"salary"`
	Contact       string    `json:"contact"`
	Duration      time.Time `json:"duration"`
	Type          JobType   `json:"type"`
	MaxApplicants int       `json:"max_applicants"`
}
