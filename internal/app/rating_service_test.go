package app

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/workbridge/client-gateway/internal/domain"
)

func ratedStub() *marketStub {
	stub := newMarketStub()
	stub.jobs = []domain.Job{{ID: 5, LifeCycle: domain.JobLifeCycleEnded}}
	stub.apps = []domain.Application{{ID: 1, JobID: 5, UserID: 9, Status: domain.ApplicationStatusAccepted}}
	return stub
}

func TestRate_OutOfRangeNeverReachesNetwork(t *testing.T) {
	stub := ratedStub()
	svc, _ := newTestService(stub)

	for _, value := range []int{0, 6, -1} {
		err := svc.Rate(context.Background(), 5, 9, value)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError for value %d, got %v", value, err)
		}
	}
	if stub.getRatingCalls != 0 || stub.submitRatingCalls != 0 {
		t.Fatal("expected no network traffic for out-of-range values")
	}
}

func TestRate_ActiveJobIsIneligible(t *testing.T) {
	stub := ratedStub()
	stub.jobs[0].LifeCycle = domain.JobLifeCycleActive
	svc, caches := newTestService(stub)
	caches.Jobs.ReplaceAll(stub.jobs)
	caches.Applications.ReplaceAll(stub.apps)

	err := svc.Rate(context.Background(), 5, 9, 4)
	var sErr *StateError
	if !errors.As(err, &sErr) {
		t.Fatalf("expected StateError, got %v", err)
	}
	if stub.getRatingCalls != 0 {
		t.Fatal("expected no existence probe for an ineligible job")
	}
}

func TestRate_NonHiredApplicantIsIneligible(t *testing.T) {
	stub := ratedStub()
	stub.apps[0].Status = domain.ApplicationStatusApplied
	svc, caches := newTestService(stub)
	caches.Jobs.ReplaceAll(stub.jobs)
	caches.Applications.ReplaceAll(stub.apps)

	err := svc.Rate(context.Background(), 5, 9, 4)
	var sErr *StateError
	if !errors.As(err, &sErr) {
		t.Fatalf("expected StateError, got %v", err)
	}
}

func TestRate_SequentialRatesYieldOneRecord(t *testing.T) {
	stub := ratedStub()
	svc, caches := newTestService(stub)
	caches.Jobs.ReplaceAll(stub.jobs)
	caches.Applications.ReplaceAll(stub.apps)

	if err := svc.Rate(context.Background(), 5, 9, 4); err != nil {
		t.Fatalf("first rate failed: %v", err)
	}
	if err := svc.Rate(context.Background(), 5, 9, 5); err != nil {
		t.Fatalf("second rate failed: %v", err)
	}

	if stub.submitRatingCalls != 1 {
		t.Fatalf("expected exactly one create, got %d", stub.submitRatingCalls)
	}
	if stub.updateRatingCalls != 1 {
		t.Fatalf("expected exactly one update, got %d", stub.updateRatingCalls)
	}
	if len(stub.ratings) != 1 {
		t.Fatalf("expected one stored rating, got %d", len(stub.ratings))
	}
	if got := stub.ratings[ratingKey(5, 9)].Value; got != 5 {
		t.Fatalf("expected the second value to win, got %d", got)
	}
}

func TestRate_DoubleSubmissionIsSerializedPerKey(t *testing.T) {
	stub := ratedStub()
	svc, caches := newTestService(stub)
	caches.Jobs.ReplaceAll(stub.jobs)
	caches.Applications.ReplaceAll(stub.apps)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.Rate(context.Background(), 5, 9, 4)
		}()
	}
	wg.Wait()

	// The in-flight guard collapses concurrent same-key writes: never two
	// creates for one pair.
	if stub.submitRatingCalls > 1 {
		t.Fatalf("expected at most one create under double submission, got %d", stub.submitRatingCalls)
	}
	if len(stub.ratings) != 1 {
		t.Fatalf("expected one stored rating, got %d", len(stub.ratings))
	}
}

func TestDeleteRating(t *testing.T) {
	stub := ratedStub()
	stub.ratings[ratingKey(5, 9)] = &domain.Rating{JobID: 5, UserID: 9, Value: 3}
	svc, _ := newTestService(stub)

	if err := svc.DeleteRating(context.Background(), 5, 9); err != nil {
		t.Fatalf("DeleteRating returned error: %v", err)
	}
	if len(stub.ratings) != 0 {
		t.Fatal("expected rating to be removed")
	}
}

// The full hire -> end -> rate -> revise path across all three subsystems.
func TestHireEndRateFlow(t *testing.T) {
	stub := newMarketStub()
	stub.jobs = []domain.Job{{ID: 5, Title: "Courier", LifeCycle: domain.JobLifeCycleActive}}
	stub.apps = []domain.Application{{ID: 1, JobID: 5, UserID: 9, Status: domain.ApplicationStatusApplied}}
	svc, caches := newTestService(stub)
	caches.Jobs.ReplaceAll(stub.jobs)
	caches.Applications.ReplaceAll(stub.apps)

	ctx := context.Background()

	if err := svc.UpdateApplicationStatus(ctx, 1, domain.ApplicationStatusAccepted, 5); err != nil {
		t.Fatalf("hiring failed: %v", err)
	}
	app, _ := caches.Applications.Get(1)
	if app.Status != domain.ApplicationStatusAccepted {
		t.Fatalf("expected accepted application, got %s", app.Status)
	}

	// Rating before the job ends must be refused.
	if err := svc.Rate(ctx, 5, 9, 4); err == nil {
		t.Fatal("expected rating to be refused while the job is active")
	}

	if err := svc.EndJob(ctx, 5); err != nil {
		t.Fatalf("ending job failed: %v", err)
	}
	job, _ := caches.Jobs.Get(5)
	if !job.Ended() {
		t.Fatalf("expected ended job, got %s", job.LifeCycle)
	}

	if err := svc.Rate(ctx, 5, 9, 4); err != nil {
		t.Fatalf("first rating failed: %v", err)
	}
	if err := svc.Rate(ctx, 5, 9, 5); err != nil {
		t.Fatalf("revised rating failed: %v", err)
	}
	if len(stub.ratings) != 1 || stub.ratings[ratingKey(5, 9)].Value != 5 {
		t.Fatalf("expected a single rating of 5, got %+v", stub.ratings)
	}
}
