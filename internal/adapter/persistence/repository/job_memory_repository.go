package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/usecase/interfaces"
)

var ErrJobAlreadyExists = errors.New("job already exists")

// JobMemoryRepository keeps the aggregates in process memory behind a mutex.
// It backs JOBSTORE_MOCK mode for local development and the use case tests.
// The mutex serializes AtomicUpdate, which gives the same no-lost-updates
// guarantee the DynamoDB implementation gets from conditional writes.
type JobMemoryRepository struct {
	mu     sync.Mutex
	jobs   map[string]*entities.Job
	purged []entities.PurgeRecord
}

var _ interfaces.IJobRepository = (*JobMemoryRepository)(nil)

func NewJobMemoryRepository() *JobMemoryRepository {
	return &JobMemoryRepository{jobs: make(map[string]*entities.Job)}
}

func (r *JobMemoryRepository) Create(_ context.Context, job *entities.Job) (*entities.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[job.BookingID]; ok {
		return nil, ErrJobAlreadyExists
	}
	stored := job.Clone()
	stored.Version = 1
	r.jobs[job.BookingID] = stored
	return stored.Clone(), nil
}

func (r *JobMemoryRepository) GetByID(_ context.Context, bookingID string) (*entities.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[bookingID]
	if !ok {
		return nil, nil
	}
	return job.Clone(), nil
}

func (r *JobMemoryRepository) AtomicUpdate(_ context.Context, bookingID string, mutate func(*entities.Job) error) (*entities.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[bookingID]
	if !ok {
		return nil, nil
	}

	// mutate runs on a clone so a rejected operation leaves nothing behind.
	next := job.Clone()
	if err := mutate(next); err != nil {
		return nil, err
	}
	next.Version = job.Version + 1
	next.UpdatedAt = time.Now().UTC()
	r.jobs[bookingID] = next
	return next.Clone(), nil
}

func (r *JobMemoryRepository) ListPayoutPending(_ context.Context) ([]*entities.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var jobs []*entities.Job
	for _, job := range r.jobs {
		if job.Supplier.PayoutPending() {
			jobs = append(jobs, job.Clone())
		}
	}
	return jobs, nil
}

func (r *JobMemoryRepository) Purge(_ context.Context, bookingID string, record entities.PurgeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.jobs, bookingID)
	r.purged = append(r.purged, record)
	return nil
}

// PurgeRecords returns the audit rows written by Purge, for tests.
func (r *JobMemoryRepository) PurgeRecords() []entities.PurgeRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entities.PurgeRecord, len(r.purged))
	copy(out, r.purged)
	return out
}
