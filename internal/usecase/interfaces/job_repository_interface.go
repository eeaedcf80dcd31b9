package interfaces

import (
	"context"
	"errors"

	"towdispatch/internal/domain/entities"
)

// ErrVersionConflict is returned by AtomicUpdate when the optimistic version
// check failed after the implementation's bounded retries.
var ErrVersionConflict = errors.New("job version conflict")

// IJobRepository abstracts durable storage of the Job aggregate.
//
// Contract:
//   - GetByID returns (nil, nil) when the job does not exist.
//   - AtomicUpdate is a single read-modify-write: mutate observes and commits
//     the same version of the job or the call fails with no partial write.
//     An error returned by mutate aborts the update and is passed through;
//     a missing job yields (nil, nil). Implementations stamp UpdatedAt and
//     bump the version on commit.
//   - Purge removes the job and writes the audit record outside the
//     aggregate, since the aggregate ceases to exist.
type IJobRepository interface {
	Create(ctx context.Context, job *entities.Job) (*entities.Job, error)
	GetByID(ctx context.Context, bookingID string) (*entities.Job, error)
	AtomicUpdate(ctx context.Context, bookingID string, mutate func(*entities.Job) error) (*entities.Job, error)
	ListPayoutPending(ctx context.Context) ([]*entities.Job, error)
	Purge(ctx context.Context, bookingID string, record entities.PurgeRecord) error
}
