package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs
// (donor notification dispatch). Implementations persist the job into the
// underlying queue backend; when called inside a transaction the insert must
// participate in it, so a rolled-back request never leaks a job.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. The boolean result
	// reports whether a job was actually inserted; false means an equivalent
	// unique job already existed.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
