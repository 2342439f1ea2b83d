package request

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// NotifyJobArgs contains the arguments for a donor notification job submitted
// to River. One job is enqueued per blood request, transactionally with the
// request itself, so a rolled-back creation never leaks a notification.
type NotifyJobArgs struct {
	// RequestID identifies the blood request whose eligible donors should be
	// notified. It is the unique key so each request is dispatched once.
	RequestID uuid.UUID `json:"requestId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the notifier worker.
func (args NotifyJobArgs) Kind() string { return "NotifyDonorsJob" }

// InsertOpts returns the River options that control how the job is enqueued.
// Uniqueness by args makes a retried creation idempotent at the queue level.
func (args NotifyJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
