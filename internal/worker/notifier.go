package worker

import (
	"context"
	"fmt"

	"bloodlink/internal/matching"
	"bloodlink/internal/request"
	"bloodlink/pkg/domain"
	"bloodlink/pkg/logger"
	"bloodlink/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// NotifierWorker is a River worker that dispatches donor notifications for a
// newly created blood request. It re-reads the request and re-computes the
// eligible donors at execution time, so a request that was cancelled between
// enqueue and execution notifies nobody, and donors registered in that window
// are still picked up.
//
// Delivery targets each donor's WhatsApp contact number. Dispatch is recorded
// in the log; wiring an actual messaging provider sits behind this worker
// without changing the matching semantics.
type NotifierWorker struct {
	river.WorkerDefaults[request.NotifyJobArgs]

	storage storage.Storage
}

// NewNotifierWorker constructs a NotifierWorker backed by the given storage.
func NewNotifierWorker(storage storage.Storage) *NotifierWorker {
	return &NotifierWorker{
		storage: storage,
	}
}

// Work dispatches notifications for a single blood request.
func (n *NotifierWorker) Work(ctx context.Context, job *river.Job[request.NotifyJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("requestID", job.Args.RequestID.String()))

	req, err := n.storage.RequestByID(ctx, domain.RequestID(job.Args.RequestID))
	if err != nil {
		logger.Error(ctx, "error fetching blood request", zap.Error(err))

		return fmt.Errorf("could not fetch blood request: %w", err)
	}
	if req == nil {
		// the enqueueing transaction committed, so a missing row is permanent
		return river.JobCancel(fmt.Errorf("blood request %s not found", job.Args.RequestID))
	}
	if req.Status != domain.RequestStatusPending {
		logger.Info(ctx, "blood request no longer pending, skipping notification",
			zap.String("status", string(req.Status)))

		return nil
	}

	donors, err := matching.EligibleDonors(ctx, n.storage, req.BloodType)
	if err != nil {
		logger.Error(ctx, "error matching donors", zap.Error(err))

		return err
	}

	for _, d := range donors {
		logger.Info(ctx, "notifying donor",
			zap.String("donorID", d.ID.String()),
			zap.String("whatsApp", d.WhatsApp),
			zap.String("bloodType", string(req.BloodType)),
			zap.String("urgency", string(req.Urgency)))
	}

	logger.Info(ctx, "donor notifications dispatched", zap.Int("donors", len(donors)))

	return nil
}
