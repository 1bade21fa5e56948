package jobs

import (
	"context"
	"log/slog"

	"geodispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// BranchGeocodeJob manages the scheduled geocoding of branches that were
// registered with a street address only. Runs every minute so newly added
// branches become rankable without manual intervention.
type BranchGeocodeJob struct {
	handler commands.RefreshBranchCoordinatesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBranchGeocodeJob creates a new job for resolving branch coordinates.
// Uses RefreshBranchCoordinatesCommandHandler to geocode pending branches.
func NewBranchGeocodeJob(handler commands.RefreshBranchCoordinatesCommandHandler, logger *slog.Logger) *BranchGeocodeJob {
	return &BranchGeocodeJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "branch_geocode_job"),
	}
}

// Start begins the branch geocode job to run every minute.
func (j *BranchGeocodeJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", func() {
		ctx := context.Background()
		cmd := commands.NewRefreshBranchCoordinatesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Branch geocode job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Branch geocode job started (running every minute)")
	return nil
}

// Stop stops the branch geocode job.
func (j *BranchGeocodeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Branch geocode job stopped")
}
