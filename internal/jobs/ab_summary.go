package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"dsatrack/internal/models"
)

// ResultsSource is what the job needs from the analytics store.
type ResultsSource interface {
	Results(ctx context.Context) (*models.ABResults, error)
}

// ABSummaryJob periodically logs aggregate A/B exposure counts so the
// experiment can be watched from the service logs alone.
type ABSummaryJob struct {
	store    ResultsSource
	logger   *zap.Logger
	schedule string
	cron     *cron.Cron
}

func NewABSummaryJob(store ResultsSource, logger *zap.Logger, schedule string) *ABSummaryJob {
	return &ABSummaryJob{
		store:    store,
		logger:   logger,
		schedule: schedule,
		cron:     cron.New(),
	}
}

// Start schedules the summary job.
func (j *ABSummaryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if err := j.Run(); err != nil {
			j.logger.Error("ab summary job failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule ab summary job: %w", err)
	}
	j.cron.Start()
	j.logger.Info("ab summary job started", zap.String("schedule", j.schedule))
	return nil
}

// Run logs one summary immediately.
func (j *ABSummaryJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	results, err := j.store.Results(ctx)
	if err != nil {
		return err
	}

	j.logger.Info("ab test exposure summary",
		zap.Int("difficulty_based_users", results.VariantA.Users),
		zap.Int("topic_based_users", results.VariantB.Users),
	)
	return nil
}

// Stop stops the scheduler.
func (j *ABSummaryJob) Stop() {
	if j.cron != nil {
		j.cron.Stop()
	}
}
