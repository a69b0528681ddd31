package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler periodically logs a dashboard snapshot.
type Scheduler struct {
	projects Lister
	logger   *zap.Logger
	cron     *cron.Cron
}

func NewScheduler(projects Lister, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		projects: projects,
		logger:   logger,
		cron:     cron.New(cron.WithSeconds()),
	}
}

// Start registers the snapshot job on schedule (six fields, seconds first) and
// starts the scheduler.
func (s *Scheduler) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, func() { s.RunOnce(context.Background()) }); err != nil {
		return fmt.Errorf("invalid summary schedule %q: %w", schedule, err)
	}
	s.cron.Start()
	s.logger.Info("summary scheduler started", zap.String("schedule", schedule))
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RunOnce takes a single snapshot.
func (s *Scheduler) RunOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	projects, err := s.projects.List(ctx)
	if err != nil {
		s.logger.Error("summary snapshot failed", zap.Error(err))
		return
	}

	sum := Summarize(projects)
	s.logger.Info("dashboard summary",
		zap.Int("total_projects", sum.TotalProjects),
		zap.Int("total_clients", sum.TotalClients),
		zap.Int("active_projects", sum.ActiveProjects),
		zap.Int("completed_projects", sum.CompletedProjects),
		zap.Any("media", sum.MediaDistribution),
	)
}
