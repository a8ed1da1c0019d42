package scheduler

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"go-rental-inventory/internal/config"
	"go-rental-inventory/internal/service"
)

// Scheduler writes a dashboard metrics snapshot on a fixed cron schedule, so
// every metric date gets a row even when no write triggers a recompute.
type Scheduler struct {
	cron       *cron.Cron
	metricsSvc service.MetricsService
	cfg        config.MetricsConfig
	logger     *zap.Logger
}

func NewScheduler(cfg config.MetricsConfig, metricsSvc service.MetricsService, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:       cron.New(),
		metricsSvc: metricsSvc,
		cfg:        cfg,
		logger:     logger,
	}
}

// Start registers the snapshot job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting metrics scheduler", zap.String("schedule", s.cfg.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.CronSchedule, s.snapshotMetrics)
	if err != nil {
		s.logger.Error("failed to schedule metrics snapshot", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping metrics scheduler")
	s.cron.Stop()
}

func (s *Scheduler) snapshotMetrics() {
	s.logger.Info("recomputing dashboard metrics snapshot")
	if _, err := s.metricsSvc.Recalculate(); err != nil {
		s.logger.Error("scheduled metrics recompute failed", zap.Error(err))
		return
	}
	s.logger.Info("dashboard metrics snapshot stored")
}
