package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/jesquared/prophealth/internal/config"
	"github.com/jesquared/prophealth/internal/service/portfolio"
	"github.com/jesquared/prophealth/internal/service/weather"
)

// Scheduler manages the background jobs: a daily portfolio health digest and
// a periodic weather-cache sweep.
type Scheduler struct {
	cron         *cron.Cron
	portfolioSvc *portfolio.Service
	weatherSvc   *weather.Service
	cfg          config.Config
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.Config, portfolioSvc *portfolio.Service, weatherSvc *weather.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []cron.Option{}
	if loc, err := time.LoadLocation(cfg.Digest.Timezone); err == nil {
		opts = append(opts, cron.WithLocation(loc))
	} else {
		logger.Warn("invalid timezone, using local", zap.String("timezone", cfg.Digest.Timezone), zap.Error(err))
	}

	return &Scheduler{
		cron:         cron.New(opts...),
		portfolioSvc: portfolioSvc,
		weatherSvc:   weatherSvc,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start registers and starts the scheduled jobs.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler")

	if _, err := s.cron.AddFunc(s.cfg.Digest.CronSchedule, s.logPortfolioDigest); err != nil {
		s.logger.Error("failed to schedule portfolio digest", zap.Error(err))
	}

	// Sweep the weather cache at five past every hour. Reads check freshness
	// themselves; this only reclaims memory for ZIPs no longer viewed.
	if _, err := s.cron.AddFunc("5 * * * *", s.sweepWeatherCache); err != nil {
		s.logger.Error("failed to schedule weather cache sweep", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) logPortfolioDigest() {
	summary := s.portfolioSvc.Summary()
	s.logger.Info("portfolio digest",
		zap.Int("properties", summary.PropertyCount),
		zap.Float64("average_score", summary.AverageScore),
		zap.Float64("worst_score", summary.WorstScore),
		zap.Int("maintenance_records", summary.MaintenanceCount),
		zap.Float64("maintenance_spend", summary.MaintenanceSpend))
}

func (s *Scheduler) sweepWeatherCache() {
	if removed := s.weatherSvc.Sweep(); removed > 0 {
		s.logger.Debug("weather cache sweep", zap.Int("evicted", removed))
	}
}
