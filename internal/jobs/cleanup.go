package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/othmanalikhan-apps/project-aardvark/internal/config"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler запускает фоновые задачи по расписанию
type Scheduler struct {
	cron        *cron.Cron
	cfg         config.JobsConfig
	bookingRepo BookingRepository
	logger      Logger
}

// NewScheduler создает планировщик фоновых задач
func NewScheduler(cfg config.JobsConfig, bookingRepo BookingRepository, logger Logger) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		cfg:         cfg,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Start регистрирует задачи и запускает планировщик
// При выключенных задачах ничего не делает
func (s *Scheduler) Start() error {
	if !s.cfg.Enabled {
		s.logger.Info("jobs: scheduler disabled")
		return nil
	}

	if s.cfg.BookingRetentionDays > 0 {
		if _, err := s.cron.AddFunc(s.cfg.CleanupSchedule, s.cleanupBookings); err != nil {
			return fmt.Errorf("jobs: invalid cleanup schedule %q: %w", s.cfg.CleanupSchedule, err)
		}
		s.logger.Info("jobs: booking cleanup scheduled at %q, retention %d days",
			s.cfg.CleanupSchedule, s.cfg.BookingRetentionDays)
	}

	s.cron.Start()
	return nil
}

// Stop останавливает планировщик и дожидается завершения запущенных задач
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("jobs: scheduler stopped")
}

// cleanupBookings удаляет брони старше срока хранения
func (s *Scheduler) cleanupBookings() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().AddDate(0, 0, -s.cfg.BookingRetentionDays)

	deleted, err := s.bookingRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Error("jobs: booking cleanup failed: %v", err)
		return
	}

	s.logger.Info("jobs: booking cleanup removed %d bookings older than %s",
		deleted, cutoff.Format("2006-01-02"))
}
