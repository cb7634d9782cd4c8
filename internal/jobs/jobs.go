package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/service"
	"github.com/shenikar/tourist_safety_system/pkg/clock"
	"github.com/sirupsen/logrus"
)

const pruneTimeout = time.Minute

// Scheduler выполняет периодические задачи: очистку простаивающих сессий SOS
// и удаление старых записей журнала проверок позиции
type Scheduler struct {
	cron   *cron.Cron
	sos    service.SOSService
	maps   service.MapService
	cfg    *config.Config
	clock  clock.Clock
	logger *logrus.Logger
}

func NewScheduler(sos service.SOSService, maps service.MapService, cfg *config.Config, clk clock.Clock, logger *logrus.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(cron.WithChain(cron.Recover(cronLogger{logger}))),
		sos:    sos,
		maps:   maps,
		cfg:    cfg,
		clock:  clk,
		logger: logger,
	}

	if _, err := s.cron.AddFunc(cfg.SOSSweepSchedule, s.SweepSOSSessions); err != nil {
		return nil, fmt.Errorf("jobs: invalid SOS_SWEEP_SCHEDULE %q: %w", cfg.SOSSweepSchedule, err)
	}
	if _, err := s.cron.AddFunc(cfg.LocationCheckPruneSchedule, s.PruneLocationChecks); err != nil {
		return nil, fmt.Errorf("jobs: invalid LOCATION_CHECK_PRUNE_SCHEDULE %q: %w", cfg.LocationCheckPruneSchedule, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.logger.WithField("jobs", len(s.cron.Entries())).Info("Starting cron scheduler...")
	s.cron.Start()
}

// Stop останавливает планировщик и ждет завершения запущенных задач
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
		s.logger.Info("Cron scheduler stopped.")
	case <-ctx.Done():
		s.logger.Warn("Cron scheduler stop timed out")
	}
}

func (s *Scheduler) SweepSOSSessions() {
	removed := s.sos.SweepIdle(s.clock.Now())
	s.logger.WithFields(logrus.Fields{
		"job":     "sos_sweep",
		"removed": removed,
	}).Debug("SOS sweep finished")
}

func (s *Scheduler) PruneLocationChecks() {
	ctx, cancel := context.WithTimeout(context.Background(), pruneTimeout)
	defer cancel()

	log := s.logger.WithField("job", "location_check_prune")
	deleted, err := s.maps.PruneLocationChecks(ctx, s.cfg.LocationCheckRetention)
	if err != nil {
		log.WithError(err).Error("Location check pruning failed")
		return
	}
	log.WithField("deleted", deleted).Debug("Location check pruning finished")
}

// cronLogger направляет сообщения cron в logrus
type cronLogger struct {
	logger *logrus.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.WithFields(pairs(keysAndValues)).Debug(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.WithError(err).WithFields(pairs(keysAndValues)).Error(msg)
}

func pairs(keysAndValues []interface{}) logrus.Fields {
	fields := logrus.Fields{"component": "cron"}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			fields[key] = keysAndValues[i+1]
		}
	}
	return fields
}
