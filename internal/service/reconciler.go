package service

import (
	"fmt"

	"whatsapp-crm-backend/internal/logger"
	"whatsapp-crm-backend/internal/metrics"
	"whatsapp-crm-backend/internal/repository"

	"github.com/robfig/cron/v3"
)

// ReconcilerService periodically re-derives the monthly allocation counters
// from the assignment records, repairing any drift the incremental updates
// may have accumulated.
type ReconcilerService struct {
	counterRepo repository.CounterRepositoryInterface
	schedule    string
	log         *logger.Logger
	cron        *cron.Cron
}

// NewReconcilerService creates a new reconciler with a cron schedule
func NewReconcilerService(counterRepo repository.CounterRepositoryInterface, schedule string, log *logger.Logger) *ReconcilerService {
	return &ReconcilerService{
		counterRepo: counterRepo,
		schedule:    schedule,
		log:         log,
	}
}

// Start registers the reconciliation job and starts the scheduler
func (s *ReconcilerService) Start() error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.Run(); err != nil {
			s.log.WithError(err).Error("Counter reconciliation failed")
		}
	}); err != nil {
		return fmt.Errorf("invalid reconcile schedule %q: %w", s.schedule, err)
	}
	s.cron.Start()
	s.log.WithField("schedule", s.schedule).Info("Counter reconciler started")
	return nil
}

// Stop stops the scheduler, waiting for a running job to finish
func (s *ReconcilerService) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// Run performs one reconciliation pass
func (s *ReconcilerService) Run() error {
	repaired, err := s.counterRepo.Reconcile()
	if err != nil {
		return fmt.Errorf("failed to reconcile counters: %w", err)
	}
	if repaired > 0 {
		metrics.CounterDriftTotal.Add(float64(repaired))
	}
	s.log.WithField("repaired", repaired).Info("Monthly allocation counters reconciled")
	return nil
}
