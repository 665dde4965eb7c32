// Copyright (c) 2026 Our Philly. All rights reserved.

package digest

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the weekly digest on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	service *Service
	logger  *slog.Logger
}

// NewScheduler wires the digest run onto the given cron expression
// (standard five-field syntax, evaluated in the site's timezone).
func NewScheduler(service *Service, schedule string, logger *slog.Logger) (*Scheduler, error) {
	scheduler := &Scheduler{
		cron:    cron.New(cron.WithLocation(service.location)),
		service: service,
		logger:  logger,
	}

	_, err := scheduler.cron.AddFunc(schedule, scheduler.run)
	if err != nil {
		return nil, err
	}
	return scheduler, nil
}

// Start begins the schedule in its own goroutine.
func (scheduler *Scheduler) Start() {
	scheduler.cron.Start()
	scheduler.logger.Info("digest_scheduler_started")
}

// Stop halts the schedule and waits for a running job to finish.
func (scheduler *Scheduler) Stop() {
	stopContext := scheduler.cron.Stop()
	<-stopContext.Done()
	scheduler.logger.Info("digest_scheduler_stopped")
}

func (scheduler *Scheduler) run() {
	if err := scheduler.service.SendWeekly(context.Background()); err != nil {
		scheduler.logger.Error("digest_run_failed", slog.String("error", err.Error()))
	}
}
