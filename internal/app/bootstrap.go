// Package app is the composition root. Bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"slopewatch.io/slopewatch/internal/api/handlers"
	"slopewatch.io/slopewatch/internal/app/modules"
	"slopewatch.io/slopewatch/internal/config"
	"slopewatch.io/slopewatch/internal/domain"
	"slopewatch.io/slopewatch/internal/infrastructure"
	"slopewatch.io/slopewatch/internal/jobs"
	"slopewatch.io/slopewatch/internal/pkg/worker"
)

// Application holds composed application dependencies.
type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *infrastructure.DatabaseClients
	Pools   *worker.Pools
	Modules []modules.Module
}

// Bootstrap initializes all dependencies using module-oriented manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	infra, err := modules.NewInfrastructure(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init infrastructure: %w", err)
	}

	events := domain.NewEventDispatcher()
	delivery := modules.NewDeliveryModule(infra, events)
	allModules := []modules.Module{delivery}

	workers := river.NewWorkers()
	for _, mod := range allModules {
		mod.RegisterWorkers(workers)
	}
	if err := infra.InitRiver(workers); err != nil {
		infra.Close()
		return nil, fmt.Errorf("init river workers: %w", err)
	}

	if infra.RiverClient != nil {
		for _, job := range periodicJobs(cfg) {
			infra.RiverClient.PeriodicJobs().Add(job)
		}
	}

	serverDeps := modules.NewServerDeps(cfg, infra, events, allModules)
	server := handlers.NewServer(serverDeps)

	return &Application{
		Config:  cfg,
		Router:  newRouter(cfg, server, delivery.Gateway, serverDeps.JWTCfg),
		DB:      infra.DB,
		Pools:   infra.Pools,
		Modules: allModules,
	}, nil
}

// periodicJobs builds the maintenance schedule from the delivery settings.
func periodicJobs(cfg *config.Config) []*river.PeriodicJob {
	// Stale-queue sweep: surface notifications stuck in the delivery
	// queue. RunOnStart so a restart does not delay escalation.
	schedule := []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(cfg.Delivery.SweepInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.StaleSweepArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}

	// Notification retention cleanup runs daily and once on startup to
	// avoid long-lived inbox bloat. Zero retention keeps rows forever,
	// so the job is not scheduled at all.
	if cfg.Delivery.Retention > 0 {
		schedule = append(schedule, river.NewPeriodicJob(
			river.PeriodicInterval(24*time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.NotificationCleanupArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		))
	}
	return schedule
}
