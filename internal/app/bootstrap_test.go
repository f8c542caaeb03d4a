package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slopewatch.io/slopewatch/internal/config"
	"slopewatch.io/slopewatch/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestBootstrap_NoDB(t *testing.T) {
	// Bootstrap without a real database should fail at DB connection.
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Host:     "localhost",
			Port:     65432, // Non-existent port
			User:     "test",
			Password: "test",
			Database: "test",
			SSLMode:  "disable",
			MaxConns: 5,
			MinConns: 1,
		},
		Worker: config.WorkerConfig{
			GeneralPoolSize: 10,
			PushPoolSize:    5,
		},
	}

	ctx := context.Background()
	app, err := Bootstrap(ctx, cfg)
	require.Error(t, err, "Bootstrap should fail without database")
	assert.Nil(t, app, "Application should be nil on bootstrap failure")
}

func TestPeriodicJobs_RetentionGatesCleanup(t *testing.T) {
	cfg := &config.Config{
		Delivery: config.DeliveryConfig{
			SweepInterval: time.Minute,
			Retention:     90 * 24 * time.Hour,
		},
	}
	assert.Len(t, periodicJobs(cfg), 2, "sweep and cleanup scheduled with retention set")

	cfg.Delivery.Retention = 0
	assert.Len(t, periodicJobs(cfg), 1, "zero retention must not schedule cleanup")
}

func TestApplication_Shutdown_Nil(t *testing.T) {
	// Shutdown on empty application should not panic.
	app := &Application{}

	assert.NotPanics(t, func() {
		app.Shutdown()
	}, "Shutdown on empty Application should not panic")
}
