package modules

import (
	"context"

	"github.com/riverqueue/river"

	"slopewatch.io/slopewatch/internal/api/handlers"
	"slopewatch.io/slopewatch/internal/api/middleware"
	"slopewatch.io/slopewatch/internal/domain"
	"slopewatch.io/slopewatch/internal/jobs"
	"slopewatch.io/slopewatch/internal/notification"
	"slopewatch.io/slopewatch/internal/realtime"
)

// DeliveryModule wires the notification delivery chain: store, router,
// presence registry, reconnect flusher, WebSocket gateway, and the domain
// event triggers that feed it.
type DeliveryModule struct {
	infra *Infrastructure

	Store    notification.Store
	Registry *realtime.Registry
	Router   *notification.Router
	Flusher  *notification.Flusher
	Gateway  *realtime.Gateway
	Triggers *notification.Triggers
}

// NewDeliveryModule builds the delivery chain and registers domain event
// handlers on the dispatcher.
func NewDeliveryModule(infra *Infrastructure, events *domain.EventDispatcher) *DeliveryModule {
	cfg := infra.Config

	registry := realtime.NewRegistry()
	store := notification.NewEntStore(infra.EntClient)
	router := notification.NewRouter(store, registry, infra.Pools)
	flusher := notification.NewFlusher(store, registry)

	triggers := notification.NewTriggers(router, infra.EntClient)
	triggers.RegisterHandlers(events)

	signingKey := []byte(cfg.Security.JWTSigningKey)
	validate := func(token string) (string, error) {
		claims, err := middleware.ParseToken(signingKey, token)
		if err != nil {
			return "", err
		}
		return claims.UserID, nil
	}

	gateway := realtime.NewGateway(
		registry,
		flusher,
		infra.Pools,
		validate,
		cfg.Delivery,
		cfg.Server.AllowedOrigins,
	)

	return &DeliveryModule{
		infra:    infra,
		Store:    store,
		Registry: registry,
		Router:   router,
		Flusher:  flusher,
		Gateway:  gateway,
		Triggers: triggers,
	}
}

// Name implements Module.
func (m *DeliveryModule) Name() string { return "delivery" }

// ContributeServerDeps implements ServerDepsContributor.
func (m *DeliveryModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	deps.Store = m.Store
	deps.Registry = m.Registry
}

// RegisterWorkers implements Module.
func (m *DeliveryModule) RegisterWorkers(workers *river.Workers) {
	cfg := m.infra.Config.Delivery

	river.AddWorker(workers, jobs.NewStaleSweepWorker(m.Store, cfg.StaleAfter))

	// Registered even when retention is zero so cleanup jobs left over
	// from an earlier configuration still resolve; the worker deletes
	// nothing while retention is disabled and the periodic schedule
	// skips it.
	river.AddWorker(workers, jobs.NewNotificationCleanupWorker(m.Store, cfg.Retention))
}

// Shutdown implements Module. Open sockets are closed so clients reconnect
// to another instance.
func (m *DeliveryModule) Shutdown(ctx context.Context) error {
	m.Registry.CloseAll()
	return nil
}
