package modules

import (
	"slopewatch.io/slopewatch/internal/api/handlers"
	"slopewatch.io/slopewatch/internal/api/middleware"
	"slopewatch.io/slopewatch/internal/config"
	"slopewatch.io/slopewatch/internal/domain"
)

// NewServerDeps builds base server deps then lets each module contribute explicit wiring.
func NewServerDeps(cfg *config.Config, infra *Infrastructure, events *domain.EventDispatcher, mods []Module) handlers.ServerDeps {
	deps := handlers.ServerDeps{
		EntClient: infra.EntClient,
		Pool:      infra.Pool,
		JWTCfg: middleware.JWTConfig{
			SigningKey: []byte(cfg.Security.JWTSigningKey),
			Issuer:     cfg.Security.JWTIssuer,
			ExpiresIn:  cfg.Security.JWTExpiresIn,
		},
		Events: events,
	}
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		contributor, ok := mod.(ServerDepsContributor)
		if !ok {
			continue
		}
		contributor.ContributeServerDeps(&deps)
	}
	return deps
}
