// Package handlers implements the HTTP API.
//
// Handlers do not register their own routes; registration happens in
// internal/app/router.go.
package handlers

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"slopewatch.io/slopewatch/ent"
	"slopewatch.io/slopewatch/internal/api/middleware"
	"slopewatch.io/slopewatch/internal/domain"
	"slopewatch.io/slopewatch/internal/notification"
	"slopewatch.io/slopewatch/internal/realtime"
)

// Server implements all API handlers.
type Server struct {
	client   *ent.Client
	pool     *pgxpool.Pool
	jwtCfg   middleware.JWTConfig
	store    notification.Store
	events   *domain.EventDispatcher
	registry *realtime.Registry
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	EntClient *ent.Client
	Pool      *pgxpool.Pool
	JWTCfg    middleware.JWTConfig
	Store     notification.Store
	Events    *domain.EventDispatcher
	Registry  *realtime.Registry
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:   deps.EntClient,
		pool:     deps.Pool,
		jwtCfg:   deps.JWTCfg,
		store:    deps.Store,
		events:   deps.Events,
		registry: deps.Registry,
	}
}

// apiError is the JSON error envelope all handlers return.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}
