package app

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"slopewatch.io/slopewatch/internal/api/handlers"
	"slopewatch.io/slopewatch/internal/api/middleware"
	"slopewatch.io/slopewatch/internal/config"
	"slopewatch.io/slopewatch/internal/realtime"
)

// Public routes that do NOT require JWT authentication.
// The WebSocket endpoint authenticates through its own identify frame.
var publicPrefixes = []string{
	"/api/v1/auth/login",
	"/api/v1/health/",
	"/api/v1/ws",
}

func newRouter(cfg *config.Config, server *handlers.Server, gateway *realtime.Gateway, jwtCfg middleware.JWTConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))
	router.Use(jwtSkipPublic(jwtCfg.SigningKey))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health/live", server.GetLiveness)
		v1.GET("/health/ready", server.GetReadiness)

		v1.POST("/auth/login", server.Login)
		v1.GET("/auth/me", server.GetCurrentUser)

		v1.GET("/notifications", server.ListNotifications)
		v1.GET("/notifications/unread-count", server.GetUnreadCount)
		v1.POST("/notifications/:id/read", server.MarkNotificationRead)
		v1.POST("/notifications/read-all", server.MarkAllNotificationsRead)

		v1.POST("/sos", server.RaiseSOS)

		v1.GET("/ws", gateway.Handle)
	}
	return router
}

func corsConfig(allowedOrigins []string) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	for _, origin := range allowedOrigins {
		if origin == "*" {
			corsCfg.AllowAllOrigins = true
			corsCfg.AllowOrigins = nil
			return corsCfg
		}
	}
	corsCfg.AllowOrigins = allowedOrigins
	return corsCfg
}

// jwtSkipPublic returns middleware that applies JWT auth only on non-public routes.
func jwtSkipPublic(signingKey []byte) gin.HandlerFunc {
	jwtMw := middleware.JWTAuth(signingKey)
	return func(c *gin.Context) {
		for _, prefix := range publicPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}
		jwtMw(c)
	}
}
