package handlers

import "slopewatch.io/slopewatch/internal/pkg/logger"

func init() {
	_ = logger.Init("error", "json")
}
