package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"slopewatch.io/slopewatch/internal/api/middleware"
	"slopewatch.io/slopewatch/internal/domain"
	apperrors "slopewatch.io/slopewatch/internal/pkg/errors"
	"slopewatch.io/slopewatch/internal/pkg/logger"
)

type sosRequest struct {
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
	Message   string  `json:"message"`
}

// RaiseSOS handles POST /sos. Raising the alert always succeeds once the
// event is accepted; delivery problems surface through logs and the stale
// sweeper, never as a failure of the SOS itself.
func (s *Server) RaiseSOS(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, apiError{Code: apperrors.CodeUnauthorized})
		return
	}

	var req sosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apiError{Code: apperrors.CodeInvalidRequestField})
		return
	}

	sosID := uuid.NewString()
	payload, err := domain.SOSPayload{
		SOSID:      sosID,
		ReporterID: userID,
		Reporter:   middleware.GetUsername(ctx),
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Message:    req.Message,
	}.ToJSON()
	if err != nil {
		logger.Error("failed to encode SOS payload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apiError{Code: apperrors.CodeInternal})
		return
	}

	event := &domain.DomainEvent{
		EventID:   uuid.NewString(),
		EventType: domain.EventSOSRaised,
		Payload:   payload,
		Actor:     userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.events.Dispatch(ctx, event); err != nil {
		// Notification fan-out problems are logged by the triggers; the
		// SOS itself has been raised.
		logger.Warn("SOS dispatched with handler errors",
			zap.String("sos_id", sosID),
			zap.Error(err),
		)
	}

	c.JSON(http.StatusAccepted, gin.H{"sos_id": sosID})
}
