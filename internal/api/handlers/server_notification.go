package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slopewatch.io/slopewatch/internal/api/middleware"
	"slopewatch.io/slopewatch/internal/notification"
	apperrors "slopewatch.io/slopewatch/internal/pkg/errors"
	"slopewatch.io/slopewatch/internal/pkg/logger"
)

// ListNotifications handles GET /notifications.
func (s *Server) ListNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, apiError{Code: apperrors.CodeUnauthorized})
		return
	}

	opts := notification.ListOptions{
		UnreadOnly: c.Query("unread_only") == "true",
		Page:       queryInt(c, "page", 1),
		PerPage:    queryInt(c, "per_page", 20),
	}

	items, total, err := s.store.ListForUser(ctx, userID, opts)
	if err != nil {
		logger.Error("failed to list notifications", zap.Error(err), zap.Int("page", opts.Page))
		c.JSON(http.StatusInternalServerError, apiError{Code: apperrors.CodeInternal})
		return
	}

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PerPage < 1 || opts.PerPage > 100 {
		opts.PerPage = 20
	}
	totalPages := (total + opts.PerPage - 1) / opts.PerPage

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"pagination": gin.H{
			"page":        opts.Page,
			"per_page":    opts.PerPage,
			"total":       total,
			"total_pages": totalPages,
		},
	})
}

// GetUnreadCount handles GET /notifications/unread-count.
func (s *Server) GetUnreadCount(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, apiError{Code: apperrors.CodeUnauthorized})
		return
	}

	count, err := s.store.UnreadCount(ctx, userID)
	if err != nil {
		logger.Error("failed to count unread notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apiError{Code: apperrors.CodeInternal})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkNotificationRead handles POST /notifications/:id/read.
func (s *Server) MarkNotificationRead(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, apiError{Code: apperrors.CodeUnauthorized})
		return
	}

	notificationID := c.Param("id")
	if err := s.store.MarkRead(ctx, userID, notificationID); err != nil {
		if appErr, ok := apperrors.IsAppError(err); ok && appErr.Code == apperrors.CodeNotificationNotFound {
			c.JSON(http.StatusNotFound, apiError{Code: appErr.Code})
			return
		}
		logger.Error("failed to mark notification read",
			zap.String("notification_id", notificationID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, apiError{Code: apperrors.CodeInternal})
		return
	}

	c.Status(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /notifications/read-all.
func (s *Server) MarkAllNotificationsRead(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, apiError{Code: apperrors.CodeUnauthorized})
		return
	}

	updated, err := s.store.MarkAllRead(ctx, userID)
	if err != nil {
		logger.Error("failed to mark all notifications read", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apiError{Code: apperrors.CodeInternal})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
