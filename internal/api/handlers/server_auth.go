package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	entuser "slopewatch.io/slopewatch/ent/user"
	"slopewatch.io/slopewatch/internal/api/middleware"
	apperrors "slopewatch.io/slopewatch/internal/pkg/errors"
	"slopewatch.io/slopewatch/internal/pkg/logger"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login handles POST /auth/login.
func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apiError{Code: apperrors.CodeInvalidRequestField})
		return
	}

	user, err := s.client.User.Query().
		Where(entuser.UsernameEQ(req.Username)).
		Where(entuser.ActiveEQ(true)).
		Only(c.Request.Context())
	if err != nil {
		logger.Warn("login failed: invalid credentials")
		c.JSON(http.StatusUnauthorized, apiError{Code: apperrors.CodeAuthFailed})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("login failed: invalid credentials")
		c.JSON(http.StatusUnauthorized, apiError{Code: apperrors.CodeAuthFailed})
		return
	}

	token, expiresAt, err := middleware.GenerateToken(s.jwtCfg, user.ID, user.Username, user.Role.String())
	if err != nil {
		logger.Error("failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apiError{Code: apperrors.CodeInternal})
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// GetCurrentUser handles GET /auth/me.
func (s *Server) GetCurrentUser(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())
	if userID == "" {
		c.JSON(http.StatusUnauthorized, apiError{Code: apperrors.CodeUnauthorized})
		return
	}

	user, err := s.client.User.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, apiError{Code: apperrors.CodeUserNotFound})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           user.ID,
		"username":     user.Username,
		"display_name": user.DisplayName,
		"role":         user.Role.String(),
		"online":       s.registry.IsOnline(user.ID),
	})
}
