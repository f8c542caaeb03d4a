package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slopewatch.io/slopewatch/internal/api/middleware"
	"slopewatch.io/slopewatch/internal/domain"
	"slopewatch.io/slopewatch/internal/notification"
	apperrors "slopewatch.io/slopewatch/internal/pkg/errors"
	"slopewatch.io/slopewatch/internal/realtime"
)

type handlerFakeStore struct {
	notification.Store

	listPayloads []notification.Payload
	listTotal    int
	listErr      error
	listOpts     notification.ListOptions

	unread    int
	unreadErr error

	markReadErr error
	markedRead  []string

	markedAll    int
	markedAllErr error
}

func (s *handlerFakeStore) ListForUser(ctx context.Context, userID string, opts notification.ListOptions) ([]notification.Payload, int, error) {
	s.listOpts = opts
	return s.listPayloads, s.listTotal, s.listErr
}

func (s *handlerFakeStore) UnreadCount(ctx context.Context, userID string) (int, error) {
	return s.unread, s.unreadErr
}

func (s *handlerFakeStore) MarkRead(ctx context.Context, userID, notificationID string) error {
	if s.markReadErr != nil {
		return s.markReadErr
	}
	s.markedRead = append(s.markedRead, notificationID)
	return nil
}

func (s *handlerFakeStore) MarkAllRead(ctx context.Context, userID string) (int, error) {
	return s.markedAll, s.markedAllErr
}

func authAs(userID, username, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(
			middleware.SetUserContext(c.Request.Context(), userID, username, role),
		)
		c.Next()
	}
}

func newHandlerTestRouter(store notification.Store, events *domain.EventDispatcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	s := NewServer(ServerDeps{
		Store:    store,
		Events:   events,
		Registry: realtime.NewRegistry(),
	})

	r := gin.New()
	authed := r.Group("/", authAs("user-1", "arjun", "resident"))
	authed.GET("/notifications", s.ListNotifications)
	authed.GET("/notifications/unread-count", s.GetUnreadCount)
	authed.POST("/notifications/:id/read", s.MarkNotificationRead)
	authed.POST("/notifications/read-all", s.MarkAllNotificationsRead)
	authed.POST("/sos", s.RaiseSOS)

	anon := r.Group("/anon")
	anon.GET("/notifications", s.ListNotifications)
	return r
}

func TestListNotifications(t *testing.T) {
	store := &handlerFakeStore{
		listPayloads: []notification.Payload{
			{ID: "n-1", UserID: "user-1", Type: "advisory", Title: "Advisory", CreatedAt: time.Now().UTC()},
		},
		listTotal: 41,
	}
	r := newHandlerTestRouter(store, domain.NewEventDispatcher())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications?unread_only=true&page=2&per_page=20", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, store.listOpts.UnreadOnly)
	assert.Equal(t, 2, store.listOpts.Page)
	assert.Contains(t, w.Body.String(), `"total":41`)
	assert.Contains(t, w.Body.String(), `"total_pages":3`)
	assert.Contains(t, w.Body.String(), `"id":"n-1"`)
}

func TestListNotifications_Unauthorized(t *testing.T) {
	r := newHandlerTestRouter(&handlerFakeStore{}, domain.NewEventDispatcher())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/anon/notifications", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUnreadCount(t *testing.T) {
	r := newHandlerTestRouter(&handlerFakeStore{unread: 7}, domain.NewEventDispatcher())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications/unread-count", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":7`)
}

func TestMarkNotificationRead(t *testing.T) {
	store := &handlerFakeStore{}
	r := newHandlerTestRouter(store, domain.NewEventDispatcher())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notifications/n-9/read", nil))

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"n-9"}, store.markedRead)
}

func TestMarkNotificationRead_NotFound(t *testing.T) {
	store := &handlerFakeStore{
		markReadErr: apperrors.NotFound(apperrors.CodeNotificationNotFound, "notification not found"),
	}
	r := newHandlerTestRouter(store, domain.NewEventDispatcher())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notifications/ghost/read", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkAllNotificationsRead(t *testing.T) {
	r := newHandlerTestRouter(&handlerFakeStore{markedAll: 5}, domain.NewEventDispatcher())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notifications/read-all", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"updated":5`)
}

func TestUnreadCount_StoreError(t *testing.T) {
	r := newHandlerTestRouter(&handlerFakeStore{unreadErr: errors.New("db down")}, domain.NewEventDispatcher())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications/unread-count", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
