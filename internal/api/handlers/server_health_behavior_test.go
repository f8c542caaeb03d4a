package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"slopewatch.io/slopewatch/internal/realtime"
	"slopewatch.io/slopewatch/internal/testutil"
)

func TestGetReadiness_ReportsDatabaseAndPresence(t *testing.T) {
	gin.SetMode(gin.TestMode)

	pool := testutil.OpenPGXPool(t, "health_ready")
	server := NewServer(ServerDeps{
		Pool:     pool,
		Registry: realtime.NewRegistry(),
	})

	router := gin.New()
	router.GET("/health/ready", server.GetReadiness)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	var body struct {
		Status        string            `json:"status"`
		Checks        map[string]string `json:"checks"`
		OnlineClients int               `json:"online_clients"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "ok" {
		t.Fatalf("status = %q, want ok", body.Status)
	}
	if body.Checks["database"] != "ok" {
		t.Fatalf("database check = %q, want ok", body.Checks["database"])
	}
	if body.OnlineClients != 0 {
		t.Fatalf("online_clients = %d, want 0", body.OnlineClients)
	}
}

func TestGetLiveness_AlwaysOK(t *testing.T) {
	gin.SetMode(gin.TestMode)

	server := NewServer(ServerDeps{})
	router := gin.New()
	router.GET("/health/live", server.GetLiveness)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
