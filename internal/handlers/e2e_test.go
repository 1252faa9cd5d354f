package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/SscSPs/bookkeeping_app/internal/core/services"
	"github.com/SscSPs/bookkeeping_app/internal/repositories/filestore"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileBackedRouter(t *testing.T, dir string) *gin.Engine {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	persister, err := filestore.NewPersister(dir, logger)
	require.NoError(t, err)
	store, err := filestore.New(context.Background(), persister, filestore.SeedAdmin{Username: "admin", Password: "admin123"}, logger)
	require.NoError(t, err)

	cal := domain.NewCalendar(time.UTC).WithClock(func() time.Time {
		return time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)
	})
	cfg := testConfig(false)
	return newRouter(cfg, services.NewServiceContainer(cfg, store.Repositories(), cal))
}

func call(t *testing.T, r *gin.Engine, method, path, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func TestBookkeepingFlow(t *testing.T) {
	dir := t.TempDir()
	r := newFileBackedRouter(t, dir)

	code, body := call(t, r, http.MethodPost, "/api/login", `{"username":"admin","password":"admin123"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])

	code, _ = call(t, r, http.MethodPost, "/api/login", `{"username":"admin","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body = call(t, r, http.MethodPost, "/api/sales", `{"customer":"Ravi","total":1000,"sale_date":"2024-07-15"}`)
	require.Equal(t, http.StatusCreated, code)
	saleID := body["id"].(float64)
	assert.Equal(t, float64(2), saleID, "the seeded admin holds id 1")

	code, _ = call(t, r, http.MethodPost, "/api/sales", `{"customer":"Meera","total":500,"sale_date":"2024-06-30T20:00:00Z"}`)
	require.Equal(t, http.StatusCreated, code)

	code, body = call(t, r, http.MethodPost, "/api/purchases", `{"supplier":"Wholesale Co","total":300,"purchase_date":"2024-07-15"}`)
	require.Equal(t, http.StatusCreated, code)
	purchaseID := body["id"].(float64)
	assert.Equal(t, float64(4), purchaseID)

	code, body = call(t, r, http.MethodGet, "/api/dashboard", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1500), body["totalSales"])
	assert.Equal(t, float64(300), body["totalPurchases"])
	assert.Equal(t, float64(1000), body["todaySales"])
	assert.Equal(t, float64(300), body["todayPurchases"])
	assert.Equal(t, float64(1200), body["netProfit"])

	code, _ = call(t, r, http.MethodPut, "/api/sales/2", `{"notes":"paid in cash"}`)
	assert.Equal(t, http.StatusOK, code)
	code, body = call(t, r, http.MethodGet, "/api/sales/2", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "paid in cash", body["notes"])
	assert.Equal(t, "Ravi", body["customer"])
	assert.NotNil(t, body["updated_at"])

	code, _ = call(t, r, http.MethodDelete, "/api/purchases/4", "")
	assert.Equal(t, http.StatusOK, code)
	code, _ = call(t, r, http.MethodDelete, "/api/purchases/4", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, body = call(t, r, http.MethodPost, "/api/purchases", `{"supplier":"Wholesale Co","total":120,"purchase_date":"2024-07-01"}`)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, float64(5), body["id"], "deleted ids are not reused")

	// A fresh process over the same directory sees the same records.
	restarted := newFileBackedRouter(t, dir)
	code, body = call(t, restarted, http.MethodGet, "/api/reports?month=7&year=2024", "")
	require.Equal(t, http.StatusOK, code)
	summary := body["summary"].(map[string]any)
	assert.Equal(t, float64(1000), summary["totalSales"], "the June 30 UTC sale falls in June")
	assert.Equal(t, float64(120), summary["totalPurchases"])
	assert.Equal(t, float64(880), summary["netProfit"])

	code, body = call(t, restarted, http.MethodPost, "/api/sales", `{"customer":"Anil","total":10,"sale_date":"2024-07-16"}`)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, float64(6), body["id"])
}
