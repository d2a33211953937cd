// Package handlers_test provides behavior tests for the API handlers package.
package handlers_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/minidns-io/minidns/internal/api/handlers"
	"github.com/minidns-io/minidns/internal/api/models"
	"github.com/minidns-io/minidns/internal/engine"
	"github.com/minidns-io/minidns/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handlers.New(engine.New(s, logger), logger)

	router := gin.New()
	router.POST("/dns", h.AddRecord)
	router.GET("/dns/:hostname/records", h.ListRecords)
	router.GET("/dns/:hostname", h.ResolveHostname)
	router.DELETE("/dns/:hostname", h.DeleteRecord)
	router.GET("/health", h.Health)
	router.GET("/stats", h.Stats)
	return router
}

func performRequest(r http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func addRecord(t *testing.T, router http.Handler, hostname, recordType, value string) {
	t.Helper()
	body, _ := json.Marshal(models.AddRecordRequest{Hostname: hostname, Type: recordType, Value: value})
	w := performRequest(router, http.MethodPost, "/dns", string(body))
	require.Equal(t, http.StatusCreated, w.Code, "add %s %s -> %s: %s", recordType, hostname, value, w.Body.String())
}

func deletePath(hostname, recordType, value string) string {
	q := url.Values{}
	q.Set("type", recordType)
	q.Set("value", value)
	return "/dns/" + hostname + "?" + q.Encode()
}

// ============================================================================
// AddRecord
// ============================================================================

func TestAddRecord_Created(t *testing.T) {
	router := newTestRouter(t)

	body := `{"hostname": "example.com", "type": "A", "value": "192.0.2.1"}`
	w := performRequest(router, http.MethodPost, "/dns", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.RecordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "example.com", resp.Hostname)
	assert.Equal(t, "A", resp.Type)
	assert.Equal(t, "192.0.2.1", resp.Value)
}

func TestAddRecord_MalformedBody(t *testing.T) {
	router := newTestRouter(t)

	w := performRequest(router, http.MethodPost, "/dns", `{"hostname": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddRecord_InvalidType(t *testing.T) {
	router := newTestRouter(t)

	// An unsupported type on create is a 400, not a 422.
	body := `{"hostname": "example.com", "type": "MX", "value": "mail.example.com"}`
	w := performRequest(router, http.MethodPost, "/dns", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "MX")
}

func TestAddRecord_InvalidHostname(t *testing.T) {
	router := newTestRouter(t)

	body := `{"hostname": "-bad-.example.com", "type": "A", "value": "192.0.2.1"}`
	w := performRequest(router, http.MethodPost, "/dns", body)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAddRecord_InvalidValue(t *testing.T) {
	router := newTestRouter(t)

	body := `{"hostname": "example.com", "type": "A", "value": "999.999.999.999"}`
	w := performRequest(router, http.MethodPost, "/dns", body)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAddRecord_CNAMEConflict(t *testing.T) {
	router := newTestRouter(t)

	addRecord(t, router, "host.example.com", "A", "192.0.2.1")

	body := `{"hostname": "host.example.com", "type": "CNAME", "value": "other.example.com"}`
	w := performRequest(router, http.MethodPost, "/dns", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CNAME cannot coexist with other records", resp.Error)
}

func TestAddRecord_AAfterCNAMEConflict(t *testing.T) {
	router := newTestRouter(t)

	addRecord(t, router, "alias.example.com", "CNAME", "host.example.com")

	body := `{"hostname": "alias.example.com", "type": "A", "value": "192.0.2.1"}`
	w := performRequest(router, http.MethodPost, "/dns", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cannot add A record when CNAME exists", resp.Error)
}

func TestAddRecord_Duplicate(t *testing.T) {
	router := newTestRouter(t)

	addRecord(t, router, "host.example.com", "A", "192.0.2.1")

	body := `{"hostname": "host.example.com", "type": "A", "value": "192.0.2.1"}`
	w := performRequest(router, http.MethodPost, "/dns", body)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// ============================================================================
// ListRecords
// ============================================================================

func TestListRecords_ReturnsAll(t *testing.T) {
	router := newTestRouter(t)

	addRecord(t, router, "host.example.com", "A", "192.0.2.1")
	addRecord(t, router, "host.example.com", "A", "192.0.2.2")

	w := performRequest(router, http.MethodGet, "/dns/host.example.com/records", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp []models.RecordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "192.0.2.1", resp[0].Value)
	assert.Equal(t, "192.0.2.2", resp[1].Value)
}

func TestListRecords_NotFound(t *testing.T) {
	router := newTestRouter(t)

	w := performRequest(router, http.MethodGet, "/dns/missing.example.com/records", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRecords_InvalidHostname(t *testing.T) {
	router := newTestRouter(t)

	w := performRequest(router, http.MethodGet, "/dns/no-tld/records", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// ============================================================================
// ResolveHostname
// ============================================================================

func TestResolveHostname_ChainToA(t *testing.T) {
	router := newTestRouter(t)

	addRecord(t, router, "apex.example.com", "A", "192.0.2.1")
	addRecord(t, router, "mid.example.com", "CNAME", "apex.example.com")
	addRecord(t, router, "leaf.example.com", "CNAME", "mid.example.com")

	w := performRequest(router, http.MethodGet, "/dns/leaf.example.com", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ResolveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "leaf.example.com", resp.Hostname)
	assert.Equal(t, []string{"192.0.2.1"}, resp.Addresses)
}

func TestResolveHostname_Cycle(t *testing.T) {
	router := newTestRouter(t)

	addRecord(t, router, "a.example.com", "CNAME", "b.example.com")
	addRecord(t, router, "b.example.com", "CNAME", "a.example.com")

	w := performRequest(router, http.MethodGet, "/dns/a.example.com", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "circular")
}

func TestResolveHostname_NotFoundNamesChainTarget(t *testing.T) {
	router := newTestRouter(t)

	addRecord(t, router, "alias.example.com", "CNAME", "gone.example.com")

	w := performRequest(router, http.MethodGet, "/dns/alias.example.com", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "gone.example.com")
}

// ============================================================================
// DeleteRecord
// ============================================================================

func TestDeleteRecord_Deleted(t *testing.T) {
	router := newTestRouter(t)

	addRecord(t, router, "host.example.com", "A", "192.0.2.1")

	w := performRequest(router, http.MethodDelete, deletePath("host.example.com", "A", "192.0.2.1"), "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "deleted", resp.Status)

	// Second delete misses.
	w = performRequest(router, http.MethodDelete, deletePath("host.example.com", "A", "192.0.2.1"), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRecord_InvalidTypeIs422(t *testing.T) {
	router := newTestRouter(t)

	// Unlike create, a bad type on delete maps to 422.
	w := performRequest(router, http.MethodDelete, deletePath("host.example.com", "MX", "192.0.2.1"), "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDeleteRecord_InvalidValue(t *testing.T) {
	router := newTestRouter(t)

	w := performRequest(router, http.MethodDelete, deletePath("host.example.com", "A", "not-an-ip"), "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// ============================================================================
// System endpoints
// ============================================================================

func TestHealth_ReturnsOK(t *testing.T) {
	router := newTestRouter(t)

	w := performRequest(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestStats_ReturnsServerStats(t *testing.T) {
	router := newTestRouter(t)

	w := performRequest(router, http.MethodGet, "/stats", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ServerStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.GreaterOrEqual(t, resp.UptimeSeconds, int64(0))
	assert.Positive(t, resp.GoRoutines)
	assert.Positive(t, resp.NumCPU)
}
