package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, m *Metrics, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
	metrics:
		for _, metric := range family.GetMetric() {
			for _, pair := range metric.GetLabel() {
				if labels[pair.GetName()] != pair.GetValue() {
					continue metrics
				}
			}
			return metric.GetCounter().GetValue()
		}
	}
	return 0
}

func TestImportCounters(t *testing.T) {
	m := New()

	m.RowsImported("people", 3)
	m.RowsImported("people", 2)
	m.OrphanFileSkipped("industries")

	assert.Equal(t, 5.0, counterValue(t, m, "companydata_import_rows_total", map[string]string{"entity": "people"}))
	assert.Equal(t, 1.0, counterValue(t, m, "companydata_import_orphan_files_total", map[string]string{"entity": "industries"}))
}

func TestObserveRequestAndScrape(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodGet, "/companies/:duns", http.StatusNotFound, 15*time.Millisecond)

	assert.Equal(t, 1.0, counterValue(t, m, "companydata_http_requests_total", map[string]string{
		"method": "GET",
		"route":  "/companies/:duns",
		"status": "404",
	}))

	e := echo.New()
	e.GET("/metrics", m.Handler())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `companydata_http_request_duration_seconds_count{method="GET",route="/companies/:duns"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
