package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"backma/pkg/controller"
	"backma/pkg/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_LabelsByRouteTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewHTTP(reg)
	require.NoError(t, err)

	r := mux.NewRouter()
	r.Use(controller.WithMetrics(m))
	r.HandleFunc("/v1/purchases/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/purchases/"+id, nil))
		require.Equal(t, http.StatusAccepted, rec.Code)
	}

	families, err := reg.Gather()
	require.NoError(t, err)

	var count float64
	for _, f := range families {
		if f.GetName() != "backma_http_requests_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			labels := map[string]string{}
			for _, l := range metric.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["route"] == "/v1/purchases/{id}" && labels["status"] == "202" {
				count = metric.GetCounter().GetValue()
			}
		}
	}
	require.InDelta(t, 2, count, 0)
}
