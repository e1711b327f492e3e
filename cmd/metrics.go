package cmd

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cadio-project/cadio/task"
)

const metricsShutdownTimeout = 2 * time.Second

// newTaskMetrics registers a fresh task.Metrics against a dedicated
// registry and, if addr is non-empty, serves it over HTTP at /metrics
// until the returned shutdown func is called. An empty addr still
// returns usable metrics, just without an HTTP exporter.
func newTaskMetrics(addr string) (metrics *task.Metrics, shutdown func()) {
	reg := prometheus.NewRegistry()
	metrics = task.NewMetrics(reg)

	if addr == "" {
		return metrics, func() {}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("metrics server on %s stopped: %v", addr, err)
		}
	}()

	return metrics, func() {
		ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		_ = server.Shutdown(ctx)
	}
}
