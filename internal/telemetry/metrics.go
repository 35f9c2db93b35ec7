package telemetry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "glslang"

// Metrics records compile activity. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	compiles        *prometheus.CounterVec
	compileDuration *prometheus.HistogramVec
	spirvWords      *prometheus.HistogramVec
	errorsByKind    *prometheus.CounterVec
}

// NewMetrics creates the collectors in a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		compiles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "compiles_total",
				Help:      "Shader compilations by stage and outcome",
			},
			[]string{"stage", "status"},
		),
		compileDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "compile_duration_seconds",
				Help:      "Time from source to SPIR-V",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"stage"},
		),
		spirvWords: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "spirv_words",
				Help:      "Size of generated modules in 32-bit words",
				Buckets:   prometheus.ExponentialBuckets(64, 2, 12),
			},
			[]string{"stage"},
		),
		errorsByKind: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Compile failures by error kind",
			},
			[]string{"kind"},
		),
	}
	m.registry.MustRegister(m.compiles, m.compileDuration, m.spirvWords, m.errorsByKind)
	return m
}

// RecordCompile records one successful compilation.
func (m *Metrics) RecordCompile(stage string, duration time.Duration, words int) {
	if m == nil {
		return
	}
	m.compiles.WithLabelValues(stage, "ok").Inc()
	m.compileDuration.WithLabelValues(stage).Observe(duration.Seconds())
	m.spirvWords.WithLabelValues(stage).Observe(float64(words))
}

// RecordFailure records one failed compilation.
func (m *Metrics) RecordFailure(stage, kind string, duration time.Duration) {
	if m == nil {
		return
	}
	m.compiles.WithLabelValues(stage, "error").Inc()
	m.compileDuration.WithLabelValues(stage).Observe(duration.Seconds())
	m.errorsByKind.WithLabelValues(kind).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Serve exposes /metrics on addr until ctx is canceled.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
