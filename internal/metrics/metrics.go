package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Recorder keeps the service counters in its own registry.
type Recorder struct {
	registry     *prometheus.Registry
	predictions  *prometheus.CounterVec
	evaluations  *prometheus.CounterVec
	lastAccuracy prometheus.Gauge
}

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "plinko_predictions_total",
			Help: "Total box predictions served",
		}, []string{"status"}),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "plinko_evaluations_total",
			Help: "Total accuracy evaluations run",
		}, []string{"status"}),
		lastAccuracy: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "plinko_last_accuracy",
			Help: "Accuracy of the last successful evaluation (0.0-1.0)",
		}),
	}
	r.registry.MustRegister(
		r.predictions,
		r.evaluations,
		r.lastAccuracy,
		collectors.NewGoCollector(),
	)
	return r
}

func (r *Recorder) ObservePredictions(status string, n int) {
	r.predictions.WithLabelValues(status).Add(float64(n))
}

func (r *Recorder) ObserveEvaluation(status string, accuracy float64) {
	r.evaluations.WithLabelValues(status).Inc()
	if status == StatusOK {
		r.lastAccuracy.Set(accuracy)
	}
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
