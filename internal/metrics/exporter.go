package metrics

import (
	"fmt"
	"time"

	"github.com/apiarycd/gg/internal/report"
	"github.com/apiarycd/gg/internal/status"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const namespace = "gg"

// Exporter writes scan results in the Prometheus text format for the
// node_exporter textfile collector.
type Exporter struct {
	path string

	registry     *prometheus.Registry
	repositories *prometheus.GaugeVec
	failures     prometheus.Gauge
	lastScan     prometheus.Gauge

	logger *zap.Logger
}

func NewExporter(cfg Config, logger *zap.Logger) *Exporter {
	e := &Exporter{
		path:     cfg.Textfile,
		registry: prometheus.NewRegistry(),
		repositories: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "repositories",
			Help:      "Repositories found by the last scan, by status.",
		}, []string{"status"}),
		failures: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "repository_check_failures",
			Help:      "Repositories whose status could not be checked by the last scan.",
		}),
		lastScan: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_scan_timestamp_seconds",
			Help:      "Unix time the last scan finished.",
		}),
		logger: logger,
	}

	e.registry.MustRegister(e.repositories, e.failures, e.lastScan)

	return e
}

// Enabled reports whether a textfile path is configured.
func (e *Exporter) Enabled() bool {
	return e.path != ""
}

// Observe records r as the latest scan.
func (e *Exporter) Observe(r report.Report, finishedAt time.Time) {
	e.repositories.WithLabelValues(status.NoChanges.String()).Set(float64(r.Clean))
	for _, verdict := range report.Order {
		e.repositories.WithLabelValues(verdict.String()).Set(float64(len(r.Buckets[verdict])))
	}

	e.failures.Set(float64(len(r.Failed)))
	e.lastScan.Set(float64(finishedAt.Unix()))
}

// Export observes r and writes the textfile.
func (e *Exporter) Export(r report.Report, finishedAt time.Time) error {
	e.Observe(r, finishedAt)

	if err := prometheus.WriteToTextfile(e.path, e.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}

	e.logger.Debug("metrics textfile written", zap.String("path", e.path))

	return nil
}
