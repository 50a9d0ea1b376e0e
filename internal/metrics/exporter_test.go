package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/apiarycd/gg/internal/report"
	"github.com/apiarycd/gg/internal/status"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap/zaptest"
)

func sampleReport() report.Report {
	return report.Report{
		Buckets: map[status.GitStatus][]string{
			status.Modified: {"/r/a", "/r/b"},
			status.Staged:   {"/r/c"},
		},
		Clean:  4,
		Failed: []string{"/r/d"},
	}
}

func TestExporter_Observe(t *testing.T) {
	exporter := NewExporter(Config{}, zaptest.NewLogger(t))
	if exporter.Enabled() {
		t.Error("Expected exporter without textfile to be disabled")
	}

	exporter.Observe(sampleReport(), time.Unix(1700000000, 0))

	tests := map[string]float64{
		"no_changes":       4,
		"modified":         2,
		"staged":           1,
		"unpushed_commits": 0,
	}
	for label, expected := range tests {
		if got := testutil.ToFloat64(exporter.repositories.WithLabelValues(label)); got != expected {
			t.Errorf("%s: expected %v, got %v", label, expected, got)
		}
	}

	if got := testutil.ToFloat64(exporter.failures); got != 1 {
		t.Errorf("Expected 1 failure, got %v", got)
	}
	if got := testutil.ToFloat64(exporter.lastScan); got != 1700000000 {
		t.Errorf("Expected timestamp 1700000000, got %v", got)
	}
}

func TestExporter_Export(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gg.prom")
	exporter := NewExporter(Config{Textfile: path}, zaptest.NewLogger(t))

	if !exporter.Enabled() {
		t.Fatal("Expected exporter to be enabled")
	}

	if err := exporter.Export(sampleReport(), time.Now()); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	for _, line := range []string{
		`gg_repositories{status="modified"} 2`,
		`gg_repositories{status="no_changes"} 4`,
		`gg_repository_check_failures 1`,
	} {
		if !strings.Contains(string(data), line) {
			t.Errorf("Expected textfile to contain %q, got:\n%s", line, data)
		}
	}
}
