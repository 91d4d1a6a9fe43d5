package services

import (
	"io"
	"log/slog"
	"time"
)

// testLogger returns a logger that discards all output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// noopMetrics is a metrics recorder that ignores every observation.
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(string, map[string]string)     {}
func (noopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}
