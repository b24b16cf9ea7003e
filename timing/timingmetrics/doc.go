// Package timingmetrics exposes accumulated stopwatch timings to Prometheus.
package timingmetrics
