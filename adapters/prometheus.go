// File: adapters/prometheus.go
// Author: ain1084
// License: MIT
// Description:
//   Prometheus collector sampling every ring buffer registered in a
//   control.Registry at scrape time. Collection reads the lock-free
//   counters only; it never touches the data path.

// Package adapters provides glue code between the ring buffer control
// plane and external observability systems.
package adapters

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ain1084/direct-ring-buffer/control"
)

// Ensure compile-time interface compliance.
var _ prometheus.Collector = (*RingCollector)(nil)

// RingCollector exposes per-ring gauges and counters labeled by the
// registered ring name.
type RingCollector struct {
	registry *control.Registry

	capacity *prometheus.Desc
	buffered *prometheus.Desc
	free     *prometheus.Desc
	written  *prometheus.Desc
	read     *prometheus.Desc
}

// NewRingCollector creates a collector over registry. namespace
// prefixes every metric name.
func NewRingCollector(registry *control.Registry, namespace string) *RingCollector {
	labels := []string{"ring"}
	return &RingCollector{
		registry: registry,
		capacity: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "ring", "capacity_elements"),
			"Configured slot capacity of the ring buffer.",
			labels, nil,
		),
		buffered: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "ring", "buffered_elements"),
			"Elements currently buffered between producer and consumer.",
			labels, nil,
		),
		free: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "ring", "free_elements"),
			"Free slots currently available to the producer.",
			labels, nil,
		),
		written: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "ring", "written_elements_total"),
			"Total elements written since creation.",
			labels, nil,
		),
		read: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "ring", "read_elements_total"),
			"Total elements read since creation.",
			labels, nil,
		),
	}
}

// MustRegister creates a collector over registry and registers it with
// prom, panicking on metric name collisions.
func MustRegister(registry *control.Registry, prom prometheus.Registerer, namespace string) *RingCollector {
	c := NewRingCollector(registry, namespace)
	prom.MustRegister(c)
	return c
}

// Describe implements prometheus.Collector.
func (c *RingCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.capacity
	ch <- c.buffered
	ch <- c.free
	ch <- c.written
	ch <- c.read
}

// Collect implements prometheus.Collector.
func (c *RingCollector) Collect(ch chan<- prometheus.Metric) {
	for name, stats := range c.registry.Snapshot() {
		ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(stats.Capacity), name)
		ch <- prometheus.MustNewConstMetric(c.buffered, prometheus.GaugeValue, float64(stats.Buffered), name)
		ch <- prometheus.MustNewConstMetric(c.free, prometheus.GaugeValue, float64(stats.Free), name)
		ch <- prometheus.MustNewConstMetric(c.written, prometheus.CounterValue, float64(stats.Written), name)
		ch <- prometheus.MustNewConstMetric(c.read, prometheus.CounterValue, float64(stats.Read), name)
	}
}
