// Package metrics exports search statistics as Prometheus metrics.
//
// A Recorder registers its collectors on a caller-supplied Registerer, so tests
// and batch runs use an isolated prometheus.Registry. WriteTextfile dumps a
// Gatherer in the text exposition format, for node_exporter's textfile collector
// or for inspection after a one-shot CLI run.
package metrics
