// Package metrics exposes Prometheus collectors for the multiplication
// dispatch and polynomial operations, plus runtime memory snapshots used by
// the CLI details report.
package metrics
