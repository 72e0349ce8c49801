// Package metrics exposes Prometheus metrics for sessions, Basic
// authentication and HTTP traffic.
//
// A Collector is passed to session.WithRecorder and basicauth.WithRecorder;
// its Middleware instruments a chi router and Handler serves /metrics.
package metrics
