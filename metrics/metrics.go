/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package metrics exposes Prometheus instrumentation for datastores.
package metrics

import (
	"context"
	goerrors "errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/suparena/secschema/datastore"
	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/storagemodels"
)

// Result label values.
const (
	ResultOK              = "ok"
	ResultNotFound        = "not_found"
	ResultConditionFailed = "condition_failed"
	ResultError           = "error"
)

// Metrics holds the datastore collectors.
type Metrics struct {
	Operations *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg. A nil reg leaves
// them unregistered. Collectors already registered under the same names are
// reused, so several backings can share one registry.
func New(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	ops, err := register(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "datastore_operations_total",
			Help:      "Datastore operations by kind, operation and result",
		},
		[]string{"kind", "op", "result"},
	))
	if err != nil {
		return nil, err
	}
	duration, err := register(reg, prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "datastore_operation_duration_seconds",
			Help:      "Duration of datastore operations",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"kind", "op"},
	))
	if err != nil {
		return nil, err
	}
	return &Metrics{Operations: ops, Duration: duration}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if reg == nil {
		return c, nil
	}
	if err := reg.Register(c); err != nil {
		var dup prometheus.AlreadyRegisteredError
		if goerrors.As(err, &dup) {
			if existing, ok := dup.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("failed to register datastore metrics: %w", err)
	}
	return c, nil
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.IsNotFound(err):
		return ResultNotFound
	case errors.IsConditionFailed(err):
		return ResultConditionFailed
	}
	return ResultError
}

func (m *Metrics) observe(kind, op string, start time.Time, err error) {
	m.Operations.WithLabelValues(kind, op, resultOf(err)).Inc()
	m.Duration.WithLabelValues(kind, op).Observe(time.Since(start).Seconds())
}

// Instrument wraps ds so every call is counted and timed under kind.
func Instrument[T datastore.Entity[T]](ds datastore.DataStore[T], kind string, m *Metrics) datastore.DataStore[T] {
	return &instrumented[T]{next: ds, kind: kind, m: m}
}

type instrumented[T datastore.Entity[T]] struct {
	next datastore.DataStore[T]
	kind string
	m    *Metrics
}

func (i *instrumented[T]) GetOne(ctx context.Context, key string) (T, error) {
	start := time.Now()
	rec, err := i.next.GetOne(ctx, key)
	i.m.observe(i.kind, "get", start, err)
	return rec, err
}

func (i *instrumented[T]) Put(ctx context.Context, entity T) error {
	start := time.Now()
	err := i.next.Put(ctx, entity)
	i.m.observe(i.kind, "put", start, err)
	return err
}

func (i *instrumented[T]) QueryIndex(ctx context.Context, index, value string) ([]T, error) {
	start := time.Now()
	recs, err := i.next.QueryIndex(ctx, index, value)
	i.m.observe(i.kind, "query", start, err)
	return recs, err
}

// Stream is counted once when it starts; streamed items are not timed.
func (i *instrumented[T]) Stream(ctx context.Context, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T] {
	i.m.Operations.WithLabelValues(i.kind, "stream", ResultOK).Inc()
	return i.next.Stream(ctx, opts...)
}

func (i *instrumented[T]) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := i.next.Delete(ctx, key)
	i.m.observe(i.kind, "delete", start, err)
	return err
}
