/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secschema

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/suparena/secschema/config"
	"github.com/suparena/secschema/datastore"
	"github.com/suparena/secschema/datastore/ddb"
	"github.com/suparena/secschema/datastore/mock"
	"github.com/suparena/secschema/datastore/rediskv"
	"github.com/suparena/secschema/metrics"
	"github.com/suparena/secschema/secmodels"
)

// Option configures Open.
type Option func(*opener)

type opener struct {
	logger     *zap.Logger
	registerer prometheus.Registerer
	dynamo     ddb.API
	redis      rediskv.Client

	cfg     *config.Config
	metrics *metrics.Metrics
}

// WithLogger sets the logger handed to the backing and its datastores.
func WithLogger(l *zap.Logger) Option {
	return func(o *opener) {
		o.logger = l
	}
}

// WithRegisterer sets where datastore metrics are registered when metrics
// are enabled. The default is prometheus.DefaultRegisterer.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *opener) {
		o.registerer = reg
	}
}

// WithDynamoDBClient uses api instead of building a client from the config.
func WithDynamoDBClient(api ddb.API) Option {
	return func(o *opener) {
		o.dynamo = api
	}
}

// WithRedisClient uses c instead of connecting with the config.
func WithRedisClient(c rediskv.Client) Option {
	return func(o *opener) {
		o.redis = c
	}
}

// Open builds a backing serving every kind from the datastore selected by
// cfg.Backing.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*Backing, error) {
	if cfg == nil {
		return nil, fmt.Errorf("secschema: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	o := &opener{
		logger:     zap.NewNop(),
		registerer: prometheus.DefaultRegisterer,
		cfg:        cfg,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	b := NewBacking(o.logger)

	switch cfg.Backing {
	case config.BackingDynamoDB:
		if o.dynamo == nil {
			client, err := ddb.NewDynamoDBClient(ctx, ddb.ClientConfig{
				AccessKey: cfg.DynamoDB.AccessKey,
				SecretKey: cfg.DynamoDB.SecretKey,
				Region:    cfg.DynamoDB.Region,
				Endpoint:  cfg.DynamoDB.Endpoint,
			})
			if err != nil {
				return nil, err
			}
			o.dynamo = client
		}
	case config.BackingRedis:
		if o.redis == nil {
			client, err := rediskv.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.DialTimeout)
			if err != nil {
				return nil, err
			}
			o.redis = client
			b.closers = append(b.closers, client)
		}
	}

	if cfg.Metrics.Enabled {
		m, err := metrics.New(cfg.Metrics.Namespace, o.registerer)
		if err != nil {
			_ = b.Close()
			return nil, err
		}
		o.metrics = m
	}

	err := openKind(b, o, secmodels.ClassCodeCluster, secmodels.ClusterFactory{}.NewRec)
	if err == nil {
		err = openKind(b, o, secmodels.ClassCodeTenant, secmodels.TenantFactory{}.NewRec)
	}
	if err == nil {
		err = openKind(b, o, secmodels.ClassCodeSecUser, secmodels.SecUserFactory{}.NewRec)
	}
	if err == nil {
		err = openKind(b, o, secmodels.ClassCodeSecDevice, secmodels.SecDeviceFactory{}.NewRec)
	}
	if err == nil {
		err = openKind(b, o, secmodels.ClassCodeSecSession, secmodels.SecSessionFactory{}.NewRec)
	}
	if err == nil {
		err = openKind(b, o, secmodels.ClassCodeSecGroup, secmodels.SecGroupFactory{}.NewRec)
	}
	if err == nil {
		err = openKind(b, o, secmodels.ClassCodeSecGrpMemb, secmodels.SecGrpMembFactory{}.NewRec)
	}
	if err == nil {
		err = openKind(b, o, secmodels.ClassCodeServiceType, secmodels.ServiceTypeFactory{}.NewRec)
	}
	if err == nil {
		err = openKind(b, o, secmodels.ClassCodeService, secmodels.ServiceFactory{}.NewRec)
	}
	if err == nil {
		err = openKind(b, o, secmodels.ClassCodeISOCcy, secmodels.ISOCcyFactory{}.NewRec)
	}
	if err == nil {
		err = openKind(b, o, secmodels.ClassCodeISOCtry, secmodels.ISOCtryFactory{}.NewRec)
	}
	if err == nil {
		err = openKind(b, o, secmodels.ClassCodeISOCtryCcy, secmodels.ISOCtryCcyFactory{}.NewRec)
	}
	if err != nil {
		_ = b.Close()
		return nil, err
	}

	o.logger.Info("backing opened",
		zap.String("backing", cfg.Backing),
		zap.Bool("metrics", cfg.Metrics.Enabled),
		zap.Int("kinds", len(b.ClassCodes())))
	return b, nil
}

func openKind[T datastore.Entity[T]](b *Backing, o *opener, code secmodels.ClassCode, newRec func() T) error {
	kind := code.String()

	var ds datastore.DataStore[T]
	switch o.cfg.Backing {
	case config.BackingDynamoDB:
		ds = ddb.New(o.dynamo, o.cfg.DynamoDB.Table, kind, newRec,
			ddb.WithLogger(o.logger),
			ddb.WithRetry(o.cfg.DynamoDB.MaxRetries, o.cfg.DynamoDB.RetryBackoff))
	case config.BackingRedis:
		ds = rediskv.New(o.redis, o.cfg.Redis.Prefix, kind, newRec, rediskv.WithLogger(o.logger))
	default:
		ds = mock.New[T](kind)
	}

	if o.metrics != nil {
		ds = metrics.Instrument(ds, kind, o.metrics)
	}
	return Register(b, code, ds)
}
