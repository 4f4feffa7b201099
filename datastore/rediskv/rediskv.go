/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package rediskv provides a Redis implementation of the DataStore interface.
//
// A record lives in a hash holding its revision and JSON body. Each kind keeps
// a set of its store keys and one set per index value; every write updates
// them in a single Lua script guarded by the revision read beforehand.
package rediskv

import (
	"context"
	goerrors "errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/suparena/secschema/datastore"
	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/storagemodels"
)

// Client is the part of the Redis client the store calls. *redis.Client
// satisfies it.
type Client interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

var _ Client = (*redis.Client)(nil)

// KEYS: record hash, kind set, new index sets (ARGV[5] of them), stale index sets.
// ARGV: expected revision ("" when absent), new revision, body, store key, new index count.
const putScript = `
local cur = redis.call('HGET', KEYS[1], 'rev')
if ARGV[1] == '' then
  if cur then return 0 end
elseif cur ~= ARGV[1] then
  return 0
end
redis.call('HSET', KEYS[1], 'rev', ARGV[2], 'body', ARGV[3])
redis.call('SADD', KEYS[2], ARGV[4])
local n = tonumber(ARGV[5])
for i = 3, #KEYS do
  if i <= 2 + n then
    redis.call('SADD', KEYS[i], ARGV[4])
  else
    redis.call('SREM', KEYS[i], ARGV[4])
  end
end
return 1
`

// KEYS: record hash, kind set, index sets. ARGV: expected revision, store key.
const deleteScript = `
local cur = redis.call('HGET', KEYS[1], 'rev')
if cur ~= ARGV[1] then return 0 end
redis.call('DEL', KEYS[1])
redis.call('SREM', KEYS[2], ARGV[2])
for i = 3, #KEYS do
  redis.call('SREM', KEYS[i], ARGV[2])
end
return 1
`

// Store implements datastore.DataStore[T] on Redis.
type Store[T datastore.Entity[T]] struct {
	client Client
	prefix string
	kind   string
	newRec func() T
	logger *zap.Logger
}

// Option configures a Store.
type Option func(*settings)

type settings struct {
	logger *zap.Logger
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

// NewClient connects to a single Redis node and checks it answers.
func NewClient(ctx context.Context, addr, password string, db int, dialTimeout time.Duration) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: dialTimeout,
	})

	ctx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// New constructs a store for one kind. Keys are namespaced by prefix.
func New[T datastore.Entity[T]](client Client, prefix, kind string, newRec func() T, opts ...Option) *Store[T] {
	s := settings{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&s)
	}
	return &Store[T]{
		client: client,
		prefix: prefix,
		kind:   kind,
		newRec: newRec,
		logger: s.logger.With(zap.String("kind", kind)),
	}
}

func (s *Store[T]) recordKey(key string) string {
	return s.prefix + ":" + s.kind + ":rec:" + key
}

func (s *Store[T]) kindKey() string {
	return s.prefix + ":" + s.kind + ":all"
}

func (s *Store[T]) indexKey(index, value string) string {
	return s.prefix + ":" + storagemodels.IndexPartition(s.kind, index, value)
}

// read returns the stored record and its body; a missing record yields found == false.
func (s *Store[T]) read(ctx context.Context, key string) (rec T, body []byte, found bool, err error) {
	body, err = s.client.HGet(ctx, s.recordKey(key), "body").Bytes()
	if goerrors.Is(err, redis.Nil) {
		return rec, nil, false, nil
	}
	if err != nil {
		return rec, nil, false, fmt.Errorf("failed to get %s %q: %w", s.kind, key, err)
	}
	rec, err = datastore.Decode(s.newRec, body)
	if err != nil {
		return rec, nil, false, err
	}
	return rec, body, true, nil
}

// GetOne retrieves a record by store key
func (s *Store[T]) GetOne(ctx context.Context, key string) (T, error) {
	rec, _, found, err := s.read(ctx, key)
	if err != nil {
		return rec, err
	}
	if !found {
		var zero T
		return zero, errors.NewNotFoundError(s.kind, key)
	}
	return rec, nil
}

// Put writes a record and moves its index memberships
func (s *Store[T]) Put(ctx context.Context, entity T) error {
	key := entity.StoreKey()
	if key == "" {
		return errors.NewValidationError("key", "record has an empty store key")
	}

	old, _, found, err := s.read(ctx, key)
	if err != nil {
		return err
	}
	expected := ""
	var oldRev int32
	if found {
		oldRev = old.Revision()
		expected = strconv.FormatInt(int64(oldRev), 10)
	}
	if err := datastore.CheckRevision(key, oldRev, found, entity.Revision()); err != nil {
		return err
	}

	items, err := datastore.Items(s.kind, entity)
	if err != nil {
		return err
	}

	keys := []string{s.recordKey(key), s.kindKey()}
	fresh := make(map[string]bool, len(items))
	for _, it := range items[1:] {
		k := s.prefix + ":" + it.PK
		keys = append(keys, k)
		fresh[k] = true
	}
	newCount := len(keys) - 2
	if found {
		for index, value := range old.IndexValues() {
			if k := s.indexKey(index, value); !fresh[k] {
				keys = append(keys, k)
			}
		}
	}

	ok, err := s.client.Eval(ctx, putScript, keys,
		expected, entity.Revision(), items[0].Body, key, newCount).Int64()
	if err != nil {
		return fmt.Errorf("failed to put %s %q: %w", s.kind, key, err)
	}
	if ok == 0 {
		return fmt.Errorf("put %s %q: %w", s.kind, key,
			errors.NewConditionFailedError("Put", "record changed concurrently"))
	}
	s.logger.Debug("record stored", zap.String("key", key), zap.Int32("revision", entity.Revision()))
	return nil
}

// QueryIndex reads the members of one index set in store key order
func (s *Store[T]) QueryIndex(ctx context.Context, index, value string) ([]T, error) {
	members, err := s.client.SMembers(ctx, s.indexKey(index, value)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query %s %s: %w", s.kind, index, err)
	}
	sort.Strings(members)

	results := make([]T, 0, len(members))
	for _, key := range members {
		rec, _, found, err := s.read(ctx, key)
		if err != nil {
			return nil, err
		}
		// removed between the two reads
		if !found {
			continue
		}
		results = append(results, rec)
	}
	return results, nil
}

// Stream emits every record of the kind in store key order
func (s *Store[T]) Stream(ctx context.Context, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T] {
	options := storagemodels.ApplyStreamOptions(opts...)
	resultCh := make(chan storagemodels.StreamResult[T], options.BufferSize)

	go func() {
		defer close(resultCh)

		send := func(r storagemodels.StreamResult[T]) bool {
			select {
			case <-ctx.Done():
				return false
			case resultCh <- r:
				return true
			}
		}

		start := time.Now()
		members, err := s.client.SMembers(ctx, s.kindKey()).Result()
		if err != nil {
			send(storagemodels.StreamResult[T]{Error: fmt.Errorf("failed to list %s: %w", s.kind, err)})
			return
		}
		sort.Strings(members)

		var index int64
		for _, key := range members {
			rec, body, found, err := s.read(ctx, key)
			if err == nil && !found {
				continue
			}
			if !send(storagemodels.StreamResult[T]{
				Item:  rec,
				Raw:   body,
				Error: err,
				Meta:  storagemodels.StreamMeta{Index: index, PageNumber: 1, Timestamp: time.Now()},
			}) {
				return
			}
			index++
		}

		if options.ProgressHandler != nil {
			options.ProgressHandler(storagemodels.StreamProgress{
				ItemsProcessed: index,
				PagesProcessed: 1,
				StartTime:      start,
			})
		}
	}()

	return resultCh
}

// Delete removes a record and its index memberships
func (s *Store[T]) Delete(ctx context.Context, key string) error {
	old, _, found, err := s.read(ctx, key)
	if err != nil {
		return err
	}
	if !found {
		return errors.NewNotFoundError(s.kind, key)
	}

	keys := []string{s.recordKey(key), s.kindKey()}
	for index, value := range old.IndexValues() {
		keys = append(keys, s.indexKey(index, value))
	}

	ok, err := s.client.Eval(ctx, deleteScript, keys,
		strconv.FormatInt(int64(old.Revision()), 10), key).Int64()
	if err != nil {
		return fmt.Errorf("failed to delete %s %q: %w", s.kind, key, err)
	}
	if ok == 0 {
		return fmt.Errorf("delete %s %q: %w", s.kind, key,
			errors.NewConditionFailedError("Delete", "record changed concurrently"))
	}
	s.logger.Debug("record deleted", zap.String("key", key))
	return nil
}
