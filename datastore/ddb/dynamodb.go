/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	goerrors "errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/suparena/secschema/datastore"
	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/storagemodels"
)

// API is the part of the DynamoDB client the store calls. *sdk.Client
// satisfies it.
type API interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *sdk.TransactWriteItemsInput, optFns ...func(*sdk.Options)) (*sdk.TransactWriteItemsOutput, error)
}

// DynamodbDataStore implements datastore.DataStore[T] on a single DynamoDB
// table shared by every kind.
type DynamodbDataStore[T datastore.Entity[T]] struct {
	client    API
	tableName string
	kind      string
	newRec    func() T
	retry     storagemodels.StreamOptions
	logger    *zap.Logger
}

// Option configures a DynamodbDataStore.
type Option func(*settings)

type settings struct {
	logger *zap.Logger
	retry  storagemodels.StreamOptions
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

// WithRetry sets how often a throttled query is retried and the base backoff.
func WithRetry(maxRetries int, backoff time.Duration) Option {
	return func(s *settings) {
		s.retry.MaxRetries = maxRetries
		s.retry.RetryBackoff = backoff
	}
}

// ClientConfig holds what NewDynamoDBClient needs to reach a table.
type ClientConfig struct {
	AccessKey string
	SecretKey string
	Region    string
	// Endpoint overrides the service endpoint, e.g. for DynamoDB Local.
	Endpoint string
}

// NewDynamoDBClient initializes a DynamoDB client. Static credentials are
// used when an access key is given, otherwise the default chain.
func NewDynamoDBClient(ctx context.Context, cc ClientConfig) (*sdk.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(cc.Region)}
	if cc.AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cc.AccessKey, cc.SecretKey, ""),
		))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg, func(o *sdk.Options) {
		if cc.Endpoint != "" {
			o.BaseEndpoint = aws.String(cc.Endpoint)
		}
	}), nil
}

// New constructs a store for one kind. newRec supplies empty records to
// decode into.
func New[T datastore.Entity[T]](client API, tableName, kind string, newRec func() T, opts ...Option) *DynamodbDataStore[T] {
	s := settings{
		logger: zap.NewNop(),
		retry:  storagemodels.DefaultStreamOptions(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return &DynamodbDataStore[T]{
		client:    client,
		tableName: tableName,
		kind:      kind,
		newRec:    newRec,
		retry:     s.retry,
		logger:    s.logger.With(zap.String("table", tableName), zap.String("kind", kind)),
	}
}

func itemKey(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}
}

// getPrimary reads the primary item under key; a missing item yields nil.
func (d *DynamodbDataStore[T]) getPrimary(ctx context.Context, key string) (*storagemodels.Item, error) {
	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName:      &d.tableName,
		Key:            itemKey(d.kind, key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}
	var item storagemodels.Item
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return &item, nil
}

// GetOne retrieves a single record by store key.
func (d *DynamodbDataStore[T]) GetOne(ctx context.Context, key string) (T, error) {
	var zero T
	item, err := d.getPrimary(ctx, key)
	if err != nil {
		return zero, err
	}
	if item == nil {
		return zero, errors.NewNotFoundError(d.kind, key)
	}
	return datastore.Decode(d.newRec, []byte(item.Body))
}

// Put writes the primary item and its index pointers in one transaction. The
// primary write is conditioned on the revision read beforehand, so a
// concurrent writer makes the whole transaction fail.
func (d *DynamodbDataStore[T]) Put(ctx context.Context, entity T) error {
	key := entity.StoreKey()
	if key == "" {
		return errors.NewValidationError("key", "record has an empty store key")
	}

	old, err := d.getPrimary(ctx, key)
	if err != nil {
		return err
	}
	var oldRev int32
	if old != nil {
		oldRev = old.Revision
	}
	if err := datastore.CheckRevision(key, oldRev, old != nil, entity.Revision()); err != nil {
		return err
	}

	items, err := datastore.Items(d.kind, entity)
	if err != nil {
		return err
	}

	txItems := make([]types.TransactWriteItem, 0, 2*len(items))
	keep := make(map[string]bool, len(items))
	for i, it := range items {
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return fmt.Errorf("failed to marshal item: %w", err)
		}
		put := &types.Put{TableName: &d.tableName, Item: av}
		if i == 0 {
			put.ConditionExpression, put.ExpressionAttributeNames, put.ExpressionAttributeValues = revisionCondition(old)
		}
		txItems = append(txItems, types.TransactWriteItem{Put: put})
		keep[it.PK] = true
	}

	stale, err := d.pointerPartitions(old)
	if err != nil {
		return err
	}
	for _, pk := range stale {
		if keep[pk] {
			continue
		}
		txItems = append(txItems, types.TransactWriteItem{Delete: &types.Delete{
			TableName: &d.tableName,
			Key:       itemKey(pk, key),
		}})
	}

	if err := d.transact(ctx, "Put", key, txItems); err != nil {
		return err
	}
	d.logger.Debug("record stored", zap.String("key", key), zap.Int32("revision", entity.Revision()))
	return nil
}

// Delete removes the primary item and its index pointers.
func (d *DynamodbDataStore[T]) Delete(ctx context.Context, key string) error {
	old, err := d.getPrimary(ctx, key)
	if err != nil {
		return err
	}
	if old == nil {
		return errors.NewNotFoundError(d.kind, key)
	}

	del := &types.Delete{TableName: &d.tableName, Key: itemKey(d.kind, key)}
	del.ConditionExpression, del.ExpressionAttributeNames, del.ExpressionAttributeValues = revisionCondition(old)
	txItems := []types.TransactWriteItem{{Delete: del}}

	stale, err := d.pointerPartitions(old)
	if err != nil {
		return err
	}
	for _, pk := range stale {
		txItems = append(txItems, types.TransactWriteItem{Delete: &types.Delete{
			TableName: &d.tableName,
			Key:       itemKey(pk, key),
		}})
	}

	if err := d.transact(ctx, "Delete", key, txItems); err != nil {
		return err
	}
	d.logger.Debug("record deleted", zap.String("key", key))
	return nil
}

// revisionCondition pins a write to the primary item as read: absent, or
// present at exactly its old revision.
func revisionCondition(old *storagemodels.Item) (*string, map[string]string, map[string]types.AttributeValue) {
	if old == nil {
		return aws.String("attribute_not_exists(PK)"), nil, nil
	}
	return aws.String("#rev = :rev"),
		map[string]string{"#rev": "Revision"},
		map[string]types.AttributeValue{
			":rev": &types.AttributeValueMemberN{Value: fmt.Sprint(old.Revision)},
		}
}

// pointerPartitions lists the index partitions the stored record occupies.
func (d *DynamodbDataStore[T]) pointerPartitions(old *storagemodels.Item) ([]string, error) {
	if old == nil {
		return nil, nil
	}
	rec, err := datastore.Decode(d.newRec, []byte(old.Body))
	if err != nil {
		return nil, err
	}
	items, err := datastore.Items(d.kind, rec)
	if err != nil {
		return nil, err
	}
	pks := make([]string, 0, len(items)-1)
	for _, it := range items[1:] {
		pks = append(pks, it.PK)
	}
	return pks, nil
}

func (d *DynamodbDataStore[T]) transact(ctx context.Context, op, key string, txItems []types.TransactWriteItem) error {
	_, err := d.client.TransactWriteItems(ctx, &sdk.TransactWriteItemsInput{TransactItems: txItems})
	if err == nil {
		return nil
	}
	if isConditionFailure(err) {
		return fmt.Errorf("%s %s %q: %w", op, d.kind, key,
			errors.NewConditionFailedError(op, "record changed concurrently"))
	}
	d.logger.Warn("transaction failed", zap.String("op", op), zap.String("key", key), zap.Error(err))
	return fmt.Errorf("TransactWriteItems failed: %w", err)
}

func isConditionFailure(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	if goerrors.As(err, &cfe) {
		return true
	}
	var tce *types.TransactionCanceledException
	if goerrors.As(err, &tce) {
		for _, r := range tce.CancellationReasons {
			if aws.ToString(r.Code) == "ConditionalCheckFailed" {
				return true
			}
		}
	}
	return false
}
