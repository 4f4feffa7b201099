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
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/suparena/secschema/datastore"
	"github.com/suparena/secschema/storagemodels"
)

// QueryIndex reads the pointer partition of one index value. Pointer items
// carry the record body, so no second read is needed.
func (d *DynamodbDataStore[T]) QueryIndex(ctx context.Context, index, value string) ([]T, error) {
	input := d.partitionQuery(storagemodels.IndexPartition(d.kind, index, value), d.retry.PageSize)

	results := make([]T, 0)
	for {
		out, err := d.queryWithRetry(ctx, input, d.retry)
		if err != nil {
			return nil, fmt.Errorf("query %s %s: %w", d.kind, index, err)
		}
		for _, raw := range out.Items {
			rec, _, err := d.decodeItem(raw)
			if err != nil {
				return nil, err
			}
			results = append(results, rec)
		}
		if len(out.LastEvaluatedKey) == 0 {
			return results, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (d *DynamodbDataStore[T]) partitionQuery(pk string, pageSize int32) *sdk.QueryInput {
	return &sdk.QueryInput{
		TableName:              &d.tableName,
		KeyConditionExpression: aws.String("PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: pk},
		},
		Limit: aws.Int32(pageSize),
	}
}

func (d *DynamodbDataStore[T]) decodeItem(raw map[string]types.AttributeValue) (T, []byte, error) {
	var zero T
	var item storagemodels.Item
	if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
		return zero, nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	body := []byte(item.Body)
	rec, err := datastore.Decode(d.newRec, body)
	if err != nil {
		return zero, body, err
	}
	return rec, body, nil
}

// queryWithRetry executes a query with configurable retry logic
func (d *DynamodbDataStore[T]) queryWithRetry(
	ctx context.Context,
	input *sdk.QueryInput,
	options storagemodels.StreamOptions,
) (*sdk.QueryOutput, error) {
	var lastErr error

	for attempt := 0; attempt <= options.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		out, err := d.client.Query(ctx, input)
		if err == nil {
			return out, nil
		}

		lastErr = err

		if !isRetryableError(err) {
			return nil, err
		}

		// Don't sleep after last attempt
		if attempt < options.MaxRetries {
			backoff := time.Duration(attempt+1) * options.RetryBackoff
			d.logger.Debug("retrying query", zap.Int("attempt", attempt+1), zap.Duration("backoff", backoff), zap.Error(err))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("query failed after %d retries: %w", options.MaxRetries, lastErr)
}

// isRetryableError determines if a DynamoDB error is retryable. The SDK wraps
// service errors, so the checks unwrap.
func isRetryableError(err error) bool {
	var throughput *types.ProvisionedThroughputExceededException
	var limit *types.RequestLimitExceeded
	var internal *types.InternalServerError
	switch {
	case goerrors.As(err, &throughput), goerrors.As(err, &limit), goerrors.As(err, &internal):
		return true
	}

	var retryable interface{ IsRetryable() bool }
	if goerrors.As(err, &retryable) {
		return retryable.IsRetryable()
	}

	return false
}
