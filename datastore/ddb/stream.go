/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/secschema/storagemodels"
)

// Stream pages through the kind's primary partition.
func (d *DynamodbDataStore[T]) Stream(ctx context.Context, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T] {
	options := storagemodels.DefaultStreamOptions()
	options.MaxRetries = d.retry.MaxRetries
	options.RetryBackoff = d.retry.RetryBackoff
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan storagemodels.StreamResult[T], options.BufferSize)

	go d.streamWorker(ctx, options, resultCh)

	return resultCh
}

// streamWorker handles the actual streaming logic
func (d *DynamodbDataStore[T]) streamWorker(
	ctx context.Context,
	options storagemodels.StreamOptions,
	resultCh chan<- storagemodels.StreamResult[T],
) {
	defer close(resultCh)

	var itemIndex int64
	var pageNumber int
	startTime := time.Now()
	var errs []error

	reportProgress := func() {
		if options.ProgressHandler == nil {
			return
		}
		progress := storagemodels.StreamProgress{
			ItemsProcessed: atomic.LoadInt64(&itemIndex),
			PagesProcessed: pageNumber,
			Errors:         errs,
			StartTime:      startTime,
		}
		if elapsed := time.Since(startTime).Seconds(); elapsed > 0 {
			progress.CurrentRate = float64(progress.ItemsProcessed) / elapsed
		}
		options.ProgressHandler(progress)
	}

	input := d.partitionQuery(d.kind, options.PageSize)

	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if lastEvaluatedKey != nil {
			input.ExclusiveStartKey = lastEvaluatedKey
		}

		out, err := d.queryWithRetry(ctx, input, options)
		if err != nil {
			if options.ErrorHandler == nil || !options.ErrorHandler(err) {
				select {
				case resultCh <- storagemodels.StreamResult[T]{
					Error: fmt.Errorf("query failed: %w", err),
					Meta: storagemodels.StreamMeta{
						Index:      atomic.LoadInt64(&itemIndex),
						PageNumber: pageNumber,
						Timestamp:  time.Now(),
					},
				}:
				case <-ctx.Done():
				}
				return
			}
			// the handler chose to go on; retry the same page
			errs = append(errs, err)
			continue
		}

		pageNumber++

		for _, raw := range out.Items {
			rec, body, err := d.decodeItem(raw)
			result := storagemodels.StreamResult[T]{
				Item:  rec,
				Raw:   body,
				Error: err,
				Meta: storagemodels.StreamMeta{
					Index:      atomic.LoadInt64(&itemIndex),
					PageNumber: pageNumber,
					Timestamp:  time.Now(),
				},
			}
			atomic.AddInt64(&itemIndex, 1)

			select {
			case <-ctx.Done():
				return
			case resultCh <- result:
			}

			if err != nil {
				errs = append(errs, err)
			}
		}

		reportProgress()

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastEvaluatedKey = out.LastEvaluatedKey
	}
}
