/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type rawItem = map[string]types.AttributeValue

// fakeDynamo keeps items in memory and understands exactly the expressions
// the store issues.
type fakeDynamo struct {
	mu        sync.Mutex
	items     map[string]rawItem
	queryErrs []error
	queries   int
	// beforeTransact runs ahead of each transaction to simulate a racing writer.
	beforeTransact func(f *fakeDynamo)
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: make(map[string]rawItem)}
}

func str(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func keyOf(item rawItem) string {
	return str(item["PK"]) + "\x00" + str(item["SK"])
}

func (f *fakeDynamo) GetItem(_ context.Context, in *sdk.GetItemInput, _ ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &sdk.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *sdk.QueryInput, _ ...func(*sdk.Options)) (*sdk.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries++
	if len(f.queryErrs) > 0 {
		err := f.queryErrs[0]
		f.queryErrs = f.queryErrs[1:]
		return nil, err
	}

	pk := str(in.ExpressionAttributeValues[":pk"])
	var matches []rawItem
	for _, it := range f.items {
		if str(it["PK"]) == pk {
			matches = append(matches, it)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return str(matches[i]["SK"]) < str(matches[j]["SK"]) })

	if in.ExclusiveStartKey != nil {
		after := str(in.ExclusiveStartKey["SK"])
		i := sort.Search(len(matches), func(i int) bool { return str(matches[i]["SK"]) > after })
		matches = matches[i:]
	}
	out := &sdk.QueryOutput{}
	limit := int(aws.ToInt32(in.Limit))
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
		last := matches[limit-1]
		out.LastEvaluatedKey = rawItem{"PK": last["PK"], "SK": last["SK"]}
	}
	out.Items = matches
	return out, nil
}

func (f *fakeDynamo) conditionHolds(key string, expr *string, values rawItem) bool {
	if expr == nil {
		return true
	}
	existing, exists := f.items[key]
	switch *expr {
	case "attribute_not_exists(PK)":
		return !exists
	case "#rev = :rev":
		if !exists {
			return false
		}
		rev, _ := existing["Revision"].(*types.AttributeValueMemberN)
		want, _ := values[":rev"].(*types.AttributeValueMemberN)
		return rev != nil && want != nil && rev.Value == want.Value
	}
	return false
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *sdk.TransactWriteItemsInput, _ ...func(*sdk.Options)) (*sdk.TransactWriteItemsOutput, error) {
	if f.beforeTransact != nil {
		hook := f.beforeTransact
		f.beforeTransact = nil
		hook(f)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	reasons := make([]types.CancellationReason, len(in.TransactItems))
	failed := false
	for i, tx := range in.TransactItems {
		reasons[i].Code = aws.String("None")
		var ok bool
		switch {
		case tx.Put != nil:
			ok = f.conditionHolds(keyOf(tx.Put.Item), tx.Put.ConditionExpression, tx.Put.ExpressionAttributeValues)
		case tx.Delete != nil:
			ok = f.conditionHolds(keyOf(tx.Delete.Key), tx.Delete.ConditionExpression, tx.Delete.ExpressionAttributeValues)
		}
		if !ok {
			reasons[i].Code = aws.String("ConditionalCheckFailed")
			failed = true
		}
	}
	if failed {
		return nil, &types.TransactionCanceledException{
			Message:             aws.String("Transaction cancelled"),
			CancellationReasons: reasons,
		}
	}

	for _, tx := range in.TransactItems {
		switch {
		case tx.Put != nil:
			f.items[keyOf(tx.Put.Item)] = tx.Put.Item
		case tx.Delete != nil:
			delete(f.items, keyOf(tx.Delete.Key))
		}
	}
	return &sdk.TransactWriteItemsOutput{}, nil
}

func (f *fakeDynamo) partitions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var pks []string
	for _, it := range f.items {
		pks = append(pks, str(it["PK"])+"/"+str(it["SK"]))
	}
	sort.Strings(pks)
	return pks
}

// setRevision rewrites the stored revision of a primary item.
func (f *fakeDynamo) setRevision(pk, sk string, rev int32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it := f.items[pk+"\x00"+sk]
	it["Revision"] = &types.AttributeValueMemberN{Value: strconv.Itoa(int(rev))}
}
