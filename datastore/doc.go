/*
Package datastore defines the persistence contract the schema backings are
built on.

The main interface is DataStore[T], keyed by a record's store key and
queryable by secondary index value:

	type DataStore[T Entity[T]] interface {
	    GetOne(ctx context.Context, key string) (T, error)
	    Put(ctx context.Context, entity T) error
	    QueryIndex(ctx context.Context, index, value string) ([]T, error)
	    Stream(ctx context.Context, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T]
	    Delete(ctx context.Context, key string) error
	}

Writes are optimistic: Put fails with a ConditionFailedError unless the
entity's revision is newer than the stored one.

Implementations:
  - mock: in-memory store with error injection, also used as the memory backing
  - ddb: DynamoDB single-table store with index pointer items
  - rediskv: Redis store with set-based secondary indexes
*/
package datastore
