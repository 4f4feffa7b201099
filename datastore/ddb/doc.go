/*
Package ddb provides a DynamoDB implementation of the DataStore interface.

All kinds share one table with a string partition key PK and sort key SK:

	PK = "<kind>"                       SK = "<store key>"   primary item
	PK = "<kind>#<index>#<value>"       SK = "<store key>"   index pointer

Pointer items carry a copy of the record body, so QueryIndex is one query on
the pointer partition and Stream pages through the kind partition.

Writes are transactional: the primary item, its new pointers and the removal
of pointers the record no longer occupies commit together, conditioned on the
revision read before the write. A concurrent writer surfaces as a
ConditionFailedError.

Queries retry throttling and other retryable errors with linear backoff:

	store := ddb.New[*secmodels.ClusterBuff](client, "secschema", "Cluster",
	    secmodels.ClusterFactory{}.NewRec,
	    ddb.WithRetry(3, 200*time.Millisecond),
	    ddb.WithLogger(logger),
	)
*/
package ddb
