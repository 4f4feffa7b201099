/*
Package storagemodels defines the persisted shapes shared by the datastores.

Item:
The envelope every record is stored in. A record is written once as a primary
item and once per secondary index as a pointer item:

	PK = "Cluster"                          SK = "<store key>"   (primary)
	PK = "Cluster#UDomNameIdx#example.com"  SK = "<store key>"   (pointer)

Both carry the record's JSON body and revision, so an index lookup is a single
query on the pointer partition.

StreamResult:
Results from streaming operations with metadata:

	type StreamResult[T any] struct {
	    Item  T          // The decoded record
	    Raw   []byte     // Persisted JSON body
	    Error error      // Item-specific error, if any
	    Meta  StreamMeta // Metadata about this item
	}

StreamOptions:
Configuration for streaming and retry behavior:

	opts := []StreamOption{
	    WithBufferSize(100),
	    WithPageSize(25),
	    WithMaxRetries(3),
	    WithProgressHandler(progressFunc),
	}

These types provide a consistent interface across different storage implementations.
*/
package storagemodels
