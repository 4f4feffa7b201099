/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

// Item is the persisted envelope of one record. Primary items live under
// PK = Kind, SK = StoreKey; index pointer items under PK = IndexPartition and
// carry a copy of the body so an index query needs no second read.
type Item struct {
	// PK is the partition key: the kind for primary items, the index
	// partition for pointer items.
	PK string `dynamodbav:"PK" json:"pk"`
	// SK is the sort key: the store key for both primary and pointer items.
	SK string `dynamodbav:"SK" json:"sk"`
	// Kind is the class code name of the record, e.g. "Cluster".
	Kind string `dynamodbav:"Kind" json:"kind"`
	// Revision mirrors the record revision for conditional writes.
	Revision int32 `dynamodbav:"Revision" json:"revision"`
	// Index names the secondary index a pointer item belongs to; empty for
	// primary items.
	Index string `dynamodbav:"Index,omitempty" json:"index,omitempty"`
	// Body is the JSON form of the record.
	Body string `dynamodbav:"Body" json:"body"`
}

// IsPointer reports whether the item is an index pointer.
func (i Item) IsPointer() bool {
	return i.Index != ""
}

// IndexPartition is the partition key of the pointer items for one index value.
func IndexPartition(kind, index, value string) string {
	return kind + "#" + index + "#" + value
}
