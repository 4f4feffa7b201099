/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"github.com/suparena/secschema/errors"
)

// variant discriminates the sibling representations an argument to Equals or
// Compare can take for one entity kind.
type variant uint8

const (
	variantUnsupported variant = iota
	variantNil
	variantRecord
	variantHistory
	variantHistoryKey
	variantIndex
)

// operand is the classified form of a comparison argument. rec is set for the
// record and history variants, hkey for history and history-key, and byIndex
// for index keys: it compares a record's projection against the key.
type operand[R, K any] struct {
	variant variant
	rec     R
	hkey    K
	key     any
	byIndex func(R) int
}

func indexOperand[R, K, I any](key I, project func(R) I, compare func(a, b I) int) operand[R, K] {
	return operand[R, K]{
		variant: variantIndex,
		key:     key,
		byIndex: func(r R) int { return compare(project(r), key) },
	}
}

// protocol binds the per-kind pieces of the comparison protocol. Equality is
// derived from ordering so the two can never disagree.
type protocol[R, K any] struct {
	class    string
	classify func(any) operand[R, K]
	// compare orders two records: audit, primary key, then fields.
	compare func(a, b R) int
	// compareKey orders two history primary keys.
	compareKey func(a, b K) int
	// compareRecordKey orders a record's revision and primary key against a
	// history primary key.
	compareRecordKey func(r R, k K) int
}

func (p protocol[R, K]) unsupported(other any) error {
	return errors.NewUnsupportedClassError(p.class, "Compare", 1, "other", other,
		p.class+", "+p.class+"H, "+p.class+"HPKey or a "+p.class+" index key")
}

func (p protocol[R, K]) recordCompare(self R, other any) (int, error) {
	op := p.classify(other)
	switch op.variant {
	case variantNil:
		return -1, nil
	case variantRecord, variantHistory:
		return p.compare(self, op.rec), nil
	case variantHistoryKey:
		return p.compareRecordKey(self, op.hkey), nil
	case variantIndex:
		return op.byIndex(self), nil
	}
	return 0, p.unsupported(other)
}

func (p protocol[R, K]) recordEquals(self R, other any) bool {
	c, err := p.recordCompare(self, other)
	return err == nil && c == 0
}

func (p protocol[R, K]) historyCompare(self R, selfKey K, other any) (int, error) {
	op := p.classify(other)
	switch op.variant {
	case variantNil:
		return -1, nil
	case variantHistory:
		if c := p.compareKey(selfKey, op.hkey); c != 0 {
			return c, nil
		}
		return p.compare(self, op.rec), nil
	case variantRecord:
		return p.compare(self, op.rec), nil
	case variantHistoryKey:
		return p.compareKey(selfKey, op.hkey), nil
	case variantIndex:
		return op.byIndex(self), nil
	}
	return 0, p.unsupported(other)
}

func (p protocol[R, K]) historyEquals(self R, selfKey K, other any) bool {
	c, err := p.historyCompare(self, selfKey, other)
	return err == nil && c == 0
}

func (p protocol[R, K]) keyCompare(self K, other any) (int, error) {
	op := p.classify(other)
	switch op.variant {
	case variantNil:
		return -1, nil
	case variantHistory, variantHistoryKey:
		return p.compareKey(self, op.hkey), nil
	case variantRecord:
		return -p.compareRecordKey(op.rec, self), nil
	}
	return 0, p.unsupported(other)
}

func (p protocol[R, K]) keyEquals(self K, other any) bool {
	c, err := p.keyCompare(self, other)
	return err == nil && c == 0
}

// indexCompare is Compare for an index key receiver: records are projected
// onto the index fields; keys of other indexes are unsupported.
func indexCompare[R, K, I any](p protocol[R, K], key I, other any, project func(R) I, compare func(a, b I) int) (int, error) {
	op := p.classify(other)
	switch op.variant {
	case variantNil:
		return -1, nil
	case variantRecord, variantHistory:
		return compare(key, project(op.rec)), nil
	case variantIndex:
		if o, ok := op.key.(I); ok {
			return compare(key, o), nil
		}
	}
	return 0, p.unsupported(other)
}

func indexEquals[R, K, I any](p protocol[R, K], key I, other any, project func(R) I, compare func(a, b I) int) bool {
	c, err := indexCompare(p, key, other, project, compare)
	return err == nil && c == 0
}
