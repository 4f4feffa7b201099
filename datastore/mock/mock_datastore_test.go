/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock_test

import (
	"context"
	"testing"
	"time"

	"github.com/suparena/secschema/datastore"
	"github.com/suparena/secschema/datastore/mock"
	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/storagemodels"
)

type TestEntity struct {
	ID   string
	Name string
	Rev  int32
}

func (e *TestEntity) StoreKey() string               { return e.ID }
func (e *TestEntity) IndexValues() map[string]string { return map[string]string{"NameIdx": e.Name} }
func (e *TestEntity) Revision() int32                { return e.Rev }
func (e *TestEntity) Clone() *TestEntity             { c := *e; return &c }

var _ datastore.DataStore[*TestEntity] = (*mock.DataStore[*TestEntity])(nil)

func TestMockDataStore(t *testing.T) {
	ctx := context.Background()

	t.Run("BasicOperations", func(t *testing.T) {
		mockStore := mock.New[*TestEntity]("Test")

		entity := &TestEntity{ID: "123", Name: "Test", Rev: 1}
		if err := mockStore.Put(ctx, entity); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		retrieved, err := mockStore.GetOne(ctx, "123")
		if err != nil {
			t.Fatalf("GetOne failed: %v", err)
		}
		if retrieved.ID != "123" || retrieved.Name != "Test" {
			t.Fatalf("Retrieved entity mismatch: %+v", retrieved)
		}
		if retrieved == entity {
			t.Fatal("store handed back the caller's buffer")
		}

		if err := mockStore.Delete(ctx, "123"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		_, err = mockStore.GetOne(ctx, "123")
		if !errors.IsNotFound(err) {
			t.Fatalf("Expected not found error, got: %v", err)
		}
		if err := mockStore.Delete(ctx, "123"); !errors.IsNotFound(err) {
			t.Fatalf("Expected not found error on second delete, got: %v", err)
		}
	})

	t.Run("RevisionCheck", func(t *testing.T) {
		mockStore := mock.New[*TestEntity]("Test")

		entity := &TestEntity{ID: "1", Name: "One", Rev: 1}
		if err := mockStore.Put(ctx, entity); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		// mutating the caller's copy must not leak into the store
		entity.Name = "Changed"
		err := mockStore.Put(ctx, entity)
		if !errors.IsConditionFailed(err) {
			t.Fatalf("Expected condition failed for same revision, got: %v", err)
		}
		got, _ := mockStore.GetOne(ctx, "1")
		if got.Name != "One" {
			t.Fatalf("stale write was applied: %+v", got)
		}

		entity.Rev = 2
		if err := mockStore.Put(ctx, entity); err != nil {
			t.Fatalf("Put with newer revision failed: %v", err)
		}
	})

	t.Run("EmptyKey", func(t *testing.T) {
		mockStore := mock.New[*TestEntity]("Test")
		err := mockStore.Put(ctx, &TestEntity{Name: "NoKey"})
		if !errors.IsValidationError(err) {
			t.Fatalf("Expected validation error, got: %v", err)
		}
	})

	t.Run("ErrorSimulation", func(t *testing.T) {
		mockStore := mock.New[*TestEntity]("Test")

		putErr := errors.NewValidationError("name", "required")
		mockStore.WithPutError(putErr)

		err := mockStore.Put(ctx, &TestEntity{ID: "123", Name: "Test"})
		if err != putErr {
			t.Fatalf("Expected put error, got: %v", err)
		}

		deleteErr := errors.NewConditionFailedError("delete", "version mismatch")
		mockStore.WithDeleteError(deleteErr)

		if err := mockStore.Delete(ctx, "123"); err != deleteErr {
			t.Fatalf("Expected delete error, got: %v", err)
		}

		getErr := errors.NewNotFoundError("Test", "x")
		mockStore.WithGetError(getErr)
		if _, err := mockStore.GetOne(ctx, "x"); err != getErr {
			t.Fatalf("Expected get error, got: %v", err)
		}
	})

	t.Run("QueryIndexAndStream", func(t *testing.T) {
		mockStore := mock.New[*TestEntity]("Test")

		entities := []*TestEntity{
			{ID: "3", Name: "Even", Rev: 1},
			{ID: "1", Name: "Odd", Rev: 1},
			{ID: "2", Name: "Even", Rev: 1},
		}
		for _, e := range entities {
			if err := mockStore.Put(ctx, e); err != nil {
				t.Fatalf("Put failed: %v", err)
			}
		}

		results, err := mockStore.QueryIndex(ctx, "NameIdx", "Even")
		if err != nil {
			t.Fatalf("QueryIndex failed: %v", err)
		}
		if len(results) != 2 || results[0].ID != "2" || results[1].ID != "3" {
			t.Fatalf("Expected records 2 and 3 in key order, got %+v", results)
		}

		none, err := mockStore.QueryIndex(ctx, "NameIdx", "Missing")
		if err != nil || len(none) != 0 {
			t.Fatalf("Expected empty result, got %v, %v", none, err)
		}

		streamCtx, cancel := context.WithTimeout(ctx, 1*time.Second)
		defer cancel()

		var progress storagemodels.StreamProgress
		resultChan := mockStore.Stream(streamCtx,
			storagemodels.WithBufferSize(1),
			storagemodels.WithProgressHandler(func(p storagemodels.StreamProgress) { progress = p }))
		var ids []string
		for result := range resultChan {
			if result.Error != nil {
				t.Fatalf("Stream error: %v", result.Error)
			}
			ids = append(ids, result.Item.ID)
		}
		if len(ids) != 3 || ids[0] != "1" || ids[2] != "3" {
			t.Fatalf("Expected 3 streamed items in key order, got %v", ids)
		}
		if progress.ItemsProcessed != 3 {
			t.Fatalf("Expected progress for 3 items, got %+v", progress)
		}
	})

	t.Run("CustomQueryIndexFunction", func(t *testing.T) {
		mockStore := mock.New[*TestEntity]("Test")

		mockStore.WithQueryIndexFunc(func(ctx context.Context, index, value string) ([]*TestEntity, error) {
			return []*TestEntity{{ID: "1", Name: "Filtered"}}, nil
		})

		results, err := mockStore.QueryIndex(ctx, "NameIdx", "anything")
		if err != nil {
			t.Fatalf("QueryIndex failed: %v", err)
		}
		if len(results) != 1 || results[0].Name != "Filtered" {
			t.Fatalf("Expected the injected result, got %+v", results)
		}
	})

	t.Run("HelperMethods", func(t *testing.T) {
		mockStore := mock.New[*TestEntity]("Test")

		mockStore.SetData(map[string]*TestEntity{
			"1": {ID: "1", Name: "One"},
			"2": {ID: "2", Name: "Two"},
		})

		if mockStore.Count() != 2 {
			t.Fatalf("Expected count 2, got %d", mockStore.Count())
		}

		data := mockStore.GetData()
		if len(data) != 2 {
			t.Fatalf("Expected 2 items in data, got %d", len(data))
		}

		mockStore.Clear()
		if mockStore.Count() != 0 {
			t.Fatalf("Expected count 0 after clear, got %d", mockStore.Count())
		}
	})
}
