package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

func setupTestStore(t *testing.T) Store {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		s.Close()
	})
	return s
}

func createTestOperation(t *testing.T, s Store, kind string) *OperationRecord {
	t.Helper()
	record := &OperationRecord{
		ID:       uuid.NewString(),
		Kind:     kind,
		Request:  json.RawMessage(`{"location":"europe-west4"}`),
		Response: json.RawMessage(`{"machine_type":"cloud-tpu"}`),
	}
	require.NoError(t, s.CreateOperation(context.Background(), record))
	return record
}

// =============================================================================
// Create / Get Tests
// =============================================================================

func TestCreateOperation_RoundTrip(t *testing.T) {
	s := setupTestStore(t)
	created := createTestOperation(t, s, "machine-spec")

	got, err := s.GetOperation(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "machine-spec", got.Kind)
	assert.JSONEq(t, `{"location":"europe-west4"}`, string(got.Request))
	assert.JSONEq(t, `{"machine_type":"cloud-tpu"}`, string(got.Response))
	assert.Empty(t, got.Error)
	assert.WithinDuration(t, time.Now(), got.CreatedAt, 5*time.Second)
}

func TestCreateOperation_FailedResolution(t *testing.T) {
	s := setupTestStore(t)
	record := &OperationRecord{
		ID:      uuid.NewString(),
		Kind:    "machine-spec",
		Request: json.RawMessage(`{"location":"asia-east1"}`),
		Error:   `unsupported accelerator location "asia-east1"`,
	}
	require.NoError(t, s.CreateOperation(context.Background(), record))

	got, err := s.GetOperation(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Response)
	assert.Equal(t, record.Error, got.Error)
}

func TestCreateOperation_DuplicateID(t *testing.T) {
	s := setupTestStore(t)
	created := createTestOperation(t, s, "machine-spec")

	err := s.CreateOperation(context.Background(), &OperationRecord{
		ID:      created.ID,
		Kind:    "machine-spec",
		Request: json.RawMessage(`{}`),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestGetOperation_NotFound(t *testing.T) {
	s := setupTestStore(t)
	_, err := s.GetOperation(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// =============================================================================
// List / Count Tests
// =============================================================================

func TestListOperations_NewestFirst(t *testing.T) {
	s := setupTestStore(t)
	for i := 0; i < 3; i++ {
		record := &OperationRecord{
			ID:        fmt.Sprintf("op-%d", i),
			Kind:      "image-uri",
			Request:   json.RawMessage(`{}`),
			CreatedAt: time.Date(2024, 1, 1, 0, 0, i, 0, time.UTC),
		}
		require.NoError(t, s.CreateOperation(context.Background(), record))
	}

	records, err := s.ListOperations(context.Background(), DefaultListOptions())
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "op-2", records[0].ID)
	assert.Equal(t, "op-0", records[2].ID)
}

func TestListOperations_Pagination(t *testing.T) {
	s := setupTestStore(t)
	for i := 0; i < 5; i++ {
		createTestOperation(t, s, "reference-model")
	}

	page, err := s.ListOperations(context.Background(), ListOptions{Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := s.ListOperations(context.Background(), ListOptions{Limit: 10, Offset: 4})
	require.NoError(t, err)
	assert.Len(t, rest, 1)
}

func TestListOperationsByKind(t *testing.T) {
	s := setupTestStore(t)
	createTestOperation(t, s, "machine-spec")
	createTestOperation(t, s, "machine-spec")
	createTestOperation(t, s, "image-uri")

	records, err := s.ListOperationsByKind(context.Background(), "machine-spec", DefaultListOptions())
	require.NoError(t, err)
	assert.Len(t, records, 2)
	for _, record := range records {
		assert.Equal(t, "machine-spec", record.Kind)
	}
}

func TestCountOperations(t *testing.T) {
	s := setupTestStore(t)
	count, err := s.CountOperations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	createTestOperation(t, s, "machine-spec")
	createTestOperation(t, s, "image-uri")

	count, err = s.CountOperations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
