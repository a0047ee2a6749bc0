package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siyuanmcp/internal/model"
)

func newTestStore(t *testing.T) *AuditStore {
	t.Helper()
	s := NewAuditStore(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, s.Init(context.Background()))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAuditStore_RecordAndRecent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := model.Invocation{
		ID:          uuid.NewString(),
		Tool:        "siyuan_sql_query",
		Endpoint:    "/api/query/sql",
		OK:          true,
		DurationMS:  12,
		StartedUnix: 1700000000,
	}
	second := model.Invocation{
		ID:          uuid.NewString(),
		Tool:        "siyuan_file_get",
		Endpoint:    "/api/file/getFile",
		OK:          false,
		ErrorKind:   "validation",
		ErrorDetail: "missing or invalid `path`",
		DurationMS:  1,
		StartedUnix: 1700000100,
	}
	require.NoError(t, s.Record(ctx, first))
	require.NoError(t, s.Record(ctx, second))

	recent, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	// Most recent first.
	assert.Equal(t, second, recent[0])
	assert.Equal(t, first, recent[1])
}

func TestAuditStore_RecentHonorsLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(ctx, model.Invocation{
			ID:          uuid.NewString(),
			Tool:        "siyuan_notebook_ls",
			Endpoint:    "/api/notebook/lsNotebooks",
			OK:          true,
			StartedUnix: int64(1700000000 + i),
		}))
	}
	recent, err := s.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, recent, 3)
}

func TestAuditStore_RecordRequiresID(t *testing.T) {
	s := newTestStore(t)
	err := s.Record(context.Background(), model.Invocation{Tool: "x"})
	require.Error(t, err)
}

func TestAuditStore_InitIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Init(context.Background()))
}
