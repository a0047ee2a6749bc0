package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siyuanmcp/internal/siyuan"
)

// End-to-end through the real HTTP client: the SQL-query tool issues one
// POST with the exact argument object and returns the backend's parsed
// JSON response unchanged.
func TestDispatch_SQLQueryEndToEnd(t *testing.T) {
	var callCount atomic.Int32
	var gotPath, gotAuth string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callCount.Add(1)
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":0,"data":[{"1":1}]}`))
	}))
	defer srv.Close()

	client := siyuan.NewClient(srv.URL, "kernel-token", time.Second)
	registry, err := NewRegistry()
	require.NoError(t, err)
	d := NewDispatcher(registry, client, nil)

	result, err := d.Dispatch(context.Background(), "siyuan_sql_query", json.RawMessage(`{"stmt":"SELECT 1"}`))
	require.NoError(t, err)

	assert.Equal(t, int32(1), callCount.Load())
	assert.Equal(t, "/api/query/sql", gotPath)
	assert.Equal(t, "Token kernel-token", gotAuth)
	assert.JSONEq(t, `{"stmt":"SELECT 1"}`, string(gotBody))

	obj, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(0), obj["code"])
	data, ok := obj["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)
}
