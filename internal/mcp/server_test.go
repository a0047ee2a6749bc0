package mcp

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siyuanmcp/internal/gateway"
	"siyuanmcp/internal/model"
	"siyuanmcp/internal/siyuan"
	"siyuanmcp/internal/store"
)

type fakeBackend struct {
	result any
	err    error
	calls  int
}

func (f *fakeBackend) PostJSON(ctx context.Context, endpoint string, body any) (any, error) {
	f.calls++
	return f.result, f.err
}

func (f *fakeBackend) PostMultipart(ctx context.Context, endpoint string, form *siyuan.Form) (any, error) {
	f.calls++
	return f.result, f.err
}

func (f *fakeBackend) PostJSONFile(ctx context.Context, endpoint string, body any) (any, error) {
	f.calls++
	return f.result, f.err
}

func newTestServer(t *testing.T, backend gateway.Backend, audit *store.AuditStore) *Server {
	t.Helper()
	registry, err := gateway.NewRegistry()
	require.NoError(t, err)
	return NewServer(ServerOptions{
		Dispatcher: gateway.NewDispatcher(registry, backend, nil),
		Audit:      audit,
		Version:    "test",
	})
}

func mustSpec(t *testing.T, registry *gateway.Registry, name string) gateway.ToolSpec {
	t.Helper()
	spec, ok := registry.Lookup(name)
	require.True(t, ok, "tool %s not registered", name)
	return spec
}

func TestCallToolSuccess(t *testing.T) {
	backend := &fakeBackend{result: map[string]any{"code": float64(0), "msg": "", "data": nil}}
	srv := newTestServer(t, backend, nil)
	registry, err := gateway.NewRegistry()
	require.NoError(t, err)
	spec := mustSpec(t, registry, "siyuan_notebook_ls")

	res := srv.callTool(context.Background(), spec, json.RawMessage(`{}`))

	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*sdk.TextContent)
	require.True(t, ok)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &parsed))
	assert.Equal(t, float64(0), parsed["code"])
	assert.Equal(t, 1, backend.calls)
}

func TestCallToolValidationError(t *testing.T) {
	backend := &fakeBackend{}
	srv := newTestServer(t, backend, nil)
	registry, err := gateway.NewRegistry()
	require.NoError(t, err)
	spec := mustSpec(t, registry, "siyuan_file_get")

	res := srv.callTool(context.Background(), spec, json.RawMessage(`{}`))

	require.True(t, res.IsError)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*sdk.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "validation:")
	assert.Contains(t, text.Text, "`path`")
	assert.Zero(t, backend.calls, "validation failures must not reach the backend")
}

func TestCallToolJSONStrategySkipsSchemaChecks(t *testing.T) {
	// JSON-strategy tools forward the argument object verbatim; field
	// checks are the backend's job, so an empty object is not an error.
	backend := &fakeBackend{result: map[string]any{"code": float64(0)}}
	srv := newTestServer(t, backend, nil)
	registry, err := gateway.NewRegistry()
	require.NoError(t, err)

	res := srv.callTool(context.Background(), mustSpec(t, registry, "siyuan_block_get_kramdown"), json.RawMessage(`{}`))

	require.False(t, res.IsError)
	assert.Equal(t, 1, backend.calls)
}

func TestCallToolBackendError(t *testing.T) {
	backend := &fakeBackend{err: model.Internalf(nil, "connection refused")}
	srv := newTestServer(t, backend, nil)
	registry, err := gateway.NewRegistry()
	require.NoError(t, err)
	spec := mustSpec(t, registry, "siyuan_notebook_ls")

	res := srv.callTool(context.Background(), spec, nil)

	require.True(t, res.IsError)
	text, ok := res.Content[0].(*sdk.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "internal:")
}

func TestCallToolRecordsAudit(t *testing.T) {
	audit := store.NewAuditStore(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, audit.Init(context.Background()))
	defer audit.Close()

	backend := &fakeBackend{result: map[string]any{"code": float64(0)}}
	srv := newTestServer(t, backend, audit)
	registry, err := gateway.NewRegistry()
	require.NoError(t, err)

	ok := srv.callTool(context.Background(), mustSpec(t, registry, "siyuan_notebook_ls"), json.RawMessage(`{}`))
	require.False(t, ok.IsError)
	bad := srv.callTool(context.Background(), mustSpec(t, registry, "siyuan_file_get"), json.RawMessage(`{}`))
	require.True(t, bad.IsError)

	rows, err2 := audit.Recent(context.Background(), 10)
	require.NoError(t, err2)
	require.Len(t, rows, 2)

	byTool := make(map[string]model.Invocation, len(rows))
	for _, row := range rows {
		byTool[row.Tool] = row
	}

	failed := byTool["siyuan_file_get"]
	assert.False(t, failed.OK)
	assert.Equal(t, "validation", failed.ErrorKind)
	assert.Contains(t, failed.ErrorDetail, "`path`")

	passed := byTool["siyuan_notebook_ls"]
	assert.True(t, passed.OK)
	assert.Empty(t, passed.ErrorKind)
	assert.NotEmpty(t, passed.ID)
}

func TestRawArguments(t *testing.T) {
	assert.Nil(t, rawArguments(nil))
	assert.Equal(t, json.RawMessage(`{"a":1}`), rawArguments(json.RawMessage(`{"a":1}`)))
	assert.JSONEq(t, `{"k":"v"}`, string(rawArguments(map[string]any{"k": "v"})))
}
