// Package mcp adapts the dispatch engine to the Model Context Protocol.
// The server speaks MCP over stdio; logs go to stderr so stdout stays a
// clean protocol channel.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"siyuanmcp/internal/gateway"
	"siyuanmcp/internal/model"
	"siyuanmcp/internal/store"
)

// ServerOptions for running the MCP server.
type ServerOptions struct {
	Dispatcher *gateway.Dispatcher
	// Audit is optional; nil disables invocation recording.
	Audit   *store.AuditStore
	Log     *slog.Logger
	Version string
}

type Server struct {
	dispatcher *gateway.Dispatcher
	audit      *store.AuditStore
	log        *slog.Logger
	srv        *sdk.Server
}

// NewServer builds the MCP server and registers every registry tool.
func NewServer(opts ServerOptions) *Server {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		dispatcher: opts.Dispatcher,
		audit:      opts.Audit,
		log:        log,
		srv: sdk.NewServer(&sdk.Implementation{
			Name:    "siyuanmcp",
			Version: opts.Version,
		}, nil),
	}
	for _, spec := range s.dispatcher.Registry().Tools() {
		s.srv.AddTool(&sdk.Tool{
			Name:        spec.Name,
			Description: spec.Description,
			InputSchema: spec.InputSchema(),
		}, s.toolHandler(spec))
	}
	log.Debug("registered tools", "count", s.dispatcher.Registry().Len())
	return s
}

// Run serves MCP over stdio until ctx is cancelled or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.srv.Run(ctx, &sdk.StdioTransport{})
}

// toolHandler adapts one registry entry to the SDK handler signature.
func (s *Server) toolHandler(spec gateway.ToolSpec) sdk.ToolHandler {
	return func(ctx context.Context, req *sdk.CallToolRequest) (*sdk.CallToolResult, error) {
		return s.callTool(ctx, spec, rawArguments(req.Params.Arguments)), nil
	}
}

// callTool runs one dispatch. Failures become tool results with IsError
// set, carrying the kind-tagged message; the protocol layer itself never
// fails for a bad tool call.
func (s *Server) callTool(ctx context.Context, spec gateway.ToolSpec, args json.RawMessage) *sdk.CallToolResult {
	started := time.Now()
	result, err := s.dispatcher.Dispatch(ctx, spec.Name, args)
	s.recordInvocation(ctx, spec, started, err)
	if err != nil {
		s.log.Warn("tool call failed", "tool", spec.Name, "error", err)
		return errorResult(err)
	}

	payload, merr := json.Marshal(result)
	if merr != nil {
		return errorResult(model.Internalf(merr, "encode result: %v", merr))
	}
	return &sdk.CallToolResult{
		Content: []sdk.Content{&sdk.TextContent{Text: string(payload)}},
	}
}

// rawArguments normalizes the SDK's argument payload to raw JSON.
func rawArguments(v any) json.RawMessage {
	switch a := v.(type) {
	case nil:
		return nil
	case json.RawMessage:
		return a
	case []byte:
		return a
	default:
		data, err := json.Marshal(a)
		if err != nil {
			return nil
		}
		return data
	}
}

// recordInvocation writes the audit row when auditing is enabled. Store
// failures are logged and never propagate into the tool result.
func (s *Server) recordInvocation(ctx context.Context, spec gateway.ToolSpec, started time.Time, dispatchErr error) {
	if s.audit == nil {
		return
	}
	inv := model.Invocation{
		ID:          uuid.NewString(),
		Tool:        spec.Name,
		Endpoint:    spec.Endpoint,
		OK:          dispatchErr == nil,
		DurationMS:  time.Since(started).Milliseconds(),
		StartedUnix: started.Unix(),
	}
	var gerr *model.GatewayError
	if errors.As(dispatchErr, &gerr) {
		inv.ErrorKind = string(gerr.Kind)
		inv.ErrorDetail = gerr.Message
	} else if dispatchErr != nil {
		inv.ErrorKind = string(model.KindInternal)
		inv.ErrorDetail = dispatchErr.Error()
	}
	if err := s.audit.Record(ctx, inv); err != nil {
		s.log.Warn("audit record failed", "tool", spec.Name, "error", err)
	}
}

func errorResult(err error) *sdk.CallToolResult {
	return &sdk.CallToolResult{
		IsError: true,
		Content: []sdk.Content{&sdk.TextContent{Text: err.Error()}},
	}
}
