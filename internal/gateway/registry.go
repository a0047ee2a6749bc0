// Package gateway binds tool names to SiYuan kernel endpoints and
// enforces each tool's argument contract before any network call.
package gateway

import (
	"encoding/json"
	"fmt"
)

// Kind selects the argument-encoding and response-decoding policy for a
// tool. The set is closed: every tool uses exactly one of these four.
type Kind int

const (
	// KindJSON forwards the argument object verbatim as a JSON body.
	KindJSON Kind = iota
	// KindAssetUpload reads local files and uploads them as repeated
	// multipart file parts for asset ingestion.
	KindAssetUpload
	// KindPutFile uploads a single file or creates a directory via
	// multipart metadata fields.
	KindPutFile
	// KindGetFile downloads a file and returns it base64-wrapped.
	KindGetFile
)

func (k Kind) String() string {
	switch k {
	case KindJSON:
		return "json"
	case KindAssetUpload:
		return "asset_upload"
	case KindPutFile:
		return "put_file"
	case KindGetFile:
		return "get_file"
	default:
		return "unknown"
	}
}

// ToolSpec is one registry entry: a tool name bound to a kernel endpoint,
// an encoding strategy, and an input schema. Specs are created once at
// startup from the static table and never mutated.
type ToolSpec struct {
	Name        string
	Endpoint    string
	Kind        Kind
	Description string
	// Schema is the raw JSON-schema document for the tool's arguments.
	Schema string
}

// InputSchema parses the spec's schema document. A malformed document
// degrades to an empty object schema rather than failing registration.
func (s ToolSpec) InputSchema() map[string]any {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(s.Schema), &parsed); err != nil || parsed == nil {
		return map[string]any{}
	}
	return parsed
}

// Registry maps tool names to specs. It is built once and read-only
// afterward, so concurrent invocations share it without locking.
type Registry struct {
	specs map[string]ToolSpec
	order []string
}

// NewRegistry builds the registry from the static tool table. Duplicate
// names are a programming error in the table and are rejected.
func NewRegistry() (*Registry, error) {
	r := &Registry{
		specs: make(map[string]ToolSpec, len(toolTable)),
		order: make([]string, 0, len(toolTable)),
	}
	for _, spec := range toolTable {
		if _, exists := r.specs[spec.Name]; exists {
			return nil, fmt.Errorf("duplicate tool name %q in registry table", spec.Name)
		}
		r.specs[spec.Name] = spec
		r.order = append(r.order, spec.Name)
	}
	return r, nil
}

// Lookup resolves a tool name. The second return is false when the name
// is not registered.
func (r *Registry) Lookup(name string) (ToolSpec, bool) {
	spec, ok := r.specs[name]
	return spec, ok
}

// Tools returns all specs in table order.
func (r *Registry) Tools() []ToolSpec {
	out := make([]ToolSpec, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.specs[name])
	}
	return out
}

// Len reports the number of registered tools.
func (r *Registry) Len() int {
	return len(r.order)
}
