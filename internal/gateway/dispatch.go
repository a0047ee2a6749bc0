package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"siyuanmcp/internal/model"
	"siyuanmcp/internal/siyuan"
)

// fallbackFileName is used when an upload path has no extractable final
// segment (empty, ".", "..", or a bare separator).
const fallbackFileName = "file"

// defaultAssetsDir is where uploaded assets land when the caller does
// not name a directory.
const defaultAssetsDir = "/assets/"

// Backend performs the outbound HTTP calls. *siyuan.Client satisfies it;
// tests substitute fakes.
type Backend interface {
	PostJSON(ctx context.Context, endpoint string, body any) (any, error)
	PostMultipart(ctx context.Context, endpoint string, form *siyuan.Form) (any, error)
	PostJSONFile(ctx context.Context, endpoint string, body any) (any, error)
}

// Dispatcher resolves tool names against the registry and runs the
// matched spec's strategy. It holds no per-invocation state; a single
// Dispatcher serves all concurrent calls.
type Dispatcher struct {
	registry *Registry
	backend  Backend
	log      *slog.Logger
}

func NewDispatcher(registry *Registry, backend Backend, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{registry: registry, backend: backend, log: log}
}

// Registry exposes the dispatcher's tool table for listing.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Dispatch resolves name, validates rawArgs per the spec's strategy, and
// performs exactly one backend call. Validation failures return before
// any network or file I/O; a failed call never yields a partial result.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, rawArgs json.RawMessage) (any, error) {
	spec, ok := d.registry.Lookup(name)
	if !ok {
		return nil, model.Validationf("unknown tool: %s", name)
	}
	d.log.Debug("dispatching tool", "tool", name, "endpoint", spec.Endpoint, "kind", spec.Kind.String())

	switch spec.Kind {
	case KindJSON:
		return d.dispatchJSON(ctx, spec, rawArgs)
	case KindAssetUpload:
		return d.dispatchAssetUpload(ctx, spec, rawArgs)
	case KindPutFile:
		return d.dispatchPutFile(ctx, spec, rawArgs)
	case KindGetFile:
		return d.dispatchGetFile(ctx, spec, rawArgs)
	default:
		return nil, model.Internalf(nil, "tool %s has unknown strategy", name)
	}
}

// dispatchJSON forwards the argument object verbatim as the request body.
func (d *Dispatcher) dispatchJSON(ctx context.Context, spec ToolSpec, rawArgs json.RawMessage) (any, error) {
	args, verr := decodeArgs(rawArgs)
	if verr != nil {
		return nil, verr
	}
	return d.backend.PostJSON(ctx, spec.Endpoint, args)
}

// dispatchAssetUpload reads each named local file and uploads all of
// them as a repeated `file[]` multipart field alongside the target
// assets directory.
func (d *Dispatcher) dispatchAssetUpload(ctx context.Context, spec ToolSpec, rawArgs json.RawMessage) (any, error) {
	args, verr := decodeArgs(rawArgs)
	if verr != nil {
		return nil, verr
	}
	assetsDir, ok := optionalString(args, "assets_dir_path")
	if !ok {
		assetsDir = defaultAssetsDir
	}
	files, verr := stringArray(args, "files")
	if verr != nil {
		return nil, verr
	}

	form := siyuan.NewForm().Text("assetsDirPath", assetsDir)
	for _, filePath := range files {
		fileName, data, err := readFilePart(filePath)
		if err != nil {
			return nil, err
		}
		form.File("file[]", fileName, data)
	}
	return d.backend.PostMultipart(ctx, spec.Endpoint, form)
}

// dispatchPutFile uploads one file, or sends directory-creation metadata
// only when is_dir is true.
func (d *Dispatcher) dispatchPutFile(ctx context.Context, spec ToolSpec, rawArgs json.RawMessage) (any, error) {
	args, verr := decodeArgs(rawArgs)
	if verr != nil {
		return nil, verr
	}
	path, verr := requiredString(args, "path")
	if verr != nil {
		return nil, verr
	}
	isDir, hasIsDir := optionalBool(args, "is_dir")
	modTime, hasModTime := optionalUint(args, "mod_time")

	form := siyuan.NewForm().Text("path", path)
	if hasIsDir {
		form.Text("isDir", strconv.FormatBool(isDir))
	}
	if hasModTime {
		form.Text("modTime", strconv.FormatUint(modTime, 10))
	}
	if !isDir {
		filePath, verr := requiredString(args, "file_path")
		if verr != nil {
			return nil, verr
		}
		fileName, data, err := readFilePart(filePath)
		if err != nil {
			return nil, err
		}
		form.File("file", fileName, data)
	}
	return d.backend.PostMultipart(ctx, spec.Endpoint, form)
}

// dispatchGetFile downloads a workspace file; the client wraps the
// response bytes in the base64 envelope.
func (d *Dispatcher) dispatchGetFile(ctx context.Context, spec ToolSpec, rawArgs json.RawMessage) (any, error) {
	args, verr := decodeArgs(rawArgs)
	if verr != nil {
		return nil, verr
	}
	path, verr := requiredString(args, "path")
	if verr != nil {
		return nil, verr
	}
	return d.backend.PostJSONFile(ctx, spec.Endpoint, map[string]any{"path": path})
}

// readFilePart loads a local file for upload and derives the part's
// filename from the path's final segment.
func readFilePart(filePath string) (string, []byte, *model.GatewayError) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", nil, model.Internalf(err, "read file %s: %v", filePath, err)
	}
	fileName := strings.TrimSpace(filepath.Base(filePath))
	if fileName == "" || fileName == "." || fileName == ".." || fileName == string(filepath.Separator) {
		fileName = fallbackFileName
	}
	return fileName, data, nil
}
