package siyuan

import (
	"fmt"

	"siyuanmcp/internal/model"
)

// fromClientError wraps a transport-level failure as an internal gateway
// error carrying the underlying cause's message.
func fromClientError(cause error, format string, args ...any) *model.GatewayError {
	return model.Internalf(cause, "%s: %v", fmt.Sprintf(format, args...), cause)
}
