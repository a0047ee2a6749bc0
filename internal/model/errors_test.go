package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationf(t *testing.T) {
	err := Validationf("missing or invalid `%s`", "path")
	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, "validation: missing or invalid `path`", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestInternalf_WrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internalf(cause, "post %s: %v", "/api/query/sql", cause)
	assert.Equal(t, KindInternal, err.Kind)
	assert.ErrorIs(t, err, cause)
}

func TestGatewayError_ErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("dispatch: %w", Validationf("unknown tool: %s", "x"))
	var gerr *GatewayError
	require.True(t, errors.As(wrapped, &gerr))
	assert.Equal(t, KindValidation, gerr.Kind)
}
