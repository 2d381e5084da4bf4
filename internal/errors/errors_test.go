package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCode(t *testing.T) {
	base := NotFound("timepoint tp-9")
	wrapped := Wrap(base, "loading pane")

	assert.Equal(t, CodeNotFound, GetCode(wrapped))
	assert.Equal(t, "loading pane: timepoint tp-9 not found", wrapped.Error())
	assert.True(t, stderrors.Is(wrapped, base))
}

func TestWrapPlainError(t *testing.T) {
	wrapped := Wrapf(fmt.Errorf("boom"), "step %d", 2)

	assert.Equal(t, CodeInternalError, GetCode(wrapped))
	assert.Equal(t, "step 2: boom", wrapped.Error())
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeInvalidInput, fmt.Errorf("bad id"))
	assert.Equal(t, CodeInvalidInput, GetCode(err))
	assert.True(t, IsAppError(err))
	assert.False(t, IsAppError(fmt.Errorf("plain")))
	assert.Equal(t, "UNKNOWN", GetCode(fmt.Errorf("plain")))
}

func TestStackTrace(t *testing.T) {
	err := Wrap(ExternalServiceError("stats", fmt.Errorf("connection refused")), "fetch tp-1")

	assert.Equal(t, CodeExternalService, GetCode(err))
	assert.Contains(t, StackTrace(err), "TestStackTrace")
	assert.Empty(t, StackTrace(InvalidInput("no stack")))
	assert.Empty(t, StackTrace(nil))
}
