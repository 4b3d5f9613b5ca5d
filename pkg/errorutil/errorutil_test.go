package errorutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = errors.New("sentinel")

func TestExitErrorWithCode_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitErrorWithCode
		want string
	}{
		{"message and err", &ExitErrorWithCode{Code: 1, Message: "元素 3", Err: errSentinel}, "元素 3: sentinel"},
		{"err only", &ExitErrorWithCode{Code: 1, Err: errSentinel}, "sentinel"},
		{"message only", &ExitErrorWithCode{Code: 1, Message: "只有消息"}, "只有消息"},
		{"nothing", &ExitErrorWithCode{Code: 9}, "Exit with code: 9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestExitCodeFromError(t *testing.T) {
	assert.Equal(t, CodeSuccess, ExitCodeFromError(nil))
	assert.Equal(t, CodeInternalErr, ExitCodeFromError(errSentinel))

	wrapped := fmt.Errorf("外层: %w", NewExitErrorWithMessage(CodeOutOfRange, "越界", errSentinel))
	assert.Equal(t, CodeOutOfRange, ExitCodeFromError(wrapped))
	assert.True(t, HasExitCode(wrapped))
	assert.True(t, errors.Is(wrapped, errSentinel))
	assert.Equal(t, "越界", UserMessage(wrapped))
	assert.Equal(t, errSentinel, RootError(wrapped))
}

func TestFormatErrorAndCode(t *testing.T) {
	out, code := FormatErrorAndCode(NewExitErrorWithMessage(CodeInvalidData, "第 3 行", errSentinel, 3))
	assert.Equal(t, CodeInvalidData, code)
	assert.JSONEq(t, `{"code":66,"message":"第 3 行","error":"sentinel","cmd_exit_code":3}`, out)

	out, code = FormatErrorAndCode(errSentinel)
	assert.Equal(t, CodeInternalErr, code)
	assert.JSONEq(t, `{"code":74,"message":"未知错误","error":"sentinel"}`, out)
}
