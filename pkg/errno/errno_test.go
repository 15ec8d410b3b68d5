package errno

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestConvertErr(t *testing.T) {
	t.Run("nil maps to success", func(t *testing.T) {
		assert.Equal(t, Success, ConvertErr(nil))
	})

	t.Run("errno passes through", func(t *testing.T) {
		converted := ConvertErr(NotFoundErr)
		assert.Equal(t, NotFoundErr.ErrCode, converted.ErrCode)
	})

	t.Run("wrapped errno keeps its code", func(t *testing.T) {
		wrapped := pkgerrors.WithMessage(ForbiddenErr, "delete comment")
		converted := ConvertErr(wrapped)
		assert.Equal(t, ForbiddenErr.ErrCode, converted.ErrCode)
	})

	t.Run("unknown error falls back to service code", func(t *testing.T) {
		converted := ConvertErr(errors.New("boom"))
		assert.Equal(t, ServiceErr.ErrCode, converted.ErrCode)
		assert.Equal(t, "boom", converted.ErrMsg)
	})
}

func TestWithMessage(t *testing.T) {
	custom := RequestErr.WithMessage("VideoId must be provided")
	assert.Equal(t, RequestErr.ErrCode, custom.ErrCode)
	assert.Equal(t, "VideoId must be provided", custom.ErrMsg)
	// the original stays untouched
	assert.NotEqual(t, custom.ErrMsg, RequestErr.ErrMsg)
}
