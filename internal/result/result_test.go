package result

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/places/internal/errors"
)

func TestOk(t *testing.T) {
	res := Ok("session-token")

	assert.True(t, res.Success())
	assert.Equal(t, "session-token", res.Data())
	assert.Nil(t, res.Err())
	assert.Equal(t, "", res.Code())
}

func TestFail(t *testing.T) {
	res := Fail[string](apperrors.Validation(apperrors.CodeInvalidEmail, "invalid email format"))

	assert.False(t, res.Success())
	assert.Equal(t, "", res.Data())
	assert.NotNil(t, res.Err())
	assert.Equal(t, apperrors.CodeInvalidEmail, res.Code())
	assert.Equal(t, "invalid email format", res.Err().Message)
}

func TestFailWith(t *testing.T) {
	res := FailWith[int](apperrors.CodeNetworkError, "connection refused", apperrors.ErrUnavailable)

	assert.False(t, res.Success())
	assert.Equal(t, apperrors.CodeNetworkError, res.Code())
	assert.True(t, apperrors.Is(res.Err(), apperrors.ErrUnavailable))
}

func TestZeroValueResultIsFailure(t *testing.T) {
	// A zero Result must never read as success; callers can only build
	// successful values through Ok.
	var res Result[int]
	assert.False(t, res.Success())
}
