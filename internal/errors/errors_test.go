package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Error(t *testing.T) {
	err := Validation(CodeInvalidEmail, "invalid email format")
	assert.Equal(t, "INVALID_EMAIL: invalid email format", err.Error())
}

func TestDomainError_Unwrap(t *testing.T) {
	t.Run("ValidationCategorizedAsInvalidInput", func(t *testing.T) {
		err := Validation(CodeInvalidCoordinates, "latitude out of range")
		assert.True(t, Is(err, ErrInvalidInput))
		assert.False(t, Is(err, ErrUnavailable))
	})

	t.Run("InfrastructureCategorizedAsUnavailable", func(t *testing.T) {
		err := Infrastructure(CodeNetworkError, "connection refused")
		assert.True(t, Is(err, ErrUnavailable))
		assert.False(t, Is(err, ErrInvalidInput))
	})

	t.Run("WrappedDomainErrorKeepsCategory", func(t *testing.T) {
		err := Wrap(Validation(CodeInvalidPassword, "too short"), "register")
		assert.True(t, Is(err, ErrInvalidInput))
	})
}

func TestAsDomainError(t *testing.T) {
	t.Run("DirectDomainError", func(t *testing.T) {
		err := Validation(CodeQueryTooShort, "query too short")
		domainErr := AsDomainError(err)
		assert.NotNil(t, domainErr)
		assert.Equal(t, CodeQueryTooShort, domainErr.Code)
	})

	t.Run("WrappedDomainError", func(t *testing.T) {
		err := fmt.Errorf("search: %w", Validation(CodeQueryTooShort, "query too short"))
		domainErr := AsDomainError(err)
		assert.NotNil(t, domainErr)
		assert.Equal(t, CodeQueryTooShort, domainErr.Code)
	})

	t.Run("GenericError", func(t *testing.T) {
		assert.Nil(t, AsDomainError(New("boom")))
	})
}

func TestCoerce(t *testing.T) {
	t.Run("NilError", func(t *testing.T) {
		assert.Nil(t, Coerce(nil, CodeNetworkError, "network error"))
	})

	t.Run("DomainErrorPassesThrough", func(t *testing.T) {
		original := Validation(CodeInvalidEmail, "invalid email format")
		coerced := Coerce(original, CodeNetworkError, "network error")
		assert.Same(t, original, coerced)
	})

	t.Run("GenericErrorKeepsMessage", func(t *testing.T) {
		coerced := Coerce(New("connection reset"), CodeFetchFailed, "fetch failed")
		assert.Equal(t, CodeFetchFailed, coerced.Code)
		assert.Equal(t, "connection reset", coerced.Message)
		assert.True(t, Is(coerced, ErrUnavailable))
	})

	t.Run("EmptyMessageUsesFallback", func(t *testing.T) {
		coerced := Coerce(New(""), CodeLogoutError, "Logout failed")
		assert.Equal(t, "Logout failed", coerced.Message)
	})
}

func TestWrap(t *testing.T) {
	t.Run("NilReturnsNil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "context"))
	})

	t.Run("PreservesChain", func(t *testing.T) {
		err := Wrap(ErrNotFound, "location lookup")
		assert.True(t, Is(err, ErrNotFound))
		assert.Equal(t, "location lookup: not found", err.Error())
	})
}
