package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, ToDomainError(nil))
	})

	t.Run("wrapped domain error is unwrapped", func(t *testing.T) {
		wrapped := fmt.Errorf("upload: %w", NewMissingColumn("hire date"))
		de := ToDomainError(wrapped)
		require.NotNil(t, de)
		assert.Equal(t, CodeLoadFailed, de.Code)
		assert.Equal(t, "missing expected column: hire date", de.Message)
		assert.Equal(t, "hire date", de.Details["column"])
		assert.Equal(t, http.StatusUnprocessableEntity, de.HTTPStatus)
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		de := ToDomainError(errors.New("boom"))
		assert.Equal(t, CodeInternal, de.Code)
		assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	})
}

func TestLoadErrorMessageKeepsCause(t *testing.T) {
	cause := errors.New("zip: not a valid zip file")
	err := NewLoadError("failed to read spreadsheet", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to read spreadsheet: zip: not a valid zip file", err.Error())
	assert.True(t, HasCode(err, CodeLoadFailed))
	assert.False(t, HasCode(err, CodeNoDataset))
}
