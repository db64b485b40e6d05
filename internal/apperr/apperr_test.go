package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/nikolayk812/petshop/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsFindsWrappedError(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("cartService.Get: %w", apperr.Wrap(apperr.CodeDependency, cause, "backend unavailable"))

	typed := apperr.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, apperr.CodeDependency, typed.Code())
	assert.Equal(t, "backend unavailable", typed.Message())
	assert.EqualError(t, typed, "backend unavailable: connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestAsPlainError(t *testing.T) {
	assert.Nil(t, apperr.As(errors.New("plain")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, apperr.HTTPStatus(apperr.CodeValidation))
	assert.Equal(t, http.StatusNotFound, apperr.HTTPStatus(apperr.CodeNotFound))
	assert.Equal(t, http.StatusBadGateway, apperr.HTTPStatus(apperr.CodeDependency))
	assert.Equal(t, http.StatusInternalServerError, apperr.HTTPStatus(apperr.Code("???")))
}
