package serrors_test

import (
	"errors"
	"testing"

	"bloodlink/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestTaxonomyKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrNotFound,
		serrors.ErrInvalidState,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	// Unauthorized and Forbidden must stay distinguishable: the HTTP layer
	// maps them to different status codes.
	require.NotEqual(t, serrors.ErrUnauthorized, serrors.ErrForbidden)
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrNotFound, "hospital %d not found", 42)
	require.Equal(t, "hospital 42 not found", e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrNotFound, base, "getting hospital")
	require.Equal(t, "getting hospital: db down", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrInvalidState)
	require.Equal(t, "INVALID_STATE", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrConflict, base, "creating donor")

	require.ErrorIs(t, e, serrors.ErrConflict)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrNotFound, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrForbidden, base, "transitioning request")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrForbidden, k)

	var ce customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, "root cause", ce.msg)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrInternal, base, "doing work")

	require.Equal(t, serrors.ErrInternal, e.Kind())
	require.Equal(t, "doing work", e.Message())
	require.Equal(t, base, e.Cause())
	require.Equal(t, base, errors.Unwrap(e))
}
