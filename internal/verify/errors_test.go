package verify

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNavigationError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := error(&NavigationError{URL: "http://localhost:5000/", Err: cause})

	require.Contains(t, err.Error(), "http://localhost:5000/")
	require.ErrorIs(t, err, cause)

	var navErr *NavigationError
	require.ErrorAs(t, fmt.Errorf("run failed: %w", err), &navErr)
	require.Equal(t, "http://localhost:5000/", navErr.URL)
}

func TestVisibilityTimeoutError(t *testing.T) {
	cause := errors.New("timeout 2000ms exceeded")
	err := error(&VisibilityTimeoutError{
		Role:    "heading",
		Name:    LandingHeading,
		Timeout: 2 * time.Second,
		Err:     cause,
	})

	require.Contains(t, err.Error(), LandingHeading)
	require.Contains(t, err.Error(), "2s")
	require.ErrorIs(t, err, cause)
}

func TestElementResolutionErrorZeroMatches(t *testing.T) {
	err := &ElementResolutionError{Role: "button", Name: LoginControl, Matches: 0}
	require.Contains(t, err.Error(), `no button "Login"`)
}

func TestElementResolutionErrorManyMatches(t *testing.T) {
	err := &ElementResolutionError{Role: "button", Name: LoginControl, Matches: 3}
	require.Contains(t, err.Error(), "3 elements")
	require.Contains(t, err.Error(), "exactly one")
}
