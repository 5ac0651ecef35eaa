package verify

import (
	"fmt"
	"time"
)

// NavigationError means the target address could not be reached or the
// navigation itself failed before any expectation was checked.
type NavigationError struct {
	URL string
	Err error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigation to %s failed: %v", e.URL, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// VisibilityTimeoutError means an expected element did not become visible
// within the allotted time.
type VisibilityTimeoutError struct {
	Role    string
	Name    string
	Timeout time.Duration
	Err     error
}

func (e *VisibilityTimeoutError) Error() string {
	return fmt.Sprintf("%s %q did not become visible within %s: %v", e.Role, e.Name, e.Timeout, e.Err)
}

func (e *VisibilityTimeoutError) Unwrap() error { return e.Err }

// ElementResolutionError means an interactive control did not resolve to
// exactly one match.
type ElementResolutionError struct {
	Role    string
	Name    string
	Matches int
}

func (e *ElementResolutionError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("no %s %q found on page", e.Role, e.Name)
	}
	return fmt.Sprintf("%d elements match %s %q, expected exactly one", e.Matches, e.Role, e.Name)
}
