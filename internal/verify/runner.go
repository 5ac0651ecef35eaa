package verify

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
)

// The landing/login flow contract. The landing page must render the hero
// heading, expose one Login button, and clicking it must render the login
// heading.
const (
	LandingHeading = "The Future of AI Automation is Here"
	LoginHeading   = "Welcome to AuraOS"
	LoginControl   = "Login"

	LandingShot = "landing_page.png"
	LoginShot   = "login_page.png"
)

// Flow describes one landing-to-login verification pass: where to go, what to
// expect, and where the evidence goes. Defaults are the fixed contract above;
// tests construct variants to provoke specific failures.
type Flow struct {
	LandingPath    string
	LandingHeading string
	LoginControl   string
	LoginHeading   string
	LandingShot    string
	LoginShot      string
}

// DefaultFlow returns the standard flow with evidence written under outDir.
func DefaultFlow(outDir string) Flow {
	return Flow{
		LandingPath:    "/",
		LandingHeading: LandingHeading,
		LoginControl:   LoginControl,
		LoginHeading:   LoginHeading,
		LandingShot:    filepath.Join(outDir, LandingShot),
		LoginShot:      filepath.Join(outDir, LoginShot),
	}
}

// Runner drives a fixed step sequence against one page handle, failing fast
// on the first unmet expectation. The page is externally owned; the runner
// never closes it.
type Runner struct {
	page    playwright.Page
	baseURL string
	timeout time.Duration
	report  *Report
}

// NewRunner creates a runner bound to an open page.
func NewRunner(page playwright.Page, baseURL string, timeout time.Duration) *Runner {
	return &Runner{
		page:    page,
		baseURL: baseURL,
		timeout: timeout,
		report:  NewReport(baseURL),
	}
}

// Report returns the run report accumulated so far.
func (r *Runner) Report() *Report { return r.report }

// Run executes the flow steps in order. The first failure aborts the
// remaining steps and is returned as one of the typed errors.
func (r *Runner) Run(flow Flow) error {
	steps := []struct {
		name string
		desc string
		fn   func() error
	}{
		{"navigate", "open the landing page", func() error {
			return r.navigate(flow.LandingPath)
		}},
		{"landing-heading", fmt.Sprintf("heading %q is visible", flow.LandingHeading), func() error {
			return r.expectHeading(flow.LandingHeading)
		}},
		{"landing-screenshot", "capture landing page evidence", func() error {
			return r.screenshot(flow.LandingShot)
		}},
		{"click-login", fmt.Sprintf("click the %q button", flow.LoginControl), func() error {
			return r.clickButton(flow.LoginControl)
		}},
		{"login-heading", fmt.Sprintf("heading %q is visible", flow.LoginHeading), func() error {
			return r.expectHeading(flow.LoginHeading)
		}},
		{"login-screenshot", "capture login page evidence", func() error {
			return r.screenshot(flow.LoginShot)
		}},
	}

	for _, step := range steps {
		start := time.Now()
		err := step.fn()
		r.report.Record(step.name, step.desc, time.Since(start), err)
		if err != nil {
			log.Printf("[verify] FAIL %s: %v", step.name, err)
			return err
		}
		log.Printf("[verify] ok   %s (%s)", step.name, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

func (r *Runner) navigate(path string) error {
	url := r.baseURL + path
	if _, err := r.page.Goto(url); err != nil {
		if strings.Contains(err.Error(), "ERR_TOO_MANY_REDIRECTS") {
			return &NavigationError{URL: url, Err: fmt.Errorf("redirect loop (check base URL port / login redirect configuration): %w", err)}
		}
		return &NavigationError{URL: url, Err: err}
	}
	return nil
}

func (r *Runner) expectHeading(text string) error {
	heading := r.page.GetByRole(*playwright.AriaRoleHeading, playwright.PageGetByRoleOptions{
		Name:  text,
		Exact: playwright.Bool(true),
	})
	err := heading.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(r.timeout.Milliseconds())),
	})
	if err != nil {
		return &VisibilityTimeoutError{Role: "heading", Name: text, Timeout: r.timeout, Err: err}
	}
	return nil
}

func (r *Runner) clickButton(name string) error {
	button := r.page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{
		Name:  name,
		Exact: playwright.Bool(true),
	})
	count, err := button.Count()
	if err != nil {
		return fmt.Errorf("could not resolve button %q: %w", name, err)
	}
	if count != 1 {
		return &ElementResolutionError{Role: "button", Name: name, Matches: count}
	}
	if err := button.Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(float64(r.timeout.Milliseconds())),
	}); err != nil {
		return fmt.Errorf("could not click button %q: %w", name, err)
	}
	return nil
}

func (r *Runner) screenshot(path string) error {
	if _, err := r.page.Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String(path),
	}); err != nil {
		return fmt.Errorf("could not capture screenshot %s: %w", path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("screenshot %s was not written: %w", path, err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("screenshot %s is empty", path)
	}
	r.report.AddArtifact(path)
	return nil
}
