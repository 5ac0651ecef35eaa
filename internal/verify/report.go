package verify

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// StepResult represents the outcome of one step of the flow
type StepResult struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Passed      bool    `json:"passed"`
	Error       string  `json:"error,omitempty"`
	DurationMS  float64 `json:"duration_ms"`
}

// Report represents the overall outcome of a verification run
type Report struct {
	RunID       string       `json:"run_id"`
	Timestamp   time.Time    `json:"timestamp"`
	BaseURL     string       `json:"base_url"`
	Steps       []StepResult `json:"steps"`
	Passed      int          `json:"passed"`
	Failed      int          `json:"failed"`
	SuccessRate float64      `json:"success_rate"`
	Artifacts   []string     `json:"artifacts"`
}

// NewReport creates an empty report for a run against baseURL.
func NewReport(baseURL string) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Timestamp: time.Now().UTC(),
		BaseURL:   baseURL,
		Artifacts: []string{},
	}
}

// Record appends the outcome of one step and updates the counters.
func (r *Report) Record(name, description string, elapsed time.Duration, err error) {
	res := StepResult{
		Name:        name,
		Description: description,
		Passed:      err == nil,
		DurationMS:  float64(elapsed.Milliseconds()),
	}
	if err != nil {
		res.Error = err.Error()
		r.Failed++
	} else {
		r.Passed++
	}
	r.Steps = append(r.Steps, res)
	if total := r.Passed + r.Failed; total > 0 {
		r.SuccessRate = float64(r.Passed) / float64(total) * 100
	}
}

// AddArtifact registers an evidence file produced during the run.
func (r *Report) AddArtifact(path string) {
	r.Artifacts = append(r.Artifacts, path)
}

// Success reports whether every recorded step passed.
func (r *Report) Success() bool {
	return r.Failed == 0 && r.Passed > 0
}

// WriteFile serializes the report as indented JSON, overwriting path.
func (r *Report) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write report to %s: %w", path, err)
	}
	return nil
}
