package suite

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xolan/rfext/internal/keyword"
	"github.com/xolan/rfext/internal/logging"
)

// Status is the verdict of one step.
type Status string

const (
	StatusPass    Status = "PASS"
	StatusFail    Status = "FAIL"
	StatusSkipped Status = "SKIP"
)

// StepResult records how one step went.
type StepResult struct {
	Index    int
	Keyword  string
	Status   Status
	Outcome  keyword.Outcome
	Err      error
	Duration time.Duration
}

// Report is the result of running a suite.
type Report struct {
	RunID    string
	Suite    string
	Steps    []StepResult
	Duration time.Duration
}

// Passed reports whether every step passed.
func (r Report) Passed() bool {
	for _, s := range r.Steps {
		if s.Status != StatusPass {
			return false
		}
	}
	return true
}

// Count returns the number of steps with status st.
func (r Report) Count(st Status) int {
	n := 0
	for _, s := range r.Steps {
		if s.Status == st {
			n++
		}
	}
	return n
}

// Summary returns a one-line tally such as "3 steps, 2 passed, 1 failed, 0 skipped".
func (r Report) Summary() string {
	return fmt.Sprintf("%d steps, %d passed, %d failed, %d skipped",
		len(r.Steps), r.Count(StatusPass), r.Count(StatusFail), r.Count(StatusSkipped))
}

// Runner executes suites against a keyword library.
type Runner struct {
	lib *keyword.Library
	out io.Writer
	now func() time.Time
}

// NewRunner creates a Runner. Step verdicts are written to out; nil
// discards them.
func NewRunner(lib *keyword.Library, out io.Writer) *Runner {
	if out == nil {
		out = io.Discard
	}
	return &Runner{lib: lib, out: out, now: time.Now}
}

// Run executes the steps of s in order. A step passes when the keyword ran
// and its success matches the step's expectation. With FailFast the
// remaining steps are skipped after the first failure.
func (r *Runner) Run(s *Suite) Report {
	report := Report{RunID: uuid.NewString(), Suite: s.Name}
	logger := logging.GetLogger("suite").With().Str("suite", s.Name).Str("run", report.RunID).Logger()
	start := r.now()

	failed := false
	for i, step := range s.Steps {
		res := StepResult{Index: i + 1, Keyword: step.Keyword}
		if failed && s.FailFast {
			res.Status = StatusSkipped
			report.Steps = append(report.Steps, res)
			r.print(res, step)
			continue
		}

		stepStart := r.now()
		res.Outcome, res.Err = r.runStep(step)
		res.Duration = r.now().Sub(stepStart)

		if res.Err == nil && res.Outcome.Success != step.ExpectFailure {
			res.Status = StatusPass
		} else {
			res.Status = StatusFail
			failed = true
		}
		logger.Debug().Int("step", res.Index).Str("keyword", step.Keyword).Str("status", string(res.Status)).Msg("step done")

		report.Steps = append(report.Steps, res)
		r.print(res, step)
	}

	report.Duration = r.now().Sub(start)
	logger.Info().Str("summary", report.Summary()).Msg("suite done")
	return report
}

func (r *Runner) runStep(step Step) (keyword.Outcome, error) {
	pos, named, err := step.Arguments()
	if err != nil {
		return keyword.Outcome{}, fmt.Errorf("%w: %v", keyword.ErrBadArgument, err)
	}
	return r.lib.Run(step.Keyword, pos, named)
}

func (r *Runner) print(res StepResult, step Step) {
	line := fmt.Sprintf("[%s] %d. %s", res.Status, res.Index, res.Keyword)
	if step.ExpectFailure {
		line += " (expect failure)"
	}
	_, _ = fmt.Fprintln(r.out, line)

	var details []string
	switch {
	case res.Err != nil:
		details = []string{"error: " + res.Err.Error()}
	case len(res.Outcome.Lines) > 0:
		details = res.Outcome.Lines
	case res.Outcome.Message != "":
		details = strings.Split(res.Outcome.Message, "\n")
	}
	for _, d := range details {
		_, _ = fmt.Fprintln(r.out, "    "+d)
	}
}
