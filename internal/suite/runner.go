package suite

import (
	"context"
	"log/slog"

	"github.com/josephmachado/data-quality-checker/internal/checker"
)

// Result records the outcome of one suite entry.
type Result struct {
	// Kind is the check kind label of the entry.
	Kind string

	// Data is the data path the entry ran against.
	Data string

	// Passed is the check outcome. Meaningless when Err is non-nil.
	Passed bool

	// Err is the typed error the entry raised, if any.
	Err error
}

// Summary aggregates the outcomes of one suite run.
type Summary struct {
	// Suite is the name of the suite that ran.
	Suite string

	// RunToken correlates the log lines of this run.
	RunToken string

	// Results holds one entry per check, in declaration order.
	Results []Result

	// Passed, Failed, and Errored count the outcomes.
	Passed  int
	Failed  int
	Errored int
}

// OK reports whether every check in the run passed.
func (s *Summary) OK() bool {
	return s.Failed == 0 && s.Errored == 0
}

// Runner executes suites sequentially against one checker.
type Runner struct {
	checker *checker.Checker
	tokens  TokenGenerator
}

// NewRunner creates a runner. A nil gen defaults to UUIDv7 run tokens.
func NewRunner(c *checker.Checker, gen TokenGenerator) *Runner {
	if gen == nil {
		gen = UUIDv7Generator{}
	}
	return &Runner{checker: c, tokens: gen}
}

// Run executes every check in the suite in declaration order.
//
// A check that raises a typed error is recorded in the summary and
// does not abort the remaining checks. Run returns early only when
// ctx is cancelled, with the partial summary collected so far.
func (r *Runner) Run(ctx context.Context, s *Suite) (*Summary, error) {
	summary := &Summary{
		Suite:    s.Name,
		RunToken: r.tokens.Generate(),
		Results:  make([]Result, 0, len(s.Checks)),
	}
	slog.Info("suite starting", "suite", s.Name, "run_token", summary.RunToken, "checks", len(s.Checks))

	for _, entry := range s.Checks {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		res := Result{Kind: entry.Kind, Data: entry.Data}
		src, chk, err := compileEntry(entry)
		if err == nil {
			res.Passed, err = r.checker.Run(ctx, src, chk)
		}

		switch {
		case err != nil:
			res.Err = err
			summary.Errored++
			slog.Error("check errored", "run_token", summary.RunToken, "kind", entry.Kind, "data", entry.Data, "error", err)
		case res.Passed:
			summary.Passed++
			slog.Info("check passed", "run_token", summary.RunToken, "kind", entry.Kind, "data", entry.Data)
		default:
			summary.Failed++
			slog.Info("check failed", "run_token", summary.RunToken, "kind", entry.Kind, "data", entry.Data)
		}
		summary.Results = append(summary.Results, res)
	}

	slog.Info("suite finished", "run_token", summary.RunToken,
		"passed", summary.Passed, "failed", summary.Failed, "errored", summary.Errored)
	return summary, nil
}
