package run

import (
	"fmt"

	"github.com/flarebyte/anubis-hooks/internal/engine"
)

const (
	exitCodeSuccess = 0
	exitCodeFailed  = 1
	exitCodeErrored = 2
)

type runExitError struct {
	code int
	msg  string
}

func (e runExitError) Error() string { return e.msg }
func (e runExitError) ExitCode() int { return e.code }

// evaluateRunExit maps the finalized report onto the process exit status.
// Real job failures outrank crashed jobs when both are present.
func evaluateRunExit(r *engine.Report) error {
	if r.Failed > 0 {
		return runExitError{code: exitCodeFailed, msg: fmt.Sprintf("%d job(s) failed", r.Failed)}
	}
	if r.Errored > 0 {
		return runExitError{code: exitCodeErrored, msg: fmt.Sprintf("%d job(s) errored", r.Errored)}
	}
	return nil
}
