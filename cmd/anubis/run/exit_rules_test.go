package run

import (
	"testing"
	"time"

	"github.com/flarebyte/anubis-hooks/internal/engine"
)

func finalizedReport(t *testing.T, outcomes ...engine.Outcome) *engine.Report {
	t.Helper()
	r := engine.NewReport("list")
	for _, o := range outcomes {
		r.Append(o)
	}
	r.Finalize(10 * time.Millisecond)
	return r
}

func assertExitError(t *testing.T, err error, wantMsg string, wantCode int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != wantMsg {
		t.Fatalf("unexpected error: %v", err)
	}
	ec, ok := err.(interface{ ExitCode() int })
	if !ok || ec.ExitCode() != wantCode {
		t.Fatalf("unexpected exit code")
	}
}

func TestEvaluateRunExit_AllPassed(t *testing.T) {
	r := finalizedReport(t,
		engine.Outcome{Job: "fmt", Stage: 1, Status: engine.StatusPassed},
		engine.Outcome{Job: "lint", Stage: 1, Status: engine.StatusSkipped, Reason: engine.ReasonNoFiles},
	)
	if err := evaluateRunExit(r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEvaluateRunExit_Failures(t *testing.T) {
	r := finalizedReport(t,
		engine.Outcome{Job: "lint", Stage: 1, Status: engine.StatusFailed, ExitCode: 3},
		engine.Outcome{Job: "fmt", Stage: 1, Status: engine.StatusPassed},
	)
	assertExitError(t, evaluateRunExit(r), "1 job(s) failed", exitCodeFailed)
}

func TestEvaluateRunExit_Errored(t *testing.T) {
	r := finalizedReport(t,
		engine.Outcome{Job: "lint", Stage: 1, Status: engine.StatusErrored, Reason: "program lint not found", ExitCode: -1},
	)
	assertExitError(t, evaluateRunExit(r), "1 job(s) errored", exitCodeErrored)
}

func TestEvaluateRunExit_FailureOutranksError(t *testing.T) {
	r := finalizedReport(t,
		engine.Outcome{Job: "lint", Stage: 1, Status: engine.StatusFailed, ExitCode: 3},
		engine.Outcome{Job: "types", Stage: 1, Status: engine.StatusErrored, ExitCode: -1},
	)
	assertExitError(t, evaluateRunExit(r), "1 job(s) failed", exitCodeFailed)
}

func TestEvaluateRunExit_OnlySkips(t *testing.T) {
	r := finalizedReport(t,
		engine.Outcome{Job: "lint", Status: engine.StatusSkipped, Reason: engine.ReasonExcluded},
	)
	if err := evaluateRunExit(r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
