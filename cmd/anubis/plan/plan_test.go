package plan

import (
	"testing"

	"github.com/flarebyte/anubis-hooks/internal/engine"
)

func TestRenderText(t *testing.T) {
	p := engine.Plan{
		Excluded: []string{"lint"},
		Stages: []engine.PlanStage{
			{Stage: 1, Jobs: []engine.PlanJob{
				{Name: "fmt", Group: "go", Rank: 0, Mutating: true},
				{Name: "unit", Rank: 50},
			}},
			{Stage: 2, Jobs: []engine.PlanJob{
				{Name: "audit", Group: "go", Rank: 80},
			}},
		},
	}
	want := "skip  lint: excluded\n" +
		"stage 1/2\n" +
		"  fmt (group go, rank 0, mutating)\n" +
		"  unit (rank 50)\n" +
		"stage 2/2\n" +
		"  audit (group go, rank 80)\n"
	if got := renderText(p); got != want {
		t.Fatalf("renderText mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderTextEmptyPlan(t *testing.T) {
	if got := renderText(engine.Plan{}); got != "no jobs configured\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}
