package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flarebyte/anubis-hooks/internal/config"
	"github.com/flarebyte/anubis-hooks/internal/engine"
	"github.com/spf13/cobra"
)

var (
	cfgPath    string
	flagRoot   string
	flagSkip   []string
	flagJSON   bool
	flagPretty bool
)

// Cmd represents the `anubis plan` command. It prints the stage layering a
// run would use, honoring --skip, without executing any job.
var Cmd = &cobra.Command{
	Use:           "plan",
	Short:         "Print the stage layering without running jobs",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath())
		if err != nil {
			return err
		}
		graph, err := engine.NewGraph(cfg.JobList())
		if err != nil {
			return err
		}
		p, err := engine.BuildPlan(graph, engine.NewSkipSet(flagSkip...))
		if err != nil {
			return err
		}
		if flagJSON || flagPretty {
			return encodeJSON(os.Stdout, p, flagPretty)
		}
		fmt.Fprint(os.Stdout, renderText(p))
		return nil
	},
}

// renderText lays the plan out one stage per block, excluded jobs first.
func renderText(p engine.Plan) string {
	var b strings.Builder
	for _, name := range p.Excluded {
		fmt.Fprintf(&b, "skip  %s: excluded\n", name)
	}
	for _, st := range p.Stages {
		fmt.Fprintf(&b, "stage %d/%d\n", st.Stage, len(p.Stages))
		for _, j := range st.Jobs {
			fmt.Fprintf(&b, "  %s (%s)\n", j.Name, describeJob(j))
		}
	}
	if len(p.Stages) == 0 && len(p.Excluded) == 0 {
		b.WriteString("no jobs configured\n")
	}
	return b.String()
}

func describeJob(j engine.PlanJob) string {
	parts := []string{}
	if j.Group != "" {
		parts = append(parts, "group "+j.Group)
	}
	parts = append(parts, fmt.Sprintf("rank %d", j.Rank))
	if j.Mutating {
		parts = append(parts, "mutating")
	}
	return strings.Join(parts, ", ")
}

func configPath() string {
	if cfgPath != "" {
		return cfgPath
	}
	return filepath.Join(flagRoot, config.DefaultPath)
}

func init() {
	Cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to config file (default <root>/"+config.DefaultPath+")")
	Cmd.Flags().StringVar(&flagRoot, "root", ".", "Repository root")
	Cmd.Flags().StringSliceVar(&flagSkip, "skip", nil, "Job or group names to skip (repeatable, comma separated)")
	Cmd.Flags().BoolVar(&flagJSON, "json", false, "Print the plan as JSON")
	Cmd.Flags().BoolVar(&flagPretty, "pretty", false, "Indent JSON output (implies --json)")
}
