package validate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/flarebyte/anubis-hooks/internal/config"
	"github.com/flarebyte/anubis-hooks/internal/engine"
	"github.com/spf13/cobra"
)

var (
	cfgPath  string
	flagRoot string
	flagJSON bool
)

// Cmd represents the `anubis validate` command. It loads the config, builds
// the job graph and lays out the stages, but never executes anything.
var Cmd = &cobra.Command{
	Use:           "validate",
	Short:         "Check the config without running any job",
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
		plan, err := engine.BuildPlan(graph, nil)
		if err != nil {
			return err
		}
		if flagJSON {
			fmt.Fprintf(os.Stdout, "{\"ok\":true,\"jobs\":%d,\"stages\":%d}\n", len(cfg.Jobs), len(plan.Stages))
			return nil
		}
		fmt.Fprintf(os.Stdout, "configuration ok: %d jobs in %d stages\n", len(cfg.Jobs), len(plan.Stages))
		return nil
	},
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
	Cmd.Flags().BoolVar(&flagJSON, "json", false, "Print the result as a single JSON line")
}
