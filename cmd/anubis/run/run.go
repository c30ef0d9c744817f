package run

import (
	"path/filepath"

	"github.com/flarebyte/anubis-hooks/internal/config"
	"github.com/flarebyte/anubis-hooks/internal/engine"
	"github.com/flarebyte/anubis-hooks/internal/gitfiles"
	"github.com/flarebyte/anubis-hooks/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgPath      string
	flagRoot     string
	flagAllFiles bool
	flagSkip     []string
	flagWorkers  int
	flagTimeout  int
	flagJSON     bool
	flagPretty   bool
	flagOut      string
	flagVerbose  bool
)

// Cmd represents the `anubis run` command.
var Cmd = &cobra.Command{
	Use:           "run [files...]",
	Short:         "Select changed files and run the configured jobs",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		level := ""
		if flagVerbose {
			level = "debug"
		}
		logging.Setup(logging.Config{Level: level})

		cfg, err := config.Load(configPath())
		if err != nil {
			return err
		}
		if flagTimeout > 0 {
			cfg.Defaults.TimeoutMs = flagTimeout
		}
		if flagWorkers > 0 {
			cfg.Workers = flagWorkers
		}

		graph, err := engine.NewGraph(cfg.JobList())
		if err != nil {
			return err
		}

		mode, candidates, err := candidateFiles(flagRoot, flagAllFiles, args)
		if err != nil {
			return err
		}
		candidates = gitfiles.Exclude(candidates, cfg.Exclude)

		baseEnv, err := config.LoadEnvFile(flagRoot, cfg.EnvFile)
		if err != nil {
			return err
		}

		report, err := engine.Run(cmd.Context(), graph, engine.NewSkipSet(flagSkip...), candidates, engine.RunOptions{
			Root:       flagRoot,
			Mode:       string(mode),
			Workers:    cfg.Workers,
			BaseEnv:    baseEnv,
			CaptureMax: cfg.Defaults.CaptureMaxBytes,
			TermGrace:  cfg.TermGrace(),
		})
		if err != nil {
			return err
		}

		if err := writeReport(report, outputSettings(cfg.Output)); err != nil {
			return err
		}
		return evaluateRunExit(report)
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
	Cmd.Flags().BoolVar(&flagAllFiles, "all-files", false, "Run against all tracked files instead of the staged ones")
	Cmd.Flags().StringSliceVar(&flagSkip, "skip", nil, "Job or group names to skip (repeatable, comma separated)")
	Cmd.Flags().IntVar(&flagWorkers, "workers", 0, "Max concurrent jobs per stage (default config, then CPU count)")
	Cmd.Flags().IntVar(&flagTimeout, "timeout", 0, "Default job timeout in milliseconds (overrides config)")
	Cmd.Flags().BoolVar(&flagJSON, "json", false, "Write the report as JSON")
	Cmd.Flags().BoolVar(&flagPretty, "pretty", false, "Indent JSON output (implies --json)")
	Cmd.Flags().StringVar(&flagOut, "out", "", "Write the report to a file instead of stdout")
	Cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
}
