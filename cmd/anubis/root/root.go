package root

import (
	"context"

	"github.com/flarebyte/anubis-hooks/cmd/anubis/plan"
	"github.com/flarebyte/anubis-hooks/cmd/anubis/run"
	"github.com/flarebyte/anubis-hooks/cmd/anubis/validate"
	"github.com/flarebyte/anubis-hooks/cmd/anubis/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for anubis.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "anubis",
		Short: "Git hook runner: weighs staged files and sends each job to its stage",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Subcommands
	cmd.AddCommand(run.Cmd)
	cmd.AddCommand(validate.Cmd)
	cmd.AddCommand(plan.Cmd)
	cmd.AddCommand(version.VersionCmd)

	return cmd
}

// Execute runs the root command with provided args.
func Execute(ctx context.Context, args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
