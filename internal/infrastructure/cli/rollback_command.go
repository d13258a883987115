package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"loghook/internal/app"
	"loghook/internal/services"
)

func newRollbackCommand(container *app.Container) *cobra.Command {
	var opts services.RollbackOptions

	cmd := &cobra.Command{
		Use:   "rollback",
		Short: "Remove the capture hook from shell startup files",
		Long: `Remove every managed capture block.

This command will:
1. Re-scan for installed capture blocks and environment-variable signals
2. Confirm each removal unless --no-confirm or --force is given
3. Back up each file before stripping the block
4. Report externally-owned environment variables for manual cleanup

A clean environment reports "nothing to rollback" and exits 0.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := container.RollbackService.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), RenderRollbackReport(report))
			if code := report.ExitCode(); code != 0 {
				return &ExitError{Code: code, Message: "rollback completed with failures"}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Remove without confirmation prompts")
	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "Print intended changes without writing anything")
	cmd.Flags().BoolVar(&opts.NoConfirm, "no-confirm", false, "Skip interactive confirmation prompts")
	cmd.Flags().BoolVar(&opts.NoBackup, "no-backup", false, "Disable backups for this run")

	return cmd
}
