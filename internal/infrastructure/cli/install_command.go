package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"loghook/internal/app"
	"loghook/internal/domain"
	"loghook/internal/services"
)

func newInstallCommand(container *app.Container) *cobra.Command {
	var opts services.InstallOptions

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the capture hook into shell startup files",
		Long: `Install the session-log capture hook.

This command will:
1. Scan for interactive-shell startup files, profile files, and package manifests
2. Back up each file-based target before touching it
3. Append the sentinel-delimited capture block to each target
4. Print manual guidance for package manifests (never auto-edited)

Re-running without --force is a no-op for already-configured targets.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := container.InstallService.Run(cmd.Context(), opts)
			if err != nil {
				if errors.Is(err, domain.ErrNoTargets) {
					return &ExitError{Code: 2, Message: "no installation targets exist: no shell startup files or package manifests found"}
				}
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), RenderInstallReport(report))
			if code := report.ExitCode(); code != 0 {
				return &ExitError{Code: code, Message: "installation completed with failures"}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Reinstall even if already configured")
	cmd.Flags().BoolVarP(&opts.Global, "global", "g", false, "Prefer shell startup files over package manifests")
	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "Print intended changes without writing anything")
	cmd.Flags().BoolVar(&opts.NoBackup, "no-backup", false, "Disable backups for this run")

	return cmd
}
