package cli

import (
	"context"

	"github.com/spf13/cobra"

	"loghook/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}
	container.RollbackService.Prompter = NewPrompter(nil, nil)

	root := &cobra.Command{
		Use:   "loghook",
		Short: "loghook - session log capture integration manager",
		Long: "loghook installs, verifies, and reversibly removes the session-log capture hook\n" +
			"from your shell startup files and process-launch environment.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "Emit per-step diagnostic lines")

	root.AddCommand(newInstallCommand(container))
	root.AddCommand(newRollbackCommand(container))
	root.AddCommand(newVerifyCommand(container))
	root.AddCommand(newDetectCommand(container))
	root.AddCommand(newVersionCommand())
	return root, nil
}
