package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"loghook/internal/app"
	"loghook/internal/infrastructure/detect"
)

func newDetectCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [dir]",
		Short: "Detect build tools and runtimes in a project directory",
		Long: `Inspect a project directory for build-tool config files and manifest
dependencies. Frameworks are reported before the bundlers they sit on, so
framework-specific guidance comes first. An empty result means manual setup;
it is never an error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			tools, err := container.Detector.Detect(dir)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), RenderDetectedTools(tools, detect.Guidance))
			return nil
		},
	}
	return cmd
}
