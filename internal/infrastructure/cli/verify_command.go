package cli

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"loghook/internal/app"
	"loghook/internal/domain"
	"loghook/internal/services"
)

func newVerifyCommand(container *app.Container) *cobra.Command {
	var opts services.VerifyOptions

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run the verification check battery",
		Long: `Run the fixed battery of verification checks.

Component checks inspect the files the hook depends on, Integration checks
confirm the capture signal is actually carried, and Service checks probe the
dashboard over HTTP. Quick mode skips the Service tier entirely.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := container.ConfigProvider.Load(cmd.Context())
			if err != nil {
				return err
			}
			if opts.ReportPath == "" {
				opts.ReportPath = cfg.Verify.ReportPath
			}
			opts.Quick = opts.Quick || cfg.Verify.Quick
			opts.Detailed = opts.Detailed || cfg.Verify.Detailed

			report, err := container.VerifyService.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			rendered := RenderVerificationReport(report, opts.Detailed)
			fmt.Fprint(cmd.OutOrStdout(), rendered)

			if opts.ReportPath != "" {
				plain := color.ClearCode(rendered)
				if err := os.WriteFile(opts.ReportPath, []byte(plain), domain.FilePermissions); err != nil {
					container.Logger.Warn("could not write report file", map[string]interface{}{
						"path":  opts.ReportPath,
						"error": err.Error(),
					})
				}
			}

			switch code := report.ExitCode(); code {
			case 0:
				return nil
			case 2:
				return &ExitError{Code: 2, Message: "nothing could be verified"}
			default:
				return &ExitError{Code: code, Message: fmt.Sprintf("%d verification check(s) failed", report.Failed)}
			}
		},
	}

	cmd.Flags().BoolVarP(&opts.Quick, "quick", "q", false, "Skip Service-tier network checks")
	cmd.Flags().BoolVarP(&opts.Detailed, "detailed", "d", false, "Include per-check timing and details")
	cmd.Flags().StringVarP(&opts.ReportPath, "report", "r", "", "Duplicate the rendered report to a file")

	return cmd
}
