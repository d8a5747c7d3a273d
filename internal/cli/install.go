package cli

import (
	"fmt"

	"github.com/ollama/ollama-link/internal/branding"
	"github.com/ollama/ollama-link/internal/ctxlog"
	"github.com/spf13/cobra"
)

func newInstallCmd() *cobra.Command {
	var strict, force bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Link the command line tool into the system PATH",
		Long: `Create ` + branding.LinkPath() + ` as a symlink to the bundled ` + branding.Executable() + ` executable,
replacing whatever is there. You may be asked for administrator credentials.

Without --strict a failed install is logged and the command still exits 0;
run 'status' to check the result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m := newManager()
			out := cmd.OutOrStdout()

			if m.Installed() && !force {
				fmt.Fprintf(out, "%s already links to %s\n", m.LinkPath(), m.ExecutablePath())
				return nil
			}

			fmt.Fprintf(out, "Linking %s -> %s...\n", m.LinkPath(), m.ExecutablePath())
			if strict {
				if err := m.TryInstall(ctx); err != nil {
					return err
				}
			} else {
				m.Install(ctx)
			}

			if !m.Installed() {
				ctxlog.Warn(ctx, "cli link still missing after install", "link", m.LinkPath())
				fmt.Fprintln(out, "Not installed.")
				return nil
			}
			fmt.Fprintln(out, "Installed.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero if the link could not be created")
	cmd.Flags().BoolVar(&force, "force", false, "Re-create the link even if it is already installed")
	return cmd
}
