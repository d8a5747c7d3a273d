package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ollama/ollama-link/internal/branding"
	"github.com/ollama/ollama-link/internal/config"
	"github.com/ollama/ollama-link/internal/ctxlog"
	"github.com/ollama/ollama-link/internal/linker"
	"github.com/ollama/ollama-link/internal/platform"
	"github.com/spf13/cobra"
)

// buildInfo is injected via ldflags in main.
type buildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// newRootCmd builds the full command tree. Every call returns fresh
// commands, so flag values and contexts never leak between executions.
func newRootCmd(info buildInfo) *cobra.Command {
	var logFormat string

	root := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: `Make the ` + branding.Executable() + ` command available at ` + branding.LinkPath() + ` by linking it
to the copy shipped with ` + branding.DisplayName() + `. Linking into a system directory asks for
administrator credentials.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return err
			}
			ctxlog.LevelVar.Set(ctxlog.ParseLevel(config.Current().LogLevel))

			switch logFormat {
			case "text":
			case "json":
				cmd.SetContext(ctxlog.New(cmd.Context(), ctxlog.NewJSON(cmd.ErrOrStderr())))
			default:
				return fmt.Errorf("unknown log format %q (want text or json)", logFormat)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log record format: text or json")

	root.AddCommand(
		newStatusCmd(),
		newInstallCmd(),
		newUninstallCmd(),
		newPathCmd(),
		newConfigCmd(),
		newVersionCmd(info),
	)
	return root
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	ctx := ctxlog.New(context.Background(), nil)
	if err := newRootCmd(buildInfo{version, commit, date}).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// newManager builds a linker.Manager from the loaded configuration.
func newManager() *linker.Manager {
	s := config.Current()
	exe, _ := os.Executable()
	return linker.New(
		linker.WithLayout(config.Layout(exe)),
		linker.WithExecutableName(s.Executable),
		linker.WithLinkPath(s.LinkPath),
		linker.WithElevator(platform.NewElevator(s.Elevation)),
	)
}
