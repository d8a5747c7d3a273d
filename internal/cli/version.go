package cli

import (
	"encoding/json"
	"fmt"

	"github.com/ollama/ollama-link/internal/branding"
	"github.com/spf13/cobra"
)

func newVersionCmd(info buildInfo) *cobra.Command {
	var short, asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show which build of " + branding.CLIName() + " is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case short:
				fmt.Fprintln(out, info.Version)
			case asJSON:
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding build info: %w", err)
				}
				fmt.Fprintln(out, string(data))
			default:
				fmt.Fprintf(out, "%s %s (%s, %s)\n", branding.CLIName(), info.Version, info.Commit, info.Date)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print the version number only")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print build info as JSON")
	return cmd
}
