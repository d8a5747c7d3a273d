package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

type statusReport struct {
	Installed bool   `json:"installed"`
	State     string `json:"state"`
	Link      string `json:"link"`
	Target    string `json:"target"`
	Mode      string `json:"mode"`
}

func newStatusCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report whether the command line tool is linked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newManager()
			state, err := m.Status()
			if err != nil {
				return err
			}

			report := statusReport{
				Installed: m.Installed(),
				State:     state.String(),
				Link:      m.LinkPath(),
				Target:    m.ExecutablePath(),
				Mode:      m.Layout().Mode(),
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling status: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			icon := "--"
			if report.Installed {
				icon = "OK"
			}
			fmt.Fprintf(out, "[%s] %s -> %s (%s)\n", icon, report.Link, report.Target, report.State)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print status as JSON")
	return cmd
}
