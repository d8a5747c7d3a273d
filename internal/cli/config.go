package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/ollama/ollama-link/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings",
		Long: `Read and write settings stored at ~/.ollama-link/config.yaml.

Keys: ` + strings.Join(config.Keys, ", "),
	}
	cmd.AddCommand(newConfigSetCmd(), newConfigGetCmd(), newConfigValidateCmd())
	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := config.Set(key, value); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
			return nil
		},
	}
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a settings file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FilePath()
			if len(args) == 1 {
				path = args[0]
			}

			out := cmd.OutOrStdout()
			if _, err := os.Stat(path); os.IsNotExist(err) && len(args) == 0 {
				fmt.Fprintf(out, "  [ OK ] %s does not exist, defaults apply\n", path)
				return nil
			}

			result, err := config.ValidateFile(path)
			if err != nil {
				fmt.Fprintf(out, "  [FAIL] %v\n", err)
				return err
			}
			if result.Valid {
				fmt.Fprintf(out, "  [ OK ] %s is valid\n", path)
				return nil
			}

			fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
			for _, issue := range result.Issues {
				if issue.Path != "" {
					fmt.Fprintf(out, "    - %s: %s\n", issue.Path, issue.Message)
				} else {
					fmt.Fprintf(out, "    - %s\n", issue.Message)
				}
			}
			return fmt.Errorf("%s has %d validation issue(s)", path, len(result.Issues))
		},
	}
}
