package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aliuygur/consoleui/internal/appctx"
)

// newTimeCmd creates the time command
func newTimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Format a timestamp",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "datetime <value>",
		Short: "Fixed-width local date-time (YYYY-MM-DD HH:mm:ss.mmm)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printFormatted(cmd, args[0], formatterFrom(cmd.Context()).FormatDateTime(args[0]))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "timestamp [value]",
		Short: "UTC timestamp; prints the placeholder when no value is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input any
			if len(args) == 1 {
				input = args[0]
			}
			return printFormatted(cmd, input, formatterFrom(cmd.Context()).FormatTimestamp(input))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "relative <value>",
		Short: "Relative time such as \"5 minutes ago\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printFormatted(cmd, args[0], formatterFrom(cmd.Context()).RelativeTime(args[0]))
		},
	})

	return cmd
}

func printFormatted(cmd *cobra.Command, input any, out string) error {
	appctx.GetLogger(cmd.Context()).Debug("Formatted time", "input", input, "output", out)
	_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
