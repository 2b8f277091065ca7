package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aliuygur/consoleui/internal/appctx"
	"github.com/aliuygur/consoleui/internal/badge"
)

// newBadgeCmd creates the badge command
func newBadgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "badge",
		Short: "Print badge classes for a level, status or resource kind",
	}

	cmd.AddCommand(newClassCmd("level <level>", "Light badge classes for a log level", badge.LevelBadgeClass))
	cmd.AddCommand(newClassCmd("level-color <level>", "Badge classes with border for a log level", badge.LevelColorClasses))
	cmd.AddCommand(newClassCmd("level-solid <level>", "Solid badge classes for a log level", badge.LevelSolidBadgeClass))
	cmd.AddCommand(newClassCmd("status <status>", "Badge classes for a lifecycle status (exact match)", badge.StatusBadgeClass))
	cmd.AddCommand(newClassCmd("resource <kind>", "Colour classes for a resource kind (exact match)", badge.ResourceColorClass))

	return cmd
}

// newClassCmd wraps a single-argument class lookup
func newClassCmd(use, short string, lookup func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classes := lookup(args[0])
			appctx.GetLogger(cmd.Context()).Debug("Resolved badge classes", "input", args[0], "classes", classes)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), classes)
			return err
		},
	}
}
