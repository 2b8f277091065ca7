package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aliuygur/consoleui/internal/appctx"
	"github.com/aliuygur/consoleui/internal/config"
	"github.com/aliuygur/consoleui/internal/datefmt"
	"github.com/aliuygur/consoleui/internal/logging"
)

var (
	// Version info (set via ldflags)
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "uifmt",
		Short: "Console badge classes and timestamp formatting",
		Long: `uifmt prints the Tailwind badge classes and timestamp text the console
renders, so templates and scripts can be checked from a shell.

Examples:
  # Classes for an error log line
  uifmt badge level ERROR

  # Classes for a VirtualMachine resource
  uifmt badge resource VirtualMachine

  # How long ago a pod started
  uifmt time relative 2024-06-01T10:00:00Z`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newBadgeCmd())
	root.AddCommand(newTimeCmd())
	return root
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// setup loads configuration and wires the logger and formatter
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.Log.Format, cfg.Log.Level)
	slog.SetDefault(logger)

	loc, err := cfg.Display.Location()
	if err != nil {
		return err
	}
	formatter := datefmt.New(
		datefmt.WithLocation(loc),
		datefmt.WithPlaceholder(cfg.Display.TimestampPlaceholder),
		datefmt.WithLogger(logger),
	)

	ctx := appctx.WithLogger(cmd.Context(), logger,
		slog.String("command", cmd.CommandPath()),
		slog.String("env", cfg.App.Env),
	)
	cmd.SetContext(withFormatter(ctx, formatter))
	return nil
}

type formatterContextKey struct{}

func withFormatter(ctx context.Context, f *datefmt.Formatter) context.Context {
	return context.WithValue(ctx, formatterContextKey{}, f)
}

// formatterFrom returns the formatter set up for the command, or a default one
func formatterFrom(ctx context.Context) *datefmt.Formatter {
	if f, ok := ctx.Value(formatterContextKey{}).(*datefmt.Formatter); ok {
		return f
	}
	return datefmt.New()
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "uifmt %s\n", Version)
			fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
			fmt.Fprintf(out, "  Build date: %s\n", BuildDate)
		},
	}
}
