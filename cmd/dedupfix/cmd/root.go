package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"dedupfix/internal/console"
	"dedupfix/internal/repair"
	"dedupfix/internal/tui"
)

const (
	defaultFile   = "src/com/vnengine/ui/GameWindow.java"
	defaultMarker = "private void drawSaveLoadContent"
)

// Exit codes.
const (
	exitOK                  = 0
	exitMarkerNotDuplicated = 1
	exitUnbalancedBlock     = 2
	exitError               = 3
	exitRefused             = 4
)

// NewRootCmd builds the dedupfix command. Every call returns a fresh
// command with its own flag values.
func NewRootCmd() *cobra.Command {
	cfg := repair.Config{}
	var quiet bool

	rootCmd := &cobra.Command{
		Use:   "dedupfix [file]",
		Short: "Remove the second definition of a duplicated method from a source file",
		Long: `dedupfix finds the first two occurrences of a marker string in a source file,
locates the brace-delimited block that starts at the second one, and removes it
from the start of its line through the balancing closing brace.

Braces are counted lexically: braces inside strings and comments count too.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Path = filepath.FromSlash(defaultFile)
			if len(args) == 1 {
				cfg.Path = filepath.FromSlash(args[0])
			}
			if cfg.Marker == "" {
				return errors.New("--marker must not be empty")
			}

			printer := console.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), quiet)
			runner := &repair.Runner{
				Printer: printer,
				Confirm: func(ctx context.Context, path string, plan *repair.Plan) (bool, error) {
					return tui.Confirm(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), tui.Block{
						Path:      path,
						Marker:    plan.Marker,
						StartLine: plan.SecondLine,
						EndLine:   plan.EndLine,
						Text:      plan.Removed,
					})
				},
			}

			_, err := runner.Run(cmd.Context(), cfg)
			return err
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&cfg.Marker, "marker", "m", defaultMarker, "literal text that starts the duplicated method")
	flags.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "show what would be removed without writing")
	flags.BoolVarP(&cfg.ShowDiff, "diff", "d", false, "print a diff of the change")
	flags.BoolVarP(&cfg.Backup, "backup", "b", false, "keep the original file as <file>.bak")
	flags.BoolVar(&cfg.InPlace, "in-place", false, "overwrite the file directly instead of replacing it via a temporary file")
	flags.BoolVarP(&cfg.Interactive, "interactive", "i", false, "ask before removing the block")
	flags.BoolVar(&cfg.RequireClean, "require-clean", false, "refuse to modify a file with uncommitted git changes")
	flags.BoolVarP(&cfg.WholeLines, "whole-lines", "w", false, "also remove the rest of the closing brace's line when it is blank")
	flags.BoolVarP(&quiet, "quiet", "q", false, "only print failures")

	rootCmd.MarkFlagsMutuallyExclusive("dry-run", "interactive")

	return rootCmd
}

// exitCode maps the error returned by the command to a process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case repair.KindOf(err) == repair.MarkerNotDuplicated:
		return exitMarkerNotDuplicated
	case repair.KindOf(err) == repair.UnbalancedBlock:
		return exitUnbalancedBlock
	case errors.Is(err, repair.ErrAborted), errors.Is(err, repair.ErrRefused):
		return exitRefused
	default:
		return exitError
	}
}

// run executes the command with args and reports any failure on its error
// stream. It returns the exit code.
func run(ctx context.Context, rootCmd *cobra.Command, args []string) int {
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		console.New(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr(), true).Failf("%v", err)
	}
	return exitCode(err)
}

// Execute runs the root command with the process arguments and exits.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, NewRootCmd(), os.Args[1:])
	stop()
	os.Exit(code)
}
