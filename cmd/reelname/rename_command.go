package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"reelname/internal/config"
	"reelname/internal/logging"
	"reelname/internal/prompt"
	"reelname/internal/renamer"
	"reelname/internal/tmdb"
)

func newRenameCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var confirm bool

	cmd := &cobra.Command{
		Use:   "rename <folder>",
		Short: "Rename and folder the videos under a directory",
		Long: `Walk a directory tree, derive a TMDB search query from each video
filename, let you pick among the matches, rename the file to the canonical
"Title (Year) {tmdb-ID}" form, and move it into an eponymous folder.

Files that already follow the convention are only foldered. Selecting 0 at a
prompt aborts the whole run. When stdin is not a terminal the first match is
selected automatically.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			root, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve folder: %w", err)
			}
			info, err := os.Stat(root)
			if err != nil {
				return fmt.Errorf("stat folder: %w", err)
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", root)
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Writer: cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			client, err := tmdb.New(
				cfg.TMDB.APIKey,
				cfg.TMDB.BaseURL,
				cfg.TMDB.Language,
				tmdb.WithTimeout(cfg.RequestTimeout()),
			)
			if err != nil {
				return fmt.Errorf("create TMDB client: %w", err)
			}

			var chooser prompt.Chooser
			if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
				chooser = prompt.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout(), logger, confirm)
			} else {
				chooser = prompt.NewFirst(logger)
			}

			lock, err := renamer.AcquireRunLock(root)
			if err != nil {
				return err
			}
			defer func() { _ = lock.Unlock() }()

			planner := renamer.NewPlanner(client, chooser, logger)
			runner := renamer.NewRunner(planner, logger, dryRun)

			stats, err := runner.Run(cmd.Context(), root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Number of files changed: %d\n", stats.Changed)
			fmt.Fprintf(out, "Number of files moved: %d\n", stats.Moved)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Do not rename files")
	cmd.Flags().BoolVar(&confirm, "confirm", false, "Confirm each result, even those whose search only returned a single value")

	return cmd
}
