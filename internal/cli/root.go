package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/ttd/internal/config"
	"github.com/idilsaglam/ttd/internal/store/jsonstore"
	"github.com/idilsaglam/ttd/internal/ui"
)

// Execute loads config and data, dispatches exactly one subcommand against
// the in-memory store and saves the store back afterwards. The save happens
// even for read-only commands, but never after a fatal error, so an
// interrupted run leaves the previous file untouched. Returns the process
// exit code.
func Execute(args []string) int {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		return 1
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		return 1
	}
	dataPath, err := jsonstore.DefaultPath()
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		return 1
	}
	store, err := jsonstore.Load(dataPath)
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		return 1
	}

	app := &App{
		Config:  cfg,
		Store:   store,
		Out:     os.Stdout,
		Confirm: ui.IOConfirmer{In: os.Stdin, Out: os.Stdout},
		Now:     time.Now,
	}

	root := NewRootCmd(app)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		ui.Fail(os.Stderr, err.Error())
		return 1
	}

	if err := jsonstore.Save(dataPath, store); err != nil {
		ui.Fail(os.Stderr, err.Error())
		return 1
	}
	return 0
}

// NewRootCmd builds the command tree over app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:     "ttd",
		Version: "1.2",
		Short:   "A tiny session-based task tracker",
		Long: `ttd tracks tasks in named sessions, with strict or fuzzy lookup by
name, lookup by index, time-based sorting and colorized output.

Examples:
  ttd a 'put the kettle on' in 2h
  ttd a 'standup' at h9m30
  ttd d 0
  ttd s work
  ttd l`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		&cobra.Command{
			Use:     "ss",
			Aliases: []string{"sessions"},
			Short:   "List all sessions",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.Sessions()
			},
		},
		&cobra.Command{
			Use:     "s [session]",
			Aliases: []string{"session"},
			Short:   "Switch to a session, or show the current one",
			Args:    cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.Switch(args)
			},
		},
		&cobra.Command{
			Use:     "a <task> [in|at <time>]",
			Aliases: []string{"add"},
			Short:   "Add a task to the current session",
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.Add(args)
			},
		},
		&cobra.Command{
			Use:     "r <index|task_name>",
			Aliases: []string{"remove"},
			Short:   "Remove a task",
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.Remove(args)
			},
		},
		&cobra.Command{
			Use:     "rs <session>",
			Aliases: []string{"remove-session"},
			Short:   "Remove a session",
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.RemoveSession(args)
			},
		},
		&cobra.Command{
			Use:     "d <index|task_name>",
			Aliases: []string{"done"},
			Short:   "Mark a task as done",
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.SetDone(args, true)
			},
		},
		&cobra.Command{
			Use:     "ud <index|task_name>",
			Aliases: []string{"undone"},
			Short:   "Mark a task as not done",
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.SetDone(args, false)
			},
		},
		&cobra.Command{
			Use:     "t <index|task_name> [in|at <time>]",
			Aliases: []string{"time"},
			Short:   "Reschedule a task, or clear its time",
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.Reschedule(args)
			},
		},
		&cobra.Command{
			Use:     "l",
			Aliases: []string{"list"},
			Short:   "List tasks in the current session",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.List()
			},
		},
		&cobra.Command{
			Use:     "ll",
			Aliases: []string{"list-all"},
			Short:   "List tasks in every session",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.ListAll()
			},
		},
		&cobra.Command{
			Use:     "ui",
			Aliases: []string{"tui"},
			Short:   "Browse the current session interactively",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.Browse()
			},
		},
	)
	return root
}
