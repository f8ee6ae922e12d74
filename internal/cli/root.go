package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tasq/internal/api"
	"tasq/internal/config"
	"tasq/internal/repository/sqlite"
	"tasq/internal/tui"
)

const commandTimeout = 30 * time.Second

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config

	// Opened lazily so `tasq init` can run before a database exists.
	api  api.API
	repo sqlite.Repository
}

// NewRootCommand creates the root cobra command with all subcommands
func NewRootCommand(cfg *config.Config) *RootCommand {
	root := &RootCommand{
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "tasq",
		Short: "A terminal task manager with TUI and CLI interfaces",
		Long: `TasQ is a local task tracker with two faces: one-shot commands for
scripting and an interactive full-screen terminal view.

EXAMPLES:
  tasq init                          # Set up .tasq/ in the current directory
  tasq add "Write the report"        # Add a task at default priority 3
  tasq add "Fix login bug" -p 1      # Add an urgent task
  tasq list                          # List all tasks in canonical order
  tasq list --pending                # Only pending tasks
  tasq complete 3                    # Complete task by id
  tasq complete "login"              # Complete first pending match
  tasq next                          # Show the highest priority pending task
  tasq set-priority 3 2              # Change a task's priority
  tasq                               # Launch the interactive TUI

CONFIGURATION:
  Loaded from .tasq/config.json, overridable via environment:
    TASQ_DB_PATH                     Database file (default: .tasq/tasks.db)
    TASQ_HOOK_PORT                   Port reserved for the completion hook
    TASQ_HOOKS_ENABLED               Enable the completion hook
    TASQ_AUTO_NEXT                   Auto-advance to the next task
    TASQ_NOTES_PATH                  Notes file updated by the hook`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.runInteractive()
		},
	}

	root.addSubcommands()

	return root
}

// Execute runs the root command and releases the store connection
func (r *RootCommand) Execute() error {
	defer func() {
		if r.repo != nil {
			r.repo.Close()
		}
	}()
	return r.cmd.Execute()
}

// openAPI opens the store on first use. Startup storage failures are
// fatal and propagate to the process exit path.
func (r *RootCommand) openAPI() (api.API, error) {
	if r.api != nil {
		return r.api, nil
	}

	repo, err := sqlite.New(r.config.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	r.repo = repo
	r.api = api.New(repo)
	return r.api, nil
}

// runInteractive launches the TUI when tasq is invoked without a subcommand
func (r *RootCommand) runInteractive() error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("interactive mode must be run in a terminal")
	}

	apiInstance, err := r.openAPI()
	if err != nil {
		return err
	}

	return tui.Run(apiInstance)
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Init command
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize TasQ in the current directory",
		Long:  "Create the .tasq/ directory with a default config file and a sample post-completion hook. Fails if already initialized.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewInitCommand().Execute()
		},
	}

	// Add command
	var addPriority int
	addCmd := &cobra.Command{
		Use:   "add [description]",
		Short: "Add a new task",
		Long:  "Add a new pending task. Priority ranges from 1 (most urgent) to 5 (least urgent) and defaults to 3.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			apiInstance, err := r.openAPI()
			if err != nil {
				return err
			}
			return NewAddCommand(apiInstance).Execute(ctx, args, addPriority)
		},
	}
	addCmd.Flags().IntVarP(&addPriority, "priority", "p", 3, "Priority level (1-5, where 1 is highest priority)")

	// Complete command
	completeCmd := &cobra.Command{
		Use:   "complete [id-or-text]",
		Short: "Mark a task as complete",
		Long: `Mark a task as complete. A numeric argument completes by id; anything
else completes the first pending task whose description contains the
text (case-insensitive).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			apiInstance, err := r.openAPI()
			if err != nil {
				return err
			}
			return NewCompleteCommand(apiInstance).Execute(ctx, args[0])
		},
	}

	// List command
	var listCompleted, listPending bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Long:  "List tasks in canonical order. With --completed or --pending, show only that subset; with both or neither, show everything.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			apiInstance, err := r.openAPI()
			if err != nil {
				return err
			}
			return NewListCommand(apiInstance).Execute(ctx, listCompleted, listPending)
		},
	}
	listCmd.Flags().BoolVarP(&listCompleted, "completed", "c", false, "Show completed tasks")
	listCmd.Flags().BoolVarP(&listPending, "pending", "p", false, "Show only pending tasks")

	// Next command
	nextCmd := &cobra.Command{
		Use:   "next",
		Short: "Get the next highest priority pending task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			apiInstance, err := r.openAPI()
			if err != nil {
				return err
			}
			return NewNextCommand(apiInstance).Execute(ctx)
		},
	}

	// Set-priority command
	setPriorityCmd := &cobra.Command{
		Use:   "set-priority [id-or-text] [priority]",
		Short: "Set priority for a task",
		Long:  "Set the priority of a task, resolved by id or description text. Values outside 1-5 are clamped.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			apiInstance, err := r.openAPI()
			if err != nil {
				return err
			}
			return NewSetPriorityCommand(apiInstance).Execute(ctx, args[0], args[1])
		},
	}

	r.cmd.AddCommand(
		initCmd,
		addCmd,
		completeCmd,
		listCmd,
		nextCmd,
		setPriorityCmd,
	)
}
