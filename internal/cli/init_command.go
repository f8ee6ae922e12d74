package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"tasq/internal/config"
)

const hookScript = `#!/usr/bin/env python3
"""TasQ post-completion hook.

Runs after a task is marked as complete: fetches the next pending task
from the local automation server and appends it to the notes file.
"""

import sys
import urllib.request
import json
from pathlib import Path

NOTES_FILE = Path("CLAUDE.md")
SERVER_URL = "http://localhost:8080/next-task"


def update_notes(next_task):
    desc = next_task.get("description", "No description")
    priority = next_task.get("priority", "Unknown")
    task_id = next_task.get("id", "Unknown")
    created = next_task.get("created_at", "Unknown")

    task_info = (
        f"\n## Next Task: {desc}\n"
        f"- Priority: {priority}\n"
        f"- ID: {task_id}\n"
        f"- Created: {created}\n"
    )

    if NOTES_FILE.exists():
        with open(NOTES_FILE, "a") as f:
            f.write(task_info)
    else:
        with open(NOTES_FILE, "w") as f:
            f.write(f"# Project Tasks\n{task_info}")

    print(f"Updated {NOTES_FILE} with next task")


def main():
    if len(sys.argv) < 2:
        print("Usage: post-complete.py <completed_task_id>")
        sys.exit(1)

    print(f"Task {sys.argv[1]} completed!")

    try:
        with urllib.request.urlopen(SERVER_URL) as response:
            next_task = json.load(response)
            if next_task:
                update_notes(next_task)
                print(f"Next task: {next_task.get('description', 'Unknown')}")
            else:
                print("All tasks completed!")
    except OSError:
        print("Automation server not running; skipping notes update")


if __name__ == "__main__":
    main()
`

// InitCommand handles one-time project scaffolding
type InitCommand struct{}

// NewInitCommand creates a new init command handler
func NewInitCommand() *InitCommand {
	return &InitCommand{}
}

// Execute creates the project directory, default config and sample hook.
// Unlike lookup commands, an already-initialized directory is a real
// failure and exits non-zero.
func (c *InitCommand) Execute() error {
	dir := config.Dir()

	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("TasQ already initialized in this directory: found existing %s/ directory", dir)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check for %s directory: %w", dir, err)
	}

	fmt.Println("Initializing TasQ project...")

	hooksDir := filepath.Join(dir, "hooks")
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", hooksDir, err)
	}

	cfg := config.NewConfig()
	if err := cfg.Save(); err != nil {
		return err
	}

	hookPath := filepath.Join(hooksDir, "post-complete.py")
	if err := os.WriteFile(hookPath, []byte(hookScript), 0o755); err != nil {
		return fmt.Errorf("failed to write hook script: %w", err)
	}

	fmt.Printf("Created %s/ directory structure\n", dir)
	fmt.Println("Created config.json with default settings")
	fmt.Println("Created post-completion hook script")
	fmt.Println()
	fmt.Println("Project structure:")
	fmt.Printf("  %s/\n", dir)
	fmt.Println("  |-- config.json          # Project configuration")
	fmt.Println("  |-- tasks.db             # Task database (created on first use)")
	fmt.Println("  `-- hooks/")
	fmt.Println("      `-- post-complete.py # Hook script for task completion")
	fmt.Println()
	fmt.Println("TasQ initialized! You can now:")
	fmt.Println("  * Run 'tasq add \"My first task\"' to add a task")
	fmt.Println("  * Run 'tasq' for the interactive TUI")

	return nil
}
