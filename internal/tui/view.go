package tui

import (
	"fmt"
	"strings"

	"tasq/internal/domain"
)

const timestampLayout = "2006-01-02 15:04:05 UTC"

func (m appModel) View() string {
	if m.mode == modeDetail {
		if task, ok := m.taskByID(m.detailTaskID); ok {
			return m.viewDetail(task)
		}
	}

	var b strings.Builder

	b.WriteString(styleTitle.Render(m.title()))
	b.WriteString("\n\n")

	vis := m.visible()
	if len(vis) == 0 {
		b.WriteString(styleHelp.Render("No tasks. Press 'i' to add one."))
		b.WriteString("\n")
	} else {
		for i, task := range vis {
			b.WriteString(m.renderRow(i, task))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Tasks (%d shown)", len(vis)))
	b.WriteString("\n\n")

	if m.mode == modeEntering {
		b.WriteString(styleInputPrompt.Render("Add task: "))
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		if m.statusErr {
			b.WriteString(styleStatusError.Render(m.status))
		} else {
			b.WriteString(styleStatusInfo.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString(styleHelp.Render(m.helpLine()))
	return b.String()
}

func (m appModel) title() string {
	switch m.mode {
	case modeEntering:
		return "Task Manager - Adding Task"
	case modeDetail:
		return "Task Manager - Details"
	default:
		if m.showCompleted {
			return "Task Manager - All Tasks"
		}
		return "Task Manager - Pending Tasks"
	}
}

func (m appModel) renderRow(index int, task domain.Task) string {
	line := fmt.Sprintf("%s %s %s", task.StatusGlyph(), task.PriorityIndicator(), task.Description)

	style := priorityStyle(task.Priority)
	if task.Completed {
		style = styleCompleted
	}

	if index == m.selected {
		return styleSelected.Render(">> " + line)
	}
	return "   " + style.Render(line)
}

func (m appModel) helpLine() string {
	switch m.mode {
	case modeEntering:
		return "enter: confirm   esc: cancel"
	default:
		return "j/k: move   J/K: reorder   i: add   space: complete   enter: details   d: delete   +/-: priority   c: toggle completed   q: quit"
	}
}

func (m appModel) viewDetail(task domain.Task) string {
	completedText := "Not completed"
	if task.CompletedAt != nil {
		completedText = task.CompletedAt.UTC().Format(timestampLayout)
	}

	status := "○ PENDING"
	if task.Completed {
		status = "✓ COMPLETED"
	}

	prev, next := m.taskContext(task.ID)
	prevText := "No previous task"
	if prev != nil {
		prevText = "Previous: " + prev.Description
	}
	nextText := "No next task"
	if next != nil {
		nextText = "Next: " + next.Description
	}

	body := fmt.Sprintf(
		"Task ID: %d\n\nDescription:\n%s\n\nStatus: %s\nPriority: %s\n\nCreated: %s\nCompleted: %s\n\nContext:\n%s\n%s\n\nPress esc/enter/q to close",
		task.ID,
		task.Description,
		status,
		task.PriorityLabel(),
		task.CreatedAt.UTC().Format(timestampLayout),
		completedText,
		prevText,
		nextText,
	)

	return styleTitle.Render("Task Details") + "\n\n" + styleDetailBox.Render(body)
}
