package tui

import (
	"tasq/internal/domain"
)

// visibleTasks projects the full canonical-order task list onto the
// subset shown to the user: everything when showCompleted is set,
// otherwise only pending tasks. The projection is pure; it is recomputed
// after every mutation and every filter toggle, and selection indices
// are only ever interpreted against its result.
func visibleTasks(tasks []domain.Task, showCompleted bool) []domain.Task {
	if showCompleted {
		return tasks
	}
	var pending []domain.Task
	for _, t := range tasks {
		if t.IsPending() {
			pending = append(pending, t)
		}
	}
	return pending
}
