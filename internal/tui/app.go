package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tasq/internal/api"
	"tasq/internal/domain"
	"tasq/internal/logging"
)

type mode int

const (
	modeBrowsing mode = iota
	modeEntering
	modeDetail
)

// noSelection marks an empty visible set. Selection is an index into the
// current projection in browsing mode; the detail view tracks the task id
// instead, since indices shift as the projection changes.
const noSelection = -1

type appModel struct {
	api api.API

	// tasks is always a fresh canonical-order load; every mutation
	// replaces it wholesale rather than patching entries in place.
	tasks []domain.Task

	mode          mode
	selected      int
	showCompleted bool
	detailTaskID  int64

	input textinput.Model

	// status holds a transient message, shown until the next key press.
	status    string
	statusErr bool

	width  int
	height int
}

func newAppModel(apiInstance api.API) (appModel, error) {
	input := textinput.New()
	input.Placeholder = "Task description"
	input.CharLimit = 255

	m := appModel{
		api:      apiInstance,
		selected: noSelection,
		input:    input,
	}

	if err := m.reload(); err != nil {
		return appModel{}, err
	}
	if len(m.visible()) > 0 {
		m.selected = 0
	}
	return m, nil
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeEntering:
			return m.updateEntering(msg)
		case modeDetail:
			return m.updateDetail(msg)
		default:
			return m.updateBrowsing(msg)
		}
	}
	return m, nil
}

func (m appModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.statusErr = false

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "down", "j":
		m.nextItem()
	case "up", "k":
		m.previousItem()
	case "shift+down", "J":
		m.moveTaskDown()
	case "shift+up", "K":
		m.moveTaskUp()
	case "i":
		m.mode = modeEntering
		m.input.Reset()
		m.input.Focus()
	case "c":
		m.toggleShowCompleted()
	case " ":
		m.completeSelected()
	case "enter":
		m.openDetails()
	case "d", "D":
		m.deleteSelected()
	case "+", "=":
		m.adjustSelectedPriority(-1)
	case "-", "_":
		m.adjustSelectedPriority(+1)
	}
	return m, nil
}

func (m appModel) updateEntering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.confirmAdd()
		m.mode = modeBrowsing
		m.input.Reset()
		return m, nil
	case "esc":
		m.mode = modeBrowsing
		m.input.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.detailTaskID = 0
		m.mode = modeBrowsing
	}
	return m, nil
}

// reload replaces the in-memory task list with a fresh canonical-order
// read. Called after every mutation so the list never diverges from the
// persisted rows.
func (m *appModel) reload() error {
	tasks, err := m.api.ListTasks(context.Background())
	if err != nil {
		return err
	}
	m.tasks = tasks
	return nil
}

func (m *appModel) visible() []domain.Task {
	return visibleTasks(m.tasks, m.showCompleted)
}

// selectedTask returns the task under the cursor. Any operation on the
// selection is a silent no-op when this returns false.
func (m *appModel) selectedTask() (domain.Task, bool) {
	vis := m.visible()
	if m.selected < 0 || m.selected >= len(vis) {
		return domain.Task{}, false
	}
	return vis[m.selected], true
}

func (m *appModel) nextItem() {
	vis := m.visible()
	if len(vis) == 0 {
		return
	}
	if m.selected == noSelection || m.selected >= len(vis)-1 {
		m.selected = 0
	} else {
		m.selected++
	}
}

func (m *appModel) previousItem() {
	vis := m.visible()
	if len(vis) == 0 {
		return
	}
	if m.selected == noSelection {
		m.selected = 0
	} else if m.selected == 0 {
		m.selected = len(vis) - 1
	} else {
		m.selected--
	}
}

func (m *appModel) toggleShowCompleted() {
	m.showCompleted = !m.showCompleted
	if len(m.visible()) > 0 {
		m.selected = 0
	} else {
		m.selected = noSelection
	}
}

func (m *appModel) confirmAdd() {
	desc := m.input.Value()
	if strings.TrimSpace(desc) == "" {
		// Empty input is silently discarded, not an error.
		return
	}
	task, err := m.api.AddTask(context.Background(), desc, domain.PriorityDefault)
	if err != nil {
		m.fail("add task", err)
		return
	}
	logging.Debugf("interactive add: task %d\n", task.ID)

	if err := m.reload(); err != nil {
		m.fail("reload tasks", err)
		return
	}
	if vis := m.visible(); len(vis) > 0 {
		m.selected = len(vis) - 1
	}
}

func (m *appModel) completeSelected() {
	task, ok := m.selectedTask()
	if !ok || task.Completed {
		return
	}
	if err := m.api.CompleteTask(context.Background(), task.ID); err != nil {
		m.fail("complete task", err)
		return
	}
	if err := m.reload(); err != nil {
		m.fail("reload tasks", err)
		return
	}
	m.clampSelection()
}

func (m *appModel) deleteSelected() {
	task, ok := m.selectedTask()
	if !ok {
		return
	}
	if err := m.api.DeleteTask(context.Background(), task.ID); err != nil {
		m.fail("delete task", err)
		return
	}
	if err := m.reload(); err != nil {
		m.fail("reload tasks", err)
		return
	}

	remaining := len(m.visible())
	if remaining == 0 {
		m.selected = noSelection
	} else if m.selected >= remaining {
		m.selected = remaining - 1
	}
}

// adjustSelectedPriority steps the selected task's priority by delta,
// clamped to the valid range. At the boundary nothing is written. The
// reload can move the task elsewhere in canonical order, so a different
// task may end up under the cursor; that is expected.
func (m *appModel) adjustSelectedPriority(delta int) {
	task, ok := m.selectedTask()
	if !ok {
		return
	}
	newPriority := domain.ClampPriority(task.Priority + delta)
	if newPriority == task.Priority {
		return
	}
	if err := m.api.SetTaskPriority(context.Background(), task.ID, newPriority); err != nil {
		m.fail("set priority", err)
		return
	}
	if err := m.reload(); err != nil {
		m.fail("reload tasks", err)
		return
	}
	m.clampSelection()
}

// moveTaskUp swaps the selected task with its visible neighbor above in
// the stored ordering. When the neighbors sit in different priority
// buckets the swap has no visible effect, since priority dominates
// position in the canonical order.
func (m *appModel) moveTaskUp() {
	vis := m.visible()
	if m.selected <= 0 || m.selected >= len(vis) {
		return
	}
	task := vis[m.selected]
	neighbor := vis[m.selected-1]

	if err := m.api.SwapPositions(context.Background(), task, neighbor); err != nil {
		m.fail("reorder task", err)
		return
	}
	if err := m.reload(); err != nil {
		m.fail("reload tasks", err)
		return
	}
	m.selected--
}

func (m *appModel) moveTaskDown() {
	vis := m.visible()
	if m.selected < 0 || m.selected >= len(vis)-1 {
		return
	}
	task := vis[m.selected]
	neighbor := vis[m.selected+1]

	if err := m.api.SwapPositions(context.Background(), task, neighbor); err != nil {
		m.fail("reorder task", err)
		return
	}
	if err := m.reload(); err != nil {
		m.fail("reload tasks", err)
		return
	}
	m.selected++
}

func (m *appModel) openDetails() {
	task, ok := m.selectedTask()
	if !ok {
		return
	}
	m.detailTaskID = task.ID
	m.mode = modeDetail
}

// clampSelection keeps the selection inside the current visible set
// after a reload shrinks or reorders it.
func (m *appModel) clampSelection() {
	vis := len(m.visible())
	if vis == 0 {
		m.selected = noSelection
		return
	}
	if m.selected >= vis {
		m.selected = vis - 1
	}
}

// fail records a transient status message and leaves all prior state
// untouched; interactive mutations never crash the session.
func (m *appModel) fail(operation string, err error) {
	m.status = fmt.Sprintf("Failed to %s", operation)
	m.statusErr = true
	logging.Debugf("%s: %v\n", operation, err)
}

// taskByID finds a task in the full canonical list by identity.
func (m *appModel) taskByID(id int64) (domain.Task, bool) {
	for _, t := range m.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Task{}, false
}

// taskContext returns the canonical-order neighbors of the task with the
// given id, for the detail view.
func (m *appModel) taskContext(id int64) (prev, next *domain.Task) {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			if i > 0 {
				prev = &m.tasks[i-1]
			}
			if i+1 < len(m.tasks) {
				next = &m.tasks[i+1]
			}
			return prev, next
		}
	}
	return nil, nil
}
