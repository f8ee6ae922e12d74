package tui

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasq/internal/api"
	"tasq/internal/domain"
	"tasq/internal/repository/sqlite"
)

// setupTestApp builds a model over a real store seeded with the given
// pending tasks, all at default priority.
func setupTestApp(t *testing.T, descriptions ...string) appModel {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "tasks.db")
	repo, err := sqlite.New(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
	})

	apiInstance := api.New(repo)
	for _, description := range descriptions {
		_, err := apiInstance.AddTask(context.Background(), description, domain.PriorityDefault)
		require.NoError(t, err)
	}

	m, err := newAppModel(apiInstance)
	require.NoError(t, err)
	return m
}

func press(t *testing.T, m appModel, keys ...tea.KeyMsg) appModel {
	t.Helper()
	for _, key := range keys {
		mAny, _ := m.Update(key)
		m = mAny.(appModel)
	}
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeText(t *testing.T, m appModel, text string) appModel {
	t.Helper()
	return press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func visibleDescriptions(m appModel) []string {
	vis := m.visible()
	descriptions := make([]string, len(vis))
	for i, task := range vis {
		descriptions[i] = task.Description
	}
	return descriptions
}

func TestInitialSelection(t *testing.T) {
	m := setupTestApp(t, "first", "second")
	assert.Equal(t, 0, m.selected)
	assert.Equal(t, modeBrowsing, m.mode)
}

func TestInitialSelectionEmptyStore(t *testing.T) {
	m := setupTestApp(t)
	assert.Equal(t, noSelection, m.selected)
}

func TestNavigationWrapsBothEnds(t *testing.T) {
	m := setupTestApp(t, "first", "second", "third")

	m = press(t, m, runeKey('j'))
	assert.Equal(t, 1, m.selected)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.selected)

	// Past the last item wraps to the first.
	m = press(t, m, runeKey('j'))
	assert.Equal(t, 0, m.selected)

	// Before the first item wraps to the last.
	m = press(t, m, runeKey('k'))
	assert.Equal(t, 2, m.selected)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.selected)
}

func TestNavigationEmptyStoreIsNoOp(t *testing.T) {
	m := setupTestApp(t)
	m = press(t, m, runeKey('j'), runeKey('k'))
	assert.Equal(t, noSelection, m.selected)
}

func TestAddTaskFlow(t *testing.T) {
	m := setupTestApp(t, "existing")

	m = press(t, m, runeKey('i'))
	assert.Equal(t, modeEntering, m.mode)

	m = typeText(t, m, "new task")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeBrowsing, m.mode)
	assert.Equal(t, []string{"existing", "new task"}, visibleDescriptions(m))
	// The cursor lands on the freshly added task.
	assert.Equal(t, 1, m.selected)
}

func TestAddTaskEscapeCancels(t *testing.T) {
	m := setupTestApp(t, "existing")

	m = press(t, m, runeKey('i'))
	m = typeText(t, m, "abandoned")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, modeBrowsing, m.mode)
	assert.Equal(t, []string{"existing"}, visibleDescriptions(m))
}

func TestAddTaskWhitespaceOnlyDiscarded(t *testing.T) {
	m := setupTestApp(t, "existing")

	m = press(t, m, runeKey('i'))
	m = typeText(t, m, "   ")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeBrowsing, m.mode)
	assert.Equal(t, []string{"existing"}, visibleDescriptions(m))
	assert.Empty(t, m.status)
}

func TestToggleShowCompleted(t *testing.T) {
	m := setupTestApp(t, "pending", "done")

	// Complete the second task, then hide it.
	m = press(t, m, runeKey('j'), tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, []string{"pending"}, visibleDescriptions(m))

	m = press(t, m, runeKey('j'), runeKey('c'))
	assert.Equal(t, []string{"pending", "done"}, visibleDescriptions(m))
	// Toggling the filter resets the cursor.
	assert.Equal(t, 0, m.selected)

	m = press(t, m, runeKey('c'))
	assert.Equal(t, []string{"pending"}, visibleDescriptions(m))
	assert.Equal(t, 0, m.selected)
}

func TestToggleShowCompletedIsPureProjection(t *testing.T) {
	m := setupTestApp(t, "pending", "done")
	m = press(t, m, runeKey('j'), tea.KeyMsg{Type: tea.KeySpace})

	m = press(t, m, runeKey('c'), runeKey('c'))

	// The toggle never writes; the stored rows are unchanged.
	tasks, err := m.api.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.False(t, tasks[0].Completed)
	assert.True(t, tasks[1].Completed)
}

func TestCompleteSelected(t *testing.T) {
	m := setupTestApp(t, "first", "second")

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})

	// Completed tasks drop out of the default projection.
	assert.Equal(t, []string{"second"}, visibleDescriptions(m))
	assert.Equal(t, 0, m.selected)

	task, ok := m.taskByID(1)
	require.True(t, ok)
	assert.True(t, task.Completed)
	require.NotNil(t, task.CompletedAt)
}

func TestCompleteAlreadyCompletedIsNoOp(t *testing.T) {
	m := setupTestApp(t, "only")
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = press(t, m, runeKey('c'))

	before, ok := m.taskByID(1)
	require.True(t, ok)
	require.NotNil(t, before.CompletedAt)

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})

	after, ok := m.taskByID(1)
	require.True(t, ok)
	assert.Equal(t, before.CompletedAt.Unix(), after.CompletedAt.Unix())
}

func TestDeleteSelectedClampsToLast(t *testing.T) {
	m := setupTestApp(t, "first", "second", "third")

	// Delete the last visible task; the cursor clamps to the new last.
	m = press(t, m, runeKey('k'), runeKey('d'))
	assert.Equal(t, []string{"first", "second"}, visibleDescriptions(m))
	assert.Equal(t, 1, m.selected)
}

func TestDeleteLastRemainingTask(t *testing.T) {
	m := setupTestApp(t, "only")

	m = press(t, m, runeKey('d'))
	assert.Empty(t, visibleDescriptions(m))
	assert.Equal(t, noSelection, m.selected)

	// Further selection operations are silent no-ops.
	m = press(t, m, runeKey('d'), tea.KeyMsg{Type: tea.KeySpace}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeBrowsing, m.mode)
}

func TestDeleteMiddleKeepsIndex(t *testing.T) {
	m := setupTestApp(t, "first", "second", "third")

	m = press(t, m, runeKey('j'), runeKey('d'))
	assert.Equal(t, []string{"first", "third"}, visibleDescriptions(m))
	// The cursor stays at the same index, now over the next task.
	assert.Equal(t, 1, m.selected)
}

func TestAdjustPriority(t *testing.T) {
	m := setupTestApp(t, "only")

	m = press(t, m, runeKey('+'))
	task, ok := m.taskByID(1)
	require.True(t, ok)
	assert.Equal(t, 2, task.Priority)

	m = press(t, m, runeKey('-'), runeKey('-'))
	task, ok = m.taskByID(1)
	require.True(t, ok)
	assert.Equal(t, 4, task.Priority)
}

func TestAdjustPriorityBoundaryIsNoOp(t *testing.T) {
	m := setupTestApp(t, "only")

	m = press(t, m, runeKey('+'), runeKey('+'), runeKey('+'))
	task, ok := m.taskByID(1)
	require.True(t, ok)
	assert.Equal(t, domain.PriorityHighest, task.Priority)

	m = press(t, m, runeKey('='))
	task, ok = m.taskByID(1)
	require.True(t, ok)
	assert.Equal(t, domain.PriorityHighest, task.Priority)
}

func TestAdjustPriorityReordersList(t *testing.T) {
	m := setupTestApp(t, "first", "second")

	// Raising the second task's urgency moves it to the front.
	m = press(t, m, runeKey('j'), runeKey('+'))
	assert.Equal(t, []string{"second", "first"}, visibleDescriptions(m))
}

func TestReorderMovesSelectionWithTask(t *testing.T) {
	m := setupTestApp(t, "first", "second", "third")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftDown})
	assert.Equal(t, []string{"second", "first", "third"}, visibleDescriptions(m))
	assert.Equal(t, 1, m.selected)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftUp})
	assert.Equal(t, []string{"first", "second", "third"}, visibleDescriptions(m))
	assert.Equal(t, 0, m.selected)
}

func TestReorderShiftKeyRunes(t *testing.T) {
	m := setupTestApp(t, "first", "second")

	m = press(t, m, runeKey('J'))
	assert.Equal(t, []string{"second", "first"}, visibleDescriptions(m))
	assert.Equal(t, 1, m.selected)

	m = press(t, m, runeKey('K'))
	assert.Equal(t, []string{"first", "second"}, visibleDescriptions(m))
	assert.Equal(t, 0, m.selected)
}

func TestReorderAtEdgesIsNoOp(t *testing.T) {
	m := setupTestApp(t, "first", "second")

	m = press(t, m, runeKey('K'))
	assert.Equal(t, []string{"first", "second"}, visibleDescriptions(m))
	assert.Equal(t, 0, m.selected)

	m = press(t, m, runeKey('j'), runeKey('J'))
	assert.Equal(t, []string{"first", "second"}, visibleDescriptions(m))
	assert.Equal(t, 1, m.selected)
}

func TestReorderAfterDeleteAndAdd(t *testing.T) {
	m := setupTestApp(t, "first", "second", "third")

	// Delete the middle task, then add a new one. The add reuses the
	// surviving task's position hint, so this used to make the swap a
	// silent no-op while the cursor still moved.
	m = press(t, m, runeKey('j'), runeKey('d'))
	m = press(t, m, runeKey('i'))
	m = typeText(t, m, "fourth")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	before := visibleDescriptions(m)
	require.Len(t, before, 3)
	require.Equal(t, 2, m.selected)
	moved := m.visible()[m.selected]
	neighbor := m.visible()[1]

	m = press(t, m, runeKey('K'))

	vis := m.visible()
	require.Len(t, vis, 3)
	// The swap took effect and the cursor stayed on the moved task.
	assert.Equal(t, 1, m.selected)
	assert.Equal(t, moved.ID, vis[1].ID)
	assert.Equal(t, neighbor.ID, vis[2].ID)
	assert.NotEqual(t, before, visibleDescriptions(m))
}

func TestReorderAcrossPriorityBucketsHasNoVisibleEffect(t *testing.T) {
	m := setupTestApp(t, "relaxed")
	_, err := m.api.AddTask(context.Background(), "urgent", 1)
	require.NoError(t, err)
	require.NoError(t, m.reload())

	assert.Equal(t, []string{"urgent", "relaxed"}, visibleDescriptions(m))

	// Positions swap, but priority still dominates the ordering.
	m = press(t, m, runeKey('j'), runeKey('K'))
	assert.Equal(t, []string{"urgent", "relaxed"}, visibleDescriptions(m))
	assert.Equal(t, 0, m.selected)
}

func TestDetailView(t *testing.T) {
	m := setupTestApp(t, "first", "second")

	m = press(t, m, runeKey('j'), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeDetail, m.mode)
	assert.Equal(t, int64(2), m.detailTaskID)

	// Browsing keys are inert while the detail view is open.
	m = press(t, m, runeKey('j'), runeKey('d'), tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, modeDetail, m.mode)
	assert.Equal(t, []string{"first", "second"}, visibleDescriptions(m))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeBrowsing, m.mode)
	assert.Equal(t, int64(0), m.detailTaskID)
	assert.Equal(t, 1, m.selected)
}

func TestStatusClearedOnNextKey(t *testing.T) {
	m := setupTestApp(t, "only")
	m.status = "Failed to reorder task"
	m.statusErr = true

	m = press(t, m, runeKey('j'))
	assert.Empty(t, m.status)
	assert.False(t, m.statusErr)
}

func TestTaskContext(t *testing.T) {
	m := setupTestApp(t, "first", "second", "third")

	prev, next := m.taskContext(2)
	require.NotNil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, "first", prev.Description)
	assert.Equal(t, "third", next.Description)

	prev, next = m.taskContext(1)
	assert.Nil(t, prev)
	require.NotNil(t, next)

	prev, next = m.taskContext(3)
	require.NotNil(t, prev)
	assert.Nil(t, next)
}

func TestViewRendersTasks(t *testing.T) {
	m := setupTestApp(t, "Write spec", "Buy milk")
	m.width = 80
	m.height = 24

	out := m.View()
	assert.Contains(t, out, "Write spec")
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "Pending Tasks")
	assert.Contains(t, out, "2 shown")
}

func TestViewDetail(t *testing.T) {
	m := setupTestApp(t, "Write spec")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	out := m.View()
	assert.Contains(t, out, "Write spec")
	assert.Contains(t, out, "PENDING")
	assert.Contains(t, out, "NORMAL")
}
