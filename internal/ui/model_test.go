package ui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/store"
	"taskdeck/internal/task"
)

func newTestModel(t *testing.T, seed ...string) Model {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	for _, title := range seed {
		if err := st.Add(title, ""); err != nil {
			t.Fatalf("seed Add failed: %v", err)
		}
	}

	m, err := New(st, task.FilterAll, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return m
}

// press feeds key messages through Update and returns the new model
func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func keyRunes(s string) tea.Msg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }
func key(k tea.KeyType) tea.Msg { return tea.KeyMsg{Type: k} }

func TestAddFlow(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	m = press(t, m, keyRunes("a"))
	if m.mode != modeAdd {
		t.Fatalf("Expected add mode, got %v", m.mode)
	}

	m = press(t, m, keyRunes("Buy milk"), key(tea.KeyTab), keyRunes("2 liters"), key(tea.KeyEnter))

	if m.mode != modeList {
		t.Errorf("Expected to return to list mode, got %v", m.mode)
	}
	if len(m.tasks) != 1 {
		t.Fatalf("Expected snapshot with 1 task, got %d", len(m.tasks))
	}
	if m.tasks[0].Title != "Buy milk" || m.tasks[0].Description != "2 liters" {
		t.Errorf("Unexpected task stored: %+v", m.tasks[0])
	}
	if m.addTitle.Value() != "" || m.addDesc.Value() != "" {
		t.Error("Expected add form cleared after successful add")
	}
}

func TestAddEmptyTitleKeepsFormAndStore(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	m = press(t, m, keyRunes("a"), keyRunes("   "), key(tea.KeyEnter))

	if m.mode != modeAdd {
		t.Error("Expected to stay in add mode on empty title")
	}
	if len(m.tasks) != 0 {
		t.Errorf("Expected snapshot unchanged, got %d tasks", len(m.tasks))
	}
	if m.addTitle.Value() != "   " {
		t.Errorf("Expected input preserved, got %q", m.addTitle.Value())
	}

	m = press(t, m, key(tea.KeyEsc))
	if m.mode != modeList {
		t.Error("Expected esc to cancel add mode")
	}
	if m.addTitle.Value() != "" {
		t.Error("Expected cancel to clear the form")
	}
}

func TestToggleAndFilterKeys(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, "A")

	m = press(t, m, key(tea.KeySpace))
	if !m.tasks[0].Done {
		t.Fatal("Expected toggle to mark the task done")
	}

	m = press(t, m, keyRunes("3"))
	if m.filter != task.FilterCompleted {
		t.Fatalf("Expected Completed filter, got %s", m.filter)
	}
	if len(m.visible()) != 1 {
		t.Error("Expected the done task under Completed")
	}

	m = press(t, m, keyRunes("2"))
	if len(m.visible()) != 0 {
		t.Error("Expected Active to be empty")
	}

	m = press(t, m, key(tea.KeyTab))
	if m.filter != task.FilterCompleted {
		t.Errorf("Expected tab to cycle Active -> Completed, got %s", m.filter)
	}
}

func TestEditSeedsBuffersAndCancelDiscards(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	if err := m.store.Add("Call mom", "about the trip"); err != nil {
		t.Fatal(err)
	}
	m.reload()

	m = press(t, m, keyRunes("e"))
	if m.mode != modeEdit || m.edit == nil {
		t.Fatal("Expected edit mode with edit state")
	}
	if m.edit.title.Value() != "Call mom" || m.edit.desc.Value() != "about the trip" {
		t.Errorf("Expected buffers seeded from task, got %q / %q",
			m.edit.title.Value(), m.edit.desc.Value())
	}

	m = press(t, m, keyRunes(" tonight"), key(tea.KeyEsc))
	if m.mode != modeList || m.edit != nil {
		t.Fatal("Expected cancel to leave edit mode")
	}
	if m.tasks[0].Title != "Call mom" {
		t.Errorf("Expected cancel to leave the task untouched, got %q", m.tasks[0].Title)
	}
}

func TestEditSaveUpdatesTask(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	if err := m.store.Add("Old", "old notes"); err != nil {
		t.Fatal(err)
	}
	m.reload()

	m = press(t, m, keyRunes("e"))
	m.edit.title.SetValue("New")
	m.edit.desc.SetValue("new notes")
	m = press(t, m, key(tea.KeyEnter))

	if m.mode != modeList || m.edit != nil {
		t.Fatal("Expected save to leave edit mode")
	}
	if m.tasks[0].Title != "New" || m.tasks[0].Description != "new notes" {
		t.Errorf("Expected task updated, got %+v", m.tasks[0])
	}
}

// An empty-title save exits edit mode and silently discards the edit.
func TestEditSaveEmptyTitleDiscardsEdit(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, "Keep me")

	m = press(t, m, keyRunes("e"))
	m.edit.title.SetValue("   ")
	m = press(t, m, key(tea.KeyEnter))

	if m.mode != modeList || m.edit != nil {
		t.Fatal("Expected empty-title save to still exit edit mode")
	}
	if m.tasks[0].Title != "Keep me" {
		t.Errorf("Expected task unchanged, got %q", m.tasks[0].Title)
	}
}

func TestDeleteConfirmThenRestore(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, "Doomed")

	m = press(t, m, keyRunes("d"))
	if m.mode != modeConfirmDelete {
		t.Fatal("Expected delete confirmation prompt")
	}

	m = press(t, m, keyRunes("y"))
	if m.mode != modeList {
		t.Fatal("Expected confirmation to resolve")
	}
	if len(m.visible()) != 0 {
		t.Error("Expected deleted task hidden under All")
	}
	if len(m.tasks) != 1 || !m.tasks[0].Deleted {
		t.Fatal("Expected task soft-deleted, not removed")
	}

	m = press(t, m, keyRunes("4"))
	if len(m.visible()) != 1 {
		t.Fatal("Expected the task under Deleted")
	}

	m = press(t, m, keyRunes("r"))
	if m.tasks[0].Deleted {
		t.Error("Expected restore to clear the deleted flag")
	}
	if len(m.visible()) != 0 {
		t.Error("Expected Deleted view empty after restore")
	}
}

func TestDeleteCancelled(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, "Safe")

	m = press(t, m, keyRunes("d"), keyRunes("n"))
	if m.mode != modeList {
		t.Fatal("Expected cancel to return to list mode")
	}
	if m.tasks[0].Deleted {
		t.Error("Expected task untouched after cancelled delete")
	}
}

// Deleted tasks take no toggle, edit or delete actions; only restore.
func TestDeletedTasksAreInert(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, "Trashed")
	if err := m.store.SoftDelete(m.tasks[0].ID); err != nil {
		t.Fatal(err)
	}
	m.reload()
	m = press(t, m, keyRunes("4"))

	m = press(t, m, key(tea.KeySpace))
	if m.tasks[0].Done {
		t.Error("Expected toggle to be ignored on deleted task")
	}

	m = press(t, m, keyRunes("e"))
	if m.mode != modeList {
		t.Error("Expected edit to be ignored on deleted task")
	}

	m = press(t, m, keyRunes("d"))
	if m.mode != modeList {
		t.Error("Expected delete to be ignored on already-deleted task")
	}
}

func TestCursorClampsWhenViewShrinks(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, "A", "B")

	m = press(t, m, keyRunes("j"))
	if m.cursor != 1 {
		t.Fatalf("Expected cursor on second task, got %d", m.cursor)
	}

	m = press(t, m, keyRunes("d"), keyRunes("y"))
	if m.cursor != 0 {
		t.Errorf("Expected cursor clamped to remaining task, got %d", m.cursor)
	}
}

func TestQuitKey(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.Quit command")
	}
}
