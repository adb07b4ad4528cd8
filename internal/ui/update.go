package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/task"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			return m.updateAddMode(msg)
		case modeEdit:
			return m.updateEditMode(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateListMode(msg)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 10; w > 0 {
			m.addTitle.Width = w
			m.addDesc.Width = w
		}
	}
	return m, nil
}

func (m Model) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c", m.keys.Quit:
		return m, tea.Quit

	case m.keys.Down, "down":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}

	case m.keys.Up, "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "1":
		m.setFilter(task.FilterAll)
	case "2":
		m.setFilter(task.FilterActive)
	case "3":
		m.setFilter(task.FilterCompleted)
	case "4":
		m.setFilter(task.FilterDeleted)
	case "tab":
		m.setFilter((m.filter + 1) % 4)

	case m.keys.Add:
		m.mode = modeAdd
		m.addField = 0
		m.addTitle.Focus()
		m.addDesc.Blur()
		m.info("Add: enter saves, tab switches field, esc cancels")

	case m.keys.Toggle, "x":
		t := m.selected()
		if t == nil || t.Deleted {
			return m, nil
		}
		if err := m.store.ToggleDone(t.ID); err != nil {
			m.fail("toggle", err)
			return m, nil
		}
		m.reload()
		m.info("Toggled " + quote(t.Title))

	case m.keys.Edit:
		t := m.selected()
		if t == nil || t.Deleted {
			return m, nil
		}
		m.startEdit(*t)

	case m.keys.Delete:
		t := m.selected()
		if t == nil || t.Deleted {
			return m, nil
		}
		m.pendingDel = t
		m.mode = modeConfirmDelete
		m.status = statusBar{text: "Delete " + quote(t.Title) + "? y/n"}

	case m.keys.Restore:
		t := m.selected()
		if t == nil || !t.Deleted {
			return m, nil
		}
		if err := m.store.Restore(t.ID); err != nil {
			m.fail("restore", err)
			return m, nil
		}
		m.reload()
		m.info("Restored " + quote(t.Title))
	}
	return m, nil
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.addTitle.SetValue("")
		m.addDesc.SetValue("")
		m.blurAddInputs()
		m.info("Cancelled")
		return m, nil

	case "tab", "shift+tab":
		m.addField = 1 - m.addField
		m.focusAddField()
		return m, nil

	case "enter":
		title := strings.TrimSpace(m.addTitle.Value())
		if title == "" {
			// Validation no-op: nothing is stored, inputs stay put.
			m.info("Title required")
			return m, nil
		}
		if err := m.store.Add(title, m.addDesc.Value()); err != nil {
			m.fail("add", err)
			return m, nil
		}
		m.reload()
		m.addTitle.SetValue("")
		m.addDesc.SetValue("")
		m.blurAddInputs()
		m.mode = modeList
		m.info("Added " + quote(title))
		return m, nil

	default:
		var cmd tea.Cmd
		if m.addField == 0 {
			m.addTitle, cmd = m.addTitle.Update(msg)
		} else {
			m.addDesc, cmd = m.addDesc.Update(msg)
		}
		return m, cmd
	}
}

func (m Model) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.edit == nil {
		m.mode = modeList
		return m, nil
	}

	switch msg.String() {
	case "esc":
		// Cancel: buffers are discarded, the task is untouched.
		m.edit = nil
		m.mode = modeList
		m.info("Edit cancelled")
		return m, nil

	case "tab", "shift+tab":
		m.edit.field = 1 - m.edit.field
		if m.edit.field == 0 {
			m.edit.title.Focus()
			m.edit.desc.Blur()
		} else {
			m.edit.title.Blur()
			m.edit.desc.Focus()
		}
		return m, nil

	case "enter":
		// Save always leaves edit mode. An empty trimmed title makes
		// the update itself a no-op, so the edit is silently dropped.
		id := m.edit.taskID
		title := m.edit.title.Value()
		desc := m.edit.desc.Value()
		m.edit = nil
		m.mode = modeList
		if err := m.store.Update(id, title, desc); err != nil {
			m.fail("update", err)
			return m, nil
		}
		m.reload()
		if strings.TrimSpace(title) == "" {
			m.info("Edit discarded (empty title)")
		} else {
			m.info("Saved " + quote(strings.TrimSpace(title)))
		}
		return m, nil

	default:
		var cmd tea.Cmd
		if m.edit.field == 0 {
			m.edit.title, cmd = m.edit.title.Update(msg)
		} else {
			m.edit.desc, cmd = m.edit.desc.Update(msg)
		}
		return m, cmd
	}
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		t := m.pendingDel
		m.pendingDel = nil
		m.mode = modeList
		if t == nil {
			return m, nil
		}
		if err := m.store.SoftDelete(t.ID); err != nil {
			m.fail("delete", err)
			return m, nil
		}
		m.reload()
		m.info("Deleted " + quote(t.Title) + " (press 4 to see deleted tasks)")
	case "n", "N", "esc":
		m.pendingDel = nil
		m.mode = modeList
		m.info("Delete cancelled")
	}
	return m, nil
}

func (m *Model) startEdit(t task.Task) {
	es := &editState{
		taskID: t.ID,
		title:  newInput("Title", 256),
		desc:   newInput("Description (optional)", 1024),
	}
	es.title.SetValue(t.Title)
	es.desc.SetValue(t.Description)
	es.title.Focus()
	m.edit = es
	m.mode = modeEdit
	m.info("Edit: enter saves, tab switches field, esc cancels")
}

func (m *Model) setFilter(f task.Filter) {
	m.filter = f
	m.cursor = 0
}

func (m *Model) focusAddField() {
	if m.addField == 0 {
		m.addTitle.Focus()
		m.addDesc.Blur()
	} else {
		m.addTitle.Blur()
		m.addDesc.Focus()
	}
}

func (m *Model) blurAddInputs() {
	m.addTitle.Blur()
	m.addDesc.Blur()
}

func quote(s string) string {
	return "\"" + s + "\""
}
