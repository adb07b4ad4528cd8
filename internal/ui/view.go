package ui

import (
	"fmt"
	"strings"

	"taskdeck/internal/task"
)

var filterTabs = []task.Filter{
	task.FilterAll,
	task.FilterActive,
	task.FilterCompleted,
	task.FilterDeleted,
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("taskdeck"))
	b.WriteString("\n")
	b.WriteString(m.renderFilterTabs())
	b.WriteString("\n\n")
	b.WriteString(m.renderTaskList())

	switch m.mode {
	case modeAdd:
		b.WriteString("\n")
		b.WriteString(m.renderForm("New task", m.addTitle.View(), m.addDesc.View()))
	case modeEdit:
		if m.edit != nil {
			b.WriteString("\n")
			b.WriteString(m.renderForm(fmt.Sprintf("Edit task #%d", m.edit.taskID), m.edit.title.View(), m.edit.desc.View()))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))

	return b.String()
}

func (m Model) renderFilterTabs() string {
	var tabs []string
	for i, f := range filterTabs {
		label := fmt.Sprintf("%d:%s", i+1, f)
		if f == m.filter {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderTaskList() string {
	vis := m.visible()
	if len(vis) == 0 {
		return deletedStyle.Render(m.emptyMessage())
	}

	var b strings.Builder
	for i, t := range vis {
		cursor := "  "
		if i == m.cursor && m.mode == modeList {
			cursor = selectedStyle.Render("> ")
		}

		checkbox := "[ ]"
		if t.Done {
			checkbox = "[x]"
		}
		if t.Deleted {
			// Deleted rows keep their last done value but lose the
			// interactive checkbox, same as the disabled control in a
			// desktop list.
			checkbox = "[-]"
		}

		title := t.Title
		switch {
		case t.Deleted:
			title = deletedStyle.Render(title)
		case t.Done:
			title = doneStyle.Render(title)
		}

		b.WriteString(fmt.Sprintf("%s%s %s", cursor, checkbox, title))
		b.WriteString("\n")
		if t.Description != "" {
			desc := t.Description
			if t.Deleted {
				desc = deletedStyle.Render(desc)
			}
			b.WriteString(descStyle.Render(desc))
			b.WriteString("\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m Model) renderForm(heading, titleView, descView string) string {
	var b strings.Builder
	b.WriteString(selectedStyle.Render(heading))
	b.WriteString("\n")
	b.WriteString(titleView)
	b.WriteString("\n")
	b.WriteString(descView)
	return b.String()
}

func (m Model) renderStatus() string {
	if m.status.text == "" {
		return ""
	}
	if m.status.isError {
		return errorStyle.Render(m.status.text)
	}
	return statusStyle.Render(m.status.text)
}

func (m Model) emptyMessage() string {
	switch m.filter {
	case task.FilterDeleted:
		return "Trash is empty."
	case task.FilterCompleted:
		return "Nothing completed yet."
	case task.FilterActive:
		return "No active tasks. Press 'a' to add one."
	default:
		return "No tasks yet. Press 'a' to add one."
	}
}

func (m Model) helpLine() string {
	switch m.mode {
	case modeAdd, modeEdit:
		return "enter save • tab field • esc cancel"
	case modeConfirmDelete:
		return "y confirm • n cancel"
	}
	if m.filter == task.FilterDeleted {
		return fmt.Sprintf("%s/%s move • %s restore • 1-4/tab filter • %s quit",
			m.keys.Up, m.keys.Down, m.keys.Restore, m.keys.Quit)
	}
	return fmt.Sprintf("%s/%s move • %s add • %s edit • space toggle • %s delete • 1-4/tab filter • %s quit",
		m.keys.Up, m.keys.Down, m.keys.Add, m.keys.Edit, m.keys.Delete, m.keys.Quit)
}
