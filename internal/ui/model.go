package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"taskdeck/internal/store"
	"taskdeck/internal/task"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
)

// editState exists only while one task is being edited. Buffers are
// seeded from the task when edit starts and thrown away on cancel.
type editState struct {
	taskID int64
	title  textinput.Model
	desc   textinput.Model
	field  int // 0 = title, 1 = description
}

type statusBar struct {
	text    string
	isError bool
}

// Model is the view model: the full snapshot, the active filter and
// whatever entry state is in flight.
type Model struct {
	store  *store.Store
	logger *log.Entry

	tasks  []task.Task // full snapshot, refreshed after every mutation
	filter task.Filter
	cursor int // index into the visible (filtered) list
	mode   mode

	addTitle textinput.Model
	addDesc  textinput.Model
	addField int

	edit       *editState
	pendingDel *task.Task

	status statusBar
	keys   keymap
	width  int
}

// New builds the initial model and loads the first snapshot.
func New(st *store.Store, filter task.Filter, logger *log.Entry) (Model, error) {
	tasks, err := st.LoadAll()
	if err != nil {
		return Model{}, err
	}

	m := Model{
		store:    st,
		logger:   logger,
		tasks:    tasks,
		filter:   filter,
		mode:     modeList,
		addTitle: newInput("Title", 256),
		addDesc:  newInput("Description (optional)", 1024),
		keys:     defaultKeymap(),
	}
	return m, nil
}

// Run hands the terminal to the UI and blocks until the user quits.
func Run(st *store.Store, filter task.Filter, logger *log.Entry) error {
	m, err := New(st, filter, logger)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 40
	return ti
}

// visible is the subset of the snapshot the active filter selects.
func (m Model) visible() []task.Task {
	return task.Visible(m.tasks, m.filter)
}

// selected returns the task under the cursor, or nil when the visible
// list is empty.
func (m Model) selected() *task.Task {
	vis := m.visible()
	if len(vis) == 0 || m.cursor < 0 || m.cursor >= len(vis) {
		return nil
	}
	t := vis[m.cursor]
	return &t
}

// reload replaces the snapshot with the current store contents. On
// failure the previous snapshot stays in place and the error lands in
// the status bar.
func (m *Model) reload() {
	tasks, err := m.store.LoadAll()
	if err != nil {
		m.fail("reload", err)
		return
	}
	m.tasks = tasks
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.visible())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) info(text string) {
	m.status = statusBar{text: text}
}

func (m *Model) fail(op string, err error) {
	if m.logger != nil {
		m.logger.WithField("op", op).WithError(err).Error("store operation failed")
	}
	m.status = statusBar{text: op + " failed: " + err.Error(), isError: true}
}
