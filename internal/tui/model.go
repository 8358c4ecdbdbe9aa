package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"admin-dashboard/internal/form"
	"admin-dashboard/internal/logging"
	"admin-dashboard/internal/section"
)

// FocusRegion identifies which part of the screen has keyboard focus.
type FocusRegion int

const (
	// FocusContent means keys act on the active section.
	FocusContent FocusRegion = iota
	// FocusSidebar means up/down move through the menu.
	FocusSidebar
	// FocusSearch means keystrokes go to the search input.
	FocusSearch
	// FocusForm means keystrokes go to the open form.
	FocusForm
	// FocusConfirm means the delete confirmation is shown.
	FocusConfirm
)

// TimeRanges are the header time-range choices. They are display only.
var TimeRanges = []string{"7d", "30d", "90d"}

// Notifications is the count shown on the header badge.
const Notifications = 3

const sidebarWidth = 22

// loadedMsg is sent when a section's fetch resolves.
type loadedMsg struct {
	section section.Section
}

// mutationResultMsg is sent when a submit or delete completes. The list
// already holds the outcome; err only decides whether the form closes.
type mutationResultMsg struct {
	section section.Section
	err     error
}

// Model is the top-level bubbletea model of the dashboard.
type Model struct {
	ctx    context.Context
	deps   section.Deps
	logger *slog.Logger
	keys   KeyMap
	theme  Theme
	styles styles

	menuIndex  int
	menuCursor int
	active     section.Section
	loading    bool
	busy       bool
	notice     string

	focus     FocusRegion
	cursor    int
	timeRange int

	search textinput.Model
	editor editor
	inputs []textinput.Model
	field  int

	spinner spinner.Model
	help    help.Model

	width  int
	height int
}

// NewModel creates a Model with the default section mounted. The section
// starts loading on Init.
func NewModel(ctx context.Context, deps section.Deps) (Model, error) {
	search := textinput.New()
	search.Prompt = "Buscar: "
	search.Placeholder = "nombre o email"

	model := Model{
		ctx:     ctx,
		deps:    deps,
		logger:  logging.OrNop(deps.Logger),
		keys:    DefaultKeyMap,
		theme:   DefaultTheme,
		styles:  newStyles(DefaultTheme),
		search:  search,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:    help.New(),
	}
	active, err := section.Open(section.Menu[0].ID, deps)
	if err != nil {
		return Model{}, fmt.Errorf("NewModel: %w", err)
	}
	model.active = active
	model.loading = true
	return model, nil
}

// Active returns the mounted section.
func (model Model) Active() section.Section { return model.active }

// Focus returns the focus region.
func (model Model) Focus() FocusRegion { return model.focus }

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return tea.Batch(model.spinner.Tick, loadSection(model.ctx, model.active))
}

// loadSection returns a tea.Cmd that runs the section's fetch.
func loadSection(ctx context.Context, s section.Section) tea.Cmd {
	return func() tea.Msg {
		s.Load(ctx)
		return loadedMsg{section: s}
	}
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.help.Width = message.Width
		return model, nil

	case loadedMsg:
		if message.section != model.active {
			return model, nil
		}
		model.loading = false
		model.clampCursor()
		return model, nil

	case mutationResultMsg:
		if message.section != model.active {
			return model, nil
		}
		model.busy = false
		if message.err != nil {
			// The section's list carries the operator-facing message;
			// the form stays open with its draft for a retry.
			if !errors.Is(message.err, form.ErrSubmitting) {
				model.logger.Debug("mutation failed", "error", message.err)
			}
			return model, nil
		}
		model.notice = ""
		if model.focus == FocusForm {
			model.closeEditor()
		}
		model.clampCursor()
		return model, nil

	case spinner.TickMsg:
		if !model.loading && !model.busy {
			return model, nil
		}
		var cmd tea.Cmd
		model.spinner, cmd = model.spinner.Update(message)
		return model, cmd

	case tea.KeyMsg:
		return model.handleKey(message)
	}
	return model, nil
}

func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if message.Type == tea.KeyCtrlC {
		return model.quit()
	}
	switch model.focus {
	case FocusSidebar:
		return model.handleSidebarKeys(message)
	case FocusSearch:
		return model.handleSearchKeys(message)
	case FocusForm:
		return model.handleFormKeys(message)
	case FocusConfirm:
		return model.handleConfirmKeys(message)
	}
	return model.handleContentKeys(message)
}

func (model Model) quit() (tea.Model, tea.Cmd) {
	if model.active != nil {
		model.active.Close()
	}
	return model, tea.Quit
}

// switchTo unmounts the active section and mounts a fresh instance of
// the menu entry at index. Results of the old section are dropped.
func (model Model) switchTo(index int) (tea.Model, tea.Cmd) {
	if index < 0 || index >= len(section.Menu) {
		return model, nil
	}
	model.menuCursor = index
	if index == model.menuIndex {
		model.focus = FocusContent
		return model, nil
	}
	next, err := section.Open(section.Menu[index].ID, model.deps)
	if err != nil {
		model.notice = err.Error()
		return model, nil
	}
	if model.active != nil {
		model.active.Close()
	}
	model.logger.Debug("section switched", "from", string(section.Menu[model.menuIndex].ID), "to", string(next.ID()))

	model.menuIndex = index
	model.active = next
	model.loading = true
	model.busy = false
	model.notice = ""
	model.focus = FocusContent
	model.cursor = 0
	model.editor = nil
	model.inputs = nil
	model.search.SetValue("")
	model.search.Blur()
	return model, tea.Batch(model.spinner.Tick, loadSection(model.ctx, next))
}

// reload refetches the active section unless a fetch or a mutation is
// already running for it.
func (model Model) reload() (tea.Model, tea.Cmd) {
	if model.loading || model.busy {
		return model, nil
	}
	model.loading = true
	model.notice = ""
	return model, tea.Batch(model.spinner.Tick, loadSection(model.ctx, model.active))
}

func (model Model) handleSidebarKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model.quit()
	case key.Matches(message, model.keys.Up):
		if model.menuCursor > 0 {
			model.menuCursor--
		}
	case key.Matches(message, model.keys.Down):
		if model.menuCursor < len(section.Menu)-1 {
			model.menuCursor++
		}
	case key.Matches(message, model.keys.Open):
		return model.switchTo(model.menuCursor)
	case key.Matches(message, model.keys.FocusToggle), message.Type == tea.KeyEsc:
		model.focus = FocusContent
	case key.Matches(message, model.keys.Jump):
		return model.switchTo(int(message.Runes[0] - '1'))
	}
	return model, nil
}

func (model Model) handleContentKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model.quit()
	case key.Matches(message, model.keys.FocusToggle):
		model.focus = FocusSidebar
		model.menuCursor = model.menuIndex
	case key.Matches(message, model.keys.Jump):
		return model.switchTo(int(message.Runes[0] - '1'))
	case key.Matches(message, model.keys.TimeRange):
		model.timeRange = (model.timeRange + 1) % len(TimeRanges)
	case key.Matches(message, model.keys.Reload):
		return model.reload()
	case key.Matches(message, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}
	case key.Matches(message, model.keys.Down):
		if model.cursor < model.rowCount()-1 {
			model.cursor++
		}
	case key.Matches(message, model.keys.Search):
		if model.searchable() {
			model.focus = FocusSearch
			return model, model.search.Focus()
		}
	case key.Matches(message, model.keys.RoleFilter):
		if users, ok := model.active.(*section.Users); ok {
			users.Role = nextOption(section.RoleOptions(), users.Role)
			model.cursor = 0
		}
	case key.Matches(message, model.keys.New):
		return model.openCreate()
	case key.Matches(message, model.keys.Edit):
		return model.openEdit()
	case key.Matches(message, model.keys.Delete):
		return model.requestDelete()
	}
	return model, nil
}

func (model Model) searchable() bool {
	switch model.active.(type) {
	case *section.Users, *section.Products, *section.Sales:
		return true
	}
	return false
}

func (model Model) setSearch(query string) {
	switch s := model.active.(type) {
	case *section.Users:
		s.Search = query
	case *section.Products:
		s.Search = query
	case *section.Sales:
		s.Search = query
	}
}

func (model Model) handleSearchKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEnter:
		model.search.Blur()
		model.focus = FocusContent
		return model, nil
	case tea.KeyEsc:
		model.search.SetValue("")
		model.search.Blur()
		model.setSearch("")
		model.focus = FocusContent
		model.cursor = 0
		return model, nil
	}
	var cmd tea.Cmd
	model.search, cmd = model.search.Update(message)
	model.setSearch(model.search.Value())
	model.cursor = 0
	return model, cmd
}

// formOf returns the form of the active section, when it has one.
func (model Model) formOf() (editor, deleter, bool) {
	switch s := model.active.(type) {
	case *section.Users:
		return s.Form, s.Form, true
	case *section.Products:
		return s.Form, s.Form, true
	}
	return nil, nil, false
}

func (model Model) openCreate() (tea.Model, tea.Cmd) {
	ed, _, ok := model.formOf()
	if !ok {
		return model, nil
	}
	ed.Reset()
	return model.openEditor(ed)
}

func (model Model) openEdit() (tea.Model, tea.Cmd) {
	switch s := model.active.(type) {
	case *section.Users:
		rows := s.Visible()
		if model.cursor >= len(rows) {
			return model, nil
		}
		s.Form.Edit(rows[model.cursor])
		return model.openEditor(s.Form)
	case *section.Products:
		rows := s.Visible()
		if model.cursor >= len(rows) {
			return model, nil
		}
		s.Form.Edit(rows[model.cursor])
		return model.openEditor(s.Form)
	case *section.Settings:
		if model.loading {
			return model, nil
		}
		return model.openEditor(newSettingsEditor(s))
	}
	return model, nil
}

func (model Model) openEditor(ed editor) (tea.Model, tea.Cmd) {
	fields := ed.Fields()
	model.inputs = make([]textinput.Model, len(fields))
	for i, f := range fields {
		input := textinput.New()
		input.Prompt = ""
		input.SetValue(ed.Get(f.Name))
		if f.Secret {
			input.EchoMode = textinput.EchoPassword
		}
		model.inputs[i] = input
	}
	model.editor = ed
	model.field = 0
	model.focus = FocusForm
	model.notice = ""
	return model, model.inputs[0].Focus()
}

func (model *Model) closeEditor() {
	model.editor = nil
	model.inputs = nil
	model.field = 0
	model.focus = FocusContent
}

func (model Model) focusField(index int) (tea.Model, tea.Cmd) {
	if index < 0 || index >= len(model.inputs) {
		return model, nil
	}
	model.inputs[model.field].Blur()
	model.field = index
	return model, model.inputs[index].Focus()
}

func (model Model) submit() (tea.Model, tea.Cmd) {
	if model.busy {
		return model, nil
	}
	model.busy = true
	ed, s, ctx := model.editor, model.active, model.ctx
	return model, tea.Batch(model.spinner.Tick, func() tea.Msg {
		return mutationResultMsg{section: s, err: ed.Submit(ctx)}
	})
}

func (model Model) handleFormKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model.busy {
		return model, nil
	}
	fields := model.editor.Fields()
	current := fields[model.field]

	switch {
	case key.Matches(message, model.keys.Cancel):
		model.editor.Reset()
		model.closeEditor()
		return model, nil
	case key.Matches(message, model.keys.Submit):
		return model.submit()
	case message.Type == tea.KeyEnter:
		if model.field == len(fields)-1 {
			return model.submit()
		}
		return model.focusField(model.field + 1)
	case key.Matches(message, model.keys.NextField):
		return model.focusField(model.field + 1)
	case key.Matches(message, model.keys.PrevField):
		return model.focusField(model.field - 1)
	case key.Matches(message, model.keys.Cycle):
		if len(current.Options) > 0 {
			value := nextOption(current.Options, model.editor.Get(current.Name))
			if message.Type == tea.KeyLeft {
				value = prevOption(current.Options, model.editor.Get(current.Name))
			}
			_ = model.editor.Set(current.Name, value)
			model.inputs[model.field].SetValue(value)
			return model, nil
		}
	}
	if len(current.Options) > 0 {
		return model, nil
	}
	var cmd tea.Cmd
	model.inputs[model.field], cmd = model.inputs[model.field].Update(message)
	_ = model.editor.Set(current.Name, model.inputs[model.field].Value())
	return model, cmd
}

// selectedID returns the id of the row under the cursor.
func (model Model) selectedID() (int, bool) {
	switch s := model.active.(type) {
	case *section.Users:
		rows := s.Visible()
		if model.cursor < len(rows) {
			return rows[model.cursor].ID, true
		}
	case *section.Products:
		rows := s.Visible()
		if model.cursor < len(rows) {
			return rows[model.cursor].ID, true
		}
	}
	return 0, false
}

func (model Model) requestDelete() (tea.Model, tea.Cmd) {
	_, del, ok := model.formOf()
	if !ok {
		return model, nil
	}
	id, ok := model.selectedID()
	if !ok {
		return model, nil
	}
	del.RequestDelete(id)
	model.focus = FocusConfirm
	return model, nil
}

func (model Model) handleConfirmKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	_, del, ok := model.formOf()
	if !ok {
		model.focus = FocusContent
		return model, nil
	}
	switch {
	case key.Matches(message, model.keys.Confirm):
		model.focus = FocusContent
		if model.busy {
			return model, nil
		}
		model.busy = true
		s, ctx := model.active, model.ctx
		return model, tea.Batch(model.spinner.Tick, func() tea.Msg {
			return mutationResultMsg{section: s, err: del.ConfirmDelete(ctx)}
		})
	case key.Matches(message, model.keys.Deny):
		del.CancelDelete()
		model.focus = FocusContent
	}
	return model, nil
}

func (model Model) rowCount() int {
	switch s := model.active.(type) {
	case *section.Users:
		return len(s.Visible())
	case *section.Products:
		return len(s.Visible())
	case *section.Sales:
		return len(s.Visible())
	}
	return 0
}

func (model *Model) clampCursor() {
	if n := model.rowCount(); model.cursor >= n {
		model.cursor = max(n-1, 0)
	}
}

func nextOption(options []string, current string) string {
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func prevOption(options []string, current string) string {
	for i, o := range options {
		if o == current {
			return options[(i+len(options)-1)%len(options)]
		}
	}
	return options[0]
}

// Run draws the dashboard until the operator quits.
func Run(ctx context.Context, deps section.Deps) error {
	model, err := NewModel(ctx, deps)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if m, ok := final.(Model); ok && m.active != nil {
		m.active.Close()
	}
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	return nil
}
