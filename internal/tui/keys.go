package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the dashboard.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding

	// Focus switching between the sidebar and the active section.
	FocusToggle key.Binding
	Open        key.Binding

	// Section jumps (1-5 in menu order).
	Jump key.Binding

	TimeRange key.Binding
	Reload    key.Binding

	// List actions.
	Search     key.Binding
	RoleFilter key.Binding
	New        key.Binding
	Edit       key.Binding
	Delete     key.Binding

	// Form and modal.
	NextField key.Binding
	PrevField key.Binding
	Cycle     key.Binding
	Submit    key.Binding
	Cancel    key.Binding
	Confirm   key.Binding
	Deny      key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "arriba"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "abajo"),
	),
	FocusToggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "menú/sección"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "abrir"),
	),
	Jump: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5"),
		key.WithHelp("1-5", "ir a sección"),
	),
	TimeRange: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "rango"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "recargar"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "buscar"),
	),
	RoleFilter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "rol"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "nuevo"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "editar"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "eliminar"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "siguiente campo"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("S-tab", "campo anterior"),
	),
	Cycle: key.NewBinding(
		key.WithKeys("left", "right"),
		key.WithHelp("←/→", "opción"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("C-s", "guardar"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancelar"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "s"),
		key.WithHelp("y", "sí"),
	),
	Deny: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n", "no"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "salir"),
	),
}

// helpKeys adapts the bindings active in one focus region to help.KeyMap.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding  { return h }
func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

// bindingsFor returns the bindings worth advertising in focus.
func (keys KeyMap) bindingsFor(focus FocusRegion, id string) helpKeys {
	switch focus {
	case FocusSidebar:
		return helpKeys{keys.Up, keys.Down, keys.Open, keys.FocusToggle, keys.Quit}
	case FocusSearch:
		return helpKeys{keys.Open, keys.Cancel}
	case FocusForm:
		return helpKeys{keys.NextField, keys.PrevField, keys.Cycle, keys.Submit, keys.Cancel}
	case FocusConfirm:
		return helpKeys{keys.Confirm, keys.Deny}
	}
	switch id {
	case "users":
		return helpKeys{keys.Up, keys.Down, keys.Search, keys.RoleFilter, keys.New, keys.Edit, keys.Delete, keys.Reload, keys.Quit}
	case "products":
		return helpKeys{keys.Up, keys.Down, keys.Search, keys.New, keys.Edit, keys.Delete, keys.Reload, keys.Quit}
	case "sales":
		return helpKeys{keys.Up, keys.Down, keys.Search, keys.Reload, keys.Quit}
	case "settings":
		return helpKeys{keys.Edit, keys.Reload, keys.Quit}
	}
	return helpKeys{keys.TimeRange, keys.Reload, keys.FocusToggle, keys.Quit}
}
