package pickers

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings shared by the picker widgets.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	Select    key.Binding
	SelectEnd key.Binding
	ZoomOut   key.Binding

	Toggle key.Binding
	Today  key.Binding
	Clear  key.Binding
	Lock   key.Binding
	Next   key.Binding
	Prev   key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up / increment")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down / decrement")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		SelectEnd: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select range end")),
		ZoomOut:   key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "wider scope")),

		Toggle: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "toggle dialog")),
		Today:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "to today/now")),
		Clear:  key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear")),
		Lock:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "lock span")),
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Toggle, k.Today, k.Clear}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.SelectEnd, k.ZoomOut},
		{k.Toggle, k.Today, k.Clear, k.Lock, k.Next, k.Prev},
	}
}
