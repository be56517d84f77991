package components

import (
	tea "charm.land/bubbletea/v2"
)

// MenuItem is one entry in an action menu. A nil Action makes the entry
// inert; Disabled entries are skipped during navigation.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu tracks the selection of a vertical action list and dispatches
// the chosen action. Rendering stays with the owning screen, which may
// relabel entries between frames, so the menu carries state only.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu builds a menu with the first enabled entry selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

// Update moves the selection on up/k and down/j and dispatches the
// selected action on enter. Other messages are ignored.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		m.Selected = m.seek(-1)
	case "down", "j":
		m.Selected = m.seek(1)
	case "enter":
		return m, m.dispatch()
	}
	return m, nil
}

// seek returns the nearest enabled index in the given direction, or the
// current one when the edge is reached.
func (m Menu) seek(step int) int {
	for i := m.Selected + step; i >= 0 && i < len(m.Items); i += step {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return m.Selected
}

func (m Menu) dispatch() tea.Cmd {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return nil
	}
	item := m.Items[m.Selected]
	if item.Disabled || item.Action == nil {
		return nil
	}
	return item.Action()
}
