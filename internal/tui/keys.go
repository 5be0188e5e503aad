package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	edit      key.Binding
	done      key.Binding
	toggle    key.Binding
	copy      key.Binding
	save      key.Binding
	buildInfo key.Binding
	esc       key.Binding
	quit      key.Binding
	forceQuit key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	edit:      key.NewBinding(key.WithKeys("enter", "e")),
	done:      key.NewBinding(key.WithKeys("enter", "esc")),
	toggle:    key.NewBinding(key.WithKeys(" ", "tab")),
	copy:      key.NewBinding(key.WithKeys("c")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	buildInfo: key.NewBinding(key.WithKeys("i")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
}
