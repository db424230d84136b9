package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	quit     key.Binding
	validate key.Binding
	apply    key.Binding
	reset    key.Binding
	imports  key.Binding
	export   key.Binding
	save     key.Binding
	copy     key.Binding
	delete   key.Binding
	info     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left", "h")),
	right:    key.NewBinding(key.WithKeys("right", "l")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	validate: key.NewBinding(key.WithKeys("v")),
	apply:    key.NewBinding(key.WithKeys("a")),
	reset:    key.NewBinding(key.WithKeys("r")),
	imports:  key.NewBinding(key.WithKeys("i")),
	export:   key.NewBinding(key.WithKeys("x")),
	save:     key.NewBinding(key.WithKeys("s")),
	copy:     key.NewBinding(key.WithKeys("c")),
	delete:   key.NewBinding(key.WithKeys("ctrl+d")),
	info:     key.NewBinding(key.WithKeys("?")),
}
