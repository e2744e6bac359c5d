package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dirtbikes/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Throttle   key.Binding
	Brake      key.Binding
	Jump       key.Binding
	Engine     key.Binding
	Pause      key.Binding
	Motion     key.Binding
	Restart    key.Binding
	Home       key.Binding
	Confirm    key.Binding
	MoreBots   key.Binding
	FewerBots  key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Throttle, k.Brake, k.Jump, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Throttle, k.Brake, k.Jump, k.Engine},
		{k.Pause, k.Restart, k.Home, k.Motion},
		{k.Confirm, k.MoreBots, k.FewerBots},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default in-game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Throttle: key.NewBinding(
			key.WithKeys("d", "D", "right"),
			key.WithHelp("d", "throttle"),
		),
		Brake: key.NewBinding(
			key.WithKeys("a", "A", "left"),
			key.WithHelp("a", "brake"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump"),
		),
		Engine: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "engine"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "P", "esc"),
			key.WithHelp("p", "pause"),
		),
		Motion: key.NewBinding(
			key.WithKeys("m", "M"),
			key.WithHelp("m", "reduced motion"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart"),
		),
		Home: key.NewBinding(
			key.WithKeys("h", "H"),
			key.WithHelp("h", "home"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		MoreBots: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more bots"),
		),
		FewerBots: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "fewer bots"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys

	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Throttle):
		return core.ActionThrottle, false
	case key.Matches(msg, k.Brake):
		return core.ActionBrake, false
	case key.Matches(msg, k.Jump):
		return core.ActionJump, false
	case key.Matches(msg, k.Engine):
		return core.ActionToggleEngine, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Motion):
		return core.ActionToggleReducedMotion, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Home):
		return core.ActionHome, false
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm, false
	case key.Matches(msg, k.MoreBots):
		return core.ActionMoreBots, false
	case key.Matches(msg, k.FewerBots):
		return core.ActionFewerBots, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionResults
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionResults
	}

	return MenuActionNone
}
