package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone                Action = iota
	ActionThrottle                   // D, Right - nudge speed up once per press
	ActionBrake                      // A, Left - nudge speed down once per press
	ActionJump                       // Space - jump when grounded
	ActionToggleEngine               // S - engine on/off
	ActionPause                      // P - pause/unpause
	ActionToggleReducedMotion        // M - camera snapping instead of easing
	ActionRestart                    // R - rematch
	ActionHome                       // H - back to the home screen
	ActionQuit                       // Q, Ctrl+C - exit
	ActionConfirm                    // Enter - start / rematch
	ActionMoreBots                   // + - add a bot (home screen)
	ActionFewerBots                  // - - remove a bot (home screen)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrottle:
		return "Throttle"
	case ActionBrake:
		return "Brake"
	case ActionJump:
		return "Jump"
	case ActionToggleEngine:
		return "ToggleEngine"
	case ActionPause:
		return "Pause"
	case ActionToggleReducedMotion:
		return "ToggleReducedMotion"
	case ActionRestart:
		return "Restart"
	case ActionHome:
		return "Home"
	case ActionQuit:
		return "Quit"
	case ActionConfirm:
		return "Confirm"
	case ActionMoreBots:
		return "MoreBots"
	case ActionFewerBots:
		return "FewerBots"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected for a single simulation tick.
// It contains all actions that were triggered since the previous tick and the
// measured frame time.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// DT is the clamped wall-clock delta in seconds. Zero means "use the
	// game's nominal tick".
	DT float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.DT = 0
}
