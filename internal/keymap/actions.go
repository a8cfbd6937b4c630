// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Separator selection
	ActionNextSeparator Action = "next_separator"
	ActionPrevSeparator Action = "prev_separator"

	// Separator movement
	ActionNudgeLeft       Action = "nudge_left"
	ActionNudgeRight      Action = "nudge_right"
	ActionNudgeLeftLarge  Action = "nudge_left_large"
	ActionNudgeRightLarge Action = "nudge_right_large"

	// Split settings
	ActionTogglePush Action = "toggle_push"
	ActionReset      Action = "reset"
)
