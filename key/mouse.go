package key

import "fmt"

// Button identifies a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button (motion or release reports).
	ButtonNone Button = iota
	// ButtonLeft is the primary button.
	ButtonLeft
	// ButtonMiddle is the middle button.
	ButtonMiddle
	// ButtonRight is the secondary button.
	ButtonRight
	// ButtonWheelUp is a scroll wheel step away from the user.
	ButtonWheelUp
	// ButtonWheelDown is a scroll wheel step toward the user.
	ButtonWheelDown
)

// String returns a human-readable button name.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonMiddle:
		return "Middle"
	case ButtonRight:
		return "Right"
	case ButtonWheelUp:
		return "WheelUp"
	case ButtonWheelDown:
		return "WheelDown"
	default:
		return "None"
	}
}

// MouseAction identifies what the mouse report describes.
type MouseAction uint8

const (
	// ActionPress indicates a button press.
	ActionPress MouseAction = iota
	// ActionRelease indicates a button release.
	ActionRelease
	// ActionMotion indicates movement with or without a held button.
	ActionMotion
)

// String returns a human-readable action name.
func (a MouseAction) String() string {
	switch a {
	case ActionRelease:
		return "Release"
	case ActionMotion:
		return "Motion"
	default:
		return "Press"
	}
}

// Mouse is a decoded terminal mouse report.
//
// Coordinates are zero-based cells, origin at the top-left corner.
type Mouse struct {
	// X is the column of the report.
	X int

	// Y is the row of the report.
	Y int

	// Button is the button the report refers to.
	Button Button

	// Action is what happened.
	Action MouseAction

	// Modifiers are the modifier keys held during the report.
	Modifiers Modifier
}

// String returns a deterministic representation like
// "MouseLeft-Press(3,7)".
func (m Mouse) String() string {
	s := "Mouse" + m.Button.String() + "-" + m.Action.String()
	return s + fmt.Sprintf("(%d,%d)", m.X, m.Y)
}
