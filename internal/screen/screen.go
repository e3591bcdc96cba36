// Package screen provides the screen-stack navigation engine.
//
// Core abstractions:
//   - Screen: a UI state that draws itself and handles one input event at a time
//   - Command: what a Screen asks the navigator to do after an event (None, Close, Push, Swap, Quit)
//   - Stack: the ordered screens; bottom is the first opened, top is active
//   - Navigator: renders every screen bottom to top and feeds events to the top one
//   - Canvas: the shared drawing surface; screens draw full layers or centered overlays
//
// The engine is generic over the state type S that screens share, so it never
// depends on concrete screens.
package screen

// Screen is a UI state. Draw is called for every screen in the stack on each frame;
// HandleEvent only for the top screen. Neither may keep the state pointer after returning.
type Screen[S any] interface {
	Draw(surface Surface, state *S)
	HandleEvent(ev Event, state *S) Command[S]
}

// CommandKind selects the stack transition a Command performs.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdClose
	CmdPush
	CmdSwap
	CmdQuit
)

func (k CommandKind) String() string {
	switch k {
	case CmdNone:
		return "None"
	case CmdClose:
		return "Close"
	case CmdPush:
		return "Push"
	case CmdSwap:
		return "Swap"
	case CmdQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Command is the navigation instruction returned from Screen.HandleEvent.
type Command[S any] struct {
	Kind CommandKind
	// Screen is the screen to push or swap in. Only set for CmdPush and CmdSwap.
	Screen Screen[S]
	// Flag is the Quit payload. Reserved; the navigator does not act on it.
	Flag bool
}

// None leaves the stack unchanged.
func None[S any]() Command[S] {
	return Command[S]{Kind: CmdNone}
}

// Close pops the top screen.
func Close[S any]() Command[S] {
	return Command[S]{Kind: CmdClose}
}

// Push opens s on top of the current screen.
func Push[S any](s Screen[S]) Command[S] {
	return Command[S]{Kind: CmdPush, Screen: s}
}

// Swap replaces the current screen with s.
func Swap[S any](s Screen[S]) Command[S] {
	return Command[S]{Kind: CmdSwap, Screen: s}
}

// Quit clears the whole stack.
func Quit[S any](flag bool) Command[S] {
	return Command[S]{Kind: CmdQuit, Flag: flag}
}
