package game

// Key is a physical key the presentation layer reports as pressed
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyR
	Key1
	Key2
	Key3
	KeyEscape
)

// Action is what a key means in the active state
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionQuit
	ActionBack
	ActionRestart
	ActionSelectEasy
	ActionSelectMedium
	ActionSelectHard
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
)

// bindings maps keys to actions per state. Unlisted keys do nothing.
var bindings = map[State]map[Key]Action{
	StateMenu: {
		KeyS: ActionStart,
		KeyQ: ActionQuit,
	},
	StateDifficultySelect: {
		Key1:      ActionSelectEasy,
		Key2:      ActionSelectMedium,
		Key3:      ActionSelectHard,
		KeyEscape: ActionBack,
	},
	StatePlaying: {
		KeyUp:    ActionMoveUp,
		KeyW:     ActionMoveUp,
		KeyDown:  ActionMoveDown,
		KeyS:     ActionMoveDown,
		KeyLeft:  ActionMoveLeft,
		KeyA:     ActionMoveLeft,
		KeyRight: ActionMoveRight,
		KeyD:     ActionMoveRight,
	},
	StateGameOver: {
		KeyR:      ActionRestart,
		KeyQ:      ActionBack,
		KeyEscape: ActionBack,
	},
}

// ActionFor returns the action key triggers in state
func ActionFor(state State, key Key) Action {
	return bindings[state][key]
}
