package ui

import (
	"snake-classic/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyMap translates raylib key codes to game keys. Arrow keys and WASD are
// both reported; the game decides what they mean in each state.
var keyMap = map[int32]game.Key{
	rl.KeyUp:     game.KeyUp,
	rl.KeyDown:   game.KeyDown,
	rl.KeyLeft:   game.KeyLeft,
	rl.KeyRight:  game.KeyRight,
	rl.KeyW:      game.KeyW,
	rl.KeyA:      game.KeyA,
	rl.KeyS:      game.KeyS,
	rl.KeyD:      game.KeyD,
	rl.KeyQ:      game.KeyQ,
	rl.KeyR:      game.KeyR,
	rl.KeyOne:    game.Key1,
	rl.KeyTwo:    game.Key2,
	rl.KeyThree:  game.Key3,
	rl.KeyKp1:    game.Key1,
	rl.KeyKp2:    game.Key2,
	rl.KeyKp3:    game.Key3,
	rl.KeyEscape: game.KeyEscape,
}

// PollKeys drains the key-down queue for this frame in press order.
// Held keys are not repeated.
func PollKeys() []game.Key {
	var keys []game.Key
	for code := rl.GetKeyPressed(); code != 0; code = rl.GetKeyPressed() {
		if key, ok := keyMap[code]; ok {
			keys = append(keys, key)
		}
	}
	return keys
}
