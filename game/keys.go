package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rockfield/components"
)

// keyNames maps config binding names to raylib key codes.
var keyNames = map[string]components.Key{
	"space":       components.Key(rl.KeySpace),
	"enter":       components.Key(rl.KeyEnter),
	"tab":         components.Key(rl.KeyTab),
	"up":          components.Key(rl.KeyUp),
	"down":        components.Key(rl.KeyDown),
	"left":        components.Key(rl.KeyLeft),
	"right":       components.Key(rl.KeyRight),
	"left-ctrl":   components.Key(rl.KeyLeftControl),
	"right-ctrl":  components.Key(rl.KeyRightControl),
	"left-shift":  components.Key(rl.KeyLeftShift),
	"right-shift": components.Key(rl.KeyRightShift),
	"left-alt":    components.Key(rl.KeyLeftAlt),
	"right-alt":   components.Key(rl.KeyRightAlt),
}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		keyNames[string(c)] = components.Key(rl.KeyA + int32(c-'a'))
	}
	for c := '0'; c <= '9'; c++ {
		keyNames[string(c)] = components.Key(rl.KeyZero + int32(c-'0'))
	}
}

// KeyFromName resolves a config binding name to a key code. An empty
// name leaves the action unbound.
func KeyFromName(name string) (components.Key, error) {
	if name == "" {
		return components.KeyNone, nil
	}
	k, ok := keyNames[name]
	if !ok {
		return components.KeyNone, fmt.Errorf("game: unknown key name %q", name)
	}
	return k, nil
}

// BindingsFromConfig resolves one player's binding names.
func BindingsFromConfig(fire, accelerate, turnLeft, turnRight string) (components.KeyBindings, error) {
	var b components.KeyBindings
	var err error
	if b.Fire, err = KeyFromName(fire); err != nil {
		return b, err
	}
	if b.Accelerate, err = KeyFromName(accelerate); err != nil {
		return b, err
	}
	if b.TurnLeft, err = KeyFromName(turnLeft); err != nil {
		return b, err
	}
	if b.TurnRight, err = KeyFromName(turnRight); err != nil {
		return b, err
	}
	return b, nil
}
