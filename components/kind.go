package components

// Kind tags an entity's gameplay variant. The variant payload (asteroid
// size, TTL, player bindings) lives on the entity; every consumer
// switches exhaustively on the tag.
type Kind uint8

const (
	KindAsteroid Kind = iota
	KindBullet
	KindDebris
	KindPlayer
)

// String returns the kind name for logs and telemetry.
func (k Kind) String() string {
	switch k {
	case KindAsteroid:
		return "asteroid"
	case KindBullet:
		return "bullet"
	case KindDebris:
		return "debris"
	case KindPlayer:
		return "player"
	}
	return "unknown"
}

// Key identifies an input key. Values come from the input collaborator
// (raylib key codes in graphical mode); the simulation only compares
// them for equality.
type Key int32

// KeyNone marks an unbound action.
const KeyNone Key = 0

// KeyBindings holds a player's optional action bindings.
type KeyBindings struct {
	Fire       Key
	Accelerate Key
	TurnLeft   Key
	TurnRight  Key
}
