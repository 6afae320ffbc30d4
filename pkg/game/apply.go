package game

import "github.com/qnkhuat/tetriscore/pkg/event"

// Apply performs one intent and reports whether it took effect. Ticks and
// soft drops both move the piece down, locking it when blocked.
func (b *Board) Apply(a event.Action) bool {
	switch a {
	case event.ActionMoveLeft:
		return b.MoveLeft()
	case event.ActionMoveRight:
		return b.MoveRight()
	case event.ActionSoftDrop, event.ActionTick:
		return b.MoveDown()
	case event.ActionHardDrop:
		if b.gameOver {
			return false
		}

		b.HardDrop()
		return true
	case event.ActionRotateCW:
		return b.RotateClockwise()
	case event.ActionRotateCCW:
		return b.RotateCounterClockwise()
	default:
		return false
	}
}
