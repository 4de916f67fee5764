package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/mgrift/squarewalk/components"
	cfg "github.com/mgrift/squarewalk/config"
)

// UpdatePlayer moves the player square while the game is running and
// handles the pause shortcut.
func UpdatePlayer(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	if session.State != cfg.StatePlaying || session.Transitioned {
		return
	}

	input := GetOrCreateInput(e)
	if GetAction(input, cfg.ActionPause).JustPressed {
		Dispatch(e, EventPauseToggle)
		return
	}

	viewport := GetOrCreateViewport(e)
	if viewport.Width == 0 || viewport.Height == 0 {
		return
	}

	move := MoveVector(input.Mode,
		GetAction(input, cfg.ActionMoveLeft).Pressed,
		GetAction(input, cfg.ActionMoveRight).Pressed,
		GetAction(input, cfg.ActionMoveUp).Pressed,
		GetAction(input, cfg.ActionMoveDown).Pressed,
		input.AxisX, input.AxisY,
		cfg.Input.AnalogDeadzone)

	player := GetOrCreatePlayer(e)
	dt := 1.0 / float64(ebiten.TPS())
	player.Pos = Displace(player.Pos, move,
		float64(viewport.Width), float64(viewport.Height), dt)

	session.PlayFrames++
}

// MoveVector builds the per-frame movement direction. In keyboard/mouse
// mode the held direction keys contribute unit components; in controller
// mode the raw stick values pass through once they clear the deadzone.
// Diagonal movement is scaled so it is not faster than axis movement.
func MoveVector(mode components.InputMode, left, right, up, down bool, axisX, axisY, deadzone float64) components.Vector {
	var move components.Vector
	if mode == components.InputKeyboardMouse {
		if left {
			move.X--
		}
		if right {
			move.X++
		}
		if up {
			move.Y--
		}
		if down {
			move.Y++
		}
	} else {
		if math.Abs(axisX) > deadzone {
			move.X = axisX
		}
		if math.Abs(axisY) > deadzone {
			move.Y = axisY
		}
	}

	if move.X != 0 && move.Y != 0 {
		move.X *= cfg.Player.DiagonalScale
		move.Y *= cfg.Player.DiagonalScale
	}
	return move
}

// Displace advances a position by one tick of movement and clamps the
// result to the screen. Speed scales with the smaller window dimension
// so the square crosses the window in about the same time at any size.
func Displace(pos, move components.Vector, width, height, dt float64) components.Vector {
	speed := math.Min(width, height) * cfg.Player.SpeedScale
	pos.X += move.X * speed * dt
	pos.Y += move.Y * speed * dt
	return ClampToScreen(pos, width, height)
}

// PlayerSize returns the square's side length for a given window width.
func PlayerSize(width float64) float64 {
	return width * cfg.Player.SizeScale
}

// ClampToScreen keeps the whole square inside the window.
func ClampToScreen(pos components.Vector, width, height float64) components.Vector {
	size := PlayerSize(width)
	pos.X = clampFloat(pos.X, 0, width-size)
	pos.Y = clampFloat(pos.Y, 0, height-size)
	return pos
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
