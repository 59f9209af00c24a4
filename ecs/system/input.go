package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/adventurer/common"
	"github.com/milk9111/adventurer/ecs"
	"github.com/milk9111/adventurer/ecs/component"
)

const stickDeadzone = 0.2

// InputSystem copies the keyboard and first gamepad into the Input of every
// player-tagged actor.
type InputSystem struct {
	// Poll reads the devices once per tick. Tests replace it.
	Poll func() component.Input

	attackHeld bool
}

func NewInputSystem() *InputSystem {
	return &InputSystem{Poll: PollDevices}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.Poll == nil {
		return
	}

	in := i.Poll()
	// Devices that only report held state still produce one edge per press.
	in.AttackPressed = in.AttackPressed || (in.AttackHeld && !i.attackHeld)
	i.attackHeld = in.AttackHeld

	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.InputComponent.Kind(), func(_ ecs.Entity, _ *component.PlayerTag, input *component.Input) {
		*input = in
	})
}

// PollDevices reads WASD / arrow keys and J, plus the left stick and west
// face button of the first standard gamepad. +Y is up.
func PollDevices() component.Input {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)

	var in component.Input
	if left {
		in.MoveX -= 1
	}
	if right {
		in.MoveX += 1
	}
	if up {
		in.MoveY += 1
	}
	if down {
		in.MoveY -= 1
	}
	in.AttackHeld = ebiten.IsKeyPressed(ebiten.KeyJ)
	in.AttackPressed = inpututil.IsKeyJustPressed(ebiten.KeyJ)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
			ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
			if math.Abs(lx) > stickDeadzone {
				in.MoveX = common.Clamp(lx, -1, 1)
			}
			// Stick y grows downward.
			if math.Abs(ly) > stickDeadzone {
				in.MoveY = common.Clamp(-ly, -1, 1)
			}
			in.AttackHeld = in.AttackHeld || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft)
			in.AttackPressed = in.AttackPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		}
	}

	return in
}
