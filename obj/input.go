package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the polled input state for one frame.
type Input struct {
	// MoveX is -1 for left, 0 for none, +1 for right.
	MoveX float64
	// JumpPressed is true on the frame the jump key is pressed.
	JumpPressed bool
	// JumpHeld is true while the jump key is held down.
	JumpHeld bool
	// FirePressed is true on the frame the left mouse button was pressed.
	// It both fires and releases the hook, depending on hook state.
	FirePressed bool
	// PausePressed is true on the frame the pause key was pressed.
	PausePressed bool
	// RespawnPressed is true on the frame the respawn key was pressed.
	RespawnPressed bool
	// MouseWorldX/Y are the cursor position in world coordinates.
	MouseWorldX float64
	MouseWorldY float64

	camera *Camera
}

func NewInput(camera *Camera) *Input {
	return &Input{camera: camera}
}

// SetCamera swaps the camera used for cursor world-space conversion. Needed
// because a resize replaces the camera value.
func (i *Input) SetCamera(camera *Camera) {
	i.camera = camera
}

// Update polls the keyboard and mouse.
func (i *Input) Update() {
	mx, my := ebiten.CursorPosition()
	if i.camera != nil {
		i.MouseWorldX = i.camera.X + float64(mx)
		i.MouseWorldY = i.camera.Y + float64(my)
	}

	var moveX float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}
	i.MoveX = moveX

	i.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyUp)
	i.JumpHeld = ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp)
	i.FirePressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.RespawnPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
}
