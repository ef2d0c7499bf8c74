package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/hollowpine/grapple/common"
)

// Player is the single controllable actor. One instance exists per session
// and it is mutated only by its own update and by World operations
// (transitions, respawn).
type Player struct {
	// Pos is the top-left of the hitbox in world pixels.
	Pos cp.Vector
	Vel cp.Vector

	Alive bool

	// Checkpoint is the respawn coordinate: always the spawn point of the
	// room most recently entered, never the death location.
	Checkpoint cp.Vector

	// Transitioning suppresses boundary re-detection until the hitbox has
	// cleared the boundary region (the guard window).
	Transitioning bool

	// Hooked is set while the grapple hook is attached and driving velocity.
	Hooked bool

	onGround   bool
	coyote     float64
	jumpBuffer float64

	img *ebiten.Image
}

func NewPlayer(spawn cp.Vector) *Player {
	return &Player{
		Pos:        spawn,
		Checkpoint: spawn,
		Alive:      true,
	}
}

// Rect returns the player's world-space hitbox.
func (p *Player) Rect() common.Rect {
	return common.Rect{X: p.Pos.X, Y: p.Pos.Y, Width: common.PlayerWidth, Height: common.PlayerHeight}
}

// Update applies input and gravity to velocity, then resolves movement
// against the room through the sweeper. Hazard contact flips Alive; the
// World decides when to respawn.
func (p *Player) Update(in *Input, room *Room) {
	if p == nil || room == nil {
		return
	}

	if !p.Hooked {
		p.Vel.X = in.MoveX * common.MoveSpeed

		if in.JumpPressed {
			p.jumpBuffer = common.JumpBufferTime
		} else {
			p.jumpBuffer -= common.Dt
		}
		if p.jumpBuffer > 0 && (p.onGround || p.coyote > 0) {
			p.Vel.Y = common.JumpVelocity
			p.onGround = false
			p.coyote = 0
			p.jumpBuffer = 0
		}

		p.Vel.Y += common.Gravity * common.Dt
		if p.Vel.Y > common.TerminalVelocity {
			p.Vel.Y = common.TerminalVelocity
		}
	}

	res := room.SweepRect(p.Rect(), cp.Vector{X: p.Vel.X * common.Dt, Y: p.Vel.Y * common.Dt})
	p.Pos = res.Pos

	if res.HitX {
		p.Vel.X = 0
	}
	wasFalling := p.Vel.Y > 0
	p.onGround = res.HitY && wasFalling
	if res.HitY {
		p.Vel.Y = 0
	}

	if p.onGround {
		p.coyote = common.CoyoteTime
	} else {
		p.coyote -= common.Dt
	}

	if room.HazardInRect(p.Rect()) {
		p.Alive = false
	}
}

// Draw renders the player hitbox relative to the camera.
func (p *Player) Draw(screen *ebiten.Image, cam *Camera) {
	if p == nil || cam == nil {
		return
	}
	if p.img == nil {
		p.img = ebiten.NewImage(int(common.PlayerWidth), int(common.PlayerHeight))
		p.img.Fill(color.RGBA{R: 0xe6, G: 0xe6, B: 0xf0, A: 0xff})
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(p.Pos.X-cam.X, p.Pos.Y-cam.Y)
	screen.DrawImage(p.img, op)
}
