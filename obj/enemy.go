package obj

import (
	_ "embed"
	"fmt"
	"image/color"

	"github.com/d5/tengo/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/hollowpine/grapple/common"
)

//go:embed scripts/patrol.tengo
var patrolScript []byte

const (
	enemyWidth  = 16.0
	enemyHeight = 16.0
	enemySpeed  = 60.0
)

// Enemy is a walking hazard whose turn decisions come from an embedded
// behavior script. Touching the player kills it.
type Enemy struct {
	Pos cp.Vector
	Vel cp.Vector

	// Dir is -1 or +1, owned by the script.
	Dir int

	brain *tengo.Compiled
	img   *ebiten.Image
}

// NewEnemy compiles the patrol script and places the enemy at pos.
func NewEnemy(pos cp.Vector) (*Enemy, error) {
	script := tengo.NewScript(patrolScript)
	if err := script.Add("dir", 1); err != nil {
		return nil, fmt.Errorf("enemy script: %w", err)
	}
	if err := script.Add("blocked", false); err != nil {
		return nil, fmt.Errorf("enemy script: %w", err)
	}
	if err := script.Add("edge", false); err != nil {
		return nil, fmt.Errorf("enemy script: %w", err)
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile enemy script: %w", err)
	}
	return &Enemy{Pos: pos, Dir: 1, brain: compiled}, nil
}

// Rect returns the enemy's world-space hitbox.
func (e *Enemy) Rect() common.Rect {
	return common.Rect{X: e.Pos.X, Y: e.Pos.Y, Width: enemyWidth, Height: enemyHeight}
}

// Update walks the enemy one fixed timestep through the sweeper and lets the
// script decide whether to turn.
func (e *Enemy) Update(room *Room, p *Player) {
	if e == nil || room == nil {
		return
	}

	e.Vel.X = float64(e.Dir) * enemySpeed
	e.Vel.Y += common.Gravity * common.Dt
	if e.Vel.Y > common.TerminalVelocity {
		e.Vel.Y = common.TerminalVelocity
	}

	res := room.SweepRect(e.Rect(), cp.Vector{X: e.Vel.X * common.Dt, Y: e.Vel.Y * common.Dt})
	e.Pos = res.Pos
	if res.HitY {
		e.Vel.Y = 0
	}

	blocked := res.HitX
	edge := res.HitY && !e.floorAhead(room)
	e.decide(blocked, edge)

	if p != nil && p.Alive && e.Rect().Intersects(p.Rect()) {
		p.Alive = false
	}
}

// floorAhead probes for solid ground just past the leading edge.
func (e *Enemy) floorAhead(room *Room) bool {
	probeX := e.Pos.X - 2
	if e.Dir > 0 {
		probeX = e.Pos.X + enemyWidth
	}
	probe := common.Rect{X: probeX, Y: e.Pos.Y + enemyHeight + 1, Width: 2, Height: 2}
	hit, _, _ := room.SolidInRect(probe)
	return hit
}

func (e *Enemy) decide(blocked, edge bool) {
	if e.brain == nil {
		// scriptless fallback keeps the enemy pacing
		if blocked || edge {
			e.Dir = -e.Dir
		}
		return
	}
	if err := e.brain.Set("dir", e.Dir); err != nil {
		return
	}
	if err := e.brain.Set("blocked", blocked); err != nil {
		return
	}
	if err := e.brain.Set("edge", edge); err != nil {
		return
	}
	if err := e.brain.Run(); err != nil {
		return
	}
	if d := e.brain.Get("dir").Int(); d == 1 || d == -1 {
		e.Dir = d
	}
}

// Draw renders the enemy relative to the camera.
func (e *Enemy) Draw(screen *ebiten.Image, cam *Camera) {
	if e == nil || cam == nil {
		return
	}
	if e.img == nil {
		e.img = ebiten.NewImage(int(enemyWidth), int(enemyHeight))
		e.img.Fill(color.RGBA{R: 0xb4, G: 0x46, B: 0x78, A: 0xff})
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(e.Pos.X-cam.X, e.Pos.Y-cam.Y)
	screen.DrawImage(e.img, op)
}
