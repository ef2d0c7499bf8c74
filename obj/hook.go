package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/hollowpine/grapple/common"
)

// HookState enumerates the grapple hook's lifecycle.
type HookState int

const (
	HookIdle HookState = iota
	HookFiring
	HookAttached
	HookRetracting
)

func (s HookState) String() string {
	switch s {
	case HookIdle:
		return "idle"
	case HookFiring:
		return "firing"
	case HookAttached:
		return "attached"
	case HookRetracting:
		return "retracting"
	}
	return "unknown"
}

// Hook is the grapple hook actor. It advances its tip through the same
// sweeper the player uses, so it can never pass through a tile the player
// could not.
type Hook struct {
	State HookState

	// Dir is the unit fire direction, fixed at fire time.
	Dir cp.Vector
	// Tip is the hook tip position in world pixels.
	Tip cp.Vector
	// Length is the rope length paid out so far.
	Length    float64
	MaxLength float64

	// Attach is the exact sub-step contact position; valid only while
	// State == HookAttached.
	Attach cp.Vector

	player *Player
}

func NewHook(p *Player) *Hook {
	return &Hook{player: p, MaxLength: common.HookMaxLength}
}

func (h *Hook) playerCenter() cp.Vector {
	r := h.player.Rect()
	return cp.Vector{X: r.CenterX(), Y: r.CenterY()}
}

// Fire launches the hook from the player center toward the target world
// point. Ignored unless the hook is idle.
func (h *Hook) Fire(targetX, targetY float64) {
	if h == nil || h.player == nil || h.State != HookIdle {
		return
	}
	start := h.playerCenter()
	dx := targetX - start.X
	dy := targetY - start.Y
	dist := math.Hypot(dx, dy)
	if dist > 0 {
		h.Dir = cp.Vector{X: dx / dist, Y: dy / dist}
	} else {
		h.Dir = cp.Vector{X: 0, Y: -1}
	}
	h.Tip = start
	h.Length = 0
	h.State = HookFiring
}

// Release cancels a firing hook or detaches an attached one. Observed at the
// next sub-step boundary, never mid-step.
func (h *Hook) Release() {
	if h == nil {
		return
	}
	switch h.State {
	case HookFiring, HookAttached:
		h.detach()
	}
}

func (h *Hook) detach() {
	h.State = HookRetracting
	if h.player != nil {
		h.player.Hooked = false
	}
}

// Update advances the hook one fixed timestep.
func (h *Hook) Update(room *Room) {
	if h == nil || h.player == nil || room == nil {
		return
	}
	switch h.State {
	case HookFiring:
		h.updateFiring(room)
	case HookAttached:
		h.updateAttached()
	case HookRetracting:
		h.updateRetracting()
	}
}

func (h *Hook) updateFiring(room *Room) {
	advance := common.Min(common.HookSpeed*common.Dt, h.MaxLength-h.Length)
	pos, hit, _, _ := room.SweepPoint(h.Tip, h.Dir, advance)
	h.Tip = pos
	h.Length += advance
	if hit {
		// Attach flush at the contact sub-step position.
		h.Attach = pos
		h.State = HookAttached
		h.player.Hooked = true
		return
	}
	if h.Length >= h.MaxLength {
		h.State = HookIdle
	}
}

func (h *Hook) updateAttached() {
	center := h.playerCenter()
	dx := h.Attach.X - center.X
	dy := h.Attach.Y - center.Y
	dist := math.Hypot(dx, dy)
	if dist <= common.HookMinDistance {
		h.detach()
		return
	}
	// Pull rule: draw the player straight toward the attach point. The
	// player's own update resolves the resulting motion through the sweeper.
	h.player.Vel = cp.Vector{X: dx / dist * common.HookPullSpeed, Y: dy / dist * common.HookPullSpeed}
	h.Tip = h.Attach
}

func (h *Hook) updateRetracting() {
	center := h.playerCenter()
	dx := center.X - h.Tip.X
	dy := center.Y - h.Tip.Y
	dist := math.Hypot(dx, dy)
	pull := common.HookRetractRate * common.Dt
	if dist <= pull {
		h.State = HookIdle
		h.Length = 0
		return
	}
	h.Tip.X += dx / dist * pull
	h.Tip.Y += dy / dist * pull
}

// Draw renders the rope and tip relative to the camera.
func (h *Hook) Draw(screen *ebiten.Image, cam *Camera) {
	if h == nil || h.player == nil || cam == nil || h.State == HookIdle {
		return
	}
	center := h.playerCenter()
	px := float32(center.X - cam.X)
	py := float32(center.Y - cam.Y)
	tx := float32(h.Tip.X - cam.X)
	ty := float32(h.Tip.Y - cam.Y)

	width := float32(2)
	if h.State == HookAttached {
		width = 3
	}
	vector.StrokeLine(screen, px, py, tx, ty, width, colornames.Burlywood, true)
	vector.DrawFilledCircle(screen, tx, ty, 4, colornames.Wheat, true)
}
