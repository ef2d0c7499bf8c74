package obj

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"

	"github.com/hollowpine/grapple/common"
)

// World owns the loaded rooms and the active-room state machine. Exactly one
// room and at most one camera are active at a time; the player, camera and
// active room are mutated only through World operations and the single
// update goroutine.
type World struct {
	Rooms   map[string]*Room
	StartID string

	current *Room
	camera  *Camera

	// deferred camera resize, applied once a camera and room both exist
	pendingViewW int
	pendingViewH int
}

// Current returns the active room.
func (w *World) Current() *Room {
	return w.current
}

// Camera returns the active camera, nil before SetCamera.
func (w *World) Camera() *Camera {
	return w.camera
}

// SetCamera installs cam as the active camera and clamps it to the active
// room. A resize requested before a camera existed is applied now.
func (w *World) SetCamera(cam *Camera) {
	w.camera = cam
	if cam != nil && w.current != nil {
		cam.SetBounds(w.current.Bounds)
		cam.SnapTo(w.current.Spawn.X, w.current.Spawn.Y)
	}
	if w.pendingViewW > 0 && w.pendingViewH > 0 {
		vw, vh := w.pendingViewW, w.pendingViewH
		w.pendingViewW, w.pendingViewH = 0, 0
		w.ResizeCamera(vw, vh)
	}
}

// ResizeCamera replaces the camera with one of the given viewport size,
// re-deriving bounds from the active room in the same step. Constructing a
// fresh camera is what rules out a stale-bounds partial update. Without an
// active camera and room the request is deferred.
func (w *World) ResizeCamera(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if w.camera == nil || w.current == nil {
		w.pendingViewW, w.pendingViewH = width, height
		return
	}
	cx := w.camera.X + w.camera.ViewW/2
	cy := w.camera.Y + w.camera.ViewH/2
	cam := NewCamera(width, height, w.camera.smooth)
	cam.SetBounds(w.current.Bounds)
	cam.SnapTo(cx, cy)
	w.camera = cam
}

// SpawnPlayer creates the session's player at the start room's spawn point.
func (w *World) SpawnPlayer() *Player {
	return NewPlayer(w.current.Spawn)
}

// CheckTransition runs the boundary state machine for one frame. It must be
// called after the player's collision-resolved movement so a transition
// never fires against a tile-penetrating position.
func (w *World) CheckTransition(p *Player) {
	if w == nil || w.current == nil || p == nil {
		return
	}

	// Guard window: after a transition, wait until the hitbox has cleared
	// the boundary region by at least the nudge distance before detecting
	// again. Otherwise a position sitting exactly on the boundary would
	// bounce between rooms forever.
	if p.Transitioning {
		if !w.nearOtherRoom(p) {
			p.Transitioning = false
		}
		return
	}

	rect := p.Rect()
	for _, adjID := range w.current.Adjacent {
		target, ok := w.Rooms[adjID]
		if !ok {
			continue
		}
		if rect.Intersects(target.Bounds) {
			_ = w.TransitionTo(adjID, p)
			return
		}
	}

	// No target and the player's center has left the room: nothing to walk
	// into, so keep the player inside the active room.
	if !w.current.Bounds.Contains(rect.CenterX(), rect.CenterY()) {
		w.clampToCurrent(p)
	}
}

func (w *World) nearOtherRoom(p *Player) bool {
	near := p.Rect().Inflate(common.TransitionNudge)
	for _, adjID := range w.current.Adjacent {
		target, ok := w.Rooms[adjID]
		if !ok {
			continue
		}
		if near.Intersects(target.Bounds) {
			return true
		}
	}
	return false
}

// TransitionTo switches the active room to targetID and applies the
// direction policy. Room ids carry a total order; entering a higher id is a
// forward transition (teleport to spawn, velocity zeroed), entering a lower
// id is a backward one (walk through, velocity preserved, nudged inside the
// entry edge). Either way the checkpoint becomes the entered room's spawn.
//
// The ordinal comparison only yields meaningful forward/backward semantics
// for a linear room sequence; see DESIGN.md.
func (w *World) TransitionTo(targetID string, p *Player) error {
	target, ok := w.Rooms[targetID]
	if !ok {
		log.Warn("transition refused: target room missing", "room", w.current.ID, "target", targetID)
		w.clampToCurrent(p)
		return fmt.Errorf("transition to %s: room not found", targetID)
	}

	forward := targetID > w.current.ID
	if forward {
		p.Pos = target.Spawn
		p.Vel = cp.Vector{}
	} else {
		w.placeAtEntryEdge(p, target)
	}

	p.Checkpoint = target.Spawn
	p.Transitioning = true
	w.current = target

	if w.camera != nil {
		w.camera.SetBounds(target.Bounds)
		w.camera.SnapTo(p.Rect().CenterX(), p.Rect().CenterY())
	}
	return nil
}

// placeAtEntryEdge positions the player just inside the target room's shared
// edge, offset by the nudge distance along the direction of travel. The
// off-axis coordinate is preserved so a backward transition feels like
// walking through the doorway.
func (w *World) placeAtEntryEdge(p *Player, target *Room) {
	cur := w.current.Bounds
	tb := target.Bounds
	const edgeTol = 10.0

	switch {
	case tb.X >= cur.Right()-edgeTol: // entering rightward
		p.Pos.X = tb.X + common.TransitionNudge
	case tb.Right() <= cur.X+edgeTol: // entering leftward
		p.Pos.X = tb.Right() - common.PlayerWidth - common.TransitionNudge
	case tb.Y >= cur.Bottom()-edgeTol: // entering downward
		p.Pos.Y = tb.Y + common.TransitionNudge
	default: // entering upward
		p.Pos.Y = tb.Bottom() - common.PlayerHeight - common.TransitionNudge
	}

	// Keep the off-axis coordinate inside the target bounds.
	p.Pos.X = common.Clamp(p.Pos.X, tb.X, tb.Right()-common.PlayerWidth)
	p.Pos.Y = common.Clamp(p.Pos.Y, tb.Y, tb.Bottom()-common.PlayerHeight)
}

// RespawnPlayer returns the player to the checkpoint with zero velocity.
// Calling it again without intervening movement is a no-op, so double
// deaths cannot compound.
func (w *World) RespawnPlayer(p *Player) {
	if w == nil || p == nil {
		return
	}
	p.Pos = p.Checkpoint
	p.Vel = cp.Vector{}
	p.Alive = true
	p.Hooked = false
}

func (w *World) clampToCurrent(p *Player) {
	b := w.current.Bounds
	p.Pos.X = common.Clamp(p.Pos.X, b.X, b.Right()-common.PlayerWidth)
	p.Pos.Y = common.Clamp(p.Pos.Y, b.Y, b.Bottom()-common.PlayerHeight)
}
