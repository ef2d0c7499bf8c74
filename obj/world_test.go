package obj

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/hollowpine/grapple/common"
)

// twoRoomWorld builds two empty side-by-side rooms sharing the edge x=640.
func twoRoomWorld() (*World, *Player) {
	roomA := gridRoom("room_01", 0, 0, 20, 12, nil)
	roomB := gridRoom("room_02", 640, 0, 20, 12, nil)
	roomA.Spawn = cp.Vector{X: 64, Y: 288}
	roomB.Spawn = cp.Vector{X: 736, Y: 288}
	roomA.Adjacent = []string{"room_02"}
	roomB.Adjacent = []string{"room_01"}

	w := &World{
		Rooms:   map[string]*Room{"room_01": roomA, "room_02": roomB},
		StartID: "room_01",
		current: roomA,
	}
	return w, w.SpawnPlayer()
}

func TestForwardTransition(t *testing.T) {
	w, p := twoRoomWorld()
	p.Pos = cp.Vector{X: 634, Y: 100}
	p.Vel = cp.Vector{X: 180, Y: -40}

	w.CheckTransition(p)

	if w.Current().ID != "room_02" {
		t.Fatalf("expected active room room_02, got %s", w.Current().ID)
	}
	if p.Pos != w.Rooms["room_02"].Spawn {
		t.Fatalf("forward transition should teleport to spawn, got %+v", p.Pos)
	}
	if p.Vel.X != 0 || p.Vel.Y != 0 {
		t.Fatalf("forward transition should zero velocity, got %+v", p.Vel)
	}
	if p.Checkpoint != w.Rooms["room_02"].Spawn {
		t.Fatalf("checkpoint should be the entered room's spawn")
	}
	if !p.Transitioning {
		t.Fatalf("guard window should be active after a transition")
	}
}

func TestBackwardTransition(t *testing.T) {
	w, p := twoRoomWorld()
	w.current = w.Rooms["room_02"]
	p.Pos = cp.Vector{X: 636, Y: 120}
	p.Vel = cp.Vector{X: -150, Y: 35}

	w.CheckTransition(p)

	if w.Current().ID != "room_01" {
		t.Fatalf("expected active room room_01, got %s", w.Current().ID)
	}
	// Walk-through placement: hitbox right edge exactly one nudge inside the
	// shared boundary at x=640.
	wantX := 640 - common.PlayerWidth - common.TransitionNudge
	if p.Pos.X != wantX {
		t.Fatalf("expected x %v, got %v", wantX, p.Pos.X)
	}
	if p.Pos.Y != 120 {
		t.Fatalf("off-axis coordinate should be preserved, got %v", p.Pos.Y)
	}
	if p.Vel.X != -150 || p.Vel.Y != 35 {
		t.Fatalf("backward transition should preserve velocity, got %+v", p.Vel)
	}
	if p.Checkpoint != w.Rooms["room_01"].Spawn {
		t.Fatalf("checkpoint should be the entered room's spawn")
	}
}

func TestGuardWindow(t *testing.T) {
	w, p := twoRoomWorld()
	w.current = w.Rooms["room_02"]
	p.Pos = cp.Vector{X: 636, Y: 120}
	w.CheckTransition(p) // backward into room_01, guard now active

	// Push the player back onto the boundary while guarded: no re-trigger.
	p.Pos = cp.Vector{X: 636, Y: 120}
	w.CheckTransition(p)
	if w.Current().ID != "room_01" {
		t.Fatalf("guard window should suppress re-trigger, active room %s", w.Current().ID)
	}
	if !p.Transitioning {
		t.Fatalf("guard should remain active while near the boundary")
	}

	// Clear the boundary by more than the nudge distance: guard releases.
	p.Pos = cp.Vector{X: 600, Y: 120}
	w.CheckTransition(p)
	if p.Transitioning {
		t.Fatalf("guard should release once the boundary is cleared")
	}

	// With the guard released, overlapping the boundary transitions again.
	p.Pos = cp.Vector{X: 636, Y: 120}
	w.CheckTransition(p)
	if w.Current().ID != "room_02" {
		t.Fatalf("expected transition after guard release, active room %s", w.Current().ID)
	}
}

func TestRespawnIdempotent(t *testing.T) {
	w, p := twoRoomWorld()
	p.Pos = cp.Vector{X: 300, Y: 40}
	p.Vel = cp.Vector{X: 90, Y: -10}
	p.Alive = false

	w.RespawnPlayer(p)
	first := *p
	w.RespawnPlayer(p)

	if p.Pos != first.Pos || p.Vel != first.Vel || p.Alive != first.Alive {
		t.Fatalf("respawn is not idempotent: %+v vs %+v", *p, first)
	}
	if p.Pos != p.Checkpoint {
		t.Fatalf("respawn should land on the checkpoint")
	}
	if p.Vel.X != 0 || p.Vel.Y != 0 {
		t.Fatalf("respawn should zero velocity")
	}
	if !p.Alive {
		t.Fatalf("respawn should restore alive")
	}
}

func TestCheckpointFollowsEnteredRoom(t *testing.T) {
	w, p := twoRoomWorld()

	// Enter room_02, then walk 200 units away from its spawn and die.
	p.Pos = cp.Vector{X: 634, Y: 100}
	w.CheckTransition(p)
	spawn := w.Rooms["room_02"].Spawn
	p.Pos = cp.Vector{X: spawn.X + 200, Y: spawn.Y - 40}
	p.Alive = false

	w.RespawnPlayer(p)
	if p.Pos != spawn {
		t.Fatalf("expected respawn at room_02 spawn %+v, got %+v", spawn, p.Pos)
	}
}

func TestDanglingAdjacencyRefused(t *testing.T) {
	w, p := twoRoomWorld()
	p.Pos = cp.Vector{X: 700, Y: 100} // outside room_01

	err := w.TransitionTo("room_99", p)
	if err == nil {
		t.Fatalf("expected an error for a missing target room")
	}
	if w.Current().ID != "room_01" {
		t.Fatalf("active room should be unchanged, got %s", w.Current().ID)
	}
	b := w.Current().Bounds
	r := p.Rect()
	if r.X < b.X || r.Right() > b.Right() || r.Y < b.Y || r.Bottom() > b.Bottom() {
		t.Fatalf("player should be clamped inside the current room, got %+v", r)
	}
}

func TestClampWithoutTarget(t *testing.T) {
	w, p := twoRoomWorld()
	w.Rooms["room_01"].Adjacent = nil
	p.Pos = cp.Vector{X: -60, Y: 100}

	w.CheckTransition(p)
	if p.Pos.X != 0 {
		t.Fatalf("expected clamp to the room's left edge, got %v", p.Pos.X)
	}
}

func TestTransitionToUpdatesCameraBounds(t *testing.T) {
	w, p := twoRoomWorld()
	w.SetCamera(NewCamera(640, 384, 0))

	p.Pos = cp.Vector{X: 634, Y: 100}
	w.CheckTransition(p)

	bounds, ok := w.Camera().Bounds()
	if !ok {
		t.Fatalf("camera should have bounds after transition")
	}
	if bounds != w.Rooms["room_02"].Bounds {
		t.Fatalf("camera bounds should track the new room, got %+v", bounds)
	}
}
