package obj

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestEnemyScriptDecides(t *testing.T) {
	e, err := NewEnemy(cp.Vector{X: 100, Y: 100})
	if err != nil {
		t.Fatalf("NewEnemy: %v", err)
	}

	e.decide(false, false)
	if e.Dir != 1 {
		t.Fatalf("expected heading unchanged, got %d", e.Dir)
	}
	e.decide(true, false)
	if e.Dir != -1 {
		t.Fatalf("expected turn on block, got %d", e.Dir)
	}
	e.decide(false, true)
	if e.Dir != 1 {
		t.Fatalf("expected turn at ledge, got %d", e.Dir)
	}
}

func TestEnemyTurnsAtWall(t *testing.T) {
	solids := map[[2]int]int{}
	for col := 0; col < 40; col++ {
		solids[[2]int{col, 8}] = TileSolid // floor at y=256
	}
	for row := 0; row < 8; row++ {
		solids[[2]int{20, row}] = TileSolid // wall at x=640
	}
	room := gridRoom("room_01", 0, 0, 40, 12, solids)

	e, err := NewEnemy(cp.Vector{X: 600, Y: 240})
	if err != nil {
		t.Fatalf("NewEnemy: %v", err)
	}

	for i := 0; i < 300; i++ {
		e.Update(room, nil)
	}
	if e.Dir != -1 {
		t.Fatalf("expected the enemy to turn at the wall, got dir %d", e.Dir)
	}
	if e.Pos.X+enemyWidth > 640 {
		t.Fatalf("enemy penetrated the wall: x %v", e.Pos.X)
	}
}

func TestEnemyKillsPlayerOnTouch(t *testing.T) {
	solids := map[[2]int]int{}
	for col := 0; col < 40; col++ {
		solids[[2]int{col, 8}] = TileSolid
	}
	room := gridRoom("room_01", 0, 0, 40, 12, solids)

	p := NewPlayer(cp.Vector{X: 100, Y: 232})
	e, err := NewEnemy(cp.Vector{X: 100, Y: 240})
	if err != nil {
		t.Fatalf("NewEnemy: %v", err)
	}

	e.Update(room, p)
	if p.Alive {
		t.Fatalf("touching an enemy should kill the player")
	}
}
