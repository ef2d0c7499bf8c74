package obj

import (
	"testing"

	"github.com/hollowpine/grapple/common"
)

func TestVisibleTilesContainment(t *testing.T) {
	// A camera deep inside a large room: every tile intersecting the view
	// must be inside the returned window.
	room := gridRoom("room_01", 0, 0, 100, 100, nil)
	cam := NewCamera(640, 384, 0)
	cam.SetBounds(room.Bounds)
	cam.X, cam.Y = 1000, 1000

	win := cam.VisibleTiles(room)
	if win.Empty() {
		t.Fatalf("expected a non-empty window")
	}

	view := common.Rect{X: cam.X, Y: cam.Y, Width: cam.ViewW, Height: cam.ViewH}
	for row := 0; row < room.Height; row++ {
		for col := 0; col < room.Width; col++ {
			if !room.TileRect(col, row).Intersects(view) {
				continue
			}
			if col < win.Col0 || col > win.Col1 || row < win.Row0 || row > win.Row1 {
				t.Fatalf("visible tile (%d,%d) outside window %+v", col, row, win)
			}
		}
	}
}

func TestVisibleTilesBoundedByViewport(t *testing.T) {
	// Culling scales with the screen, not the room: the window size must not
	// change when the room grows.
	cam := NewCamera(640, 384, 0)
	cam.X, cam.Y = 1000, 1000

	small := gridRoom("room_01", 0, 0, 100, 100, nil)
	big := gridRoom("room_02", 0, 0, 1000, 1000, nil)

	ws := cam.VisibleTiles(small)
	wb := cam.VisibleTiles(big)
	if ws != wb {
		t.Fatalf("window should be independent of room size: %+v vs %+v", ws, wb)
	}

	viewCols := int(cam.ViewW)/common.TileSize + 3
	viewRows := int(cam.ViewH)/common.TileSize + 3
	if cols := wb.Col1 - wb.Col0 + 1; cols > viewCols {
		t.Fatalf("window cols %d exceed viewport budget %d", cols, viewCols)
	}
	if rows := wb.Row1 - wb.Row0 + 1; rows > viewRows {
		t.Fatalf("window rows %d exceed viewport budget %d", rows, viewRows)
	}
}

func TestVisibleTilesClampedAtEdges(t *testing.T) {
	room := gridRoom("room_01", 0, 0, 20, 12, nil)
	cam := NewCamera(640, 384, 0)
	cam.X, cam.Y = -100, -100

	win := cam.VisibleTiles(room)
	if win.Col0 != 0 || win.Row0 != 0 {
		t.Fatalf("window should clamp to the grid origin, got %+v", win)
	}
	if win.Col1 > room.Width-1 || win.Row1 > room.Height-1 {
		t.Fatalf("window should clamp to the grid extent, got %+v", win)
	}
}

func TestVisibleTilesOutsideRoom(t *testing.T) {
	room := gridRoom("room_01", 0, 0, 20, 12, nil)
	cam := NewCamera(640, 384, 0)
	cam.X, cam.Y = 5000, 5000

	if win := cam.VisibleTiles(room); !win.Empty() {
		t.Fatalf("expected empty window for a camera outside the room, got %+v", win)
	}
}

func TestResizeCameraTwice(t *testing.T) {
	w, _ := twoRoomWorld()
	w.SetCamera(NewCamera(640, 384, 0))
	room := w.Current()

	w.ResizeCamera(1920, 1080)
	cam := w.Camera()
	if cam.ViewW != 1920 || cam.ViewH != 1080 {
		t.Fatalf("expected 1920x1080 viewport, got %vx%v", cam.ViewW, cam.ViewH)
	}
	if b, ok := cam.Bounds(); !ok || b != room.Bounds {
		t.Fatalf("resize must re-derive bounds from the active room")
	}

	w.ResizeCamera(640, 384)
	cam = w.Camera()
	if cam.ViewW != 640 || cam.ViewH != 384 {
		t.Fatalf("expected 640x384 viewport, got %vx%v", cam.ViewW, cam.ViewH)
	}
	if b, ok := cam.Bounds(); !ok || b != room.Bounds {
		t.Fatalf("second resize must leave bounds consistent with the room")
	}
	// The room exactly fits the view again, so the clamped position is the
	// room origin; nothing from the intermediate resize may leak through.
	if cam.X != room.Bounds.X || cam.Y != room.Bounds.Y {
		t.Fatalf("expected camera at room origin, got (%v,%v)", cam.X, cam.Y)
	}
}

func TestResizeCameraDeferred(t *testing.T) {
	w, _ := twoRoomWorld()

	// No camera yet: the resize must be remembered, not applied.
	w.ResizeCamera(800, 600)
	if w.Camera() != nil {
		t.Fatalf("resize without a camera should not create one")
	}

	w.SetCamera(NewCamera(640, 384, 0))
	cam := w.Camera()
	if cam.ViewW != 800 || cam.ViewH != 600 {
		t.Fatalf("pending resize should apply once a camera exists, got %vx%v", cam.ViewW, cam.ViewH)
	}
	if b, ok := cam.Bounds(); !ok || b != w.Current().Bounds {
		t.Fatalf("deferred resize must still derive bounds from the active room")
	}
}

func TestFollowClampsToBounds(t *testing.T) {
	room := gridRoom("room_01", 0, 0, 40, 24, nil) // 1280x768
	cam := NewCamera(640, 384, 0)
	cam.SetBounds(room.Bounds)

	cam.Follow(0, 0)
	if cam.X != 0 || cam.Y != 0 {
		t.Fatalf("expected clamp to top-left, got (%v,%v)", cam.X, cam.Y)
	}

	cam.Follow(1280, 768)
	if cam.X != 640 || cam.Y != 384 {
		t.Fatalf("expected clamp to bottom-right, got (%v,%v)", cam.X, cam.Y)
	}
}
