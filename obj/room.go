package obj

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/hollowpine/grapple/common"
)

// Tile type codes used by the collision grid.
const (
	TileEmpty = iota
	TileSolid
	TileSpike
	TileGrapple
	TileExit
)

var tileColors = map[int]color.RGBA{
	TileSolid:   {R: 0x3c, G: 0x3c, B: 0x46, A: 0xff},
	TileSpike:   {R: 0xc8, G: 0x32, B: 0x32, A: 0xff},
	TileGrapple: {R: 0x32, G: 0x96, B: 0xc8, A: 0xff},
	TileExit:    {R: 0x32, G: 0xc8, B: 0x50, A: 0xff},
}

// Room is one screen-sized (or larger) section of the world. Rooms are
// loaded once and immutable afterwards; all mutation of the running session
// goes through World.
type Room struct {
	ID string

	// WorldX/WorldY are the room's pixel offset in world space.
	WorldX float64
	WorldY float64

	// Width/Height are the grid dimensions in tiles.
	Width  int
	Height int

	// Tiles is row-major: Tiles[row][col].
	Tiles [][]int

	Bounds common.Rect

	// Spawn is the single designer-placed spawn point in world coords.
	Spawn cp.Vector

	// Adjacent lists the ids of rooms sharing a boundary edge, derived at
	// load time from room bounds.
	Adjacent []string

	// EnemySpawns are world coords of enemy placements from the object layer.
	EnemySpawns []cp.Vector

	tileImgs map[int]*ebiten.Image
}

// TileAt returns the tile code at grid coords (col, row), TileEmpty when out
// of range.
func (r *Room) TileAt(col, row int) int {
	if r == nil || col < 0 || row < 0 || col >= r.Width || row >= r.Height {
		return TileEmpty
	}
	return r.Tiles[row][col]
}

// tileCoords converts a world point to this room's grid coords.
func (r *Room) tileCoords(x, y float64) (int, int) {
	col := int(math.Floor((x - r.WorldX) / common.TileSize))
	row := int(math.Floor((y - r.WorldY) / common.TileSize))
	return col, row
}

// TileRect returns the world-space rect of the tile at (col, row).
func (r *Room) TileRect(col, row int) common.Rect {
	return common.Rect{
		X:      r.WorldX + float64(col*common.TileSize),
		Y:      r.WorldY + float64(row*common.TileSize),
		Width:  common.TileSize,
		Height: common.TileSize,
	}
}

// SolidAtPoint reports whether the world point lies inside a solid or
// grapple tile. Grapple tiles block movement and accept hook attachment.
func (r *Room) SolidAtPoint(x, y float64) bool {
	col, row := r.tileCoords(x, y)
	switch r.TileAt(col, row) {
	case TileSolid, TileGrapple:
		return true
	}
	return false
}

// SolidInRect reports the first solid tile intersecting rect, with its grid
// coords. Only the tiles overlapped by rect are examined, so the query cost
// scales with the rect, not the room.
func (r *Room) SolidInRect(rect common.Rect) (bool, int, int) {
	if r == nil {
		return false, 0, 0
	}
	c0, r0 := r.tileCoords(rect.X, rect.Y)
	c1, r1 := r.tileCoords(rect.Right(), rect.Bottom())
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			switch r.TileAt(col, row) {
			case TileSolid, TileGrapple:
				if rect.Intersects(r.TileRect(col, row)) {
					return true, col, row
				}
			}
		}
	}
	return false, 0, 0
}

// HazardInRect reports whether rect touches a spike tile.
func (r *Room) HazardInRect(rect common.Rect) bool {
	if r == nil {
		return false
	}
	c0, r0 := r.tileCoords(rect.X, rect.Y)
	c1, r1 := r.tileCoords(rect.Right(), rect.Bottom())
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if r.TileAt(col, row) == TileSpike && rect.Intersects(r.TileRect(col, row)) {
				return true
			}
		}
	}
	return false
}

// Draw renders only the tile window visible through cam. Culling is a pure
// optimization: the window is padded one tile per edge so no visible tile is
// ever skipped during sub-pixel camera motion.
func (r *Room) Draw(screen *ebiten.Image, cam *Camera) {
	if r == nil || cam == nil {
		return
	}
	win := cam.VisibleTiles(r)
	if win.Empty() {
		return
	}

	if r.tileImgs == nil {
		r.tileImgs = make(map[int]*ebiten.Image, len(tileColors))
		for code, clr := range tileColors {
			img := ebiten.NewImage(common.TileSize, common.TileSize)
			img.Fill(clr)
			r.tileImgs[code] = img
		}
	}

	for row := win.Row0; row <= win.Row1; row++ {
		for col := win.Col0; col <= win.Col1; col++ {
			tile := r.Tiles[row][col]
			if tile == TileEmpty {
				continue
			}
			img := r.tileImgs[tile]
			if img == nil {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(
				r.WorldX+float64(col*common.TileSize)-cam.X,
				r.WorldY+float64(row*common.TileSize)-cam.Y,
			)
			screen.DrawImage(img, op)
		}
	}
}
