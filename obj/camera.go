package obj

import (
	"math"

	"github.com/hollowpine/grapple/common"
)

// Camera is a world-space viewport with bounds clamping. X/Y is the top-left
// corner of the view. The camera is replaced wholesale on resize so viewport
// dimensions and bounds can never disagree.
type Camera struct {
	X, Y  float64
	ViewW float64
	ViewH float64

	bounds    common.Rect
	hasBounds bool

	// smoothing factor (0..1). higher -> faster follow.
	smooth float64
}

// NewCamera creates a camera with the given viewport size in world pixels.
func NewCamera(viewW, viewH int, smooth float64) *Camera {
	return &Camera{
		ViewW:  float64(viewW),
		ViewH:  float64(viewH),
		smooth: common.Clamp(smooth, 0, 1),
	}
}

// SetBounds clamps the camera to the given world rect from now on.
func (c *Camera) SetBounds(r common.Rect) {
	c.bounds = r
	c.hasBounds = true
	c.clampToBounds()
}

// Bounds returns the current clamp rect and whether one is set.
func (c *Camera) Bounds() (common.Rect, bool) {
	return c.bounds, c.hasBounds
}

// Follow moves the camera toward centering on the target world point. Call
// from the fixed-rate update loop to get consistent smoothing.
func (c *Camera) Follow(targetX, targetY float64) {
	wantX := targetX - c.ViewW/2
	wantY := targetY - c.ViewH/2
	if c.smooth <= 0 {
		c.X = wantX
		c.Y = wantY
	} else {
		c.X = common.Lerp(c.X, wantX, c.smooth)
		c.Y = common.Lerp(c.Y, wantY, c.smooth)
	}
	c.clampToBounds()
}

// SnapTo immediately centers the camera on the given world point and clamps.
// Use after a room change so the new room is framed without smoothing.
func (c *Camera) SnapTo(targetX, targetY float64) {
	c.X = targetX - c.ViewW/2
	c.Y = targetY - c.ViewH/2
	c.clampToBounds()
}

func (c *Camera) clampToBounds() {
	if !c.hasBounds {
		return
	}
	// A room smaller than the view is centered instead of clamped.
	if c.bounds.Width <= c.ViewW {
		c.X = c.bounds.X + (c.bounds.Width-c.ViewW)/2
	} else {
		c.X = common.Clamp(c.X, c.bounds.X, c.bounds.Right()-c.ViewW)
	}
	if c.bounds.Height <= c.ViewH {
		c.Y = c.bounds.Y + (c.bounds.Height-c.ViewH)/2
	} else {
		c.Y = common.Clamp(c.Y, c.bounds.Y, c.bounds.Bottom()-c.ViewH)
	}
}

// TileWindow is an inclusive tile-index rectangle.
type TileWindow struct {
	Col0, Col1 int
	Row0, Row1 int
}

func (w TileWindow) Empty() bool {
	return w.Col1 < w.Col0 || w.Row1 < w.Row0
}

// VisibleTiles computes the tile window of room intersecting the view,
// padded one tile per edge and clamped to the grid. The result area is
// bounded by the viewport size in tiles plus the padding, independent of the
// room size.
func (c *Camera) VisibleTiles(room *Room) TileWindow {
	empty := TileWindow{Col0: 0, Col1: -1, Row0: 0, Row1: -1}
	if c == nil || room == nil || room.Width <= 0 || room.Height <= 0 {
		return empty
	}
	view := common.Rect{X: c.X, Y: c.Y, Width: c.ViewW, Height: c.ViewH}
	if !view.Intersects(room.Bounds) {
		return empty
	}

	col0 := int(math.Floor((view.X-room.WorldX)/common.TileSize)) - 1
	col1 := int(math.Floor((view.Right()-room.WorldX)/common.TileSize)) + 1
	row0 := int(math.Floor((view.Y-room.WorldY)/common.TileSize)) - 1
	row1 := int(math.Floor((view.Bottom()-room.WorldY)/common.TileSize)) + 1

	if col0 < 0 {
		col0 = 0
	}
	if row0 < 0 {
		row0 = 0
	}
	if col1 > room.Width-1 {
		col1 = room.Width - 1
	}
	if row1 > room.Height-1 {
		row1 = room.Height - 1
	}
	return TileWindow{Col0: col0, Col1: col1, Row0: row0, Row1: row1}
}
