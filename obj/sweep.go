package obj

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/hollowpine/grapple/common"
)

// SweepResult reports where a swept rect ended up and what it touched.
type SweepResult struct {
	// Pos is the final top-left of the swept rect.
	Pos cp.Vector
	// HitX/HitY flag contact on each axis.
	HitX bool
	HitY bool
	// TileCol/TileRow are the grid coords of the last contacted tile.
	TileCol int
	TileRow int
}

// SweepRect moves box by delta through the room's grid, resolving each axis
// independently (x first, then y) so contact on one axis still allows
// sliding along the other. The displacement is walked in fixed sub-steps no
// larger than SweepStep; on contact the sub-step is rolled back on that
// axis. A zero delta returns the start position with no contact.
func (r *Room) SweepRect(box common.Rect, delta cp.Vector) SweepResult {
	res := SweepResult{Pos: cp.Vector{X: box.X, Y: box.Y}}
	if r == nil || (delta.X == 0 && delta.Y == 0) {
		return res
	}

	cur := box

	// Horizontal sub-steps.
	remaining := math.Abs(delta.X)
	dir := 1.0
	if delta.X < 0 {
		dir = -1.0
	}
	for remaining > 0 {
		step := common.Min(remaining, common.SweepStep)
		trial := cur
		trial.X += dir * step
		if hit, col, row := r.SolidInRect(trial); hit {
			res.HitX = true
			res.TileCol, res.TileRow = col, row
			break
		}
		cur = trial
		remaining -= step
	}

	// Vertical sub-steps.
	remaining = math.Abs(delta.Y)
	dir = 1.0
	if delta.Y < 0 {
		dir = -1.0
	}
	for remaining > 0 {
		step := common.Min(remaining, common.SweepStep)
		trial := cur
		trial.Y += dir * step
		if hit, col, row := r.SolidInRect(trial); hit {
			res.HitY = true
			res.TileCol, res.TileRow = col, row
			break
		}
		cur = trial
		remaining -= step
	}

	res.Pos = cp.Vector{X: cur.X, Y: cur.Y}
	return res
}

// SweepPoint advances a point from start along the unit vector dir for up to
// dist, using the same sub-step granularity as SweepRect. On contact it
// returns the advanced sub-step position itself, so a hook tip attaches
// flush against the surface it touched rather than stopping short of it.
func (r *Room) SweepPoint(start, dir cp.Vector, dist float64) (pos cp.Vector, hit bool, col, row int) {
	pos = start
	if r == nil || dist <= 0 {
		return pos, false, 0, 0
	}
	remaining := dist
	for remaining > 0 {
		step := common.Min(remaining, common.SweepStep)
		trial := cp.Vector{X: pos.X + dir.X*step, Y: pos.Y + dir.Y*step}
		if r.SolidAtPoint(trial.X, trial.Y) {
			tc, tr := r.tileCoords(trial.X, trial.Y)
			return trial, true, tc, tr
		}
		pos = trial
		remaining -= step
	}
	return pos, false, 0, 0
}
