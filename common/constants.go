package common

// TileSize is the width and height of a map tile in world pixels.
const TileSize = 32

// Fixed update rate. Ebiten ticks at 60 TPS by default and the whole
// update phase assumes this step.
const (
	TPS = 60
	Dt  = 1.0 / float64(TPS)
)

// Movement and physics tuning (world pixels, seconds).
const (
	Gravity          = 1400.0
	TerminalVelocity = 800.0
	JumpVelocity     = -500.0
	MoveSpeed        = 220.0
	CoyoteTime       = 0.1
	JumpBufferTime   = 0.1
)

// SweepStep is the sub-step granularity for swept collision queries.
// 4px keeps every sub-step smaller than the thinnest solid feature, so a
// moving rect or hook tip cannot cross a tile without touching it.
const SweepStep = 4.0

// TransitionNudge is the inward offset applied when walking backward into a
// previously visited room. It doubles as the clearance the player must put
// between itself and the boundary before a new transition can fire.
const TransitionNudge = 8.0

// Grapple hook tuning.
const (
	HookSpeed       = 1200.0
	HookMaxLength   = 400.0
	HookRetractRate = 2400.0
	HookPullSpeed   = 520.0
	HookMinDistance = 24.0
)

// Player hitbox in world pixels.
const (
	PlayerWidth  = 16.0
	PlayerHeight = 24.0
)
