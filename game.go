package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/hollowpine/grapple/obj"
	"github.com/hollowpine/grapple/settings"
	"github.com/hollowpine/grapple/worlds"
)

// Game is the session context: it owns the world, the player, the camera and
// the hook, and drives the fixed-timestep update loop. Update fully
// completes before Draw reads any of this state.
type Game struct {
	frames int
	debug  bool
	paused bool
	quit   bool

	cfg     settings.Settings
	input   *obj.Input
	world   *obj.World
	player  *obj.Player
	hook    *obj.Hook
	enemies map[string][]*obj.Enemy

	worldPath string
	watcher   *obj.Watcher

	pauseUI *pauseUI
}

// NewGame loads the world (embedded by default, from disk when worldPath is
// given) and assembles the session.
func NewGame(worldPath string, watch, debug bool, cfg settings.Settings) (*Game, error) {
	world, err := loadWorld(worldPath)
	if err != nil {
		return nil, err
	}

	cam := obj.NewCamera(cfg.ViewWidth, cfg.ViewHeight, cfg.CameraSmooth)
	world.SetCamera(cam)

	player := world.SpawnPlayer()

	g := &Game{
		debug:     debug,
		cfg:       cfg,
		world:     world,
		player:    player,
		hook:      obj.NewHook(player),
		input:     obj.NewInput(cam),
		enemies:   buildEnemies(world),
		worldPath: worldPath,
	}
	g.pauseUI = newPauseUI(g)

	if watch && worldPath != "" {
		w, err := obj.NewWatcher(worldDir(worldPath))
		if err != nil {
			log.Warn("world watcher unavailable", "err", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func worldDir(worldPath string) string {
	return filepath.Dir(worldPath)
}

func loadWorld(worldPath string) (*obj.World, error) {
	if worldPath == "" {
		return obj.LoadWorldFS(worlds.FS, worlds.Default)
	}
	return obj.LoadWorld(worldPath)
}

func buildEnemies(world *obj.World) map[string][]*obj.Enemy {
	out := make(map[string][]*obj.Enemy)
	for id, room := range world.Rooms {
		for _, pos := range room.EnemySpawns {
			e, err := obj.NewEnemy(pos)
			if err != nil {
				log.Warn("skipping enemy", "room", id, "err", err)
				continue
			}
			out[id] = append(out[id], e)
		}
	}
	return out
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++

	g.checkReload()

	g.input.SetCamera(g.world.Camera())
	g.input.Update()

	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	room := g.world.Current()

	// Update order matters: movement resolves against tiles first, then the
	// transition check runs on the collision-resolved position, then the
	// hook advances with the same sweeper.
	g.player.Update(g.input, room)
	g.world.CheckTransition(g.player)
	if g.world.Current() != room {
		// Attach points don't survive a room change.
		g.hook.Release()
		room = g.world.Current()
	}

	if g.input.FirePressed {
		if g.hook.State == obj.HookIdle {
			g.hook.Fire(g.input.MouseWorldX, g.input.MouseWorldY)
		} else {
			g.hook.Release()
		}
	}
	g.hook.Update(room)

	for _, e := range g.enemies[room.ID] {
		e.Update(room, g.player)
	}

	if g.input.RespawnPressed {
		g.player.Alive = false
	}
	if !g.player.Alive {
		g.hook.Release()
		g.world.RespawnPlayer(g.player)
		if cam := g.world.Camera(); cam != nil {
			cam.SnapTo(g.player.Rect().CenterX(), g.player.Rect().CenterY())
		}
	}

	if cam := g.world.Camera(); cam != nil {
		cam.Follow(g.player.Rect().CenterX(), g.player.Rect().CenterY())
	}
	return nil
}

func (g *Game) checkReload() {
	if g.watcher == nil {
		return
	}
	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		log.Info("world file changed, reloading", "path", path)
		g.reloadWorld()
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Warn("world watcher error", "err", err)
		}
	default:
	}
}

// reloadWorld rebuilds the session from disk, keeping the camera viewport.
func (g *Game) reloadWorld() {
	world, err := loadWorld(g.worldPath)
	if err != nil {
		log.Warn("world reload failed, keeping current world", "err", err)
		return
	}
	cam := obj.NewCamera(g.cfg.ViewWidth, g.cfg.ViewHeight, g.cfg.CameraSmooth)
	world.SetCamera(cam)
	g.world = world
	g.player = world.SpawnPlayer()
	g.hook = obj.NewHook(g.player)
	g.enemies = buildEnemies(world)
}

func (g *Game) Draw(screen *ebiten.Image) {
	cam := g.world.Camera()
	room := g.world.Current()

	room.Draw(screen, cam)
	for _, e := range g.enemies[room.ID] {
		e.Draw(screen, cam)
	}
	g.hook.Draw(screen, cam)
	g.player.Draw(screen, cam)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.1f  room: %s  hook: %s", ebiten.ActualFPS(), room.ID, g.hook.State))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.cfg.ViewWidth), float64(g.cfg.ViewHeight)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
