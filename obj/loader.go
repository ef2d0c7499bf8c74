package obj

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"

	"github.com/hollowpine/grapple/common"
)

// ObjectKind tags map objects at load time so nothing string-matches at
// runtime.
type ObjectKind int

const (
	ObjectOther ObjectKind = iota
	ObjectSpawn
	ObjectEnemy
)

func classifyObject(name, typ string) ObjectKind {
	tag := strings.ToLower(name) + " " + strings.ToLower(typ)
	switch {
	case strings.Contains(tag, "spawn"):
		return ObjectSpawn
	case strings.Contains(tag, "enemy"):
		return ObjectEnemy
	}
	return ObjectOther
}

type worldFile struct {
	Start string           `json:"start"`
	Rooms []worldRoomEntry `json:"rooms"`
}

type worldRoomEntry struct {
	ID   string  `json:"id"`
	File string  `json:"file"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type roomFile struct {
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	TileWidth int         `json:"tilewidth"`
	Layers    []layerFile `json:"layers"`
}

type layerFile struct {
	Name    string       `json:"name"`
	Type    string       `json:"type"`
	Data    []int        `json:"data"`
	Objects []objectFile `json:"objects"`
}

type objectFile struct {
	Name string  `json:"name"`
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// LoadWorld loads a world file and its room files from disk. The room files
// are resolved relative to the world file's directory.
func LoadWorld(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load world %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	return loadWorld(data, func(file string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, file))
	})
}

// LoadWorldFS loads a world file and its rooms from an fs.FS (e.g. the
// embedded worlds directory).
func LoadWorldFS(fsys fs.FS, path string) (*World, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("load world %s: %w", path, err)
	}
	dir := filepath.ToSlash(filepath.Dir(path))
	return loadWorld(data, func(file string) ([]byte, error) {
		if dir != "." && dir != "" {
			file = dir + "/" + file
		}
		return fs.ReadFile(fsys, file)
	})
}

func loadWorld(data []byte, readRoom func(file string) ([]byte, error)) (*World, error) {
	var wf worldFile
	if err := json.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("parse world: %w", err)
	}
	if len(wf.Rooms) == 0 {
		return nil, fmt.Errorf("world has no rooms")
	}

	w := &World{Rooms: make(map[string]*Room, len(wf.Rooms))}
	for _, entry := range wf.Rooms {
		id := entry.ID
		if id == "" {
			log.Warn("world entry missing room id, skipping", "file", entry.File)
			continue
		}
		file := entry.File
		if file == "" {
			file = id + ".json"
		}
		raw, err := readRoom(file)
		if err != nil {
			return nil, fmt.Errorf("load room %s: %w", id, err)
		}
		room, err := parseRoom(id, raw, entry.X, entry.Y)
		if err != nil {
			return nil, fmt.Errorf("parse room %s: %w", id, err)
		}
		w.Rooms[id] = room
	}
	if len(w.Rooms) == 0 {
		return nil, fmt.Errorf("world has no loadable rooms")
	}

	deriveAdjacency(w.Rooms)

	w.StartID = wf.Start
	if _, ok := w.Rooms[w.StartID]; !ok {
		ids := sortedRoomIDs(w.Rooms)
		log.Warn("start room not found, using lowest room id", "start", wf.Start, "using", ids[0])
		w.StartID = ids[0]
	}
	w.current = w.Rooms[w.StartID]
	return w, nil
}

func parseRoom(id string, data []byte, worldX, worldY float64) (*Room, error) {
	var rf roomFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return nil, err
	}
	if rf.Width <= 0 || rf.Height <= 0 {
		return nil, fmt.Errorf("invalid room dimensions: %dx%d", rf.Width, rf.Height)
	}
	if rf.TileWidth != 0 && rf.TileWidth != common.TileSize {
		log.Warn("room tile size differs from engine tile size", "room", id, "tilewidth", rf.TileWidth)
	}

	room := &Room{
		ID:     id,
		WorldX: worldX,
		WorldY: worldY,
		Width:  rf.Width,
		Height: rf.Height,
		Bounds: common.Rect{
			X:      worldX,
			Y:      worldY,
			Width:  float64(rf.Width * common.TileSize),
			Height: float64(rf.Height * common.TileSize),
		},
	}
	room.Tiles = make([][]int, rf.Height)
	for y := range room.Tiles {
		room.Tiles[y] = make([]int, rf.Width)
	}

	spawnCount := 0
	for _, layer := range rf.Layers {
		switch layer.Type {
		case "tilelayer":
			parseTileLayer(room, layer.Data)
		case "objectgroup":
			for _, o := range layer.Objects {
				switch classifyObject(o.Name, o.Type) {
				case ObjectSpawn:
					spawnCount++
					if spawnCount == 1 {
						// Object coords are local to the room file.
						room.Spawn = cp.Vector{X: worldX + o.X, Y: worldY + o.Y}
					}
				case ObjectEnemy:
					room.EnemySpawns = append(room.EnemySpawns, cp.Vector{X: worldX + o.X, Y: worldY + o.Y})
				}
			}
		}
	}

	switch {
	case spawnCount == 0:
		room.Spawn = cp.Vector{X: worldX, Y: worldY}
		log.Warn("room has no spawn object, falling back to top-left corner", "room", id)
	case spawnCount > 1:
		log.Warn("room has multiple spawn objects, first one wins", "room", id, "count", spawnCount)
	}

	return room, nil
}

func parseTileLayer(room *Room, data []int) {
	for row := 0; row < room.Height; row++ {
		for col := 0; col < room.Width; col++ {
			idx := row*room.Width + col
			if idx >= len(data) {
				return
			}
			switch data[idx] {
			case 0:
				room.Tiles[row][col] = TileEmpty
			case 1:
				room.Tiles[row][col] = TileSolid
			case 2:
				room.Tiles[row][col] = TileSpike
			case 3:
				room.Tiles[row][col] = TileGrapple
			case 4:
				room.Tiles[row][col] = TileExit
			default:
				room.Tiles[row][col] = TileSolid
			}
		}
	}
}

// deriveAdjacency records which rooms share a boundary edge. A hairline
// inflation catches rooms that touch exactly without overlapping.
func deriveAdjacency(rooms map[string]*Room) {
	ids := sortedRoomIDs(rooms)
	for _, id := range ids {
		room := rooms[id]
		room.Adjacent = room.Adjacent[:0]
		touch := room.Bounds.Inflate(1)
		for _, other := range ids {
			if other == id {
				continue
			}
			if touch.Intersects(rooms[other].Bounds) {
				room.Adjacent = append(room.Adjacent, other)
			}
		}
	}
}

func sortedRoomIDs(rooms map[string]*Room) []string {
	ids := make([]string, 0, len(rooms))
	for id := range rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
