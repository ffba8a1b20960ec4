package artifact

import (
	"math/rand"
	"sort"
)

type tileKind int

const (
	tileFloor tileKind = iota
	tileWall
	tileWin
)

type pos struct {
	X, Y int
}

type tile struct {
	kind             tileKind
	temple           bool
	pedestal         bool
	pedestalName     string
	pedestalArtifact *Artifact
	artifact         *Artifact
}

// worldLayout is the overworld map. W wall, . floor, T temple floor,
// P pedestal. The ragged right edge is intentional; missing cells are
// simply void.
var worldLayout = []string{
	"WWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWW",
	"W..........................W...........W",
	"W....A.......................A........W",
	"W..........................W...........W",
	"W..........................WWWWWWWWWWWWW",
	"W..........W.........................A.W",
	"W..........W............................W",
	"W..........W............................W",
	"W..........W............................W",
	"W....................................................W",
	"W....................................................W",
	"W....................................................W",
	"W............................................WWWWWWW",
	"W.........A..............................W........W",
	"W............................................W........W",
	"W............................................W........W",
	"W....................................................W",
	"W....................................................W",
	"W....................................................W",
	"W.................................................T..W",
	"W............................................WWWWWWW",
	"W....................................................W",
	"W....T.............................................W",
	"W.............................................PPPPW",
	"W............................................T.....W",
	"WWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWW",
}

var pedestalNames = []string{"North", "East", "South", "West"}

type world struct {
	tiles     map[pos]*tile
	temples   []pos
	pedestals map[string]pos

	width  int
	height int

	gravityInverted bool
	landscapeWarped bool
	templeUnlocked  bool
}

// buildWorld parses the layout and scatters the base artifacts over
// plain floor tiles using the run's rng.
func buildWorld(rng *rand.Rand) *world {
	w := &world{
		tiles:     make(map[pos]*tile),
		pedestals: make(map[string]pos),
		height:    len(worldLayout),
	}

	for y, row := range worldLayout {
		if len(row) > w.width {
			w.width = len(row)
		}
		for x, cell := range row {
			p := pos{x, y}
			switch cell {
			case 'W':
				w.tiles[p] = &tile{kind: tileWall}
			case '.', 'A':
				w.tiles[p] = &tile{kind: tileFloor}
			case 'T':
				w.tiles[p] = &tile{kind: tileFloor, temple: true}
				w.temples = append(w.temples, p)
			case 'P':
				w.tiles[p] = &tile{kind: tileFloor, temple: true, pedestal: true}
				w.temples = append(w.temples, p)
			}
		}
	}

	// Name the pedestals in scan order so every run agrees on which is
	// which.
	var stands []pos
	for p, t := range w.tiles {
		if t.pedestal {
			stands = append(stands, p)
		}
	}
	sort.Slice(stands, func(i, j int) bool {
		if stands[i].X != stands[j].X {
			return stands[i].X < stands[j].X
		}
		return stands[i].Y < stands[j].Y
	})
	for i, p := range stands {
		if i >= len(pedestalNames) {
			break
		}
		w.pedestals[pedestalNames[i]] = p
		w.tiles[p].pedestalName = pedestalNames[i]
	}

	// Scatter the artifacts over plain floor.
	var floors []pos
	for p, t := range w.tiles {
		if t.kind == tileFloor && !t.temple && !t.pedestal {
			floors = append(floors, p)
		}
	}
	sort.Slice(floors, func(i, j int) bool {
		if floors[i].Y != floors[j].Y {
			return floors[i].Y < floors[j].Y
		}
		return floors[i].X < floors[j].X
	})
	rng.Shuffle(len(floors), func(i, j int) {
		floors[i], floors[j] = floors[j], floors[i]
	})
	for i, a := range baseArtifacts() {
		if i < len(floors) {
			w.tiles[floors[i]].artifact = a
		}
	}

	return w
}

// walkable reports whether the tile at p can be entered. Phasing lets
// the player pass through walls but not off the map.
func (w *world) walkable(p pos, canPhase bool) bool {
	t, ok := w.tiles[p]
	if !ok {
		return false
	}
	if t.kind == tileWall {
		return canPhase
	}
	return true
}

// firstFloor returns the starting tile: the first plain floor cell in
// scan order.
func (w *world) firstFloor() pos {
	for y, row := range worldLayout {
		for x, cell := range row {
			if cell == '.' {
				return pos{x, y}
			}
		}
	}
	return pos{1, 1}
}

// unlockSecretChamber carves a 3x3 temple room beneath the southern
// wall, below the first pedestal, and cuts a passage through to it. The
// room's center is the goal.
func (w *world) unlockSecretChamber() {
	w.templeUnlocked = true

	anchor := w.pedestals[pedestalNames[0]]
	start := pos{anchor.X - 1, w.height}

	var room []pos
	for ry := 0; ry < 3; ry++ {
		for rx := 0; rx < 3; rx++ {
			p := pos{start.X + rx, start.Y + ry}
			w.tiles[p] = &tile{kind: tileFloor, temple: true}
			w.temples = append(w.temples, p)
			room = append(room, p)
		}
	}
	center := room[len(room)/2]
	w.tiles[center].kind = tileWin

	// Carve the passage down from the pedestal to the room.
	for y := anchor.Y + 1; y < start.Y; y++ {
		p := pos{anchor.X, y}
		t, ok := w.tiles[p]
		if !ok || t.kind == tileWall {
			w.tiles[p] = &tile{kind: tileFloor, temple: true}
			w.temples = append(w.temples, p)
		}
	}
	w.height += 3
}
