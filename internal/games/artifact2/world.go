package artifact2

import (
	"math/rand"
	"sort"
)

type tileKind int

const (
	tileFloor tileKind = iota
	tileWall
	tileWater
	tileWin
	// tileParadox only appears inside a rift's alternate reality.
	tileParadox
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

	artifact *Artifact

	paradox      bool
	paradoxTimer int
}

func (t *tile) walkableKind() bool {
	return t.kind == tileFloor || t.kind == tileWin
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
// the player pass through walls and water but not off the map.
func (w *world) walkable(p pos, canPhase bool) bool {
	t, ok := w.tiles[p]
	if !ok {
		return false
	}
	if t.walkableKind() {
		return true
	}
	return canPhase
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

// sortedFloors returns every walkable plain-floor position in scan
// order. Used wherever a random floor tile is drawn so the rng stream
// stays reproducible.
func (w *world) sortedFloors() []pos {
	var floors []pos
	for p, t := range w.tiles {
		if t.kind == tileFloor {
			floors = append(floors, p)
		}
	}
	sort.Slice(floors, func(i, j int) bool {
		if floors[i].Y != floors[j].Y {
			return floors[i].Y < floors[j].Y
		}
		return floors[i].X < floors[j].X
	})
	return floors
}

// sortedTiles returns every position in scan order.
func (w *world) sortedTiles() []pos {
	ps := make([]pos, 0, len(w.tiles))
	for p := range w.tiles {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Y != ps[j].Y {
			return ps[i].Y < ps[j].Y
		}
		return ps[i].X < ps[j].X
	})
	return ps
}

// templeCenter is where secret chambers and their paths anchor: the
// first pedestal found, falling back to the first temple tile.
func (w *world) templeCenter() pos {
	for _, p := range w.sortedTiles() {
		if w.tiles[p].pedestal {
			return p
		}
	}
	if len(w.temples) > 0 {
		return w.temples[0]
	}
	return pos{20, 20}
}

// chamberKind selects where the secret chamber materializes.
type chamberKind int

const (
	chamberPhase    chamberKind = iota // Above the temple
	chamberVoid                        // Beside it, reached by a chaotic path
	chamberAffinity                    // Below it, wider
)

// createSecretChamber carves a walled room with the goal tile at its
// center and a connecting path back to the temple.
func (w *world) createSecretChamber(kind chamberKind, rng *rand.Rand) {
	center := w.templeCenter()

	var start pos
	width, height := 5, 5
	switch kind {
	case chamberPhase:
		start = pos{center.X - 2, center.Y - 10}
	case chamberVoid:
		start = pos{center.X + 6, center.Y - 2}
	default:
		start = pos{center.X - 3, center.Y + 3}
		width = 7
	}

	for dx := 0; dx < width; dx++ {
		for dy := 0; dy < height; dy++ {
			p := pos{start.X + dx, start.Y + dy}
			if dx == 0 || dy == 0 || dx == width-1 || dy == height-1 {
				if _, exists := w.tiles[p]; !exists {
					w.tiles[p] = &tile{kind: tileWall}
				}
				continue
			}
			w.tiles[p] = &tile{kind: tileFloor, temple: true}
			w.temples = append(w.temples, p)
		}
	}

	goal := pos{start.X + width/2, start.Y + height/2}
	w.tiles[goal] = &tile{kind: tileWin, temple: true}

	w.carvePath(center, goal, kind == chamberVoid, rng)
}

// carvePath connects two points, turning walls and void into temple
// floor. The chaotic variant wanders; both are step-capped.
func (w *world) carvePath(from, to pos, chaotic bool, rng *rand.Rand) {
	dirs := []pos{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	current := from
	for steps := 0; current != to && steps < 80; steps++ {
		var dx, dy int
		// A chaotic path wanders at first, then homes in so the
		// chamber always ends up connected.
		if chaotic && steps < 20 {
			d := dirs[rng.Intn(len(dirs))]
			dx, dy = d.X, d.Y
		} else {
			dx = sign(to.X - current.X)
			dy = sign(to.Y - current.Y)
		}
		next := pos{current.X + dx, current.Y + dy}
		if next.X < 0 || next.Y < 0 {
			continue
		}

		t, exists := w.tiles[next]
		if !exists {
			w.tiles[next] = &tile{kind: tileFloor, temple: true}
			w.temples = append(w.temples, next)
		} else if t.kind == tileWall {
			t.kind = tileFloor
			t.temple = true
			w.temples = append(w.temples, next)
		}
		current = next
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
