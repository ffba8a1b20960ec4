package shooter

import "hash/fnv"

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Score    int
	Health   int
	PlayerX  int
	Bullets  int
	Enemies  int
	Pickups  int
	GameOver bool
	posHash  uint64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	h := fnv.New64a()
	buf := make([]byte, 0, 8)
	put := func(v int64) {
		buf = buf[:0]
		for i := 0; i < 8; i++ {
			buf = append(buf, byte(v>>(8*i)))
		}
		h.Write(buf)
	}
	for _, e := range g.enemies {
		put(int64(e.X * 1000))
		put(int64(e.Y * 1000))
	}
	for _, b := range g.bullets {
		put(int64(b.X * 1000))
		put(int64(b.Y * 1000))
	}

	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Health:   g.health,
		PlayerX:  int(g.playerX * 1000),
		Bullets:  len(g.bullets),
		Enemies:  len(g.enemies),
		Pickups:  len(g.pickups),
		GameOver: g.gameOver,
		posHash:  h.Sum64(),
	}
}

// Hash folds the snapshot into a single comparable value.
func (s Snapshot) Hash() uint64 {
	h := s.posHash
	h ^= s.Tick * 0x9e3779b97f4a7c15
	h ^= uint64(s.Score) << 1
	h ^= uint64(s.Health) << 17
	h ^= uint64(s.PlayerX) << 33
	return h
}
