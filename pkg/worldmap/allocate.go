package worldmap

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// Structure footprints are fixed 2x2 blocks.
const footprintSize = 2

// Minimum Chebyshev spacing per placement pass.
const (
	strongholdSpacing = 15
	settlementSpacing = 12
	sanctumSpacing    = 10
)

// placement records one placed structure anchor during allocation. It is
// transient: only the allocator uses it, to enforce spacing across passes.
type placement struct {
	x, y int
	kind TerrainType
}

// allocator stamps structure footprints onto the terrain grid in three
// sequential passes sharing one cumulative placement list.
type allocator struct {
	grid   [][]TerrainType
	width  int
	height int
	rng    *rand.Rand
	placed []placement
}

// footprintFree reports whether the 2x2 block anchored at (x, y) is in
// bounds and contains neither water nor an already-placed structure.
func (a *allocator) footprintFree(x, y int) bool {
	if x+1 >= a.width || y+1 >= a.height {
		return false
	}
	for dy := 0; dy < footprintSize; dy++ {
		for dx := 0; dx < footprintSize; dx++ {
			if blockedTerrain.Has(a.grid[y+dy][x+dx]) {
				return false
			}
		}
	}
	return true
}

// hasFriendly reports whether the expanded 4x4 neighborhood around the
// anchor (offsets -1..+2) touches at least one friendly cell.
func (a *allocator) hasFriendly(x, y int, friendly mapset.Set[TerrainType]) bool {
	for dy := -1; dy < 3; dy++ {
		for dx := -1; dx < 3; dx++ {
			nx, ny := x+dx, y+dy
			if nx >= 0 && nx < a.width && ny >= 0 && ny < a.height {
				if friendly.Has(a.grid[ny][nx]) {
					return true
				}
			}
		}
	}
	return false
}

// farEnough reports whether (x, y) keeps at least minDist Chebyshev distance
// from every placement so far, from any pass.
func (a *allocator) farEnough(x, y, minDist int) bool {
	for _, p := range a.placed {
		dx := x - p.x
		if dx < 0 {
			dx = -dx
		}
		dy := y - p.y
		if dy < 0 {
			dy = -dy
		}
		if dx < minDist && dy < minDist {
			return false
		}
	}
	return true
}

// candidates scans anchors on an even 2-cell stride and returns every
// position whose footprint is free, whose neighborhood touches the friendly
// set, and which keeps the pass's spacing from prior placements. The result
// is shuffled with the run's seeded RNG.
func (a *allocator) candidates(friendly mapset.Set[TerrainType], minDist int) []Coord {
	var out []Coord
	for y := 0; y < a.height-1; y += 2 {
		for x := 0; x < a.width-1; x += 2 {
			if !a.footprintFree(x, y) {
				continue
			}
			if !a.hasFriendly(x, y, friendly) {
				continue
			}
			if !a.farEnough(x, y, minDist) {
				continue
			}
			out = append(out, Coord{x, y})
		}
	}
	a.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// placePass consumes shuffled candidates until count structures are placed
// or candidates run out. kindAt picks the structure kind for the i-th
// placement of the pass (the sanctum pass alternates ruins and hideouts).
// Spacing and footprint validity are re-checked at consumption time so that
// placements made earlier in the same pass are respected too. Shortfall is
// not an error; the caller reads it off the returned slice.
func (a *allocator) placePass(count int, friendly mapset.Set[TerrainType], minDist int, kindAt func(i int) TerrainType) []placement {
	var made []placement
	for _, c := range a.candidates(friendly, minDist) {
		if len(made) >= count {
			break
		}
		if !a.farEnough(c.X, c.Y, minDist) || !a.footprintFree(c.X, c.Y) {
			continue
		}
		kind := kindAt(len(made))
		for dy := 0; dy < footprintSize; dy++ {
			for dx := 0; dx < footprintSize; dx++ {
				a.grid[c.Y+dy][c.X+dx] = kind
			}
		}
		p := placement{x: c.X, y: c.Y, kind: kind}
		made = append(made, p)
		a.placed = append(a.placed, p)
	}
	return made
}

// allocateSites runs the three placement passes in priority order:
// strongholds, settlements, then sanctums. ruinCount of the sanctum pass's
// placements (the first ones) become ruins, the rest hideouts.
func allocateSites(grid [][]TerrainType, width, height int, rng *rand.Rand, strongholds, settlements, sanctums, ruinCount int) (sects, cities, sanctumSites []placement) {
	a := &allocator{grid: grid, width: width, height: height, rng: rng}

	sects = a.placePass(strongholds, strongholdFriendly, strongholdSpacing,
		func(int) TerrainType { return TerrainStronghold })

	cities = a.placePass(settlements, settlementFriendly, settlementSpacing,
		func(int) TerrainType { return TerrainSettlement })

	sanctumSites = a.placePass(sanctums, sanctumFriendly(), sanctumSpacing,
		func(i int) TerrainType {
			if i < ruinCount {
				return TerrainRuin
			}
			return TerrainHideout
		})

	return sects, cities, sanctumSites
}
