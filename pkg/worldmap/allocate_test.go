package worldmap

import (
	"math/rand"
	"testing"
)

func uniformGrid(w, h int, t TerrainType) [][]TerrainType {
	g := make([][]TerrainType, h)
	for y := range g {
		g[y] = make([]TerrainType, w)
		for x := range g[y] {
			g[y][x] = t
		}
	}
	return g
}

func chebyshev(a, b placement) int {
	dx := a.x - b.x
	if dx < 0 {
		dx = -dx
	}
	dy := a.y - b.y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

func spacingFor(kind TerrainType) int {
	switch kind {
	case TerrainStronghold:
		return strongholdSpacing
	case TerrainSettlement:
		return settlementSpacing
	default:
		return sanctumSpacing
	}
}

func TestAllocateOnOpenPlain(t *testing.T) {
	grid := uniformGrid(60, 60, TerrainPlain)
	rng := rand.New(rand.NewSource(1))

	sects, cities, sanctums := allocateSites(grid, 60, 60, rng, 2, 3, 6, 2)
	if len(sects) != 2 || len(cities) != 3 || len(sanctums) != 6 {
		t.Fatalf("placed %d/%d/%d structures, want 2/3/6", len(sects), len(cities), len(sanctums))
	}

	// First two sanctum placements become ruins, the rest hideouts.
	for i, p := range sanctums {
		want := TerrainHideout
		if i < 2 {
			want = TerrainRuin
		}
		if p.kind != want {
			t.Errorf("sanctum %d kind = %s, want %s", i, p.kind, want)
		}
	}

	// Footprints are stamped onto the grid.
	for _, p := range append(append(append([]placement{}, sects...), cities...), sanctums...) {
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				if got := grid[p.y+dy][p.x+dx]; got != p.kind {
					t.Errorf("cell (%d, %d) = %s, want %s", p.x+dx, p.y+dy, got, p.kind)
				}
			}
		}
	}
}

func TestAllocateSpacing(t *testing.T) {
	grid := uniformGrid(80, 80, TerrainPlain)
	rng := rand.New(rand.NewSource(7))

	sects, cities, sanctums := allocateSites(grid, 80, 80, rng, 3, 4, 8, 2)
	all := append(append(append([]placement{}, sects...), cities...), sanctums...)

	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			// The later-placed category's radius binds; across passes that
			// is always the smaller of the two.
			need := spacingFor(all[i].kind)
			if s := spacingFor(all[j].kind); s < need {
				need = s
			}
			if d := chebyshev(all[i], all[j]); d < need {
				t.Errorf("placements %v and %v are %d apart, want >= %d", all[i], all[j], d, need)
			}
		}
	}
}

func TestAllocateNoOverlap(t *testing.T) {
	grid := uniformGrid(64, 64, TerrainGrassland)
	rng := rand.New(rand.NewSource(3))

	sects, cities, sanctums := allocateSites(grid, 64, 64, rng, 2, 5, 6, 2)
	seen := make(map[Coord]bool)
	for _, p := range append(append(append([]placement{}, sects...), cities...), sanctums...) {
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				c := Coord{p.x + dx, p.y + dy}
				if seen[c] {
					t.Fatalf("cell %v covered by two footprints", c)
				}
				seen[c] = true
			}
		}
	}
}

func TestAllocateRefusesWater(t *testing.T) {
	grid := uniformGrid(40, 40, TerrainSea)
	rng := rand.New(rand.NewSource(1))

	sects, cities, sanctums := allocateSites(grid, 40, 40, rng, 2, 3, 4, 1)
	if len(sects)+len(cities)+len(sanctums) != 0 {
		t.Errorf("placed structures on open sea: %d/%d/%d", len(sects), len(cities), len(sanctums))
	}
}

func TestAllocateFriendlyTerrainFilter(t *testing.T) {
	// Desert is stronghold-friendly but not settlement-friendly; only the
	// stronghold pass should succeed.
	grid := uniformGrid(50, 50, TerrainDesert)
	rng := rand.New(rand.NewSource(5))

	sects, cities, _ := allocateSites(grid, 50, 50, rng, 1, 3, 0, 0)
	if len(sects) != 1 {
		t.Errorf("placed %d strongholds on desert, want 1", len(sects))
	}
	if len(cities) != 0 {
		t.Errorf("placed %d settlements on desert, want 0", len(cities))
	}
}

func TestAllocateShortfallIsSilent(t *testing.T) {
	// A tiny map cannot hold 20 settlements; the allocator under-places
	// without erroring.
	grid := uniformGrid(20, 20, TerrainPlain)
	rng := rand.New(rand.NewSource(2))

	_, cities, _ := allocateSites(grid, 20, 20, rng, 0, 20, 0, 0)
	if len(cities) >= 20 {
		t.Fatalf("expected shortfall on a 20x20 map, placed %d", len(cities))
	}
	if len(cities) == 0 {
		t.Fatal("expected at least one settlement on open plain")
	}
}

func TestAllocateDeterminism(t *testing.T) {
	run := func() []placement {
		grid := uniformGrid(60, 60, TerrainPlain)
		rng := rand.New(rand.NewSource(11))
		sects, cities, sanctums := allocateSites(grid, 60, 60, rng, 2, 3, 5, 1)
		return append(append(append([]placement{}, sects...), cities...), sanctums...)
	}
	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("placement counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("placement %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
