// Package worldmap procedurally synthesizes a deterministic 2D world map:
// a terrain grid, non-overlapping 2x2 structures (faction strongholds,
// settlements, hideouts and ruins), and a partition of the grid into
// metadata-backed regions. The same inputs always reproduce the same map.
package worldmap

import (
	"fmt"
	"math/rand"

	"github.com/qianshan/worldgen/pkg/metadata"
)

// AutoCount asks the generator to derive a structure count from the map
// area: max(3, area/2500) settlements and max(4, area/2000) sanctums.
const AutoCount = -1

// Options tunes a generation run. The zero value of the count fields means
// zero structures; use AutoCount (or DefaultOptions) for the area-derived
// defaults.
type Options struct {
	SettlementCount int
	SanctumCount    int

	// Tables supplies the metadata collaborator; nil uses metadata.Default().
	Tables *metadata.Tables

	// FactionSync, when set, is invoked once per placed stronghold after
	// assembly so the host can refresh its faction records.
	FactionSync func(factionID int, r *Region)
}

// DefaultOptions returns Options with area-derived structure counts.
func DefaultOptions() *Options {
	return &Options{SettlementCount: AutoCount, SanctumCount: AutoCount}
}

// Report carries the diagnostics of a generation run. Generation degrades
// gracefully instead of failing on data-quality problems; everything it had
// to give up on is recorded here for the caller to log.
type Report struct {
	Seed     int64
	Template WorldTemplate

	StrongholdsRequested int
	StrongholdsPlaced    int
	SettlementsRequested int
	SettlementsPlaced    int
	SanctumsRequested    int
	SanctumsPlaced       int
	RuinsPlaced          int
	HideoutsPlaced       int

	Warnings []string
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Generate builds a world map. The run is purely computational and owns all
// of its state: one seeded RNG is consumed in a fixed order (placement-pass
// shuffles, then natural-region id resolution), so identical inputs yield
// bit-identical maps. Only structurally invalid dimensions are an error;
// metadata gaps and placement shortfalls degrade gracefully and surface in
// the Report.
func Generate(width, height int, seed int64, factions []Faction, opts *Options) (*Map, *Report, error) {
	if width <= 0 || height <= 0 {
		return nil, nil, fmt.Errorf("worldmap: invalid dimensions %dx%d", width, height)
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	tables := opts.Tables
	if tables == nil {
		tables = metadata.Default()
	}

	tpl := TemplateForSeed(seed)
	rng := rand.New(rand.NewSource(seed))

	report := &Report{Seed: seed, Template: tpl}

	// Terrain: template heightmap, secondary hash field, then classification.
	elev := buildHeightmap(tpl, width, height, seed)
	sn := secondaryField(width, height, seed)
	grid := classifyGrid(elev, sn, width, height, tpl)

	// Structure counts.
	area := width * height
	settlementCount := opts.SettlementCount
	if settlementCount < 0 {
		settlementCount = max(3, area/2500)
	}
	sanctumCount := opts.SanctumCount
	if sanctumCount < 0 {
		sanctumCount = max(4, area/2000)
	}
	ruinCount := 0
	if sanctumCount > 0 {
		ruinCount = max(1, sanctumCount/3)
	}

	report.StrongholdsRequested = len(factions)
	report.SettlementsRequested = settlementCount
	report.SanctumsRequested = sanctumCount

	// Site allocation, highest priority first.
	sects, cities, sanctums := allocateSites(grid, width, height, rng,
		len(factions), settlementCount, sanctumCount, ruinCount)

	report.StrongholdsPlaced = len(sects)
	report.SettlementsPlaced = len(cities)
	report.SanctumsPlaced = len(sanctums)
	for _, p := range sanctums {
		if p.kind == TerrainRuin {
			report.RuinsPlaced++
		} else {
			report.HideoutsPlaced++
		}
	}
	if len(sects) < len(factions) {
		report.warnf("placed %d of %d strongholds", len(sects), len(factions))
	}
	if len(cities) < settlementCount {
		report.warnf("placed %d of %d settlements", len(cities), settlementCount)
	}
	if len(sanctums) < sanctumCount {
		report.warnf("placed %d of %d sanctums", len(sanctums), sanctumCount)
	}

	// Assembly: cells first, then regions bound over them.
	m := newMap(width, height, seed, tpl)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.cells[y*width+x] = Cell{Coord: Coord{x, y}, Terrain: grid[y][x]}
		}
	}

	segmentNatural(m, grid, rng, tables, report)
	bindSettlements(m, cities, tables, report)
	bindSanctums(m, sanctums, tables, report)
	bindStrongholds(m, sects, factions, tables)

	m.SyncFactionRegions(opts.FactionSync)

	return m, report, nil
}
