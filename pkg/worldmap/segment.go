package worldmap

import (
	"fmt"
	"math/rand"

	"github.com/qianshan/worldgen/pkg/metadata"
)

// strongholdIDOffset is added to a faction id to form its region id.
const strongholdIDOffset = 400

// terrainRegionIDs lists the candidate metadata region ids for each natural
// terrain type. Types with several candidates (mountains) resolve to one of
// them per generation run; marsh shares the swamp region row.
var terrainRegionIDs = map[TerrainType][]int{
	TerrainPlain:        {101},
	TerrainDesert:       {102},
	TerrainRainforest:   {103},
	TerrainGlacier:      {104},
	TerrainSea:          {105},
	TerrainFreshwater:   {106},
	TerrainMountain:     {107, 114},
	TerrainSnowMountain: {108},
	TerrainGrassland:    {109},
	TerrainForest:       {110},
	TerrainVolcano:      {111},
	TerrainFarmland:     {112},
	TerrainSwamp:        {113},
	TerrainBamboo:       {115},
	TerrainTundra:       {116},
	TerrainGobi:         {117},
	TerrainIsland:       {118},
	TerrainMarsh:        {113},
}

// floodFill collects the 4-connected cluster of target-typed cells reachable
// from (startX, startY), marking everything it visits.
func floodFill(grid [][]TerrainType, visited [][]bool, startX, startY, width, height int, target TerrainType) []Coord {
	stack := []Coord{{startX, startY}}
	visited[startY][startX] = true
	var cluster []Coord
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cluster = append(cluster, c)
		for _, d := range [4]Coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := c.X+d.X, c.Y+d.Y
			if nx >= 0 && nx < width && ny >= 0 && ny < height && !visited[ny][nx] {
				if grid[ny][nx] == target {
					visited[ny][nx] = true
					stack = append(stack, Coord{nx, ny})
				}
			}
		}
	}
	return cluster
}

// segmentNatural partitions natural terrain into regions. Every connected
// cluster is grouped, but region identity is type-level: the first time a
// terrain type is seen, one candidate id is drawn for it, and every cluster
// of that type across the map merges into that single region. Terrain types
// whose resolved id has no metadata row produce no region at all; their
// cells stay regionless and a warning is recorded.
func segmentNatural(m *Map, grid [][]TerrainType, rng *rand.Rand, tables *metadata.Tables, report *Report) {
	width, height := m.Width, m.Height
	visited := make([][]bool, height)
	for y := range visited {
		visited[y] = make([]bool, width)
	}

	assigned := make(map[TerrainType]int)
	resolve := func(t TerrainType) int {
		if id, ok := assigned[t]; ok {
			return id
		}
		candidates, ok := terrainRegionIDs[t]
		if !ok {
			candidates = []int{101}
		}
		id := candidates[rng.Intn(len(candidates))]
		assigned[t] = id
		return id
	}

	regionCells := make(map[int][]Coord)
	regionTerrain := make(map[int]TerrainType)
	var regionOrder []int

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if visited[y][x] {
				continue
			}
			t := grid[y][x]
			if t.IsStructure() {
				visited[y][x] = true
				continue
			}
			cluster := floodFill(grid, visited, x, y, width, height, t)
			id := resolve(t)
			if _, seen := regionCells[id]; !seen {
				regionOrder = append(regionOrder, id)
				regionTerrain[id] = t
			}
			regionCells[id] = append(regionCells[id], cluster...)
		}
	}

	for _, id := range regionOrder {
		row, ok := tables.Natural[id]
		if !ok {
			report.warnf("no natural-region metadata for id %d (%s): %d cells left regionless",
				id, regionTerrain[id], len(regionCells[id]))
			continue
		}
		m.registerRegion(&Region{
			ID:     id,
			Kind:   RegionNatural,
			Name:   row.Name,
			Desc:   row.Desc,
			Coords: regionCells[id],
			Natural: &NaturalInfo{
				Terrain:        regionTerrain[id],
				FaunaIDs:       row.FaunaIDs,
				FloraIDs:       row.FloraIDs,
				LodeIDs:        row.LodeIDs,
				EssenceDensity: row.EssenceDensity,
			},
		})
	}
}

// footprintCoords expands a placement anchor into its 2x2 member cells.
func footprintCoords(p placement) []Coord {
	coords := make([]Coord, 0, footprintSize*footprintSize)
	for dy := 0; dy < footprintSize; dy++ {
		for dx := 0; dx < footprintSize; dx++ {
			coords = append(coords, Coord{p.x + dx, p.y + dy})
		}
	}
	return coords
}

// uniqueRegionID keeps the metadata row id where possible and offsets it
// when cycling has already used it, preserving the map-wide uniqueness
// invariant.
func uniqueRegionID(m *Map, id int) int {
	for m.regions[id] != nil {
		id += 1000
	}
	return id
}

// bindSettlements turns placed settlement footprints into regions, cycling
// through the settlement metadata rows.
func bindSettlements(m *Map, placed []placement, tables *metadata.Tables, report *Report) {
	if len(placed) == 0 {
		return
	}
	rows := tables.Settlements
	if len(rows) == 0 {
		report.warnf("no settlement metadata: %d placed settlements left unbound", len(placed))
		return
	}
	for i, p := range placed {
		row := rows[i%len(rows)]
		m.registerRegion(&Region{
			ID:         uniqueRegionID(m, row.ID),
			Kind:       RegionSettlement,
			Name:       row.Name,
			Desc:       row.Desc,
			Coords:     footprintCoords(p),
			Settlement: &SettlementInfo{SellItemIDs: row.SellItemIDs},
		})
	}
}

// bindSanctums turns placed hideout/ruin footprints into regions. Hideouts
// cycle through the "cave" rows and ruins through the "ruin" rows; a missing
// row category drops that category's sites with a warning.
func bindSanctums(m *Map, placed []placement, tables *metadata.Tables, report *Report) {
	caves := tables.SanctumsOf("cave")
	ruins := tables.SanctumsOf("ruin")

	caveIdx, ruinIdx := 0, 0
	for _, p := range placed {
		var (
			row     metadata.SanctumRow
			subKind SanctumSubKind
			defEss  EssenceType
		)
		switch p.kind {
		case TerrainRuin:
			if len(ruins) == 0 {
				report.warnf("no ruin metadata: placed ruin at (%d,%d) left unbound", p.x, p.y)
				continue
			}
			row = ruins[ruinIdx%len(ruins)]
			ruinIdx++
			subKind = SanctumRuin
			defEss = EssenceWood
		default:
			if len(caves) == 0 {
				report.warnf("no cave metadata: placed hideout at (%d,%d) left unbound", p.x, p.y)
				continue
			}
			row = caves[caveIdx%len(caves)]
			caveIdx++
			subKind = SanctumCave
			defEss = EssenceGold
		}
		m.registerRegion(&Region{
			ID:     uniqueRegionID(m, row.ID),
			Kind:   RegionSanctum,
			Name:   row.Name,
			Desc:   row.Desc,
			Coords: footprintCoords(p),
			Sanctum: &SanctumInfo{
				SubKind:        subKind,
				Essence:        EssenceFromString(row.Essence, defEss),
				EssenceDensity: row.EssenceDensity,
			},
		})
	}
}

// bindStrongholds binds placed strongholds one-to-one to the factions that
// requested them, in placement order. A faction without a metadata row gets
// a synthesized name and description.
func bindStrongholds(m *Map, placed []placement, factions []Faction, tables *metadata.Tables) {
	for i, p := range placed {
		if i >= len(factions) {
			break
		}
		f := factions[i]
		name := fmt.Sprintf("%s Seat", f.Name)
		desc := fmt.Sprintf("Headquarters of %s.", f.Name)
		if row, ok := tables.Strongholds[f.ID]; ok {
			if row.Name != "" {
				name = row.Name
			}
			if row.Desc != "" {
				desc = row.Desc
			}
		}
		m.registerRegion(&Region{
			ID:         strongholdIDOffset + f.ID,
			Kind:       RegionStronghold,
			Name:       name,
			Desc:       desc,
			Coords:     footprintCoords(p),
			Stronghold: &StrongholdInfo{FactionID: f.ID, FactionName: f.Name},
		})
	}
}
