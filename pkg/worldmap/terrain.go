package worldmap

import "github.com/zyedidia/generic/mapset"

// TerrainType is the discrete classification of a single map cell. Natural
// kinds come out of the terrain classifier; structure kinds are stamped over
// natural terrain by the site allocator and are mutually exclusive with it.
type TerrainType uint8

const (
	TerrainPlain TerrainType = iota
	TerrainDesert
	TerrainRainforest
	TerrainGlacier
	TerrainSea
	TerrainFreshwater
	TerrainMountain
	TerrainSnowMountain
	TerrainGrassland
	TerrainForest
	TerrainVolcano
	TerrainFarmland
	TerrainSwamp
	TerrainBamboo
	TerrainTundra
	TerrainGobi
	TerrainIsland
	TerrainMarsh

	// Structure markers.
	TerrainSettlement
	TerrainStronghold
	TerrainHideout
	TerrainRuin

	terrainCount
)

var terrainNames = [terrainCount]string{
	TerrainPlain:        "Plain",
	TerrainDesert:       "Desert",
	TerrainRainforest:   "Rainforest",
	TerrainGlacier:      "Glacier",
	TerrainSea:          "Sea",
	TerrainFreshwater:   "Freshwater",
	TerrainMountain:     "Mountain",
	TerrainSnowMountain: "Snow Mountain",
	TerrainGrassland:    "Grassland",
	TerrainForest:       "Forest",
	TerrainVolcano:      "Volcano",
	TerrainFarmland:     "Farmland",
	TerrainSwamp:        "Swamp",
	TerrainBamboo:       "Bamboo Grove",
	TerrainTundra:       "Tundra",
	TerrainGobi:         "Gobi",
	TerrainIsland:       "Island",
	TerrainMarsh:        "Marsh",
	TerrainSettlement:   "Settlement",
	TerrainStronghold:   "Stronghold",
	TerrainHideout:      "Hideout",
	TerrainRuin:         "Ruin",
}

func (t TerrainType) String() string {
	if t >= terrainCount {
		return "Unknown"
	}
	return terrainNames[t]
}

// IsStructure reports whether t is a placed-structure marker rather than a
// natural terrain kind.
func (t TerrainType) IsStructure() bool {
	switch t {
	case TerrainSettlement, TerrainStronghold, TerrainHideout, TerrainRuin:
		return true
	}
	return false
}

// IsWater reports whether t is open water.
func (t TerrainType) IsWater() bool {
	return t == TerrainSea || t == TerrainFreshwater
}

// Terrain sets used by the site allocator. A cell is "blocked" for a 2x2
// footprint if it is water or already carries a structure; each placement
// category additionally wants at least one friendly cell nearby.
var (
	blockedTerrain = mapset.Of(
		TerrainSea, TerrainFreshwater,
		TerrainSettlement, TerrainStronghold, TerrainHideout, TerrainRuin,
	)

	// Strongholds settle for any walkable land.
	strongholdFriendly = mapset.Of(
		TerrainPlain, TerrainGrassland, TerrainFarmland, TerrainForest,
		TerrainMountain, TerrainSnowMountain, TerrainBamboo, TerrainVolcano,
		TerrainRainforest, TerrainSwamp, TerrainTundra, TerrainGobi,
		TerrainDesert,
	)

	settlementFriendly = mapset.Of(
		TerrainPlain, TerrainGrassland, TerrainFarmland, TerrainForest,
	)

	hideoutFriendly = mapset.Of(
		TerrainMountain, TerrainSnowMountain, TerrainForest,
		TerrainRainforest, TerrainBamboo, TerrainVolcano,
	)

	ruinFriendly = mapset.Of(
		TerrainRainforest, TerrainSwamp, TerrainSea, TerrainFreshwater,
		TerrainDesert, TerrainGobi,
	)
)

// sanctumFriendly is the union used by the hideout/ruin pass: either
// category's preferred surroundings, plus open plain and grassland.
func sanctumFriendly() mapset.Set[TerrainType] {
	s := mapset.Of(TerrainPlain, TerrainGrassland)
	hideoutFriendly.Each(func(t TerrainType) { s.Put(t) })
	ruinFriendly.Each(func(t TerrainType) { s.Put(t) })
	return s
}
