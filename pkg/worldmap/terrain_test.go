package worldmap

import "testing"

func TestTerrainStrings(t *testing.T) {
	if got := TerrainSnowMountain.String(); got != "Snow Mountain" {
		t.Errorf("TerrainSnowMountain = %q", got)
	}
	if got := TerrainType(200).String(); got != "Unknown" {
		t.Errorf("out-of-range terrain = %q", got)
	}
}

func TestTerrainPredicates(t *testing.T) {
	for _, kind := range []TerrainType{TerrainSettlement, TerrainStronghold, TerrainHideout, TerrainRuin} {
		if !kind.IsStructure() {
			t.Errorf("%s should be a structure", kind)
		}
	}
	if TerrainPlain.IsStructure() {
		t.Error("plain is not a structure")
	}
	if !TerrainSea.IsWater() || !TerrainFreshwater.IsWater() {
		t.Error("sea and freshwater are water")
	}
	if TerrainMarsh.IsWater() {
		t.Error("marsh is walkable, not water")
	}
}

func TestAllocatorTerrainSets(t *testing.T) {
	// Footprints are blocked by water and by already-placed structures, and
	// by nothing else.
	for kind := TerrainType(0); kind < terrainCount; kind++ {
		want := kind.IsWater() || kind.IsStructure()
		if got := blockedTerrain.Has(kind); got != want {
			t.Errorf("blockedTerrain.Has(%s) = %v, want %v", kind, got, want)
		}
	}

	if n := settlementFriendly.Size(); n != 4 {
		t.Errorf("settlementFriendly has %d kinds, want 4", n)
	}
	for _, kind := range []TerrainType{TerrainPlain, TerrainGrassland, TerrainFarmland, TerrainForest} {
		if !settlementFriendly.Has(kind) {
			t.Errorf("settlements should like %s", kind)
		}
	}
	if settlementFriendly.Has(TerrainDesert) {
		t.Error("settlements should not like desert")
	}
	if !strongholdFriendly.Has(TerrainDesert) {
		t.Error("strongholds take any walkable land, desert included")
	}
	if strongholdFriendly.Has(TerrainSea) {
		t.Error("strongholds cannot anchor on sea")
	}
}

func TestSanctumFriendlyUnion(t *testing.T) {
	s := sanctumFriendly()
	for _, kind := range []TerrainType{TerrainPlain, TerrainGrassland} {
		if !s.Has(kind) {
			t.Errorf("sanctum set should include %s", kind)
		}
	}
	hideoutFriendly.Each(func(kind TerrainType) {
		if !s.Has(kind) {
			t.Errorf("sanctum set missing hideout terrain %s", kind)
		}
	})
	ruinFriendly.Each(func(kind TerrainType) {
		if !s.Has(kind) {
			t.Errorf("sanctum set missing ruin terrain %s", kind)
		}
	})
}
