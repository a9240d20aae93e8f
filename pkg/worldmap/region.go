package worldmap

// RegionKind is the closed set of region variants.
type RegionKind uint8

const (
	RegionNatural RegionKind = iota
	RegionSettlement
	RegionSanctum
	RegionStronghold
)

func (k RegionKind) String() string {
	switch k {
	case RegionSettlement:
		return "settlement"
	case RegionSanctum:
		return "sanctum"
	case RegionStronghold:
		return "stronghold"
	default:
		return "natural"
	}
}

// EssenceType is one of the five elemental essences a sanctum can carry.
type EssenceType uint8

const (
	EssenceGold EssenceType = iota
	EssenceWood
	EssenceWater
	EssenceFire
	EssenceEarth
)

var essenceNames = [...]string{"gold", "wood", "water", "fire", "earth"}

func (e EssenceType) String() string {
	if int(e) < len(essenceNames) {
		return essenceNames[e]
	}
	return "gold"
}

// EssenceFromString parses an essence name, falling back to def for unknown
// or empty input.
func EssenceFromString(s string, def EssenceType) EssenceType {
	for i, n := range essenceNames {
		if s == n {
			return EssenceType(i)
		}
	}
	return def
}

// NaturalInfo is the payload of a natural-terrain region.
type NaturalInfo struct {
	Terrain        TerrainType
	FaunaIDs       []int
	FloraIDs       []int
	LodeIDs        []int
	EssenceDensity int
}

// SettlementInfo is the payload of a settlement region.
type SettlementInfo struct {
	SellItemIDs []int
}

// SanctumSubKind distinguishes hideout caves from ruins.
type SanctumSubKind uint8

const (
	SanctumCave SanctumSubKind = iota
	SanctumRuin
)

func (s SanctumSubKind) String() string {
	if s == SanctumRuin {
		return "ruin"
	}
	return "cave"
}

// SanctumInfo is the payload of a hideout/ruin region.
type SanctumInfo struct {
	SubKind        SanctumSubKind
	Essence        EssenceType
	EssenceDensity int
}

// StrongholdInfo is the payload of a faction stronghold region.
type StrongholdInfo struct {
	FactionID   int
	FactionName string
}

// Region is a named cell grouping with a kind tag and exactly one matching
// payload pointer set. Classification happens once, at construction; callers
// switch on Kind rather than inspecting payloads for nil.
type Region struct {
	ID     int
	Kind   RegionKind
	Name   string
	Desc   string
	Coords []Coord

	Natural    *NaturalInfo
	Settlement *SettlementInfo
	Sanctum    *SanctumInfo
	Stronghold *StrongholdInfo
}
