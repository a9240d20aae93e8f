package worldmap

import "sort"

// Coord is an integer cell position; 0 <= X < width, 0 <= Y < height.
type Coord struct {
	X, Y int
}

// Cell is one grid position: its terrain and, once segmentation has run, a
// back-reference to the region that owns it. The region reference is set at
// most once per generation run and nil for cells whose terrain type had no
// metadata.
type Cell struct {
	Coord   Coord
	Terrain TerrainType
	Region  *Region
}

// Faction is a caller-supplied pre-existing faction that receives a
// stronghold on the map.
type Faction struct {
	ID   int
	Name string
}

// Map is the assembled world map. It is built once per generation call and
// handed to the caller as a snapshot; the generator never mutates it
// afterwards.
type Map struct {
	Width    int
	Height   int
	Seed     int64
	Template WorldTemplate

	cells        []Cell
	regions      map[int]*Region
	regionCoords map[int][]Coord
}

func newMap(width, height int, seed int64, tpl WorldTemplate) *Map {
	return &Map{
		Width:        width,
		Height:       height,
		Seed:         seed,
		Template:     tpl,
		cells:        make([]Cell, width*height),
		regions:      make(map[int]*Region),
		regionCoords: make(map[int][]Coord),
	}
}

// InBounds reports whether (x, y) lies on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the cell at (x, y), or nil if out of bounds.
func (m *Map) At(x, y int) *Cell {
	if !m.InBounds(x, y) {
		return nil
	}
	return &m.cells[y*m.Width+x]
}

// Region returns the region with the given id, or nil if none exists.
func (m *Map) Region(id int) *Region {
	return m.regions[id]
}

// RegionCoords returns the member coordinates of the region with the given
// id, or nil if none exists.
func (m *Map) RegionCoords(id int) []Coord {
	return m.regionCoords[id]
}

// Regions returns all registered regions ordered by id.
func (m *Map) Regions() []*Region {
	out := make([]*Region, 0, len(m.regions))
	for _, r := range m.regions {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// StrongholdRegion returns the stronghold region owned by the given faction,
// or nil if the faction's stronghold was not placed.
func (m *Map) StrongholdRegion(factionID int) *Region {
	for _, r := range m.regions {
		if r.Kind == RegionStronghold && r.Stronghold.FactionID == factionID {
			return r
		}
	}
	return nil
}

// SyncFactionRegions invokes link once per placed stronghold so the host can
// refresh its faction records against the freshly built map. The assembler
// calls this automatically when the caller supplies a hook; hosts may call it
// again after regenerating their own state.
func (m *Map) SyncFactionRegions(link func(factionID int, r *Region)) {
	if link == nil {
		return
	}
	for _, r := range m.Regions() {
		if r.Kind == RegionStronghold {
			link(r.Stronghold.FactionID, r)
		}
	}
}

// registerRegion records a region and stamps the back-reference onto every
// member cell.
func (m *Map) registerRegion(r *Region) {
	m.regions[r.ID] = r
	m.regionCoords[r.ID] = r.Coords
	for _, c := range r.Coords {
		if m.InBounds(c.X, c.Y) {
			m.cells[c.Y*m.Width+c.X].Region = r
		}
	}
}
