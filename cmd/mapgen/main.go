package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/qianshan/worldgen/pkg/metadata"
	"github.com/qianshan/worldgen/pkg/worldmap"
)

// terrainRunes is the ASCII legend for the preview render.
var terrainRunes = map[worldmap.TerrainType]rune{
	worldmap.TerrainPlain:        '.',
	worldmap.TerrainDesert:       'd',
	worldmap.TerrainRainforest:   'J',
	worldmap.TerrainGlacier:      '*',
	worldmap.TerrainSea:          '~',
	worldmap.TerrainFreshwater:   '=',
	worldmap.TerrainMountain:     '^',
	worldmap.TerrainSnowMountain: 'A',
	worldmap.TerrainGrassland:    ',',
	worldmap.TerrainForest:       't',
	worldmap.TerrainVolcano:      'V',
	worldmap.TerrainFarmland:     '#',
	worldmap.TerrainSwamp:        '%',
	worldmap.TerrainBamboo:       'b',
	worldmap.TerrainTundra:       '-',
	worldmap.TerrainGobi:         'g',
	worldmap.TerrainIsland:       'i',
	worldmap.TerrainMarsh:        'm',
	worldmap.TerrainSettlement:   'C',
	worldmap.TerrainStronghold:   'S',
	worldmap.TerrainHideout:      'H',
	worldmap.TerrainRuin:         'R',
}

// parseFactions parses "1:Azure Sword Sect,2:Black Tortoise Hall".
func parseFactions(s string) ([]worldmap.Faction, error) {
	if s == "" {
		return nil, nil
	}
	var out []worldmap.Faction
	for _, part := range strings.Split(s, ",") {
		id, name, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("faction %q: want id:name", part)
		}
		n, err := strconv.Atoi(id)
		if err != nil {
			return nil, fmt.Errorf("faction %q: %w", part, err)
		}
		out = append(out, worldmap.Faction{ID: n, Name: strings.TrimSpace(name)})
	}
	return out, nil
}

func main() {
	width := flag.Int("width", 100, "Map width in cells")
	height := flag.Int("height", 100, "Map height in cells")
	seed := flag.Int64("seed", 0, "World seed")
	settlements := flag.Int("settlements", worldmap.AutoCount, "Settlement count (-1 = derive from area)")
	sanctums := flag.Int("sanctums", worldmap.AutoCount, "Sanctum count (-1 = derive from area)")
	factionArg := flag.String("factions", "", "Factions as id:name pairs, comma separated")
	metadataPath := flag.String("metadata", "", "Region metadata YAML (empty = built-in tables)")
	render := flag.Bool("render", true, "Print an ASCII map preview")
	flag.Parse()

	factions, err := parseFactions(*factionArg)
	if err != nil {
		log.Fatalf("Invalid -factions: %v", err)
	}

	opts := worldmap.DefaultOptions()
	opts.SettlementCount = *settlements
	opts.SanctumCount = *sanctums
	if *metadataPath != "" {
		tables, err := metadata.Load(*metadataPath)
		if err != nil {
			log.Fatalf("Failed to load metadata: %v", err)
		}
		opts.Tables = tables
	}

	m, report, err := worldmap.Generate(*width, *height, *seed, factions, opts)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	log.Printf("Generated %dx%d world (seed=%d, template=%s)", m.Width, m.Height, report.Seed, report.Template)
	log.Printf("Strongholds: %d/%d | Settlements: %d/%d | Sanctums: %d/%d (%d ruins, %d hideouts)",
		report.StrongholdsPlaced, report.StrongholdsRequested,
		report.SettlementsPlaced, report.SettlementsRequested,
		report.SanctumsPlaced, report.SanctumsRequested,
		report.RuinsPlaced, report.HideoutsPlaced)
	for _, w := range report.Warnings {
		log.Printf("WARNING: %s", w)
	}

	if *render {
		var sb strings.Builder
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				r, ok := terrainRunes[m.At(x, y).Terrain]
				if !ok {
					r = '?'
				}
				sb.WriteRune(r)
			}
			sb.WriteByte('\n')
		}
		fmt.Fprint(os.Stdout, sb.String())
	}

	for _, r := range m.Regions() {
		fmt.Printf("region %3d [%-10s] %-28s %5d cells\n", r.ID, r.Kind, r.Name, len(r.Coords))
	}
}
