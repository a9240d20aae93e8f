// mapview is a developer tool: it renders generated world maps in a window
// so terrain and placement tuning can be eyeballed. Press R to regenerate
// with the next seed.
package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/qianshan/worldgen/pkg/worldmap"
)

var terrainColors = map[worldmap.TerrainType]color.RGBA{
	worldmap.TerrainPlain:        {R: 0xb8, G: 0xd0, B: 0x8d, A: 0xff},
	worldmap.TerrainDesert:       {R: 0xe8, G: 0xd3, B: 0x8a, A: 0xff},
	worldmap.TerrainRainforest:   {R: 0x1f, G: 0x6e, B: 0x2d, A: 0xff},
	worldmap.TerrainGlacier:      {R: 0xd8, G: 0xf0, B: 0xff, A: 0xff},
	worldmap.TerrainSea:          {R: 0x20, G: 0x48, B: 0x90, A: 0xff},
	worldmap.TerrainFreshwater:   {R: 0x3e, G: 0x74, B: 0xc8, A: 0xff},
	worldmap.TerrainMountain:     {R: 0x8a, G: 0x7f, B: 0x70, A: 0xff},
	worldmap.TerrainSnowMountain: {R: 0xf2, G: 0xf2, B: 0xf6, A: 0xff},
	worldmap.TerrainGrassland:    {R: 0x90, G: 0xc4, B: 0x60, A: 0xff},
	worldmap.TerrainForest:       {R: 0x3c, G: 0x8a, B: 0x3c, A: 0xff},
	worldmap.TerrainVolcano:      {R: 0x9c, G: 0x2a, B: 0x1a, A: 0xff},
	worldmap.TerrainFarmland:     {R: 0xd2, G: 0xb4, B: 0x6c, A: 0xff},
	worldmap.TerrainSwamp:        {R: 0x4e, G: 0x5e, B: 0x38, A: 0xff},
	worldmap.TerrainBamboo:       {R: 0x6e, G: 0xb8, B: 0x52, A: 0xff},
	worldmap.TerrainTundra:       {R: 0xb4, G: 0xbe, B: 0xb0, A: 0xff},
	worldmap.TerrainGobi:         {R: 0xc8, G: 0xb8, B: 0x96, A: 0xff},
	worldmap.TerrainIsland:       {R: 0xd8, G: 0xc8, B: 0x78, A: 0xff},
	worldmap.TerrainMarsh:        {R: 0x5c, G: 0x74, B: 0x46, A: 0xff},
	worldmap.TerrainSettlement:   {R: 0xff, G: 0x9a, B: 0x1e, A: 0xff},
	worldmap.TerrainStronghold:   {R: 0xe0, G: 0x20, B: 0x80, A: 0xff},
	worldmap.TerrainHideout:      {R: 0x70, G: 0x30, B: 0xc0, A: 0xff},
	worldmap.TerrainRuin:         {R: 0x40, G: 0x40, B: 0x48, A: 0xff},
}

// App draws one generated map and regenerates on demand.
type App struct {
	width    int
	height   int
	cellPx   int
	seed     int64
	factions []worldmap.Faction
	world    *worldmap.Map
}

func (a *App) regenerate() {
	m, report, err := worldmap.Generate(a.width, a.height, a.seed, a.factions, worldmap.DefaultOptions())
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}
	a.world = m
	log.Printf("seed=%d template=%s regions=%d", report.Seed, report.Template, len(m.Regions()))
	for _, w := range report.Warnings {
		log.Printf("WARNING: %s", w)
	}
}

func (a *App) Layout(outsideW, outsideH int) (int, int) {
	return a.width * a.cellPx, a.height * a.cellPx
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.seed++
		a.regenerate()
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	px := float32(a.cellPx)
	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			c, ok := terrainColors[a.world.At(x, y).Terrain]
			if !ok {
				c = color.RGBA{R: 0xff, A: 0xff}
			}
			vector.DrawFilledRect(screen, float32(x)*px, float32(y)*px, px, px, c, false)
		}
	}
}

func main() {
	width := flag.Int("width", 120, "Map width in cells")
	height := flag.Int("height", 90, "Map height in cells")
	cellPx := flag.Int("cell", 8, "Cell size in pixels")
	seed := flag.Int64("seed", 0, "World seed")
	flag.Parse()

	app := &App{width: *width, height: *height, cellPx: *cellPx, seed: *seed}
	app.regenerate()

	ebiten.SetWindowTitle("worldgen mapview")
	ebiten.SetWindowSize(*width**cellPx, *height**cellPx)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
