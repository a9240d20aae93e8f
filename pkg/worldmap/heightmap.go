package worldmap

import "math"

// WorldTemplate is one of five elevation archetypes. The template is fixed
// for a generation run, selected from the seed, and steers both the
// heightmap and a few classifier branches (desert rings, island frequency).
type WorldTemplate uint8

const (
	TemplateContinent WorldTemplate = iota
	TemplateArchipelago
	TemplateTwoShores
	TemplateOasis
	TemplatePolarSouth

	templateCount
)

var templateNames = [templateCount]string{
	TemplateContinent:   "continent",
	TemplateArchipelago: "archipelago",
	TemplateTwoShores:   "two-shores",
	TemplateOasis:       "oasis",
	TemplatePolarSouth:  "polar-south",
}

func (t WorldTemplate) String() string {
	if t >= templateCount {
		return "unknown"
	}
	return templateNames[t]
}

// TemplateForSeed selects the world template as seed mod 5, floored so that
// negative seeds still land on a valid template.
func TemplateForSeed(seed int64) WorldTemplate {
	m := seed % int64(templateCount)
	if m < 0 {
		m += int64(templateCount)
	}
	return WorldTemplate(m)
}

// buildHeightmap returns a height x width elevation grid in roughly [-1, 1]
// for the given template.
func buildHeightmap(tpl WorldTemplate, width, height int, seed int64) [][]float64 {
	switch tpl {
	case TemplateArchipelago:
		return archipelagoHeightmap(width, height, seed)
	case TemplateTwoShores:
		return twoShoresHeightmap(width, height, seed)
	case TemplateOasis:
		return oasisHeightmap(width, height, seed)
	case TemplatePolarSouth:
		return polarSouthHeightmap(width, height, seed)
	default:
		return continentHeightmap(width, height, seed)
	}
}

func newElevationGrid(width, height int) [][]float64 {
	g := make([][]float64, height)
	for y := range g {
		g[y] = make([]float64, width)
	}
	return g
}

// continentHeightmap: one central landmass with an elliptical falloff toward
// the edges, blended 0.6/0.4 with noise.
func continentHeightmap(width, height int, seed int64) [][]float64 {
	g := newElevationGrid(width, height)
	cx, cy := float64(width)/2, float64(height)/2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := (float64(x) - cx) / (cx * 0.85)
			dy := (float64(y) - cy) / (cy * 0.85)
			fade := 1.0 - math.Min(1.0, math.Sqrt(dx*dx+dy*dy))
			n := smoothNoise(float64(x), float64(y), seed, 0.07)
			g[y][x] = fade*0.6 + n*0.4
		}
	}
	return g
}

// archipelagoHeightmap: higher-frequency noise shifted downward so most of
// the map sits below the water thresholds, leaving scattered islands.
func archipelagoHeightmap(width, height int, seed int64) [][]float64 {
	g := newElevationGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g[y][x] = smoothNoise(float64(x), float64(y), seed, 0.12) - 0.1
		}
	}
	return g
}

// twoShoresHeightmap: a low corridor down the horizontal center with high
// ground on both flanks.
func twoShoresHeightmap(width, height int, seed int64) [][]float64 {
	g := newElevationGrid(width, height)
	cx := float64(width) / 2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dist := math.Abs(float64(x)-cx) / (float64(width) * 0.5)
			base := (dist - 0.25) * 2.0
			n := smoothNoise(float64(x), float64(y), seed, 0.08)
			g[y][x] = base*0.6 + n*0.4
		}
	}
	return g
}

// oasisHeightmap: high at the center, falling off radially; the classifier
// layers desert rings over the outer reaches.
func oasisHeightmap(width, height int, seed int64) [][]float64 {
	g := newElevationGrid(width, height)
	cx, cy := float64(width)/2, float64(height)/2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := (float64(x) - cx) / (cx * 0.7)
			dy := (float64(y) - cy) / (cy * 0.7)
			fade := 1.0 - math.Min(1.0, math.Sqrt(dx*dx+dy*dy))
			n := smoothNoise(float64(x), float64(y), seed, 0.09)
			g[y][x] = fade*0.7 + n*0.3
		}
	}
	return g
}

// polarSouthHeightmap: elevation biased down toward the northern edge by a
// linear latitude factor, so the far north reads as low frozen ground.
func polarSouthHeightmap(width, height int, seed int64) [][]float64 {
	g := newElevationGrid(width, height)
	for y := 0; y < height; y++ {
		north := 1.0 - float64(y)/float64(height)
		for x := 0; x < width; x++ {
			n := smoothNoise(float64(x), float64(y), seed, 0.08)
			g[y][x] = 0.4 + n*0.4 - north*0.2
		}
	}
	return g
}
