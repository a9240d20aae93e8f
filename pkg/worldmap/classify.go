package worldmap

import "math"

// Classify maps one cell's elevation to a natural terrain type. Branches are
// evaluated in strict priority order (water bands, then template overrides,
// then latitude bands, then the temperate elevation tiers) and the first
// match wins. Every threshold here is part of the determinism contract.
func Classify(elev float64, x, y, width, height int, tpl WorldTemplate, sn float64) TerrainType {
	lat := float64(y) / float64(height)

	// Water bands.
	if elev < -0.25 {
		if elev < -0.55 {
			return TerrainSea
		}
		if sn > 0.5 {
			return TerrainFreshwater
		}
		return TerrainSea
	}
	if elev < -0.05 {
		if sn > 0.8 {
			return TerrainIsland
		}
		return TerrainSea
	}

	// Oasis worlds ring their center with desert before latitude applies.
	if tpl == TemplateOasis {
		cx, cy := float64(width)/2, float64(height)/2
		dx := (float64(x) - cx) / (cx * 0.7)
		dy := (float64(y) - cy) / (cy * 0.7)
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist > 0.85 {
			if sn > 0.3 {
				return TerrainDesert
			}
			return TerrainGobi
		}
		if dist > 0.55 {
			if sn > 0.5 {
				return TerrainGobi
			}
			return TerrainDesert
		}
	}

	// Polar band.
	if lat < 0.12 {
		if elev > 0.5 {
			return TerrainSnowMountain
		}
		if sn > 0.5 {
			return TerrainGlacier
		}
		return TerrainTundra
	}

	// Sub-polar band.
	if lat < 0.25 {
		if elev > 0.55 {
			return TerrainSnowMountain
		}
		if elev > 0.35 {
			return TerrainMountain
		}
		if sn > 0.6 {
			return TerrainTundra
		}
		return TerrainPlain
	}

	// Tropical band.
	if lat > 0.78 {
		if elev > 0.5 {
			return TerrainMountain
		}
		if sn > 0.5 {
			return TerrainRainforest
		}
		if sn > 0.2 {
			return TerrainSwamp
		}
		return TerrainForest
	}

	// Temperate tiers by elevation.
	if elev > 0.65 {
		if sn > 0.7 && lat > 0.4 {
			return TerrainVolcano
		}
		return TerrainSnowMountain
	}
	if elev > 0.45 {
		return TerrainMountain
	}
	if elev > 0.25 {
		if sn > 0.75 {
			return TerrainBamboo
		}
		if sn > 0.4 {
			return TerrainForest
		}
		return TerrainMountain
	}
	if elev > 0.1 {
		if tpl == TemplateArchipelago {
			if sn > 0.85 {
				return TerrainIsland
			}
			return TerrainPlain
		}
		switch {
		case sn > 0.85:
			return TerrainFarmland
		case sn > 0.7:
			return TerrainGrassland
		case sn > 0.55:
			return TerrainForest
		case sn > 0.3:
			return TerrainPlain
		default:
			return TerrainGrassland
		}
	}

	// Flat lowlands.
	if tpl == TemplateContinent || tpl == TemplatePolarSouth {
		if sn > 0.75 {
			return TerrainMarsh
		}
		if sn > 0.4 {
			return TerrainPlain
		}
		return TerrainFarmland
	}
	if sn > 0.7 {
		return TerrainSwamp
	}
	return TerrainPlain
}

// classifyGrid runs the classifier over the whole elevation grid.
func classifyGrid(elev, sn [][]float64, width, height int, tpl WorldTemplate) [][]TerrainType {
	grid := make([][]TerrainType, height)
	for y := 0; y < height; y++ {
		row := make([]TerrainType, width)
		for x := 0; x < width; x++ {
			row[x] = Classify(elev[y][x], x, y, width, height, tpl, sn[y][x])
		}
		grid[y] = row
	}
	return grid
}
