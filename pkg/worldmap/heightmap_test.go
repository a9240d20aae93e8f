package worldmap

import "testing"

func TestTemplateForSeed(t *testing.T) {
	tests := []struct {
		seed int64
		want WorldTemplate
	}{
		{0, TemplateContinent},
		{1, TemplateArchipelago},
		{2, TemplateTwoShores},
		{3, TemplateOasis},
		{4, TemplatePolarSouth},
		{5, TemplateContinent},
		{7, TemplateTwoShores},
		{42, TemplateTwoShores},
		{-1, TemplatePolarSouth},
		{-5, TemplateContinent},
	}
	for _, tt := range tests {
		if got := TemplateForSeed(tt.seed); got != tt.want {
			t.Errorf("TemplateForSeed(%d) = %s, want %s", tt.seed, got, tt.want)
		}
	}
}

func TestHeightmapDeterminism(t *testing.T) {
	for tpl := WorldTemplate(0); tpl < templateCount; tpl++ {
		a := buildHeightmap(tpl, 48, 36, 777)
		b := buildHeightmap(tpl, 48, 36, 777)
		for y := range a {
			for x := range a[y] {
				if a[y][x] != b[y][x] {
					t.Fatalf("%s heightmap not deterministic at (%d, %d)", tpl, x, y)
				}
			}
		}
	}
}

func TestHeightmapDimensionsAndRange(t *testing.T) {
	for tpl := WorldTemplate(0); tpl < templateCount; tpl++ {
		g := buildHeightmap(tpl, 50, 40, 5)
		if len(g) != 40 || len(g[0]) != 50 {
			t.Fatalf("%s heightmap dimensions = %dx%d, want 50x40", tpl, len(g[0]), len(g))
		}
		for y := range g {
			for x := range g[y] {
				if v := g[y][x]; v < -1.5 || v > 1.5 {
					t.Errorf("%s elevation %f at (%d, %d) out of expected range", tpl, v, x, y)
				}
			}
		}
	}
}

func TestContinentCenterAboveEdges(t *testing.T) {
	g := buildHeightmap(TemplateContinent, 80, 80, 123)

	var centerSum, edgeSum float64
	var centerN, edgeN int
	for y := 38; y <= 42; y++ {
		for x := 38; x <= 42; x++ {
			centerSum += g[y][x]
			centerN++
		}
	}
	for x := 0; x < 80; x++ {
		edgeSum += g[0][x] + g[79][x]
		edgeN += 2
	}

	if centerSum/float64(centerN) <= edgeSum/float64(edgeN) {
		t.Errorf("continent center (avg %f) not above edges (avg %f)",
			centerSum/float64(centerN), edgeSum/float64(edgeN))
	}
}

func TestTwoShoresCorridorLow(t *testing.T) {
	g := buildHeightmap(TemplateTwoShores, 100, 60, 9)

	var midSum, flankSum float64
	var midN, flankN int
	for y := 0; y < 60; y++ {
		midSum += g[y][50]
		midN++
		flankSum += g[y][2] + g[y][97]
		flankN += 2
	}
	if midSum/float64(midN) >= flankSum/float64(flankN) {
		t.Errorf("two-shores corridor (avg %f) not below flanks (avg %f)",
			midSum/float64(midN), flankSum/float64(flankN))
	}
}
