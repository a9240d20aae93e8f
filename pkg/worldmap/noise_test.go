package worldmap

import "testing"

func TestHashNoiseDeterminism(t *testing.T) {
	for i := 0; i < 200; i++ {
		x, y := i*13-500, i*7-300
		if hashNoise(x, y, 12345) != hashNoise(x, y, 12345) {
			t.Fatalf("hashNoise(%d, %d) not deterministic", x, y)
		}
	}
}

func TestHashNoiseRange(t *testing.T) {
	for i := 0; i < 10000; i++ {
		v := hashNoise(i*3-15000, i*5-25000, 42)
		if v < 0 || v > 1 {
			t.Errorf("hashNoise out of [0,1]: %f", v)
		}
	}
}

func TestHashNoisePinned(t *testing.T) {
	// Exact values of the hash contract. The want column is the low 16 bits
	// of the mixed hash over 65535; a wrong multiplier or shift anywhere in
	// the formula changes these.
	cases := []struct {
		x, y int
		seed int64
		want float64
	}{
		{0, 0, 0, 0},
		{3, 5, 7, 18838.0 / 65535.0},
		{100, 200, 42, 40477.0 / 65535.0},
		{12, 34, -5, 58911.0 / 65535.0},
		{-7, -11, 1, 22662.0 / 65535.0},
	}
	for _, c := range cases {
		if got := hashNoise(c.x, c.y, c.seed); got != c.want {
			t.Errorf("hashNoise(%d, %d, %d) = %.17f, want %.17f", c.x, c.y, c.seed, got, c.want)
		}
	}
}

func TestHashNoiseSeedVariation(t *testing.T) {
	same := 0
	for i := 0; i < 200; i++ {
		if hashNoise(i, i*2, 1) == hashNoise(i, i*2, 2) {
			same++
		}
	}
	if same > 20 {
		t.Errorf("seeds 1 and 2 agree on %d/200 samples", same)
	}
}

func TestSmoothNoiseRange(t *testing.T) {
	for i := 0; i < 5000; i++ {
		x := float64(i)*0.7 - 1000
		y := float64(i)*0.3 - 700
		v := smoothNoise(x, y, 99, 0.08)
		if v < -1 || v > 1 {
			t.Errorf("smoothNoise(%f, %f) = %f, out of [-1, 1]", x, y, v)
		}
	}
}

func TestSecondaryFieldDeterminism(t *testing.T) {
	a := secondaryField(32, 24, 7)
	b := secondaryField(32, 24, 7)
	if len(a) != 24 || len(a[0]) != 32 {
		t.Fatalf("secondaryField dimensions = %dx%d, want 32x24", len(a[0]), len(a))
	}
	for y := range a {
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				t.Fatalf("secondaryField not deterministic at (%d, %d)", x, y)
			}
		}
	}
}
