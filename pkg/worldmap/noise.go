package worldmap

import "math"

// hashNoise returns a pseudo-random value in [0, 1] from integer coordinates
// and a seed. The constants are a compatibility contract: any implementation
// that wants to reproduce a map for a given seed must match them bit for bit.
func hashNoise(x, y int, seed int64) float64 {
	n := int64(x)*1619 + int64(y)*31337 + seed*6971
	n = (n ^ (n >> 8)) * 0x27d4eb2d
	n = (n ^ (n >> 15)) & 0xFFFFFFFF
	return float64(n&0xFFFF) / 65535.0
}

// smoothNoise returns a value in roughly [-1, 1] built from three bands: a
// low-frequency rotated sine/cosine pair for continent-scale shapes, a
// mid-frequency pair at half amplitude for ridges and basins, and a hash
// perturbation at quarter amplitude for per-cell detail.
func smoothNoise(x, y float64, seed int64, scale float64) float64 {
	low := math.Sin(x*scale+y*scale*0.7+float64(seed)*0.001) +
		math.Cos(y*scale*0.9-x*scale*0.3+float64(seed)*0.002)

	midScale := scale * 2.5
	mid := 0.5 * (math.Sin(x*midScale+float64(seed)*0.003) +
		math.Cos(y*midScale+float64(seed)*0.004))

	hi := 0.25 * (hashNoise(int(x), int(y), seed)*2 - 1)

	return (low + mid + hi) / 3.75
}

// secondaryField fills a width x height grid of hash noise drawn from a
// perturbed seed, used by the classifier to diversify terrain within an
// elevation band.
func secondaryField(width, height int, seed int64) [][]float64 {
	s2 := seed ^ 0xDEADBEEF
	field := make([][]float64, height)
	for y := range field {
		row := make([]float64, width)
		for x := range row {
			row[x] = hashNoise(x, y, s2)
		}
		field[y] = row
	}
	return field
}
