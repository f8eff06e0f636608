package detectors

import "citysentry-worker-go/internal/models"

// IoU computes intersection-over-union for two [x1, y1, x2, y2] boxes.
// Returns 0 when the boxes do not overlap or either box is degenerate.
func IoU(a, b [4]int) float64 {
	ix1 := max(a[0], b[0])
	iy1 := max(a[1], b[1])
	ix2 := min(a[2], b[2])
	iy2 := min(a[3], b[3])

	iw := ix2 - ix1
	ih := iy2 - iy1
	if iw <= 0 || ih <= 0 {
		return 0
	}

	inter := iw * ih
	areaA := (a[2] - a[0]) * (a[3] - a[1])
	areaB := (b[2] - b[0]) * (b[3] - b[1])
	union := areaA + areaB - inter
	if union <= 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func zonesContain(zones []models.Zone, x, y int) bool {
	for _, z := range zones {
		if z.Contains(x, y) {
			return true
		}
	}
	return false
}
