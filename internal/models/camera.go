package models

// Zone is a polygon in frame pixel coordinates, listed as [x, y] vertices.
// Zones are expressed in the coordinate space of the canonical resized frame.
type Zone [][2]int

// Contains reports whether the point (x, y) lies inside the polygon.
// Points exactly on an edge or vertex count as inside.
func (z Zone) Contains(x, y int) bool {
	n := len(z)
	if n < 3 {
		return false
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if onSegment(z[i], z[j], x, y) {
			return true
		}
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := z[i][0], z[i][1]
		xj, yj := z[j][0], z[j][1]
		if (yi > y) != (yj > y) {
			xCross := float64(xj-xi)*float64(y-yi)/float64(yj-yi) + float64(xi)
			if float64(x) < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

func onSegment(a, b [2]int, x, y int) bool {
	cross := (b[0]-a[0])*(y-a[1]) - (b[1]-a[1])*(x-a[0])
	if cross != 0 {
		return false
	}
	return min(a[0], b[0]) <= x && x <= max(a[0], b[0]) &&
		min(a[1], b[1]) <= y && y <= max(a[1], b[1])
}

// CameraRequest registers a camera stream with the worker.
type CameraRequest struct {
	CameraID     string `json:"camera_id" binding:"required"`
	StreamURL    string `json:"stream_url" binding:"required"`
	ParkingZones []Zone `json:"parking_zones,omitempty"`
}

// ResolveRequest marks a parking event as handled by an officer.
type ResolveRequest struct {
	Officer string `json:"officer" binding:"required"`
	Notes   string `json:"notes,omitempty"`
}
