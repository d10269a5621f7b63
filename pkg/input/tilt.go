package input

import "math"

// TiltFromAngles converts spherical altitude/azimuth angles (radians) to
// integer tiltX/tiltY degrees using the Pointer Events conversion. At zero
// altitude the pen lies flat and the tilt saturates at the +/-90 corner
// selected by the azimuth quadrant.
func TiltFromAngles(altitude, azimuth float64) (tiltX, tiltY int) {
	const radToDeg = 180 / math.Pi

	if altitude == 0 {
		switch {
		case azimuth == 0 || azimuth == 2*math.Pi:
			return 90, 0
		case azimuth < math.Pi/2:
			return 90, 90
		case azimuth == math.Pi/2:
			return 0, 90
		case azimuth < math.Pi:
			return -90, 90
		case azimuth == math.Pi:
			return -90, 0
		case azimuth < 3*math.Pi/2:
			return -90, -90
		case azimuth == 3*math.Pi/2:
			return 0, -90
		default:
			return 90, -90
		}
	}

	tanAlt := math.Tan(altitude)
	tiltX = int(math.Round(math.Atan(math.Cos(azimuth)/tanAlt) * radToDeg))
	tiltY = int(math.Round(math.Atan(math.Sin(azimuth)/tanAlt) * radToDeg))
	return tiltX, tiltY
}
