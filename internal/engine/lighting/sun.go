// Package lighting computes per-triangle light casts from the scene's lights.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/yeentooth/pkg/math"
)

// SunDirection converts longitude/latitude in degrees to a unit vector
// pointing toward the sun. Longitude rotates about Y, latitude is elevation
// from the horizon.
func SunDirection(longitude, latitude float64) math.Vec3 {
	lon := longitude * gomath.Pi / 180
	lat := latitude * gomath.Pi / 180
	return math.V3(
		gomath.Cos(lat)*gomath.Sin(lon),
		gomath.Sin(lat),
		gomath.Cos(lat)*gomath.Cos(lon),
	)
}

// SunOrientation returns an orientation whose up axis points along
// SunDirection, for use on directional light nodes.
func SunOrientation(longitude, latitude float64) math.Mat3 {
	lon := longitude * gomath.Pi / 180
	lat := latitude * gomath.Pi / 180
	return math.RotationY(lon).Mul(math.RotationX(gomath.Pi/2 - lat))
}
