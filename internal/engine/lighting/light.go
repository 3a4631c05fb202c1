// Package lighting provides lighting parameters for 3D rendering.
package lighting

import "github.com/go-gl/mathgl/mgl32"

// PointLight holds the parameters of a single positional light.
type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
}

// Overhead returns the scene's default light: directly above the
// terrain with soft ambient and strong diffuse contribution.
func Overhead() PointLight {
	return PointLight{
		Position: mgl32.Vec3{0, 10, 0},
		Ambient:  mgl32.Vec3{0.3, 0.3, 0.3},
		Diffuse:  mgl32.Vec3{0.7, 0.7, 0.7},
	}
}
