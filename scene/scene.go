package scene

import (
	"fmt"

	"github.com/avasilakis/orion/types"
)

// Scene holds the primitives and point lights to be rendered. Primitives
// keep their insertion order; closest-hit resolution breaks distance ties
// in favor of the earlier-inserted primitive. Scenes are built once during
// setup and treated as read-only by every tracer afterwards.
type Scene struct {
	Materials  []*Material
	Primitives []*Primitive

	// Point light positions. All lights emit uniform white light with no
	// attenuation.
	Lights []types.Vec3
}

func NewScene() *Scene {
	return &Scene{
		Materials:  make([]*Material, 0),
		Primitives: make([]*Primitive, 0),
		Lights:     make([]types.Vec3, 0),
	}
}

// Add a material to the scene.
func (s *Scene) AddMaterial(material *Material) error {
	for _, mat := range s.Materials {
		if mat == material {
			return fmt.Errorf("scene: material already added")
		}
	}
	s.Materials = append(s.Materials, material)
	return nil
}

// Add a primitive to the scene.
func (s *Scene) AddPrimitive(primitive *Primitive) error {
	for _, prim := range s.Primitives {
		if prim == primitive {
			return fmt.Errorf("scene: primitive already added")
		}
	}
	if primitive.Material == nil {
		return fmt.Errorf("scene: no material assigned to primitive")
	}
	for _, mat := range s.Materials {
		if mat == primitive.Material {
			s.Primitives = append(s.Primitives, primitive)
			return nil
		}
	}

	return fmt.Errorf("scene: primitive references unknown material; ensure that the material is added to the scene before adding the primitive")
}

// Add a point light to the scene.
func (s *Scene) AddLight(position types.Vec3) {
	s.Lights = append(s.Lights, position)
}

// Build the default orbit scene: three reflective spheres over a procedural
// grid plane, lit by two white point lights.
func Default() *Scene {
	s := NewScene()

	redMat := NewMaterial()
	redMat.Color = types.XYZ(0.75, 0.125, 0.125)
	redMat.Reflectivity = 0.5
	s.AddMaterial(redMat)
	s.AddPrimitive(NewSphere(types.XYZ(60, 50, 0), 50, redMat))

	greenMat := NewMaterial()
	greenMat.Color = types.XYZ(0.125, 0.6, 0.125)
	greenMat.Reflectivity = 0.5
	s.AddMaterial(greenMat)
	s.AddPrimitive(NewSphere(types.XYZ(-15, 25, -25), 25, greenMat))

	blueMat := NewMaterial()
	blueMat.Color = types.XYZ(0.125, 0.125, 0.75)
	blueMat.Reflectivity = 0.5
	s.AddMaterial(blueMat)
	s.AddPrimitive(NewSphere(types.XYZ(-50, 40, 75), 40, blueMat))

	floorMat := NewMaterial()
	floorMat.ColorFn = GridColorFunc(100, types.XYZ(0.3, 0.3, 0.3), types.XYZ(0.15, 0.15, 0.15))
	floorMat.Diffuse = 0.25
	floorMat.SpecIntensity = 0.1
	floorMat.SpecExponent = 10
	s.AddMaterial(floorMat)
	s.AddPrimitive(NewPlane(types.XYZ(0, 0, 0), types.XYZ(0, 1, 0), floorMat))

	s.AddLight(types.XYZ(-1000, 300, 0))
	s.AddLight(types.XYZ(100, 900, 500))

	return s
}
