package sgl

// Material describes a fixed-function Phong surface with optional
// reflective and transmissive components.
type Material struct {
	Color                          Pixel
	KDiffuse, KSpecular, Shininess float32
	T, IOR                         float32
}

// PointLight is an omnidirectional light source with no attenuation.
type PointLight struct {
	Center Vertex
	Color  Pixel
}

// EnvironmentMap is a spherical-mapped texel grid sampled on ray miss.
// Texels is a linear float[3*Width*Height] array (interleaved RGB).
type EnvironmentMap struct {
	Width, Height int
	Texels        []float32
}

// Primitive is a scene object: either a Sphere or a Triangle. Both
// carry a binding to the material and emissive material that were most
// recently declared at the time the primitive was appended.
type Primitive interface {
	isPrimitive()
}

// Sphere is a ray-traceable sphere.
type Sphere struct {
	Center             Vertex
	Radius             float32
	MaterialID         int
	EmissiveMaterialID int
}

func (Sphere) isPrimitive() {}

// Triangle is a ray-traceable flat triangle, built from the first three
// vertices of a scene-block Begin/End.
type Triangle struct {
	Points             [3]Vertex
	MaterialID         int
	EmissiveMaterialID int
}

func (Triangle) isPrimitive() {}

// Scene is the ordered collection of primitives, materials, lights and
// optional environment map accumulated inside a BeginScene/EndScene
// block. EmissiveMaterials and EnvMap persist across BeginScene calls;
// everything else is cleared.
type Scene struct {
	Primitives        []Primitive
	Materials         []Material
	Lights            []PointLight
	EmissiveMaterials []Material
	EnvMap            *EnvironmentMap
}

func newScene() *Scene { return &Scene{} }

// appendPrimitive binds p's materialID/emissiveMaterialID to the most
// recently declared material/emissive material (binding-to-latest
// rule), then appends it.
func (s *Scene) appendPrimitive(p Primitive) {
	matID := len(s.Materials) - 1
	emissiveID := len(s.EmissiveMaterials) - 1
	switch v := p.(type) {
	case Sphere:
		v.MaterialID, v.EmissiveMaterialID = matID, emissiveID
		s.Primitives = append(s.Primitives, v)
	case Triangle:
		v.MaterialID, v.EmissiveMaterialID = matID, emissiveID
		s.Primitives = append(s.Primitives, v)
	}
}

// BeginScene clears the primitives, lights and materials lists and
// marks insideBeginScene. The environment map and emissive materials
// persist across calls.
func (m *Manager) BeginScene() {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	c.insideBeginScene = true
	c.scene.Primitives = nil
	c.scene.Lights = nil
	c.scene.Materials = nil
}

// EndScene clears insideBeginScene. Legal only inside a scene block.
func (m *Manager) EndScene() {
	c, ok := m.sceneContext()
	if !ok {
		return
	}
	c.insideBeginScene = false
}

// Sphere appends a sphere to the current scene, bound to the most
// recently declared material. Legal only inside a scene block.
func (m *Manager) Sphere(cx, cy, cz, radius float32) {
	c, ok := m.sceneContext()
	if !ok {
		return
	}
	if radius <= 0 {
		m.setError(InvalidValue)
		return
	}
	c.scene.appendPrimitive(Sphere{Center: NewVertex3(cx, cy, cz), Radius: radius})
}

// Material declares a new material; subsequently appended primitives
// bind to it until another Material call. Legal inside or outside a
// scene block, but not inside Begin/End.
func (m *Manager) Material(r, g, b, kDiffuse, kSpecular, shininess, t, ior float32) {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	c.scene.Materials = append(c.scene.Materials, Material{
		Color: Pixel{R: r, G: g, B: b}, KDiffuse: kDiffuse, KSpecular: kSpecular,
		Shininess: shininess, T: t, IOR: ior,
	})
}

// EmissiveMaterial declares a new emissive material, persisting across
// BeginScene calls unlike Material. Legal inside or outside a scene
// block, but not inside Begin/End.
func (m *Manager) EmissiveMaterial(r, g, b, kDiffuse, kSpecular, shininess, t, ior float32) {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	c.scene.EmissiveMaterials = append(c.scene.EmissiveMaterials, Material{
		Color: Pixel{R: r, G: g, B: b}, KDiffuse: kDiffuse, KSpecular: kSpecular,
		Shininess: shininess, T: t, IOR: ior,
	})
}

// PointLight appends a light to the current scene. Legal only inside a
// scene block.
func (m *Manager) PointLight(x, y, z, r, g, b float32) {
	c, ok := m.sceneContext()
	if !ok {
		return
	}
	c.scene.Lights = append(c.scene.Lights, PointLight{
		Center: NewVertex3(x, y, z),
		Color:  Pixel{R: r, G: g, B: b},
	})
}

// EnvironmentMap sets the scene's environment map, persisting across
// BeginScene calls. texels must hold 3*w*h floats (interleaved RGB).
// Legal inside or outside a scene block, but not inside Begin/End.
func (m *Manager) EnvironmentMap(w, h int, texels []float32) {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	if w <= 0 || h <= 0 {
		m.setError(InvalidValue)
		return
	}
	c.scene.EnvMap = &EnvironmentMap{Width: w, Height: h, Texels: texels}
}
