package lights

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-light-bridge/pkg/core"
	"github.com/df07/go-light-bridge/pkg/geometry"
	"github.com/df07/go-light-bridge/pkg/host"
	"github.com/df07/go-light-bridge/pkg/material"
	"github.com/df07/go-light-bridge/pkg/rpr"
)

// PhysicalLight is a host light object driven by a physical light parameter block
type PhysicalLight struct {
	Params *host.ParamBlock

	node *host.Node
}

// NewPhysicalLight creates a light with default parameters
func NewPhysicalLight() *PhysicalLight {
	return &PhysicalLight{Params: NewParams()}
}

func (pl *PhysicalLight) ClassName() string {
	return "Physical Light"
}

// ThisNode returns the node bound to the light, if any
func (pl *PhysicalLight) ThisNode() *host.Node {
	return pl.node
}

// SetThisNode binds the light to the node instancing it
func (pl *PhysicalLight) SetThisNode(n *host.Node) {
	pl.node = n
}

// PreAttachFunc is called with every renderer object right before it is
// attached to the scene
type PreAttachFunc func(obj rpr.SceneObject, node *host.Node)

// Exporter turns physical lights into renderer objects
type Exporter struct {
	Resolver  host.MeshResolver // resolves mesh-shaped area lights
	Locator   host.NodeLocator  // finds the node of an unbound light
	UnitScale float64
	Logger    core.Logger
	PreAttach PreAttachFunc
}

// NewExporter creates an exporter with a unit scale of 1 and no logging
func NewExporter(resolver host.MeshResolver, locator host.NodeLocator) *Exporter {
	return &Exporter{
		Resolver:  resolver,
		Locator:   locator,
		UnitScale: 1,
		Logger:    core.DiscardLogger{},
	}
}

func (e *Exporter) logf(format string, args ...interface{}) {
	if e.Logger != nil {
		e.Logger.Printf(format, args...)
	}
}

// CreateSceneLight exports light at time t into scope and reports whether a
// renderer object was attached.
//
// node is the node being exported; when nil the light's bound node is used,
// located through the exporter's NodeLocator and cached on first use.
// Disabled lights and mesh lights whose mesh does not resolve attach nothing
// and return no error. Renderer failures are returned as errors.
func (e *Exporter) CreateSceneLight(light *PhysicalLight, t host.TimeValue, node *host.Node, scope rpr.Scope) (bool, error) {
	snap, err := Capture(light.Params, t)
	if err != nil {
		return false, fmt.Errorf("failed to read light parameters: %w", err)
	}
	if !snap.Enabled {
		return false, nil
	}

	if light.ThisNode() == nil && e.Locator != nil {
		light.SetThisNode(e.Locator.FindNode(light))
	}
	if node == nil {
		node = light.ThisNode()
	}
	if node == nil {
		return false, fmt.Errorf("physical light has no node")
	}

	tm := RendererTransform(node.WorldTM(), float32(e.UnitScale))

	area := 1.0
	if NeedsArea(snap.Units) {
		area = SourceArea(snap.Kind, e.UnitScale, e.Resolver, t)
	}
	radiant := RadiantColor(snap, area)
	e.logf("Exporting %s light %q: area=%.4g radiant=(%.4g, %.4g, %.4g)\n",
		snap.Kind.Type(), node.Name, area, radiant.X, radiant.Y, radiant.Z)

	switch kind := snap.Kind.(type) {
	case Area:
		return e.exportArea(kind, snap, radiant, tm, t, node, scope)
	case Spot:
		return e.exportSpot(kind, radiant, tm, node, scope)
	case Point:
		l, err := scope.Context().CreatePointLight()
		if err != nil {
			return false, fmt.Errorf("failed to create point light: %w", err)
		}
		return e.attachLight(l, radiant, tm, node, scope)
	case Directional:
		l, err := scope.Context().CreateDirectionalLight()
		if err != nil {
			return false, fmt.Errorf("failed to create directional light: %w", err)
		}
		return e.attachLight(l, radiant, tm, node, scope)
	default:
		panic(unknownKind(snap.Kind))
	}
}

func (e *Exporter) exportArea(kind Area, snap Snapshot, radiant core.Vec3, tm [16]float32, t host.TimeValue, node *host.Node, scope rpr.Scope) (bool, error) {
	mesh, ok := e.areaMesh(kind.Shape, t, node.Name)
	if !ok {
		return false, nil
	}

	shape, err := geometry.CreateShape(scope.Context(), mesh)
	if err != nil {
		return false, err
	}

	parser := material.NewParser(scope.MaterialSystem())
	parser.Logger = e.Logger
	shader, err := parser.Shader(material.NewEmissive(radiant))
	if err != nil {
		return false, err
	}

	shape.SetShader(shader)
	shape.SetShadowFlag(false)
	shape.SetPrimaryVisibility(snap.Visible)
	shape.SetTransform(tm, false)

	return e.attach(shape, node, scope)
}

// areaMesh builds the emitter geometry. Only a mesh shape can fail, when its
// reference does not resolve; the miss is logged against the light name.
func (e *Exporter) areaMesh(shape AreaShape, t host.TimeValue, light string) (*geometry.Mesh, bool) {
	us := e.UnitScale

	switch s := shape.(type) {
	case Disc:
		return geometry.Disc(float32(s.Width / 2 * us)), true
	case Cylinder:
		height := s.Length * us
		if s.Upright {
			height = -height
		}
		return geometry.Cylinder(float32(s.Width/2*us), float32(height)), true
	case Sphere:
		return geometry.Sphere(float32(s.Width / 2 * us)), true
	case Rectangle:
		half := mgl32.Vec2{float32(s.Length / 2 * us), float32(s.Width / 2 * us)}
		return geometry.Rectangle(half.Mul(-1), half), true
	case MeshShape:
		m, ok := resolveMesh(e.Resolver, s.Ref, t)
		if !ok {
			e.logf("Light %q: mesh %q not resolved, nothing exported\n", light, s.Ref)
			return nil, false
		}
		return geometry.FromHostMesh(m, float32(us)), true
	default:
		panic(unknownShape(shape))
	}
}

func (e *Exporter) exportSpot(kind Spot, radiant core.Vec3, tm [16]float32, node *host.Node, scope rpr.Scope) (bool, error) {
	l, err := scope.Context().CreateSpotLight()
	if err != nil {
		return false, fmt.Errorf("failed to create spot light: %w", err)
	}

	// stored as full angles in degrees, the renderer takes half-angles in radians
	inner := mgl32.DegToRad(float32(kind.InnerCone)) * 0.5
	outer := mgl32.DegToRad(float32(kind.OuterCone)) * 0.5

	c := radiant.Float32()
	l.SetRadiantPower(c[0], c[1], c[2])
	l.SetConeShape(inner, outer)
	l.SetTransform(tm, false)

	return e.attach(l, node, scope)
}

func (e *Exporter) attachLight(l rpr.Light, radiant core.Vec3, tm [16]float32, node *host.Node, scope rpr.Scope) (bool, error) {
	c := radiant.Float32()
	l.SetRadiantPower(c[0], c[1], c[2])
	l.SetTransform(tm, false)
	return e.attach(l, node, scope)
}

func (e *Exporter) attach(obj rpr.SceneObject, node *host.Node, scope rpr.Scope) (bool, error) {
	if e.PreAttach != nil {
		e.PreAttach(obj, node)
	}
	obj.SetName(node.Name)
	if err := scope.Scene().Attach(obj); err != nil {
		return false, fmt.Errorf("failed to attach light %q: %w", node.Name, err)
	}
	return true, nil
}
