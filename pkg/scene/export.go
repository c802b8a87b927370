package scene

import (
	"fmt"

	"github.com/df07/go-light-bridge/pkg/core"
	"github.com/df07/go-light-bridge/pkg/geometry"
	"github.com/df07/go-light-bridge/pkg/host"
	"github.com/df07/go-light-bridge/pkg/lights"
	"github.com/df07/go-light-bridge/pkg/loaders"
	"github.com/df07/go-light-bridge/pkg/material"
	"github.com/df07/go-light-bridge/pkg/rpr"
)

// ExportOptions override rig settings for one export
type ExportOptions struct {
	Frame     *int    // export frame; the rig frame when nil
	UnitScale float64 // meters per scene unit; the rig scale when zero
	Logger    core.Logger
	PreAttach lights.PreAttachFunc
}

// ExportResult counts what an export attached
type ExportResult struct {
	Lights  int // lights attached to the renderer scene
	Skipped int // disabled lights and mesh lights without a mesh
	Props   int // props attached to the renderer scene
}

// Export builds the rig and exports its visible props and its lights into
// scope. Props are exported first, in rig order, then lights.
func Export(rig *Rig, scope rpr.Scope, opts ExportOptions) (ExportResult, error) {
	var res ExportResult

	logger := opts.Logger
	if logger == nil {
		logger = core.DiscardLogger{}
	}
	unitScale := opts.UnitScale
	if unitScale <= 0 {
		unitScale = rig.UnitScale
	}
	if unitScale <= 0 {
		unitScale = 1
	}
	frame := rig.Frame
	if opts.Frame != nil {
		frame = *opts.Frame
	}
	t := host.FrameTime(frame)

	files := loaders.NewFileMeshResolver(rig.BaseDir, logger)
	built, err := rig.Build(files)
	if err != nil {
		return res, err
	}

	parser := material.NewParser(scope.MaterialSystem())
	parser.Logger = logger
	for _, node := range built.Scene.Nodes {
		prop, ok := node.Object.(*Prop)
		if !ok || prop.Hidden {
			continue
		}
		attached, err := exportProp(prop, node, t, unitScale, parser, scope, logger)
		if err != nil {
			return res, fmt.Errorf("prop %q: %w", node.Name, err)
		}
		if attached {
			res.Props++
		}
	}

	// light meshes name a prop node first and a mesh file otherwise
	exporter := lights.NewExporter(host.Resolvers{built.Scene, files}, built.Scene)
	exporter.UnitScale = unitScale
	exporter.Logger = logger
	exporter.PreAttach = opts.PreAttach

	for _, light := range built.Lights {
		attached, err := exporter.CreateSceneLight(light, t, nil, scope)
		if err != nil {
			return res, err
		}
		if attached {
			res.Lights++
		} else {
			res.Skipped++
		}
	}

	logger.Printf("Exported %d lights (%d skipped) and %d props at frame %d\n",
		res.Lights, res.Skipped, res.Props, frame)
	return res, nil
}

func exportProp(prop *Prop, node *host.Node, t host.TimeValue, unitScale float64, parser *material.Parser, scope rpr.Scope, logger core.Logger) (bool, error) {
	m, ok := prop.RenderMesh(t)
	if !ok {
		logger.Printf("Prop %q has no mesh, skipped\n", node.Name)
		return false, nil
	}

	shape, err := geometry.CreateShape(scope.Context(), geometry.FromHostMesh(m, float32(unitScale)))
	if err != nil {
		return false, err
	}
	shader, err := parser.Shader(prop.Material)
	if err != nil {
		return false, err
	}
	shape.SetShader(shader)
	shape.SetTransform(lights.RendererTransform(node.WorldTM(), float32(unitScale)), false)
	shape.SetName(node.Name)

	if err := scope.Scene().Attach(shape); err != nil {
		return false, fmt.Errorf("failed to attach: %w", err)
	}
	return true, nil
}
