package scene

// NewStudioRig creates a product studio using every light type and area
// shape, with one unit per meter
func NewStudioRig() *Rig {
	return &Rig{
		Name:        "Studio",
		Description: "Three point product lighting with practicals",
		Group:       builtinGroup,
		UnitScale:   1,
		Props: []PropSpec{
			{
				Name:     "Floor",
				Shape:    "rectangle",
				Size:     []float64{10, 10},
				Rotation: vec(90, 0, 0),
				Material: &MaterialSpec{Type: "diffuse", Colour: vec(0.5, 0.5, 0.5)},
			},
			{
				Name:     "Pedestal",
				Shape:    "cylinder",
				Size:     []float64{0.6, 0.9},
				Rotation: vec(-90, 0, 0),
				// glazed: brightens toward grazing angles
				Material: &MaterialSpec{
					Type:    "diffuse",
					Fresnel: &FresnelSpec{Type: "schlick", Reflectance: vec(0.9, 0.9, 0.9)},
				},
			},
			{
				Name:     "Subject",
				Shape:    "sphere",
				Size:     []float64{0.4},
				Position: vec(0, 1.1, 0),
				Material: &MaterialSpec{Type: "refraction", Colour: vec(0.95, 0.98, 1), Roughness: 0.05, IOR: 1.45},
			},
			{
				Name:     "Sign",
				Shape:    "rectangle",
				Size:     []float64{1.6, 0.4},
				Position: vec(0, 2.2, -3),
				Rotation: vec(0, 180, 0),
				Material: &MaterialSpec{
					Type: "add",
					Layers: []MaterialSpec{
						{Type: "diffuse", Colour: vec(0.1, 0.1, 0.1)},
						{Type: "emissive", Colour: vec(0.8, 0.2, 0.1)},
					},
				},
			},
			{
				// emitter shape for the strip light, not rendered itself
				Name:   "Strip Mesh",
				Shape:  "cylinder",
				Size:   []float64{0.04, 1.5},
				Hidden: true,
			},
		},
		Lights: []LightSpec{
			{
				Name:        "Key",
				Type:        "area",
				Shape:       "rectangle",
				Width:       f64(0.6),
				Length:      f64(1.2),
				Units:       "lumen",
				Intensity:   f64(4000),
				Temperature: f64(5600),
				Position:    vec(2, 2.5, 2),
				Rotation:    vec(-35, 45, 0),
			},
			{
				Name:      "Fill",
				Type:      "area",
				Shape:     "disc",
				Width:     f64(0.8),
				Units:     "luminance",
				Intensity: f64(2000),
				Colour:    vec(0.9, 0.95, 1),
				Visible:   boolPtr(false),
				Position:  vec(-2.5, 1.5, 1.5),
				Rotation:  vec(-15, -60, 0),
			},
			{
				Name:      "Rim",
				Type:      "spot",
				Units:     "watts",
				Intensity: f64(60),
				InnerCone: f64(30),
				OuterCone: f64(40),
				Position:  vec(0, 3, -3),
				Rotation:  vec(-45, 180, 0),
			},
			{
				Name:        "Practical",
				Type:        "area",
				Shape:       "sphere",
				Width:       f64(0.15),
				Units:       "watts",
				Intensity:   f64(40),
				Temperature: f64(2700),
				Position:    vec(1, 1, -1),
				Keys: []KeySpec{
					{Frame: 0, Param: "intensity", Value: f64(40)},
					{Frame: 24, Param: "intensity", Value: f64(0)},
				},
			},
			{
				Name:      "Tube",
				Type:      "area",
				Shape:     "cylinder",
				Width:     f64(0.05),
				Length:    f64(1.2),
				Upright:   boolPtr(true),
				Units:     "watts",
				Intensity: f64(20),
				Position:  vec(-1.5, 0, -1),
			},
			{
				Name:      "Strip",
				Type:      "area",
				Mesh:      "Strip Mesh",
				Units:     "radiance",
				Intensity: f64(5),
				Colour:    vec(0.3, 0.6, 1),
				Position:  vec(1.5, 0.1, -1.5),
			},
			{
				Name:        "Sun",
				Type:        "directional",
				Units:       "watts",
				Intensity:   f64(3),
				Temperature: f64(6500),
				Rotation:    vec(-50, 30, 0),
			},
			{
				Name:        "Bulb",
				Type:        "point",
				Enabled:     boolPtr(false),
				Units:       "lumen",
				Intensity:   f64(800),
				Temperature: f64(3000),
				Position:    vec(0, 2.8, 0),
			},
		},
	}
}
