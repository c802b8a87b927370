package scene

// NewCornellRig creates the classic Cornell box lit by a square ceiling panel.
// The box is 555 units wide with one unit per centimeter.
func NewCornellRig() *Rig {
	white := &MaterialSpec{Type: "diffuse", Colour: vec(0.73, 0.73, 0.73)}
	red := &MaterialSpec{Type: "diffuse", Colour: vec(0.65, 0.05, 0.05)}
	green := &MaterialSpec{Type: "diffuse", Colour: vec(0.12, 0.45, 0.15)}

	// Cornell box dimensions (standard 555x555x555 units)
	boxSize := 555.0
	half := boxSize / 2
	walls := []float64{boxSize, boxSize}

	return &Rig{
		Name:        "Cornell Box",
		Description: "Cornell box with two spheres and a ceiling panel",
		Group:       builtinGroup,
		UnitScale:   0.01,
		Props: []PropSpec{
			// Rectangles emit along local -Z; rotations turn them to face the box interior
			{Name: "Floor", Shape: "rectangle", Size: walls, Position: vec(half, 0, half), Rotation: vec(90, 0, 0), Material: white},
			{Name: "Ceiling", Shape: "rectangle", Size: walls, Position: vec(half, boxSize, half), Rotation: vec(-90, 0, 0), Material: white},
			{Name: "Back Wall", Shape: "rectangle", Size: walls, Position: vec(half, half, boxSize), Material: white},
			{Name: "Left Wall", Shape: "rectangle", Size: walls, Position: vec(0, half, half), Rotation: vec(0, 90, 0), Material: red},
			{Name: "Right Wall", Shape: "rectangle", Size: walls, Position: vec(boxSize, half, half), Rotation: vec(0, -90, 0), Material: green},
			{
				Name:     "Left Sphere",
				Shape:    "sphere",
				Size:     []float64{165},
				Position: vec(185, 82.5, 169),
				Material: &MaterialSpec{Type: "diffuse", Colour: vec(0.8, 0.8, 0.9)},
			},
			{
				Name:     "Right Sphere",
				Shape:    "sphere",
				Size:     []float64{180},
				Position: vec(370, 90, 351),
				Material: &MaterialSpec{Type: "refraction", IOR: 1.5},
			},
		},
		Lights: []LightSpec{
			{
				// slightly below the ceiling, facing down
				Name:        "Ceiling Light",
				Type:        "area",
				Shape:       "rectangle",
				Width:       f64(130),
				Length:      f64(130),
				Units:       "lumen",
				Intensity:   f64(1500),
				Temperature: f64(5000),
				Position:    vec(half, boxSize-1, half),
				Rotation:    vec(-90, 0, 0),
			},
		},
	}
}
