package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-light-bridge/pkg/loaders"
	"github.com/df07/go-light-bridge/pkg/scene"
)

func TestLoadRig(t *testing.T) {
	dir := t.TempDir()
	rigFile := filepath.Join(dir, "desk.yaml")
	if err := os.WriteFile(rigFile, []byte("name: Desk\nlights:\n  - name: Lamp\n    type: point\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		rigPath     string
		preset      string
		expectError bool
	}{
		// Built-in rigs
		{"cornell preset", "", "cornell", false},
		{"studio preset", "", "studio", false},
		{"preset ignores case", "", "Studio", false},

		// Rig files
		{"rig file", rigFile, "", false},

		// Invalid rigs
		{"unknown preset", "", "nonexistent", true},
		{"missing rig file", filepath.Join(dir, "nonexistent.yaml"), "", true},
		{"both sources", rigFile, "cornell", true},
		{"no source", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rig, err := loadRig(tt.rigPath, tt.preset)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for rig %q / preset %q, but got none", tt.rigPath, tt.preset)
				}
				if rig != nil {
					t.Errorf("Expected nil rig on error, got %q", rig.Name)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(rig.Lights) == 0 {
				t.Errorf("Rig %q has no lights", rig.Name)
			}
		})
	}
}

// run executes the CLI and returns stdout and stderr
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestExportCommand(t *testing.T) {
	for _, ext := range []string{".gltf", ".glb"} {
		t.Run(ext, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "nested", "studio"+ext)
			stdout, _, err := run(t, "export", "--preset", "studio", "--out", out)
			require.NoError(t, err)
			assert.Contains(t, stdout, "Exported 7 lights and 4 props")
			assert.Contains(t, stdout, "Skipped 1")

			meshes, err := loaders.LoadGLTF(out)
			require.NoError(t, err)
			assert.Len(t, meshes, 9)
		})
	}
}

func TestExportCommand_DroppedMapWarning(t *testing.T) {
	dir := t.TempDir()
	rigPath := filepath.Join(dir, "bumpy.yaml")
	rig := `name: Bumpy
props:
  - name: Panel
    shape: rectangle
    size: [1, 1]
    material: {type: diffuse, normal_map: bumps.png}
lights:
  - name: Bulb
    type: point
`
	require.NoError(t, os.WriteFile(rigPath, []byte(rig), 0o644))

	_, stderr, err := run(t, "export", "--rig", rigPath, "--out", filepath.Join(dir, "bumpy.gltf"))
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=WARN")
	assert.Contains(t, stderr, "normal_map")

	// quiet hides warnings
	_, stderr, err = run(t, "-q", "export", "--rig", rigPath, "--out", filepath.Join(dir, "quiet.glb"))
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestExportCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"missing out", []string{"export", "--preset", "cornell"}},
		{"bad extension", []string{"export", "--preset", "cornell", "--out", filepath.Join(dir, "scene.obj")}},
		{"no source", []string{"export", "--out", filepath.Join(dir, "scene.glb")}},
		{"both sources", []string{"export", "--preset", "cornell", "--rig", "x.yaml", "--out", filepath.Join(dir, "scene.glb")}},
		{"unknown preset", []string{"export", "--preset", "stage", "--out", filepath.Join(dir, "scene.glb")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestInspectCommand(t *testing.T) {
	stdout, _, err := run(t, "inspect", "--preset", "cornell", "--unit-scale", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "name: Ceiling Light")
	assert.Contains(t, stdout, "name: Left Wall")
	assert.Contains(t, stdout, "position: [277.5, 554, 277.5]")
}

func TestInspectCommand_Frame(t *testing.T) {
	stdout, _, err := run(t, "inspect", "--preset", "studio", "--frame", "24")
	require.NoError(t, err)
	assert.Contains(t, stdout, "emission: [0, 0, 0]", "the practical is off at frame 24")
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "desk.yaml"), []byte("name: Desk\nlights: []\n"), 0o644))

	stdout, _, err := run(t, "list", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "id: cornell")
	assert.Contains(t, stdout, "id: studio")
	assert.Contains(t, stdout, "name: Desk")
}

func TestPresetCommand(t *testing.T) {
	for _, format := range []string{scene.FormatYAML, scene.FormatTOML} {
		t.Run(format, func(t *testing.T) {
			stdout, _, err := run(t, "preset", "cornell", "--format", format)
			require.NoError(t, err)

			rig, err := scene.ParseRig([]byte(stdout), format)
			require.NoError(t, err)
			assert.Equal(t, scene.NewCornellRig(), rig)
		})
	}

	_, _, err := run(t, "preset", "cornell", "--format", "xml")
	assert.Error(t, err)
}

func TestVerbosity(t *testing.T) {
	_, quiet, err := run(t, "inspect", "--preset", "cornell")
	require.NoError(t, err)
	assert.Empty(t, quiet, "info messages are hidden by default")

	_, verbose, err := run(t, "-v", "inspect", "--preset", "cornell")
	require.NoError(t, err)
	assert.True(t, strings.Contains(verbose, "Exporting area light"), "got %q", verbose)
}
