package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-empty", "Cornell Empty"},
		{"desk_lamp", "Desk Lamp"},
		{"my-custom-rig", "My Custom Rig"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func writeRigFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write rig file: %v", err)
	}
	return path
}

func TestParseRigMetadata(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected RigInfo
	}{
		{
			name: "complete_metadata.yaml",
			content: `name: Desk Lamp
description: Warm lamp over a desk
group: Interiors
lights:
  - name: Lamp
    type: point
`,
			expected: RigInfo{
				ID:          "file:complete_metadata",
				Name:        "Desk Lamp",
				Description: "Warm lamp over a desk",
				Group:       "Interiors",
				Type:        "file",
				Lights:      1,
			},
		},
		{
			name: "no_metadata.toml",
			content: `[[lights]]
name = "Sun"
type = "directional"

[[lights]]
name = "Sky"
type = "area"
`,
			expected: RigInfo{
				ID:     "file:no_metadata",
				Name:   "No Metadata", // From filename
				Group:  "Rig Files",   // Default group
				Type:   "file",
				Lights: 2,
			},
		},
		{
			name:    "claims_builtin.yml",
			content: "name: Impostor\ngroup: Built-in Rigs\nlights: []\n",
			expected: RigInfo{
				ID:    "file:claims_builtin",
				Name:  "Impostor",
				Group: "Rig Files", // files never join the built-in group
				Type:  "file",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeRigFile(t, t.TempDir(), tc.name, tc.content)

			result, err := ParseRigMetadata(path)
			if err != nil {
				t.Fatalf("ParseRigMetadata() error: %v", err)
			}

			tc.expected.FilePath = path
			if result != tc.expected {
				t.Errorf("ParseRigMetadata() = %+v, want %+v", result, tc.expected)
			}
		})
	}
}

func TestParseRigMetadata_InvalidFile(t *testing.T) {
	if _, err := ParseRigMetadata("nonexistent.yaml"); err == nil {
		t.Error("ParseRigMetadata() should fail for a missing file")
	}
}

func TestListRigFiles(t *testing.T) {
	dir := t.TempDir()
	writeRigFile(t, dir, "b.yaml", "name: Bravo\nlights: []\n")
	writeRigFile(t, dir, "a.toml", "name = \"Alpha\"\n")
	writeRigFile(t, dir, "broken.yaml", "name: [unterminated\n")
	writeRigFile(t, dir, "notes.txt", "not a rig")
	if err := os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o755); err != nil {
		t.Fatal(err)
	}

	logger := &recordingLogger{}
	rigs, err := ListRigFiles(dir, logger)
	if err != nil {
		t.Fatalf("ListRigFiles() error: %v", err)
	}

	if len(rigs) != 2 {
		t.Fatalf("ListRigFiles() found %d rigs, want 2", len(rigs))
	}
	if rigs[0].Name != "Alpha" || rigs[1].Name != "Bravo" {
		t.Errorf("rigs not sorted by name: %q, %q", rigs[0].Name, rigs[1].Name)
	}
	if len(logger.lines) != 1 {
		t.Errorf("expected one warning for the broken rig, got %d", len(logger.lines))
	}
}

func TestListRigFiles_MissingDirectory(t *testing.T) {
	rigs, err := ListRigFiles(filepath.Join(t.TempDir(), "absent"), nil)
	if err != nil {
		t.Errorf("ListRigFiles() error: %v", err)
	}
	if rigs == nil || len(rigs) != 0 {
		t.Errorf("ListRigFiles() = %v, want an empty slice", rigs)
	}
}

func TestListAllRigs(t *testing.T) {
	dir := t.TempDir()
	writeRigFile(t, dir, "desk.yaml", "name: Desk\ngroup: Interiors\nlights: []\n")
	writeRigFile(t, dir, "loose.yaml", "name: Loose\nlights: []\n")

	response, err := ListAllRigs(dir, nil)
	if err != nil {
		t.Fatalf("ListAllRigs() error: %v", err)
	}

	var groups []string
	for _, g := range response.Groups {
		groups = append(groups, g.Name)
	}
	if got, want := strings.Join(groups, ","), "Built-in Rigs,Interiors,Rig Files"; got != want {
		t.Errorf("groups = %s, want %s", got, want)
	}

	builtIn := response.Groups[0]
	expected := []string{"cornell", "studio"}
	if len(builtIn.Rigs) != len(expected) {
		t.Fatalf("Built-in rigs count = %d, want %d", len(builtIn.Rigs), len(expected))
	}
	for i, id := range expected {
		rig := builtIn.Rigs[i]
		if rig.ID != id {
			t.Errorf("built-in rig %d = %s, want %s", i, rig.ID, id)
		}
		if rig.Type != "builtin" || rig.Lights == 0 {
			t.Errorf("built-in rig %s: type %q with %d lights", rig.ID, rig.Type, rig.Lights)
		}
	}

	for _, group := range response.Groups[1:] {
		for _, rig := range group.Rigs {
			if rig.Type != "file" || !strings.HasPrefix(rig.ID, "file:") || rig.FilePath == "" {
				t.Errorf("file rig %+v is missing file metadata", rig)
			}
		}
	}
}

func TestPresetRig(t *testing.T) {
	for _, p := range Presets() {
		rig, err := PresetRig(strings.ToUpper(p.ID))
		if err != nil {
			t.Fatalf("PresetRig(%q) error: %v", p.ID, err)
		}
		if err := rig.Validate(); err != nil {
			t.Errorf("preset %s is invalid: %v", p.ID, err)
		}
	}

	// each call returns an independent rig
	a, _ := PresetRig("studio")
	b, _ := PresetRig("studio")
	a.Lights[0].Name = "Changed"
	if b.Lights[0].Name == "Changed" {
		t.Error("presets share state")
	}

	if _, err := PresetRig("stage"); err == nil {
		t.Error("PresetRig() should reject unknown presets")
	}
}
