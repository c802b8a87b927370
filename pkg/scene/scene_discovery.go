package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-light-bridge/pkg/core"
)

// RigInfo represents a discovered rig with its metadata
type RigInfo struct {
	ID          string `yaml:"id"`                  // Unique identifier
	Name        string `yaml:"name"`                // Rig name
	Description string `yaml:"description"`         // Optional description
	Group       string `yaml:"group"`               // Grouping category
	Type        string `yaml:"type"`                // "builtin" or "file"
	FilePath    string `yaml:"file_path,omitempty"` // Rig file (file type only)
	Lights      int    `yaml:"lights"`              // Number of lights
}

// RigGroup represents a group of related rigs
type RigGroup struct {
	Name string    `yaml:"name"`
	Rigs []RigInfo `yaml:"rigs"`
}

// RigsResponse lists every known rig grouped by category
type RigsResponse struct {
	Groups []RigGroup `yaml:"groups"`
}

const fileGroup = "Rig Files"

// ListRigFiles scans dir for rig files. A missing directory holds no rigs;
// files that fail to parse are logged and skipped.
func ListRigFiles(dir string, logger core.Logger) ([]RigInfo, error) {
	if logger == nil {
		logger = core.DiscardLogger{}
	}
	if _, err := os.Stat(dir); err != nil {
		return []RigInfo{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan rig directory: %w", err)
	}

	var rigs []RigInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := FormatForPath(e.Name()); !ok {
			continue
		}
		path := filepath.Join(dir, e.Name())
		info, err := ParseRigMetadata(path)
		if err != nil {
			// Log warning but continue processing other files
			logger.Printf("Warning: failed to parse rig %s: %v\n", path, err)
			continue
		}
		rigs = append(rigs, info)
	}

	// Sort rigs by name
	sort.Slice(rigs, func(i, j int) bool {
		return rigs[i].Name < rigs[j].Name
	})

	return rigs, nil
}

// ParseRigMetadata loads a rig file and describes it. The file name stands
// in for a missing rig name.
func ParseRigMetadata(path string) (RigInfo, error) {
	filename := filepath.Base(path)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	rig, err := LoadRig(path)
	if err != nil {
		return RigInfo{}, err
	}

	info := RigInfo{
		ID:          "file:" + nameWithoutExt,
		Name:        rig.Name,
		Description: rig.Description,
		Group:       rig.Group,
		Type:        "file",
		FilePath:    path,
		Lights:      len(rig.Lights),
	}
	if info.Name == "" {
		info.Name = titleCase(nameWithoutExt)
	}
	if info.Group == "" || info.Group == builtinGroup {
		info.Group = fileGroup
	}
	return info, nil
}

// ListAllRigs returns the presets and the rig files in dir, grouped by
// category with the built-in group first
func ListAllRigs(dir string, logger core.Logger) (RigsResponse, error) {
	var response RigsResponse

	var all []RigInfo
	for _, p := range Presets() {
		rig := p.New()
		all = append(all, RigInfo{
			ID:          p.ID,
			Name:        rig.Name,
			Description: rig.Description,
			Group:       builtinGroup,
			Type:        "builtin",
			Lights:      len(rig.Lights),
		})
	}

	files, err := ListRigFiles(dir, logger)
	if err != nil {
		return response, fmt.Errorf("failed to list rig files: %w", err)
	}
	all = append(all, files...)

	// Group rigs by their Group field
	groupMap := make(map[string][]RigInfo)
	for _, rig := range all {
		groupMap[rig.Group] = append(groupMap[rig.Group], rig)
	}

	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtinGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	if builtIn, exists := groupMap[builtinGroup]; exists {
		response.Groups = append(response.Groups, RigGroup{Name: builtinGroup, Rigs: builtIn})
	}
	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, RigGroup{Name: groupName, Rigs: groupMap[groupName]})
	}

	return response, nil
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
