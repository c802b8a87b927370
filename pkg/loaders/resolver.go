package loaders

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-light-bridge/pkg/core"
	"github.com/df07/go-light-bridge/pkg/host"
)

// FileMeshResolver resolves mesh references naming files on disk.
// A reference is a path, relative to BaseDir unless absolute, optionally
// followed by "#name" to select a mesh inside a glTF file. PLY and glTF
// (.gltf, .glb) files are supported. Loaded meshes are cached, failed loads
// included, so every reference is read at most once.
type FileMeshResolver struct {
	BaseDir string
	Logger  core.Logger

	cache map[host.MeshRef]*host.Mesh
}

// NewFileMeshResolver creates a resolver for files under baseDir
func NewFileMeshResolver(baseDir string, logger core.Logger) *FileMeshResolver {
	if logger == nil {
		logger = core.DiscardLogger{}
	}
	return &FileMeshResolver{
		BaseDir: baseDir,
		Logger:  logger,
		cache:   make(map[host.MeshRef]*host.Mesh),
	}
}

// ResolveMesh implements host.MeshResolver. Load failures are logged and
// resolve to nothing. Meshes from files are static, t is ignored.
func (r *FileMeshResolver) ResolveMesh(ref host.MeshRef, t host.TimeValue) (*host.Mesh, bool) {
	if ref == "" {
		return nil, false
	}
	if r.cache == nil {
		r.cache = make(map[host.MeshRef]*host.Mesh)
	}
	if m, ok := r.cache[ref]; ok {
		return m, m != nil
	}

	m, err := r.load(ref)
	if err != nil {
		r.Logger.Printf("Mesh %q not loaded: %v\n", ref, err)
		m = nil
	}
	r.cache[ref] = m
	return m, m != nil
}

func (r *FileMeshResolver) load(ref host.MeshRef) (*host.Mesh, error) {
	path, name, _ := strings.Cut(string(ref), "#")
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.BaseDir, path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ply":
		if name != "" {
			return nil, fmt.Errorf("PLY files hold a single mesh, got #%s", name)
		}
		data, err := LoadPLY(path)
		if err != nil {
			return nil, err
		}
		return data.Mesh(), nil
	case ".gltf", ".glb":
		meshes, err := LoadGLTF(path)
		if err != nil {
			return nil, err
		}
		for _, m := range meshes {
			if name == "" || m.Name == name {
				return m.Mesh, nil
			}
		}
		if name == "" {
			return nil, fmt.Errorf("no meshes in %s", path)
		}
		return nil, fmt.Errorf("no mesh named %q in %s", name, path)
	default:
		return nil, fmt.Errorf("unsupported mesh file type %q", filepath.Ext(path))
	}
}
