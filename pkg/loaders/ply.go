package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-light-bridge/pkg/host"
)

// PLYHeader represents the parsed header information from a PLY file
type PLYHeader struct {
	Format   string // "binary_little_endian", "binary_big_endian", or "ascii"
	Version  string // Usually "1.0"
	Elements []PLYElement
}

// PLYElement is one element block declared in the header, in file order
type PLYElement struct {
	Name  string
	Count int
	Props []PLYProperty
}

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string // For list properties, the type of the count
	DataType string // For list properties, the type of the data
}

// Element returns the element with the given name
func (h *PLYHeader) Element(name string) (PLYElement, bool) {
	for _, e := range h.Elements {
		if e.Name == name {
			return e, true
		}
	}
	return PLYElement{}, false
}

// PLYData contains the geometry loaded from a PLY file.
// Polygons are fan-triangulated.
type PLYData struct {
	Vertices []mgl32.Vec3
	Normals  []mgl32.Vec3 // per-vertex, empty if not present
	Faces    []host.Face
}

// Mesh returns the data as a host mesh
func (d *PLYData) Mesh() *host.Mesh {
	return &host.Mesh{Verts: d.Vertices, Faces: d.Faces}
}

// LoadPLY loads a PLY file
func LoadPLY(filename string) (*PLYData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	data, err := ReadPLY(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return data, nil
}

// ReadPLY reads PLY data (ascii or binary, either byte order) from r
func ReadPLY(r io.Reader) (*PLYData, error) {
	br := bufio.NewReader(r)

	header, err := parsePLYHeader(br)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PLY header: %w", err)
	}

	var values plyValueReader
	switch header.Format {
	case "binary_little_endian":
		values = &binaryValues{r: br, order: binary.LittleEndian}
	case "binary_big_endian":
		values = &binaryValues{r: br, order: binary.BigEndian}
	case "ascii":
		scanner := bufio.NewScanner(br)
		scanner.Split(bufio.ScanWords)
		values = &asciiValues{s: scanner}
	default:
		return nil, fmt.Errorf("unsupported PLY format: %q", header.Format)
	}

	data, err := readPLYElements(header, values)
	if err != nil {
		return nil, fmt.Errorf("failed to read PLY data: %w", err)
	}
	return data, nil
}

// parsePLYHeader parses the PLY header, leaving r at the first data byte
func parsePLYHeader(r *bufio.Reader) (*PLYHeader, error) {
	header := &PLYHeader{}
	first := true

	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("unterminated header: %w", err)
		}
		line = strings.TrimSpace(line)

		if first {
			if line != "ply" {
				return nil, fmt.Errorf("missing ply magic number")
			}
			first = false
			continue
		}
		if line == "end_header" {
			break
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid format line: %q", line)
			}
			header.Format = parts[1]
			header.Version = parts[2]
		case "comment", "obj_info":
			// Ignore comments
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid element line: %q", line)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("invalid element count: %s", parts[2])
			}
			header.Elements = append(header.Elements, PLYElement{Name: parts[1], Count: count})
		case "property":
			if len(header.Elements) == 0 {
				return nil, fmt.Errorf("property before any element")
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("failed to parse property: %w", err)
			}
			el := &header.Elements[len(header.Elements)-1]
			el.Props = append(el.Props, prop)
		default:
			return nil, fmt.Errorf("unknown header keyword %q", parts[0])
		}
	}

	if header.Format == "" {
		return nil, fmt.Errorf("missing format line")
	}
	return header, nil
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) < 2 {
		return PLYProperty{}, fmt.Errorf("invalid property definition")
	}

	prop := PLYProperty{}

	if parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, fmt.Errorf("invalid list property definition")
		}
		prop.IsList = true
		prop.ListType = parts[1]
		prop.DataType = parts[2]
		prop.Name = parts[3]
		if getTypeSize(prop.ListType) == 0 || getTypeSize(prop.DataType) == 0 {
			return PLYProperty{}, fmt.Errorf("unsupported list types %s %s", prop.ListType, prop.DataType)
		}
	} else {
		prop.Type = parts[0]
		prop.Name = parts[1]
		if getTypeSize(prop.Type) == 0 {
			return PLYProperty{}, fmt.Errorf("unsupported data type: %s", prop.Type)
		}
	}

	return prop, nil
}

func readPLYElements(header *PLYHeader, values plyValueReader) (*PLYData, error) {
	data := &PLYData{}

	for _, el := range header.Elements {
		switch el.Name {
		case "vertex":
			if err := readVertices(el, values, data); err != nil {
				return nil, err
			}
		case "face":
			if err := readFaces(el, values, data); err != nil {
				return nil, err
			}
		default:
			// Skip unknown elements
			for i := 0; i < el.Count; i++ {
				for _, prop := range el.Props {
					if _, err := readProperty(values, prop); err != nil {
						return nil, fmt.Errorf("failed to skip %s %d: %w", el.Name, i, err)
					}
				}
			}
		}
	}

	for i, f := range data.Faces {
		for _, idx := range f.V {
			if idx < 0 || int(idx) >= len(data.Vertices) {
				return nil, fmt.Errorf("face %d references vertex %d of %d", i, idx, len(data.Vertices))
			}
		}
	}
	return data, nil
}

func readVertices(el PLYElement, values plyValueReader, data *PLYData) error {
	hasNormals := false
	for _, p := range el.Props {
		if p.Name == "nx" {
			hasNormals = true
		}
	}

	data.Vertices = make([]mgl32.Vec3, 0, el.Count)
	if hasNormals {
		data.Normals = make([]mgl32.Vec3, 0, el.Count)
	}

	for i := 0; i < el.Count; i++ {
		var pos, normal mgl32.Vec3
		for _, prop := range el.Props {
			vals, err := readProperty(values, prop)
			if err != nil {
				return fmt.Errorf("vertex %d, property %s: %w", i, prop.Name, err)
			}
			if prop.IsList {
				continue
			}
			v := float32(vals[0])
			switch prop.Name {
			case "x":
				pos[0] = v
			case "y":
				pos[1] = v
			case "z":
				pos[2] = v
			case "nx":
				normal[0] = v
			case "ny":
				normal[1] = v
			case "nz":
				normal[2] = v
			}
		}
		data.Vertices = append(data.Vertices, pos)
		if hasNormals {
			data.Normals = append(data.Normals, normal)
		}
	}
	return nil
}

func readFaces(el PLYElement, values plyValueReader, data *PLYData) error {
	data.Faces = make([]host.Face, 0, el.Count)

	for i := 0; i < el.Count; i++ {
		for _, prop := range el.Props {
			vals, err := readProperty(values, prop)
			if err != nil {
				return fmt.Errorf("face %d, property %s: %w", i, prop.Name, err)
			}
			if !prop.IsList || (prop.Name != "vertex_indices" && prop.Name != "vertex_index") {
				continue
			}
			if len(vals) < 3 {
				return fmt.Errorf("face %d has %d vertices", i, len(vals))
			}
			// Fan triangulation around the first corner
			for k := 1; k+1 < len(vals); k++ {
				data.Faces = append(data.Faces, host.Face{V: [3]int32{
					int32(vals[0]), int32(vals[k]), int32(vals[k+1]),
				}})
			}
		}
	}
	return nil
}

// readProperty reads one scalar or list property
func readProperty(values plyValueReader, prop PLYProperty) ([]float64, error) {
	if !prop.IsList {
		v, err := values.scalar(prop.Type)
		if err != nil {
			return nil, err
		}
		return []float64{v}, nil
	}

	n, err := values.scalar(prop.ListType)
	if err != nil {
		return nil, err
	}
	if n < 0 || n != math.Trunc(n) {
		return nil, fmt.Errorf("invalid list length %v", n)
	}
	out := make([]float64, int(n))
	for i := range out {
		if out[i], err = values.scalar(prop.DataType); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// getTypeSize returns the size in bytes of a PLY data type, 0 if unknown
func getTypeSize(dataType string) int {
	switch dataType {
	case "float", "float32", "int", "int32", "uint", "uint32":
		return 4
	case "double", "float64":
		return 8
	case "short", "int16", "ushort", "uint16":
		return 2
	case "char", "int8", "uchar", "uint8":
		return 1
	default:
		return 0
	}
}

// plyValueReader decodes scalar values in the body encoding
type plyValueReader interface {
	scalar(dataType string) (float64, error)
}

type binaryValues struct {
	r     io.Reader
	order binary.ByteOrder
	buf   [8]byte
}

func (b *binaryValues) scalar(dataType string) (float64, error) {
	size := getTypeSize(dataType)
	if size == 0 {
		return 0, fmt.Errorf("unsupported data type: %s", dataType)
	}
	buf := b.buf[:size]
	if _, err := io.ReadFull(b.r, buf); err != nil {
		return 0, err
	}

	switch dataType {
	case "char", "int8":
		return float64(int8(buf[0])), nil
	case "uchar", "uint8":
		return float64(buf[0]), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(buf))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(buf)), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(buf))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(buf)), nil
	case "float", "float32":
		return float64(math.Float32frombits(b.order.Uint32(buf))), nil
	default: // double
		return math.Float64frombits(b.order.Uint64(buf)), nil
	}
}

type asciiValues struct {
	s *bufio.Scanner
}

func (a *asciiValues) scalar(dataType string) (float64, error) {
	if !a.s.Scan() {
		if err := a.s.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	v, err := strconv.ParseFloat(a.s.Text(), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", dataType, a.s.Text())
	}
	return v, nil
}
