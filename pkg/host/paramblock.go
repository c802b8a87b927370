package host

import (
	"fmt"
	"sort"

	"github.com/df07/go-light-bridge/pkg/core"
)

// ParamID identifies a parameter inside a block
type ParamID int

// ParamType is the stored type of a parameter
type ParamType int

const (
	TypeFloat ParamType = iota
	TypeInt
	TypeBool
	TypeColor
	TypeRef
)

func (pt ParamType) String() string {
	switch pt {
	case TypeFloat:
		return "float"
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	case TypeColor:
		return "color"
	case TypeRef:
		return "ref"
	default:
		return fmt.Sprintf("ParamType(%d)", int(pt))
	}
}

// ParamDef declares one parameter and its default value.
// Default must hold the Go type matching Type: float64, int, bool, core.Vec3 or MeshRef.
type ParamDef struct {
	ID      ParamID
	Name    string
	Type    ParamType
	Default any
}

// ParamBlockDesc declares the parameters a block may hold
type ParamBlockDesc struct {
	Name   string
	params []ParamDef
	byID   map[ParamID]int
	byName map[string]int
}

// NewParamBlockDesc creates a descriptor. Duplicate ids or names, and defaults of
// the wrong type, are programmer errors and panic.
func NewParamBlockDesc(name string, defs ...ParamDef) *ParamBlockDesc {
	desc := &ParamBlockDesc{
		Name:   name,
		params: defs,
		byID:   make(map[ParamID]int, len(defs)),
		byName: make(map[string]int, len(defs)),
	}
	for i, def := range defs {
		if _, dup := desc.byID[def.ID]; dup {
			panic(fmt.Sprintf("%s: duplicate param id %d", name, def.ID))
		}
		if _, dup := desc.byName[def.Name]; dup {
			panic(fmt.Sprintf("%s: duplicate param name %q", name, def.Name))
		}
		if !matchesType(def.Type, def.Default) {
			panic(fmt.Sprintf("%s: default for %q is %T, want %s", name, def.Name, def.Default, def.Type))
		}
		desc.byID[def.ID] = i
		desc.byName[def.Name] = i
	}
	return desc
}

// Params returns the declared parameters in declaration order
func (d *ParamBlockDesc) Params() []ParamDef {
	return d.params
}

// Lookup finds a parameter by name
func (d *ParamBlockDesc) Lookup(name string) (ParamDef, bool) {
	i, ok := d.byName[name]
	if !ok {
		return ParamDef{}, false
	}
	return d.params[i], true
}

func (d *ParamBlockDesc) def(id ParamID) ParamDef {
	i, ok := d.byID[id]
	if !ok {
		panic(fmt.Sprintf("%s: undeclared param id %d", d.Name, id))
	}
	return d.params[i]
}

func matchesType(pt ParamType, v any) bool {
	switch pt {
	case TypeFloat:
		_, ok := v.(float64)
		return ok
	case TypeInt:
		_, ok := v.(int)
		return ok
	case TypeBool:
		_, ok := v.(bool)
		return ok
	case TypeColor:
		_, ok := v.(core.Vec3)
		return ok
	case TypeRef:
		_, ok := v.(MeshRef)
		return ok
	}
	return false
}

type floatKey struct {
	t TimeValue
	v float64
}

type colorKey struct {
	t TimeValue
	v core.Vec3
}

// ParamBlock stores parameter values, optionally animated with keys.
// Float and color parameters interpolate linearly between keys and hold the
// first/last key value outside the key range. Other types are static.
type ParamBlock struct {
	desc        *ParamBlockDesc
	values      map[ParamID]any
	floatTracks map[ParamID][]floatKey
	colorTracks map[ParamID][]colorKey
}

// NewParamBlock creates a block with every parameter at its default
func NewParamBlock(desc *ParamBlockDesc) *ParamBlock {
	return &ParamBlock{
		desc:        desc,
		values:      make(map[ParamID]any),
		floatTracks: make(map[ParamID][]floatKey),
		colorTracks: make(map[ParamID][]colorKey),
	}
}

// Desc returns the block's descriptor
func (pb *ParamBlock) Desc() *ParamBlockDesc {
	return pb.desc
}

func (pb *ParamBlock) set(id ParamID, pt ParamType, v any) {
	def := pb.desc.def(id)
	if def.Type != pt {
		panic(fmt.Sprintf("%s: param %q is %s, set as %s", pb.desc.Name, def.Name, def.Type, pt))
	}
	pb.values[id] = v
}

func (pb *ParamBlock) get(id ParamID, pt ParamType) any {
	def := pb.desc.def(id)
	if def.Type != pt {
		panic(fmt.Sprintf("%s: param %q is %s, read as %s", pb.desc.Name, def.Name, def.Type, pt))
	}
	if v, ok := pb.values[id]; ok {
		return v
	}
	return def.Default
}

// SetFloat sets a static float value, clearing any keys
func (pb *ParamBlock) SetFloat(id ParamID, v float64) {
	pb.set(id, TypeFloat, v)
	delete(pb.floatTracks, id)
}

// SetInt sets an int (or enum) value
func (pb *ParamBlock) SetInt(id ParamID, v int) {
	pb.set(id, TypeInt, v)
}

// SetBool sets a bool value
func (pb *ParamBlock) SetBool(id ParamID, v bool) {
	pb.set(id, TypeBool, v)
}

// SetColor sets a static color value, clearing any keys
func (pb *ParamBlock) SetColor(id ParamID, v core.Vec3) {
	pb.set(id, TypeColor, v)
	delete(pb.colorTracks, id)
}

// SetRef sets a reference value
func (pb *ParamBlock) SetRef(id ParamID, v MeshRef) {
	pb.set(id, TypeRef, v)
}

// AddFloatKey adds (or replaces) an animation key for a float parameter
func (pb *ParamBlock) AddFloatKey(id ParamID, t TimeValue, v float64) {
	pb.get(id, TypeFloat) // type check
	keys := pb.floatTracks[id]
	i := sort.Search(len(keys), func(i int) bool { return keys[i].t >= t })
	if i < len(keys) && keys[i].t == t {
		keys[i].v = v
		return
	}
	keys = append(keys, floatKey{})
	copy(keys[i+1:], keys[i:])
	keys[i] = floatKey{t: t, v: v}
	pb.floatTracks[id] = keys
}

// AddColorKey adds (or replaces) an animation key for a color parameter
func (pb *ParamBlock) AddColorKey(id ParamID, t TimeValue, v core.Vec3) {
	pb.get(id, TypeColor)
	keys := pb.colorTracks[id]
	i := sort.Search(len(keys), func(i int) bool { return keys[i].t >= t })
	if i < len(keys) && keys[i].t == t {
		keys[i].v = v
		return
	}
	keys = append(keys, colorKey{})
	copy(keys[i+1:], keys[i:])
	keys[i] = colorKey{t: t, v: v}
	pb.colorTracks[id] = keys
}

// IsAnimated reports whether the parameter has keys
func (pb *ParamBlock) IsAnimated(id ParamID) bool {
	return len(pb.floatTracks[id]) > 0 || len(pb.colorTracks[id]) > 0
}

// Float reads a float parameter at time t
func (pb *ParamBlock) Float(id ParamID, t TimeValue) float64 {
	static := pb.get(id, TypeFloat).(float64)
	keys := pb.floatTracks[id]
	if len(keys) == 0 {
		return static
	}
	i, frac := locateKey(len(keys), func(i int) TimeValue { return keys[i].t }, t)
	if frac == 0 {
		return keys[i].v
	}
	return keys[i].v + (keys[i+1].v-keys[i].v)*frac
}

// Color reads a color parameter at time t
func (pb *ParamBlock) Color(id ParamID, t TimeValue) core.Vec3 {
	static := pb.get(id, TypeColor).(core.Vec3)
	keys := pb.colorTracks[id]
	if len(keys) == 0 {
		return static
	}
	i, frac := locateKey(len(keys), func(i int) TimeValue { return keys[i].t }, t)
	if frac == 0 {
		return keys[i].v
	}
	return keys[i].v.Add(keys[i+1].v.Subtract(keys[i].v).Multiply(frac))
}

// Int reads an int parameter
func (pb *ParamBlock) Int(id ParamID, t TimeValue) int {
	return pb.get(id, TypeInt).(int)
}

// Bool reads a bool parameter
func (pb *ParamBlock) Bool(id ParamID, t TimeValue) bool {
	return pb.get(id, TypeBool).(bool)
}

// Ref reads a reference parameter
func (pb *ParamBlock) Ref(id ParamID, t TimeValue) MeshRef {
	return pb.get(id, TypeRef).(MeshRef)
}

// locateKey returns the key index at or before t and the interpolation
// fraction toward the next key. Outside the key range it clamps with frac 0.
func locateKey(n int, at func(int) TimeValue, t TimeValue) (int, float64) {
	if t <= at(0) {
		return 0, 0
	}
	if t >= at(n-1) {
		return n - 1, 0
	}
	i := sort.Search(n, func(i int) bool { return at(i) > t }) - 1
	t0, t1 := at(i), at(i+1)
	return i, float64(t-t0) / float64(t1-t0)
}
