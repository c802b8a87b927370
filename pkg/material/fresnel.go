package material

import "github.com/df07/go-light-bridge/pkg/rpr"

// Fresnel is a dielectric Fresnel term used to blend layers.
// All maps are sampled as linear data.
type Fresnel struct {
	IOR       ScalarSource
	NormalMap string
	InvecMap  string
}

// Value implements ValueSource
func (f *Fresnel) Value(p *Parser) (rpr.Value, error) {
	ior, err := f.IOR.value(p, rpr.MapNoGamma)
	if err != nil {
		return rpr.Value{}, err
	}
	n, invec, err := directionMaps(p, f.NormalMap, f.InvecMap)
	if err != nil {
		return rpr.Value{}, err
	}
	return p.MS.ValueFresnel(ior, n, invec)
}

// FresnelSchlick is Schlick's approximation driven by normal-incidence reflectance
type FresnelSchlick struct {
	Reflectance ColorSource
	NormalMap   string
	InvecMap    string
}

// Value implements ValueSource
func (fs *FresnelSchlick) Value(p *Parser) (rpr.Value, error) {
	refl, err := fs.Reflectance.value(p, rpr.MapNoGamma)
	if err != nil {
		return rpr.Value{}, err
	}
	n, invec, err := directionMaps(p, fs.NormalMap, fs.InvecMap)
	if err != nil {
		return rpr.Value{}, err
	}
	return p.MS.ValueFresnelSchlick(refl, n, invec)
}

// directionMaps loads the optional normal and incoming-vector maps; missing
// maps stay null so the renderer uses its defaults
func directionMaps(p *Parser, normal, invec string) (rpr.Value, rpr.Value, error) {
	n, err := p.CreateMap(normal, rpr.MapNoGamma)
	if err != nil {
		return rpr.Value{}, rpr.Value{}, err
	}
	in, err := p.CreateMap(invec, rpr.MapNoGamma)
	if err != nil {
		return rpr.Value{}, rpr.Value{}, err
	}
	return n, in, nil
}
