package epsg

import (
	"io/ioutil"
	"strings"

	"github.com/omniscale/crscheck/engine"
	"github.com/omniscale/crscheck/geom"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	Geographic = "geographic"
	Projected  = "projected"
)

// builtin methods, see builtin.go
const (
	MethodGeographic  = "geographic"
	MethodWebMercator = "webmercator"
)

type Axis struct {
	Name      string `yaml:"name"`
	Direction string `yaml:"direction"`
	Unit      string `yaml:"unit"`
}

// Definition of a single CRS in the registry. All operations are defined
// relative to the geographic reference system (EPSG:4326 latitude,
// longitude in degrees). Exactly one of Proj, Pipeline or Method is set.
type Definition struct {
	Code       string    `yaml:"code"`
	Name       string    `yaml:"name"`
	Kind       string    `yaml:"kind"`
	Axes       []Axis    `yaml:"axes"`
	Area       []float64 `yaml:"area"`
	Proj       string    `yaml:"proj"`
	Pipeline   string    `yaml:"pipeline"`
	Method     string    `yaml:"method"`
	Deprecated bool      `yaml:"deprecated"`
}

type registryFile struct {
	Definitions []*Definition `yaml:"definitions"`
}

func (d *Definition) Validate() error {
	if d.Code == "" {
		return errors.New("missing code")
	}
	if strings.Index(d.Code, ":") <= 0 {
		return errors.Errorf("%s: code without authority", d.Code)
	}
	if d.Kind != Geographic && d.Kind != Projected {
		return errors.Errorf("%s: unknown kind %q", d.Code, d.Kind)
	}
	if len(d.Axes) != 2 {
		return errors.Errorf("%s: expected two axes, got %d", d.Code, len(d.Axes))
	}
	for i := range d.Axes {
		u, err := d.axisUnit(i)
		if err != nil {
			return errors.Wrapf(err, "%s: axis %d", d.Code, i)
		}
		if d.Kind == Geographic && !u.IsAngular() {
			return errors.Errorf("%s: geographic axis %d with %s unit", d.Code, i, u)
		}
		if d.Kind == Projected && !u.IsLinear() {
			return errors.Errorf("%s: projected axis %d with %s unit", d.Code, i, u)
		}
	}
	if len(d.Area) != 0 && len(d.Area) != 4 {
		return errors.Errorf("%s: area requires 4 values", d.Code)
	}
	set := 0
	for _, s := range []string{d.Proj, d.Pipeline, d.Method} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return errors.Errorf("%s: requires one of proj, pipeline or method", d.Code)
	}
	if d.Method != "" && d.Method != MethodGeographic && d.Method != MethodWebMercator {
		return errors.Errorf("%s: unknown method %q", d.Code, d.Method)
	}
	if d.Method == MethodGeographic && d.Kind != Geographic {
		return errors.Errorf("%s: method %s requires geographic kind", d.Code, d.Method)
	}
	if d.Method == MethodWebMercator && d.Kind != Projected {
		return errors.Errorf("%s: method %s requires projected kind", d.Code, d.Method)
	}
	return nil
}

func (d *Definition) axisUnit(i int) (engine.Unit, error) {
	if i < 0 || i >= len(d.Axes) {
		return engine.Unit{}, errors.Errorf("no axis %d", i)
	}
	return engine.UnitByName(d.Axes[i].Unit)
}

// NorthFirst returns true if the first axis points north or south
// (latitude/longitude or northing/easting order).
func (d *Definition) NorthFirst() bool {
	if len(d.Axes) == 0 {
		return false
	}
	switch strings.ToLower(d.Axes[0].Direction) {
	case "north", "south":
		return true
	}
	return false
}

func (d *Definition) BBox() (geom.BBox, bool) {
	if len(d.Area) != 4 {
		return geom.BBox{}, false
	}
	b, _ := geom.FromSlice(d.Area)
	return b, true
}

// ParseRegistry parses and validates YAML definitions.
func ParseRegistry(data []byte) ([]*Definition, error) {
	f := registryFile{}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parsing registry")
	}
	seen := make(map[string]bool)
	for _, d := range f.Definitions {
		d.Code = NormalizeCode(d.Code)
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if seen[d.Code] {
			return nil, errors.Errorf("duplicate definition for %s", d.Code)
		}
		seen[d.Code] = true
	}
	return f.Definitions, nil
}

func LoadRegistry(filename string) ([]*Definition, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	defs, err := ParseRegistry(data)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", filename)
	}
	return defs, nil
}

// merge returns base with all definitions of extra added or replaced by
// code. The order of base is kept, new codes are appended.
func merge(base, extra []*Definition) []*Definition {
	idx := make(map[string]int, len(base))
	result := make([]*Definition, len(base))
	copy(result, base)
	for i, d := range result {
		idx[d.Code] = i
	}
	for _, d := range extra {
		if i, ok := idx[d.Code]; ok {
			result[i] = d
			continue
		}
		idx[d.Code] = len(result)
		result = append(result, d)
	}
	return result
}
