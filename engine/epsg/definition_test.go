package epsg

import (
	"strings"
	"testing"
)

func TestDefaultRegistry(t *testing.T) {
	defs, err := ParseRegistry([]byte(defaultRegistry))
	if err != nil {
		t.Fatal(err)
	}
	if len(defs) < 10 {
		t.Fatalf("expected builtin definitions, got %d", len(defs))
	}
	if defs[0].Code != Reference {
		t.Errorf("expected %s first, got %s", Reference, defs[0].Code)
	}
}

func TestParseRegistryErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		yaml string
		err  string
	}{
		{"no code", `
definitions:
- name: foo
`, "missing code"},
		{"no authority", `
definitions:
- code: "4326"
`, "code without authority"},
		{"kind", `
definitions:
- code: "EPSG:1"
  kind: vertical
`, "unknown kind"},
		{"axes", `
definitions:
- code: "EPSG:1"
  kind: projected
  axes:
  - {name: E, direction: east, unit: metre}
`, "expected two axes"},
		{"unit kind", `
definitions:
- code: "EPSG:1"
  kind: projected
  axes:
  - {name: E, direction: east, unit: degree}
  - {name: N, direction: north, unit: degree}
  proj: +proj=merc
`, "projected axis 0 with degree unit"},
		{"unknown unit", `
definitions:
- code: "EPSG:1"
  kind: projected
  axes:
  - {name: E, direction: east, unit: furlong}
  - {name: N, direction: north, unit: furlong}
  proj: +proj=merc
`, "unknown unit"},
		{"area", `
definitions:
- code: "EPSG:1"
  kind: projected
  axes:
  - {name: E, direction: east, unit: metre}
  - {name: N, direction: north, unit: metre}
  area: [1, 2, 3]
  proj: +proj=merc
`, "area requires 4 values"},
		{"two operations", `
definitions:
- code: "EPSG:1"
  kind: projected
  axes:
  - {name: E, direction: east, unit: metre}
  - {name: N, direction: north, unit: metre}
  proj: +proj=merc
  method: webmercator
`, "requires one of proj, pipeline or method"},
		{"method kind", `
definitions:
- code: "EPSG:1"
  kind: geographic
  axes:
  - {name: Lat, direction: north, unit: degree}
  - {name: Lon, direction: east, unit: degree}
  method: webmercator
`, "requires projected kind"},
		{"duplicate", `
definitions:
- code: "EPSG:1"
  kind: projected
  axes:
  - {name: E, direction: east, unit: metre}
  - {name: N, direction: north, unit: metre}
  proj: +proj=merc
- code: "EPSG:1"
  kind: projected
  axes:
  - {name: E, direction: east, unit: metre}
  - {name: N, direction: north, unit: metre}
  proj: +proj=merc
`, "duplicate definition"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRegistry([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.err) {
				t.Errorf("expected %q in %q", tc.err, err)
			}
		})
	}
}

func TestParseRegistryNormalizesCode(t *testing.T) {
	defs, err := ParseRegistry([]byte(`
definitions:
- code: " epsg:2056"
  kind: projected
  axes:
  - {name: E, direction: east, unit: metre}
  - {name: N, direction: north, unit: metre}
  proj: +proj=somerc
`))
	if err != nil {
		t.Fatal(err)
	}
	if len(defs) != 1 || defs[0].Code != "EPSG:2056" {
		t.Errorf("unexpected definitions %v", defs)
	}

	_, err = ParseRegistry([]byte(`
definitions:
- code: epsg:1
  kind: projected
  axes:
  - {name: E, direction: east, unit: metre}
  - {name: N, direction: north, unit: metre}
  proj: +proj=merc
- code: EPSG:1
  kind: projected
  axes:
  - {name: E, direction: east, unit: metre}
  - {name: N, direction: north, unit: metre}
  proj: +proj=merc
`))
	if err == nil || !strings.Contains(err.Error(), "duplicate definition") {
		t.Errorf("expected duplicate error, got %v", err)
	}
}

func TestMerge(t *testing.T) {
	base := []*Definition{{Code: "EPSG:1", Name: "a"}, {Code: "EPSG:2", Name: "b"}}
	extra := []*Definition{{Code: "EPSG:3", Name: "c"}, {Code: "EPSG:1", Name: "A"}}
	result := merge(base, extra)
	if len(result) != 3 {
		t.Fatalf("unexpected length %d", len(result))
	}
	for i, name := range []string{"A", "b", "c"} {
		if result[i].Name != name {
			t.Errorf("%d: expected %s, got %s", i, name, result[i].Name)
		}
	}
	if base[0].Name != "a" {
		t.Error("base modified")
	}
}

func TestPROJPipeline(t *testing.T) {
	for _, tc := range []struct {
		def      Definition
		expected string
	}{
		{
			Definition{
				Code: "EPSG:32632",
				Axes: []Axis{{"E", "east", "metre"}, {"N", "north", "metre"}},
				Proj: "+proj=utm +zone=32 +ellps=WGS84",
			},
			"+proj=pipeline " + inputSteps + " +step +proj=utm +zone=32 +ellps=WGS84",
		},
		{
			Definition{
				Code: "EPSG:31467",
				Axes: []Axis{{"N", "north", "metre"}, {"E", "east", "metre"}},
				Proj: "+proj=tmerc +lon_0=9",
			},
			"+proj=pipeline " + inputSteps + " +step +proj=tmerc +lon_0=9 +step +proj=axisswap +order=2,1",
		},
		{
			Definition{
				Code: "EPSG:2263",
				Axes: []Axis{{"E", "east", "US survey foot"}, {"N", "north", "US survey foot"}},
				Proj: "+proj=lcc",
			},
			"+proj=pipeline " + inputSteps + " +step +proj=lcc +step +proj=unitconvert +xy_in=m +xy_out=us-ft",
		},
		{
			Definition{
				Code: "EPSG:4258",
				Axes: []Axis{{"Lat", "north", "degree"}, {"Lon", "east", "degree"}},
				Proj: "+proj=longlat +ellps=GRS80",
			},
			"+proj=pipeline " + inputSteps + " +step +proj=longlat +ellps=GRS80" +
				" +step +proj=unitconvert +xy_in=rad +xy_out=deg +step +proj=axisswap +order=2,1",
		},
		{
			Definition{
				Code:     "EPSG:9999",
				Axes:     []Axis{{"E", "east", "metre"}, {"N", "north", "metre"}},
				Pipeline: "+proj=pipeline +step +proj=noop",
			},
			"+proj=pipeline +step +proj=noop",
		},
	} {
		p, err := tc.def.PROJPipeline()
		if err != nil {
			t.Fatal(tc.def.Code, err)
		}
		if p != tc.expected {
			t.Errorf("%s:\n%q !=\n%q", tc.def.Code, p, tc.expected)
		}
	}
}

func TestCodec(t *testing.T) {
	defs, err := ParseRegistry([]byte(defaultRegistry))
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range defs {
		data, err := marshalDefinition(d)
		if err != nil {
			t.Fatal(d.Code, err)
		}
		got, err := unmarshalDefinition(data)
		if err != nil {
			t.Fatal(d.Code, err)
		}
		if got.Code != d.Code || got.Name != d.Name || got.Proj != d.Proj ||
			got.Method != d.Method || got.Deprecated != d.Deprecated ||
			len(got.Axes) != len(d.Axes) || len(got.Area) != len(d.Area) {
			t.Errorf("%s: %#v != %#v", d.Code, got, d)
			continue
		}
		for i := range d.Area {
			if got.Area[i] != d.Area[i] {
				t.Errorf("%s: area %v != %v", d.Code, got.Area, d.Area)
			}
		}
		for i := range d.Axes {
			if got.Axes[i] != d.Axes[i] {
				t.Errorf("%s: axis %v != %v", d.Code, got.Axes[i], d.Axes[i])
			}
		}
	}
}
