package epsg

import (
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/omniscale/crscheck/engine"
	"github.com/omniscale/crscheck/geom"
)

func newTestEngine(t *testing.T, conf engine.Config) (*Engine, func()) {
	t.Helper()
	tmp, err := ioutil.TempDir("", "crscheck-test")
	if err != nil {
		t.Fatal(err)
	}
	conf.TempDir = tmp
	e, err := New(conf)
	if err != nil {
		os.RemoveAll(tmp)
		t.Fatal(err)
	}
	return e, func() {
		if err := e.Close(); err != nil {
			t.Error(err)
		}
		os.RemoveAll(tmp)
	}
}

func transform(t *testing.T, e *Engine, source, target string, c geom.Coord) geom.Coord {
	t.Helper()
	s, err := e.ResolveCRS(source)
	if err != nil {
		t.Fatal(err)
	}
	tg, err := e.ResolveCRS(target)
	if err != nil {
		t.Fatal(err)
	}
	op, err := e.FindOperation(s, tg)
	if err != nil {
		t.Fatal(err)
	}
	out, err := op.Transform(c)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestRegisteredEngine(t *testing.T) {
	tmp, err := ioutil.TempDir("", "crscheck-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmp)

	e, err := engine.Open(engine.Config{Type: "epsg", TempDir: tmp})
	if err != nil {
		t.Fatal(err)
	}
	dir := e.(*Engine).dir
	if _, err := os.Stat(dir); err != nil {
		t.Fatal("missing store dir", err)
	}
	if err := e.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("store dir not removed", err)
	}
}

func TestCodes(t *testing.T) {
	for _, backend := range []string{StoreBadger, StoreLevelDB} {
		t.Run(backend, func(t *testing.T) {
			e, cleanup := newTestEngine(t, engine.Config{Store: backend})
			defer cleanup()

			codes, err := e.Codes("epsg")
			if err != nil {
				t.Fatal(err)
			}
			if len(codes) < 10 {
				t.Fatalf("too few codes: %v", codes)
			}
			for i := 1; i < len(codes); i++ {
				if codes[i-1] >= codes[i] {
					t.Errorf("codes not sorted: %s >= %s", codes[i-1], codes[i])
				}
			}
			other, err := e.Codes("IGNF")
			if err != nil {
				t.Fatal(err)
			}
			if len(other) != 0 {
				t.Errorf("unexpected codes %v", other)
			}
		})
	}
}

func TestResolveCRS(t *testing.T) {
	e, cleanup := newTestEngine(t, engine.Config{})
	defer cleanup()

	c, err := e.ResolveCRS(" epsg:3857")
	if err != nil {
		t.Fatal(err)
	}
	if c.Code() != "EPSG:3857" || c.Name() != "WGS 84 / Pseudo-Mercator" {
		t.Errorf("unexpected crs %s %s", c.Code(), c.Name())
	}

	_, err = e.ResolveCRS("EPSG:1")
	if engine.KindOf(err) != engine.KindResolution {
		t.Errorf("expected resolution error, got %v", err)
	}
}

func TestBoundingBox(t *testing.T) {
	tmp, err := ioutil.TempDir("", "crscheck-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmp)
	reg := filepath.Join(tmp, "registry.yaml")
	if err := ioutil.WriteFile(reg, []byte(`
definitions:
- code: "TEST:1"
  name: without area
  kind: projected
  axes:
  - {name: Easting, direction: east, unit: metre}
  - {name: Northing, direction: north, unit: metre}
  method: webmercator
`), 0644); err != nil {
		t.Fatal(err)
	}

	e, cleanup := newTestEngine(t, engine.Config{Registry: reg})
	defer cleanup()

	c, err := e.ResolveCRS("EPSG:4269")
	if err != nil {
		t.Fatal(err)
	}
	bbox, err := e.BoundingBox(c)
	if err != nil {
		t.Fatal(err)
	}
	if bbox != (geom.BBox{West: 167.65, South: 14.92, East: -40.73, North: 86.45}) {
		t.Errorf("unexpected bbox %v", bbox)
	}

	c, err = e.ResolveCRS("TEST:1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.BoundingBox(c); engine.KindOf(err) != engine.KindUnavailable {
		t.Errorf("expected unavailable error, got %v", err)
	}
}

func TestRegistryLowercaseCode(t *testing.T) {
	tmp, err := ioutil.TempDir("", "crscheck-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmp)
	reg := filepath.Join(tmp, "registry.yaml")
	if err := ioutil.WriteFile(reg, []byte(`
definitions:
- code: "test:2"
  name: lower case authority
  kind: projected
  axes:
  - {name: Easting, direction: east, unit: metre}
  - {name: Northing, direction: north, unit: metre}
  area: [-10, 40, 10, 50]
  method: webmercator
`), 0644); err != nil {
		t.Fatal(err)
	}

	e, cleanup := newTestEngine(t, engine.Config{Registry: reg})
	defer cleanup()

	c, err := e.ResolveCRS("TEST:2")
	if err != nil {
		t.Fatal(err)
	}
	if c.Code() != "TEST:2" {
		t.Errorf("unexpected code %s", c.Code())
	}
	codes, err := e.Codes("test")
	if err != nil {
		t.Fatal(err)
	}
	if len(codes) != 1 || codes[0] != "TEST:2" {
		t.Errorf("unexpected codes %v", codes)
	}
}

func TestAxisUnit(t *testing.T) {
	e, cleanup := newTestEngine(t, engine.Config{})
	defer cleanup()

	for code, unit := range map[string]engine.Unit{
		"EPSG:4326": engine.Degree,
		"EPSG:3857": engine.Metre,
		"EPSG:2263": engine.USSurveyFoot,
	} {
		c, err := e.ResolveCRS(code)
		if err != nil {
			t.Fatal(err)
		}
		u, err := e.AxisUnit(c, 0)
		if err != nil {
			t.Fatal(err)
		}
		if u != unit {
			t.Errorf("%s: expected %s, got %s", code, unit, u)
		}
	}
}

func TestWebMercator(t *testing.T) {
	e, cleanup := newTestEngine(t, engine.Config{})
	defer cleanup()

	out := transform(t, e, "EPSG:4326", "EPSG:3857", geom.Coord{53, 8})
	if math.Abs(out[0]-890555.9263461898) > 1e-6 || math.Abs(out[1]-6982997.920389788) > 1e-6 {
		t.Errorf("unexpected result %v", out)
	}
	back := transform(t, e, "EPSG:3857", "EPSG:4326", out)
	if math.Abs(back[0]-53) > 1e-9 || math.Abs(back[1]-8) > 1e-9 {
		t.Errorf("unexpected result %v", back)
	}

	same := transform(t, e, "EPSG:3857", "EPSG:3857", out)
	if same != out {
		t.Errorf("identity changed %v to %v", out, same)
	}
}

func TestWebMercatorPole(t *testing.T) {
	e, cleanup := newTestEngine(t, engine.Config{})
	defer cleanup()

	s, _ := e.ResolveCRS("EPSG:4326")
	tg, _ := e.ResolveCRS("EPSG:3857")
	op, err := e.FindOperation(s, tg)
	if err != nil {
		t.Fatal(err)
	}
	_, err = op.Transform(geom.Coord{90, 0})
	if engine.KindOf(err) != engine.KindTransform {
		t.Errorf("expected transform error, got %v", err)
	}
}

func TestPROJOperations(t *testing.T) {
	e, cleanup := newTestEngine(t, engine.Config{})
	defer cleanup()

	// central meridian of UTM zone 32
	out := transform(t, e, "EPSG:4326", "EPSG:32632", geom.Coord{48, 9})
	if math.Abs(out[0]-500000) > 1e-6 {
		t.Errorf("unexpected easting %v", out)
	}
	if out[1] < 5300000 || out[1] > 5400000 {
		t.Errorf("unexpected northing %v", out)
	}

	back := transform(t, e, "EPSG:32632", "EPSG:4326", out)
	if math.Abs(back[0]-48) > 1e-9 || math.Abs(back[1]-9) > 1e-9 {
		t.Errorf("unexpected result %v", back)
	}

	// northing first
	gk := transform(t, e, "EPSG:4326", "EPSG:31467", geom.Coord{48, 9})
	if math.Abs(gk[1]-3500000) > 1e-6 {
		t.Errorf("unexpected easting %v", gk)
	}

	// chained through EPSG:4326
	merc := transform(t, e, "EPSG:32632", "EPSG:3857", out)
	x, y := 1001875.4171394621, 6106854.834885071
	if math.Abs(merc[0]-x) > 1e-3 || math.Abs(merc[1]-y) > 1e-3 {
		t.Errorf("unexpected result %v", merc)
	}
}
